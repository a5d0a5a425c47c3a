package intelligence

import (
	"fmt"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

// DeterministicBreakPlan emits a single ten-minute breathing break at
// the top of the next hour. It depends on nothing but the clock, so it
// can be produced even when slot discovery found no free time.
func DeterministicBreakPlan(now time.Time, cause string) *BreakPlan {
	// Anchor on the wall clock, not the absolute timeline: truncating
	// the instant lands mid-hour in zones with a fractional UTC offset.
	start := time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	end := start.Add(10 * time.Minute)

	return &BreakPlan{
		RecommendedBreaks: []domain.BreakProposal{
			{
				TimeSlot:    fmt.Sprintf("%s - %s", start.Format("15:04"), end.Format("15:04")),
				Start:       start,
				End:         end,
				Type:        domain.BreakBreathing,
				DurationMin: 10,
				Reasoning:   "Fallback stress relief break",
				ReasonTag:   "Fallback",
				UIMessage:   "Take a short pause to reset",
				Confidence:  0.5,
			},
		},
		DailyStrategy:  "Keep things light and balanced",
		FallbackReason: cause,
	}
}
