package intelligence

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
	"github.com/alexanderramin/respite/internal/llm"
	"github.com/alexanderramin/respite/internal/scheduler"
)

const (
	minBreakMinutes = 5
	maxBreakMinutes = 15

	slumpWindowStartHour = 13
	slumpWindowEndHour   = 16
)

// BreakService assigns wellness breaks to today's free slots. Like the
// stress service it never fails: a model failure, or a plan that
// violates the allocation policy, degrades to the single-break fallback.
type BreakService interface {
	Allocate(ctx context.Context, slots []scheduler.Slot, intel domain.CheckinIntelligence, assessment *StressAssessment, now time.Time) *BreakPlan
}

type breakService struct {
	client llm.Client
}

// NewBreakService creates a BreakService backed by an LLM client.
func NewBreakService(client llm.Client) BreakService {
	return &breakService{client: client}
}

func (s *breakService) Allocate(ctx context.Context, slots []scheduler.Slot, intel domain.CheckinIntelligence, assessment *StressAssessment, now time.Time) *BreakPlan {
	if !s.client.Available(ctx) {
		return DeterministicBreakPlan(now, "disabled")
	}

	resp, err := s.client.Complete(ctx, llm.Request{
		Task:         llm.TaskBreaks,
		SystemPrompt: breakSystemPrompt,
		UserPrompt:   buildBreakPrompt(slots, intel, assessment),
	})
	if err != nil {
		return DeterministicBreakPlan(now, failureCause(err))
	}

	plan, err := llm.ExtractJSON[BreakPlan](resp.Text, nil)
	if err != nil {
		return DeterministicBreakPlan(now, failureCause(err))
	}

	if err := validateBreakPlan(&plan, slots, intel, now); err != nil {
		return DeterministicBreakPlan(now, "invalid_plan")
	}

	return &plan
}

// validateBreakPlan enforces the allocation policy on a model-produced
// plan: 2-3 proposals, each nested inside a discovered slot, durations
// 5-15 minutes, no overlaps, no repeated type back to back, and a
// movement break inside 13:00-16:00 when the user has an afternoon
// slump and a slot makes that possible. Proposal windows are resolved
// to concrete times as a side effect; proposals end up sorted by start.
func validateBreakPlan(plan *BreakPlan, slots []scheduler.Slot, intel domain.CheckinIntelligence, now time.Time) error {
	n := len(plan.RecommendedBreaks)
	if n < 2 || n > 3 {
		return fmt.Errorf("expected 2-3 breaks, got %d", n)
	}

	for i := range plan.RecommendedBreaks {
		p := &plan.RecommendedBreaks[i]

		if !domain.ValidBreakTypes[p.Type] {
			return fmt.Errorf("unknown break type %q", p.Type)
		}
		if p.DurationMin < minBreakMinutes || p.DurationMin > maxBreakMinutes {
			return fmt.Errorf("duration %d outside 5-15 minutes", p.DurationMin)
		}

		start, end, err := parseTimeSlot(p.TimeSlot, now)
		if err != nil {
			return err
		}
		if got := int(end.Sub(start).Minutes()); got != p.DurationMin {
			return fmt.Errorf("window %s is %d minutes, duration says %d", p.TimeSlot, got, p.DurationMin)
		}
		p.Start = start
		p.End = end

		inSlot := false
		for _, slot := range slots {
			if slot.Contains(start, end) {
				inSlot = true
				break
			}
		}
		if !inSlot {
			return fmt.Errorf("window %s not inside any free slot", p.TimeSlot)
		}
	}

	sort.Slice(plan.RecommendedBreaks, func(i, j int) bool {
		return plan.RecommendedBreaks[i].Start.Before(plan.RecommendedBreaks[j].Start)
	})

	for i := 1; i < n; i++ {
		prev, cur := plan.RecommendedBreaks[i-1], plan.RecommendedBreaks[i]
		if cur.Start.Before(prev.End) {
			return fmt.Errorf("windows %s and %s overlap", prev.TimeSlot, cur.TimeSlot)
		}
		if cur.Type == prev.Type {
			return fmt.Errorf("break type %q repeated back to back", cur.Type)
		}
	}

	if intel.AfternoonSlump && slumpSlotExists(slots, now) && !hasSlumpMovementBreak(plan.RecommendedBreaks, now) {
		return fmt.Errorf("afternoon slump requires a movement break between 13:00 and 16:00")
	}

	return nil
}

// parseTimeSlot resolves a "HH:MM - HH:MM" window against today's date.
func parseTimeSlot(raw string, now time.Time) (time.Time, time.Time, error) {
	parts := strings.Split(raw, " - ")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed time slot %q", raw)
	}
	start, err := parseClock(parts[0], now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed time slot %q: %v", raw, err)
	}
	end, err := parseClock(parts[1], now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed time slot %q: %v", raw, err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("time slot %q is inverted", raw)
	}
	return start, end, nil
}

func parseClock(s string, now time.Time) (time.Time, error) {
	clock, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}

// slumpSlotExists reports whether any free slot offers at least a
// minimum-length break window inside 13:00-16:00.
func slumpSlotExists(slots []scheduler.Slot, now time.Time) bool {
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), slumpWindowStartHour, 0, 0, 0, now.Location())
	windowEnd := time.Date(now.Year(), now.Month(), now.Day(), slumpWindowEndHour, 0, 0, 0, now.Location())

	for _, slot := range slots {
		start := slot.Start
		if start.Before(windowStart) {
			start = windowStart
		}
		end := slot.End
		if end.After(windowEnd) {
			end = windowEnd
		}
		if end.Sub(start) >= minBreakMinutes*time.Minute {
			return true
		}
	}
	return false
}

func hasSlumpMovementBreak(proposals []domain.BreakProposal, now time.Time) bool {
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), slumpWindowStartHour, 0, 0, 0, now.Location())
	windowEnd := time.Date(now.Year(), now.Month(), now.Day(), slumpWindowEndHour, 0, 0, 0, now.Location())

	for _, p := range proposals {
		if p.Type.IsMovementBreak() && !p.Start.Before(windowStart) && !p.End.After(windowEnd) {
			return true
		}
	}
	return false
}
