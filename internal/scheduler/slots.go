// Package scheduler computes free calendar slots for placing wellness
// breaks. All functions are pure: they take an explicit "now" and never
// touch the clock, so tests can pin time exactly.
package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

const (
	// Workday bounds, local time.
	workdayStartHour = 9
	workdayEndHour   = 18

	// Minimum gap sizes that qualify as a usable slot.
	minMidDayGap   = 20 * time.Minute
	minTrailingGap = 15 * time.Minute
)

// Slot is a free interval during today's workday.
type Slot struct {
	Start      time.Time `json:"-"`
	End        time.Time `json:"-"`
	StartLabel string    `json:"start"`
	EndLabel   string    `json:"end"`
	GapMinutes int       `json:"gap_minutes"`
	Context    string    `json:"context"`
}

// Contains reports whether the interval [start, end) nests fully inside
// the slot.
func (s Slot) Contains(start, end time.Time) bool {
	return !start.Before(s.Start) && !end.After(s.End)
}

// DiscoverSlots walks today's events in start order and returns the free
// intervals of the 09:00-18:00 workday. The cursor starts at max(now,
// 09:00); a gap before an event qualifies at 20 minutes, the trailing
// gap to end of day at 15. Events with unparsable timestamps are
// skipped. The returned slots are disjoint and ordered.
func DiscoverSlots(events []domain.CalendarEvent, now time.Time) []Slot {
	workStart := time.Date(now.Year(), now.Month(), now.Day(), workdayStartHour, 0, 0, 0, now.Location())
	workEnd := time.Date(now.Year(), now.Month(), now.Day(), workdayEndHour, 0, 0, 0, now.Location())

	type window struct {
		start, end time.Time
		summary    string
	}
	var today []window
	for _, ev := range events {
		start := ev.StartTime()
		end := ev.EndTime()
		if start == nil || end == nil {
			continue
		}
		y, m, d := start.In(now.Location()).Date()
		if y != now.Year() || m != now.Month() || d != now.Day() {
			continue
		}
		today = append(today, window{start: start.In(now.Location()), end: end.In(now.Location()), summary: ev.Summary})
	}
	sort.Slice(today, func(i, j int) bool { return today[i].start.Before(today[j].start) })

	cursor := now
	if cursor.Before(workStart) {
		cursor = workStart
	}

	var slots []Slot
	for _, w := range today {
		if gap := w.start.Sub(cursor); gap >= minMidDayGap {
			ctx := "Before next event"
			if w.summary != "" {
				ctx = "Before " + w.summary
			}
			slots = append(slots, newSlot(cursor, w.start, ctx))
		}
		if w.end.After(cursor) {
			cursor = w.end
		}
	}

	if cursor.Before(workEnd) {
		if gap := workEnd.Sub(cursor); gap >= minTrailingGap {
			slots = append(slots, newSlot(cursor, workEnd, "End of workday"))
		}
	}

	return slots
}

func newSlot(start, end time.Time, context string) Slot {
	return Slot{
		Start:      start,
		End:        end,
		StartLabel: start.Format("15:04"),
		EndLabel:   end.Format("15:04"),
		GapMinutes: int(end.Sub(start).Minutes()),
		Context:    context,
	}
}
