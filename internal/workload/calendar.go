// Package workload converts raw calendar events and task records into
// structured numeric summaries. All functions are deterministic and
// side-effect-free so scoring can be tested without any model calls.
package workload

import (
	"math"
	"strings"

	"github.com/alexanderramin/respite/internal/domain"
)

// stressKeywords flag events likely to raise cognitive load.
var stressKeywords = []string{
	"deadline", "review", "interview", "presentation", "demo", "urgent",
	"critical", "board", "client", "crisis", "emergency", "evaluation",
	"assessment", "performance", "meeting", "call", "sync",
}

const (
	backToBackGapSec = 900 // gap <= 15 min counts as back-to-back
	longMeetingHours = 2.0
)

// AnalyzeCalendar walks events in chronological order and accumulates
// stress-keyword matches, back-to-back meeting count, long meetings,
// and total scheduled hours. Events with missing or unparsable timestamps
// are skipped for the duration and gap computations but still contribute
// to keyword detection.
func AnalyzeCalendar(events []domain.CalendarEvent) CalendarMetrics {
	m := CalendarMetrics{TotalEvents: len(events)}

	for i, event := range events {
		haystack := strings.ToLower(event.Summary) + " " + strings.ToLower(event.Description)
		var matched []string
		for _, kw := range stressKeywords {
			if strings.Contains(haystack, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			m.StressEvents = append(m.StressEvents, StressEvent{
				Title:    event.Summary,
				Start:    event.Start,
				Keywords: matched,
			})
		}

		start := event.StartTime()
		end := event.EndTime()
		if start != nil && end != nil {
			hours := end.Sub(*start).Hours()
			m.TotalHours += hours
			if hours >= longMeetingHours {
				m.LongMeetings = append(m.LongMeetings, LongMeeting{
					Title: event.Summary,
					Hours: round1(hours),
				})
			}
		}

		if i > 0 {
			prevEnd := events[i-1].EndTime()
			if prevEnd != nil && start != nil && start.Sub(*prevEnd).Seconds() <= backToBackGapSec {
				m.BackToBack++
			}
		}
	}

	m.StressCount = len(m.StressEvents)
	m.TotalHours = round2(m.TotalHours)
	return m
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
