package domain

import "time"

// CalendarEvent is a single event fetched from the calendar provider.
// Events are immutable once fetched; the core never creates them.
type CalendarEvent struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       string `json:"start"` // provider timestamp, RFC 3339 or date-only
	End         string `json:"end"`
	Location    string `json:"location"`
	Attendees   int    `json:"attendees"`
	HTMLLink    string `json:"htmlLink,omitempty"`
}

// StartTime parses the event start timestamp. Returns nil if missing or unparsable.
func (e CalendarEvent) StartTime() *time.Time {
	return ParseTimestamp(e.Start)
}

// EndTime parses the event end timestamp. Returns nil if missing or unparsable.
func (e CalendarEvent) EndTime() *time.Time {
	return ParseTimestamp(e.End)
}

// timestampLayouts are the formats calendar and task providers emit.
// Date-only values come from all-day events and date-granular due dates.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a provider timestamp, returning nil on failure
// rather than an error. Callers decide whether to skip-and-log or propagate;
// the zero value is never returned as a valid time.
func ParseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
