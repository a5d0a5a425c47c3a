package domain

import (
	"strings"
	"time"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
	PriorityNone   TaskPriority = "None"
)

// TaskRecord is a single item fetched from the task provider.
// Immutable once fetched.
type TaskRecord struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	DueDate  string       `json:"due_date,omitempty"` // empty when the task has no due date
	Priority TaskPriority `json:"priority"`
	Status   string       `json:"status"` // free text, normalized case-insensitively
	Type     string       `json:"type,omitempty"`
}

// completionStatuses are the status values treated as "this task is done".
var completionStatuses = map[string]bool{
	"done":      true,
	"completed": true,
	"finished":  true,
}

// IsComplete reports whether the task's status is a completion synonym.
func (t TaskRecord) IsComplete() bool {
	return completionStatuses[strings.ToLower(strings.TrimSpace(t.Status))]
}

// DueTime parses the due date. Returns nil if missing or unparsable.
func (t TaskRecord) DueTime() *time.Time {
	return ParseTimestamp(t.DueDate)
}
