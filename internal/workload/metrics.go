package workload

import "github.com/alexanderramin/respite/internal/domain"

// StressEvent is a calendar event that matched one or more stress keywords.
type StressEvent struct {
	Title    string   `json:"title"`
	Start    string   `json:"start"`
	Keywords []string `json:"keywords"`
}

// LongMeeting is a single event lasting two hours or more.
type LongMeeting struct {
	Title string  `json:"title"`
	Hours float64 `json:"hours"`
}

// CalendarMetrics is the numeric summary of a calendar window.
type CalendarMetrics struct {
	TotalEvents  int           `json:"total_events"`
	StressEvents []StressEvent `json:"stress_events"`
	StressCount  int           `json:"stress_count"`
	BackToBack   int           `json:"back_to_back"`
	LongMeetings []LongMeeting `json:"long_meetings"`
	TotalHours   float64       `json:"total_hours"`
}

// PriorityCounts partitions relevant tasks by priority.
type PriorityCounts struct {
	High   int `json:"High"`
	Medium int `json:"Medium"`
	Low    int `json:"Low"`
}

// TaskMetrics is the numeric summary of the task workload, restricted to
// incomplete tasks due within the next seven days.
type TaskMetrics struct {
	Total      int                 `json:"total"`    // all fetched tasks
	Relevant   int                 `json:"relevant"` // incomplete, due within 7 days
	ByPriority PriorityCounts      `json:"by_priority"`
	Overdue    []domain.TaskRecord `json:"overdue"`
	Urgent24h  []domain.TaskRecord `json:"urgent_24h"`
	DueSoon3d  []domain.TaskRecord `json:"upcoming_3d"`
	Upcoming7d []domain.TaskRecord `json:"upcoming_week"`

	OverdueCount  int `json:"overdue_count"`
	UrgentCount   int `json:"urgent_count"`
	DueSoonCount  int `json:"upcoming_count"`
	UpcomingCount int `json:"upcoming_week_count"`
}

// Metrics bundles both passes for embedding into a stress assessment.
type Metrics struct {
	Calendar CalendarMetrics `json:"calendar"`
	Tasks    TaskMetrics     `json:"tasks"`
}
