package workload

import (
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

const relevanceWindow = 7 * 24 * time.Hour

// AnalyzeTasks filters tasks down to the relevant set (incomplete, due within
// the next seven days) and buckets them by priority and urgency. The urgency
// buckets are mutually exclusive, decided by the first matching band:
// overdue, then due within 24h, 72h, 168h.
//
// Tasks with unparsable due dates are dropped and reported in
// UnparsableDropped so the caller can log a warning; they never count as
// relevant.
func AnalyzeTasks(tasks []domain.TaskRecord, now time.Time) (TaskMetrics, []string) {
	m := TaskMetrics{Total: len(tasks)}
	var dropped []string

	horizon := now.Add(relevanceWindow)

	for _, task := range tasks {
		if task.IsComplete() {
			continue
		}
		if task.DueDate == "" {
			continue
		}
		due := task.DueTime()
		if due == nil {
			dropped = append(dropped, task.Name)
			continue
		}
		if due.After(horizon) {
			continue
		}

		m.Relevant++
		switch task.Priority {
		case domain.PriorityHigh:
			m.ByPriority.High++
		case domain.PriorityMedium:
			m.ByPriority.Medium++
		case domain.PriorityLow:
			m.ByPriority.Low++
		}

		hoursUntil := due.Sub(now).Hours()
		switch {
		case hoursUntil < 0:
			m.Overdue = append(m.Overdue, task)
		case hoursUntil <= 24:
			m.Urgent24h = append(m.Urgent24h, task)
		case hoursUntil <= 72:
			m.DueSoon3d = append(m.DueSoon3d, task)
		case hoursUntil <= 168:
			m.Upcoming7d = append(m.Upcoming7d, task)
		}
	}

	m.OverdueCount = len(m.Overdue)
	m.UrgentCount = len(m.Urgent24h)
	m.DueSoonCount = len(m.DueSoon3d)
	m.UpcomingCount = len(m.Upcoming7d)
	return m, dropped
}

// Analyze runs both passes and bundles the result.
func Analyze(events []domain.CalendarEvent, tasks []domain.TaskRecord, now time.Time) (Metrics, []string) {
	taskMetrics, dropped := AnalyzeTasks(tasks, now)
	return Metrics{
		Calendar: AnalyzeCalendar(events),
		Tasks:    taskMetrics,
	}, dropped
}
