package breaks

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

// HistoryStore persists finished break records.
type HistoryStore interface {
	// Append adds a record to the history.
	Append(ctx context.Context, record domain.BreakHistoryRecord) error

	// Recent returns records newer than now minus days, oldest first.
	Recent(ctx context.Context, days int, now time.Time) ([]domain.BreakHistoryRecord, error)
}

// MemoryHistory is an in-process HistoryStore.
type MemoryHistory struct {
	mu      sync.RWMutex
	records []domain.BreakHistoryRecord
}

// NewMemoryHistory creates an empty in-memory history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (h *MemoryHistory) Append(_ context.Context, record domain.BreakHistoryRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *MemoryHistory) Recent(_ context.Context, days int, now time.Time) ([]domain.BreakHistoryRecord, error) {
	cutoff := now.AddDate(0, 0, -days)

	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.BreakHistoryRecord, 0, len(h.records))
	for _, r := range h.records {
		if r.Timestamp.After(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

// StatsFor summarizes a record window. Completion rate is a percentage
// rounded to one decimal, zero when the window is empty.
func StatsFor(records []domain.BreakHistoryRecord, days int) domain.BreakStats {
	total := len(records)
	completed := 0
	for _, r := range records {
		if r.Completed {
			completed++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*100*10) / 10
	}

	return domain.BreakStats{
		TotalBreaks:     total,
		CompletedBreaks: completed,
		CompletionRate:  rate,
		Days:            days,
	}
}
