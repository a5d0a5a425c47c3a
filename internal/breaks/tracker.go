package breaks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

var (
	// ErrNoActiveBreak is returned when completing with no session in progress.
	ErrNoActiveBreak = errors.New("no active break")

	// ErrBreakIDMismatch is returned when the given id names a different session.
	ErrBreakIDMismatch = errors.New("break id mismatch")

	// ErrBreakInProgress is returned when starting over a live session.
	ErrBreakInProgress = errors.New("a break is already in progress")
)

// Tracker owns the process-global active break slot. At most one
// session is active at a time; start, complete and skip serialize on
// one mutex, current takes only a read lock.
type Tracker struct {
	mu      sync.RWMutex
	active  *domain.ActiveBreakSession
	history HistoryStore
	now     func() time.Time
}

// NewTracker creates a Tracker recording finished breaks into history.
func NewTracker(history HistoryStore) *Tracker {
	return NewTrackerWithClock(history, time.Now)
}

// NewTrackerWithClock pins the clock, for tests.
func NewTrackerWithClock(history HistoryStore, now func() time.Time) *Tracker {
	return &Tracker{history: history, now: now}
}

// Start begins a session. An empty id gets a generated one. Starting
// while a session is still live fails; an expired leftover session is
// treated as idle and replaced.
func (t *Tracker) Start(_ context.Context, id string, breakType domain.BreakType, durationMin int, reason string) (domain.ActiveBreakSession, error) {
	if !domain.ValidBreakTypes[breakType] {
		return domain.ActiveBreakSession{}, fmt.Errorf("unknown break type %q", breakType)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if t.active != nil && !now.After(t.active.EndTime) {
		return domain.ActiveBreakSession{}, ErrBreakInProgress
	}

	if id == "" {
		id = fmt.Sprintf("br_%d", now.Unix())
	}

	title := "Wellness Break"
	if content, ok := ContentFor(breakType); ok {
		title = content.Title
	}

	session := domain.ActiveBreakSession{
		ID:          id,
		Type:        breakType,
		Title:       title,
		DurationMin: durationMin,
		StartTime:   now,
		EndTime:     now.Add(time.Duration(durationMin) * time.Minute),
		Reason:      reason,
		Status:      domain.BreakActive,
	}
	t.active = &session
	return session, nil
}

// Current returns the live session and its elapsed seconds. A session
// past its end time reads as idle; no transition is recorded.
func (t *Tracker) Current(_ context.Context) (domain.ActiveBreakSession, int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.active == nil {
		return domain.ActiveBreakSession{}, 0, false
	}
	now := t.now()
	if now.After(t.active.EndTime) {
		return domain.ActiveBreakSession{}, 0, false
	}
	return *t.active, int(now.Sub(t.active.StartTime).Seconds()), true
}

// Complete finishes the active session and appends a history record.
// An empty id completes whatever is active; a non-empty id must match.
func (t *Tracker) Complete(ctx context.Context, id string, completed bool, feedback string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return ErrNoActiveBreak
	}
	if id != "" && id != t.active.ID {
		return ErrBreakIDMismatch
	}

	record := domain.BreakHistoryRecord{
		BreakID:     t.active.ID,
		Type:        t.active.Type,
		DurationMin: t.active.DurationMin,
		Completed:   completed,
		Feedback:    feedback,
		Timestamp:   t.now(),
	}
	if err := t.history.Append(ctx, record); err != nil {
		return fmt.Errorf("recording break: %w", err)
	}

	t.active = nil
	return nil
}

// Skip discards the active session when id matches it. A mismatched or
// missing id is a no-op, not an error. Returns whether a session was
// actually discarded.
func (t *Tracker) Skip(_ context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active != nil && t.active.ID == id {
		t.active = nil
		return true
	}
	return false
}

// History returns the record window plus its stats.
func (t *Tracker) History(ctx context.Context, days int) ([]domain.BreakHistoryRecord, domain.BreakStats, error) {
	records, err := t.history.Recent(ctx, days, t.now())
	if err != nil {
		return nil, domain.BreakStats{}, err
	}
	return records, StatsFor(records, days), nil
}
