package breaks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/respite/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time          { return c.now }
func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTracker(t *testing.T) (*Tracker, *fixedClock) {
	t.Helper()
	clock := &fixedClock{now: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)}
	return NewTrackerWithClock(NewMemoryHistory(), clock.Now), clock
}

func TestTracker_StartAndCurrent(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	session, err := tr.Start(ctx, "br-1", domain.BreakBreathing, 10, "High stress morning")
	require.NoError(t, err)
	assert.Equal(t, "br-1", session.ID)
	assert.Equal(t, "Box Breathing", session.Title)
	assert.Equal(t, clock.now.Add(10*time.Minute), session.EndTime)

	clock.Advance(3 * time.Minute)
	got, elapsed, active := tr.Current(ctx)
	require.True(t, active)
	assert.Equal(t, "br-1", got.ID)
	assert.Equal(t, 180, elapsed)
}

func TestTracker_StartGeneratesID(t *testing.T) {
	tr, _ := newTestTracker(t)

	session, err := tr.Start(context.Background(), "", domain.BreakWalk, 5, "")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Contains(t, session.ID, "br_")
}

func TestTracker_StartRejectsUnknownType(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.Start(context.Background(), "br-1", "nap", 5, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown break type")
}

func TestTracker_SecondStartRejectedWhileLive(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.Start(ctx, "br-1", domain.BreakBreathing, 10, "")
	require.NoError(t, err)

	_, err = tr.Start(ctx, "br-2", domain.BreakWalk, 5, "")
	assert.ErrorIs(t, err, ErrBreakInProgress)

	// Once the first expires, a new session may begin.
	clock.Advance(11 * time.Minute)
	session, err := tr.Start(ctx, "br-2", domain.BreakWalk, 5, "")
	require.NoError(t, err)
	assert.Equal(t, "br-2", session.ID)
}

func TestTracker_CurrentAutoExpires(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.Start(ctx, "br-1", domain.BreakStretch, 5, "")
	require.NoError(t, err)

	clock.Advance(5*time.Minute + time.Second)
	_, _, active := tr.Current(ctx)
	assert.False(t, active)
}

func TestTracker_Complete(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.Start(ctx, "br-1", domain.BreakMeditation, 10, "")
	require.NoError(t, err)

	clock.Advance(9 * time.Minute)
	require.NoError(t, tr.Complete(ctx, "br-1", true, "felt great"))

	_, _, active := tr.Current(ctx)
	assert.False(t, active)

	records, stats, err := tr.History(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "br-1", records[0].BreakID)
	assert.Equal(t, domain.BreakMeditation, records[0].Type)
	assert.True(t, records[0].Completed)
	assert.Equal(t, "felt great", records[0].Feedback)
	assert.InDelta(t, 100.0, stats.CompletionRate, 1e-9)
}

func TestTracker_CompleteWithoutActive(t *testing.T) {
	tr, _ := newTestTracker(t)
	assert.ErrorIs(t, tr.Complete(context.Background(), "br-1", true, ""), ErrNoActiveBreak)
}

func TestTracker_CompleteMismatchLeavesSessionIntact(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.Start(ctx, "br-1", domain.BreakBreathing, 10, "")
	require.NoError(t, err)

	assert.ErrorIs(t, tr.Complete(ctx, "br-9", true, ""), ErrBreakIDMismatch)

	// The mismatched call must not disturb the session or the history.
	got, _, active := tr.Current(ctx)
	require.True(t, active)
	assert.Equal(t, "br-1", got.ID)

	records, _, err := tr.History(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTracker_CompleteWithEmptyIDMatchesActive(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.Start(ctx, "br-1", domain.BreakBreathing, 10, "")
	require.NoError(t, err)
	assert.NoError(t, tr.Complete(ctx, "", false, ""))
}

func TestTracker_SkipIsIdempotent(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	// Skip with nothing active: quiet no-op.
	assert.False(t, tr.Skip(ctx, "br-1"))

	_, err := tr.Start(ctx, "br-1", domain.BreakWalk, 5, "")
	require.NoError(t, err)

	// Mismatched id: the session survives.
	assert.False(t, tr.Skip(ctx, "br-other"))
	_, _, active := tr.Current(ctx)
	assert.True(t, active)

	// Matching id discards it; skipping again is another no-op.
	assert.True(t, tr.Skip(ctx, "br-1"))
	assert.False(t, tr.Skip(ctx, "br-1"))
	_, _, active = tr.Current(ctx)
	assert.False(t, active)

	// Skipped breaks never reach history.
	records, stats, err := tr.History(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, stats.TotalBreaks)
}

func TestTracker_HistoryWindowAndStats(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	run := func(id string, completed bool) {
		_, err := tr.Start(ctx, id, domain.BreakBreathing, 5, "")
		require.NoError(t, err)
		require.NoError(t, tr.Complete(ctx, id, completed, ""))
		clock.Advance(time.Hour)
	}

	run("br-old", true)
	clock.Advance(10 * 24 * time.Hour) // push the first record out of the window
	run("br-1", true)
	run("br-2", true)
	run("br-3", false)

	records, stats, err := tr.History(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 3, stats.TotalBreaks)
	assert.Equal(t, 2, stats.CompletedBreaks)
	assert.InDelta(t, 66.7, stats.CompletionRate, 1e-9)
	assert.Equal(t, 7, stats.Days)
}

func TestStatsFor_EmptyWindow(t *testing.T) {
	stats := StatsFor(nil, 7)
	assert.Zero(t, stats.TotalBreaks)
	assert.Zero(t, stats.CompletionRate)
}
