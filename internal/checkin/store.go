// Package checkin owns the per-user, per-period check-in ledger and the
// rolling wellness intelligence derived from it.
package checkin

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

// RetentionDays is the time-bounded retention window of the ledger.
// Entries older than this are pruned lazily on each append.
const RetentionDays = 30

// Store persists check-in entries per user. Implementations must serialize
// mutations for a given user so concurrent submissions cannot lose updates.
type Store interface {
	// Append adds an entry to the user's period log and prunes entries
	// older than the retention window from that same log.
	Append(ctx context.Context, userID string, entry domain.CheckinEntry) error

	// Recent returns the user's entries newer than now minus the given
	// number of days, grouped per period in insertion order.
	Recent(ctx context.Context, userID string, days int, now time.Time) (domain.CheckinHistory, error)
}

// MemoryStore keeps check-ins in process memory for the lifetime of the
// process. Each user's log has its own lock so submissions for different
// users never contend.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*userLog
}

type userLog struct {
	mu      sync.Mutex
	periods map[domain.CheckinPeriod][]domain.CheckinEntry
}

// NewMemoryStore creates an empty in-memory check-in store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*userLog)}
}

func (s *MemoryStore) forUser(userID string) *userLog {
	s.mu.RLock()
	log, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return log
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if log, ok = s.users[userID]; ok {
		return log
	}
	log = &userLog{periods: make(map[domain.CheckinPeriod][]domain.CheckinEntry)}
	s.users[userID] = log
	return log
}

func (s *MemoryStore) Append(_ context.Context, userID string, entry domain.CheckinEntry) error {
	log := s.forUser(userID)
	log.mu.Lock()
	defer log.mu.Unlock()

	entries := append(log.periods[entry.Period], entry)

	cutoff := entry.Timestamp.AddDate(0, 0, -RetentionDays)
	kept := entries[:0]
	for _, e := range entries {
		if e.Timestamp.After(cutoff) {
			kept = append(kept, e)
		}
	}
	log.periods[entry.Period] = kept
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, userID string, days int, now time.Time) (domain.CheckinHistory, error) {
	log := s.forUser(userID)
	log.mu.Lock()
	defer log.mu.Unlock()

	cutoff := now.AddDate(0, 0, -days)
	filter := func(entries []domain.CheckinEntry) []domain.CheckinEntry {
		var out []domain.CheckinEntry
		for _, e := range entries {
			if e.Timestamp.After(cutoff) {
				out = append(out, e)
			}
		}
		return out
	}

	return domain.CheckinHistory{
		Morning:   filter(log.periods[domain.PeriodMorning]),
		Afternoon: filter(log.periods[domain.PeriodAfternoon]),
		Evening:   filter(log.periods[domain.PeriodEvening]),
	}, nil
}
