package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
	"github.com/google/uuid"
)

const defaultSignal = 5

// Ledger records check-in submissions and serves recent history.
type Ledger struct {
	store Store
	now   func() time.Time
}

// NewLedger creates a Ledger over the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// NewLedgerWithClock creates a Ledger with an injected clock for tests.
func NewLedgerWithClock(store Store, now func() time.Time) *Ledger {
	return &Ledger{store: store, now: now}
}

// Record extracts the signal tuple from a freeform payload, appends the
// entry to the user's period log, and prunes expired entries. Missing
// signal fields default to 5; a missing focus stays nil. Payloads are
// never rejected for missing fields.
func (l *Ledger) Record(ctx context.Context, userID string, period domain.CheckinPeriod, payload map[string]any) (domain.CheckinEntry, error) {
	if !domain.IsValidPeriod(period) {
		return domain.CheckinEntry{}, fmt.Errorf("unknown check-in period %q", period)
	}
	if payload == nil {
		payload = map[string]any{}
	}

	entry := domain.CheckinEntry{
		ID:        uuid.NewString(),
		Timestamp: l.now(),
		Period:    period,
		Payload:   payload,
		Signals: domain.CheckinSignals{
			Stress: signalValue(payload, "stress"),
			Energy: signalValue(payload, "energy"),
			Mood:   signalValue(payload, "mood"),
			Focus:  optionalSignal(payload, "focus"),
		},
	}

	if err := l.store.Append(ctx, userID, entry); err != nil {
		return domain.CheckinEntry{}, fmt.Errorf("appending check-in: %w", err)
	}
	return entry, nil
}

// Recent returns the user's entries from the last N days, per period.
func (l *Ledger) Recent(ctx context.Context, userID string, days int) (domain.CheckinHistory, error) {
	return l.store.Recent(ctx, userID, days, l.now())
}

// signalValue reads a 1-10 signal from the payload, defaulting to 5.
// JSON decoding yields float64 for numbers; ints appear in direct calls.
func signalValue(payload map[string]any, key string) int {
	if v, ok := asInt(payload[key]); ok {
		return v
	}
	return defaultSignal
}

func optionalSignal(payload map[string]any, key string) *int {
	if v, ok := asInt(payload[key]); ok {
		return &v
	}
	return nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
