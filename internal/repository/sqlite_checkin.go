// Package repository provides SQLite-backed persistence for check-ins
// and break history.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/respite/internal/checkin"
	"github.com/alexanderramin/respite/internal/domain"
)

// SQLiteCheckinStore implements checkin.Store using a SQLite database.
type SQLiteCheckinStore struct {
	db *sql.DB
}

// NewSQLiteCheckinStore creates a new SQLiteCheckinStore.
func NewSQLiteCheckinStore(db *sql.DB) *SQLiteCheckinStore {
	return &SQLiteCheckinStore{db: db}
}

func (s *SQLiteCheckinStore) Append(ctx context.Context, userID string, entry domain.CheckinEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("encoding check-in payload: %w", err)
	}

	var focus any
	if entry.Signals.Focus != nil {
		focus = *entry.Signals.Focus
	}

	// Timestamps are stored in UTC so the lexicographic created_at
	// comparisons below stay correct across rows from different zones.
	query := `INSERT INTO checkins (id, user_id, period, stress, energy, mood, focus, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query,
		entry.ID,
		userID,
		string(entry.Period),
		entry.Signals.Stress,
		entry.Signals.Energy,
		entry.Signals.Mood,
		focus,
		string(payload),
		entry.Timestamp.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("inserting check-in: %w", err)
	}

	cutoff := entry.Timestamp.AddDate(0, 0, -checkin.RetentionDays)
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM checkins WHERE user_id = ? AND period = ? AND created_at <= ?`,
		userID, string(entry.Period), cutoff.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("pruning old check-ins: %w", err)
	}
	return nil
}

func (s *SQLiteCheckinStore) Recent(ctx context.Context, userID string, days int, now time.Time) (domain.CheckinHistory, error) {
	cutoff := now.AddDate(0, 0, -days)

	query := `SELECT id, period, stress, energy, mood, focus, payload, created_at
		FROM checkins
		WHERE user_id = ? AND created_at > ?
		ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query, userID, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return domain.CheckinHistory{}, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()

	var history domain.CheckinHistory
	for rows.Next() {
		entry, err := scanCheckin(rows)
		if err != nil {
			return domain.CheckinHistory{}, err
		}
		switch entry.Period {
		case domain.PeriodMorning:
			history.Morning = append(history.Morning, entry)
		case domain.PeriodAfternoon:
			history.Afternoon = append(history.Afternoon, entry)
		case domain.PeriodEvening:
			history.Evening = append(history.Evening, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.CheckinHistory{}, fmt.Errorf("iterating check-ins: %w", err)
	}
	return history, nil
}

func scanCheckin(rows *sql.Rows) (domain.CheckinEntry, error) {
	var (
		e          domain.CheckinEntry
		period     string
		focus      sql.NullInt64
		payloadStr string
		createdAt  string
	)
	if err := rows.Scan(
		&e.ID, &period, &e.Signals.Stress, &e.Signals.Energy, &e.Signals.Mood,
		&focus, &payloadStr, &createdAt,
	); err != nil {
		return domain.CheckinEntry{}, fmt.Errorf("scanning check-in row: %w", err)
	}

	e.Period = domain.CheckinPeriod(period)
	if focus.Valid {
		f := int(focus.Int64)
		e.Signals.Focus = &f
	}
	if err := json.Unmarshal([]byte(payloadStr), &e.Payload); err != nil {
		return domain.CheckinEntry{}, fmt.Errorf("decoding check-in payload: %w", err)
	}

	var err error
	e.Timestamp, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.CheckinEntry{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return e, nil
}
