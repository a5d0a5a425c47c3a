package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/respite/internal/domain"
)

// SQLiteBreakHistory implements breaks.HistoryStore using a SQLite database.
type SQLiteBreakHistory struct {
	db *sql.DB
}

// NewSQLiteBreakHistory creates a new SQLiteBreakHistory.
func NewSQLiteBreakHistory(db *sql.DB) *SQLiteBreakHistory {
	return &SQLiteBreakHistory{db: db}
}

func (s *SQLiteBreakHistory) Append(ctx context.Context, record domain.BreakHistoryRecord) error {
	query := `INSERT INTO break_history (break_id, type, duration_min, completed, feedback, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		record.BreakID,
		string(record.Type),
		record.DurationMin,
		record.Completed,
		record.Feedback,
		record.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting break record: %w", err)
	}
	return nil
}

func (s *SQLiteBreakHistory) Recent(ctx context.Context, days int, now time.Time) ([]domain.BreakHistoryRecord, error) {
	cutoff := now.AddDate(0, 0, -days)

	query := `SELECT break_id, type, duration_min, completed, feedback, created_at
		FROM break_history
		WHERE created_at > ?
		ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing break records: %w", err)
	}
	defer rows.Close()

	var records []domain.BreakHistoryRecord
	for rows.Next() {
		record, err := scanBreakRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating break records: %w", err)
	}
	return records, nil
}

func scanBreakRecord(rows *sql.Rows) (domain.BreakHistoryRecord, error) {
	var (
		r         domain.BreakHistoryRecord
		breakType string
		createdAt string
	)
	if err := rows.Scan(&r.BreakID, &breakType, &r.DurationMin, &r.Completed, &r.Feedback, &createdAt); err != nil {
		return domain.BreakHistoryRecord{}, fmt.Errorf("scanning break record: %w", err)
	}

	r.Type = domain.BreakType(breakType)
	var err error
	r.Timestamp, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.BreakHistoryRecord{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return r, nil
}
