package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS checkins (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		period     TEXT NOT NULL
		           CHECK(period IN ('morning','afternoon','evening')),
		stress     INTEGER NOT NULL,
		energy     INTEGER NOT NULL,
		mood       INTEGER NOT NULL,
		focus      INTEGER,
		payload    TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checkins_user_period ON checkins(user_id, period, created_at)`,

	`CREATE TABLE IF NOT EXISTS break_history (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		break_id     TEXT NOT NULL,
		type         TEXT NOT NULL
		             CHECK(type IN ('breathing','meditation','walk','stretch')),
		duration_min INTEGER NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 1,
		feedback     TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_break_history_created ON break_history(created_at)`,
}
