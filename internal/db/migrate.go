package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the hours schema. Every statement is idempotent, so it is
// safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS hour_entries (
		date       TEXT PRIMARY KEY,
		hours      REAL NOT NULL CHECK(hours >= 0),
		position   INTEGER NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_hour_entries_position ON hour_entries(position)`,

	`CREATE INDEX IF NOT EXISTS idx_hour_entries_month ON hour_entries(substr(date, 1, 7))`,
}
