package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS entries (
		plan_id  TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		id       TEXT NOT NULL,
		name     TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (plan_id, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_position ON plans(position)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_plan_position ON entries(plan_id, position)`,
}
