package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the full schema. Statements are idempotent; ALTER TABLE
// "duplicate column name" errors are tolerated since the whole list re-runs
// on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS recipes (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		cuisine       TEXT NOT NULL DEFAULT '',
		prep_time_min INTEGER,
		cook_time_min INTEGER,
		servings      INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recipes_title ON recipes(title)`,
	`CREATE TABLE IF NOT EXISTS plans (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		date       TEXT NOT NULL,
		meal_type  TEXT NOT NULL
		           CHECK(meal_type IN ('breakfast','lunch','dinner','snack')),
		recipe_id  INTEGER NOT NULL REFERENCES recipes(id),
		servings   INTEGER NOT NULL DEFAULT 1,
		notes      TEXT NOT NULL DEFAULT '',
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_date ON plans(date)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_slot ON plans(date, meal_type)`,
}
