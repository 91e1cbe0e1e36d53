package storage

import "fmt"

// Schema statements are idempotent; they run on every startup.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		api_key TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS hives (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		name TEXT NOT NULL,
		latitude REAL,
		longitude REAL,
		frame_type TEXT,
		installed_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hives_user_id ON hives(user_id)`,
	`CREATE TABLE IF NOT EXISTS inspections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hive_id INTEGER NOT NULL REFERENCES hives(id),
		scheduled_for TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inspections_hive_id ON inspections(hive_id)`,
}

// runMigrations creates the schema if it does not exist yet.
func (s *SQLite) runMigrations() error {
	for _, stmt := range migrationStatements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("migration statement failed: %w", err)
		}
	}
	return nil
}
