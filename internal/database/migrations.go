package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a versioned schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in version order; each runs at most once.
// SQL is embedded so a deployment is a single binary plus its database file.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_journeys",
		SQL: `
			CREATE TABLE IF NOT EXISTS journeys (
				id TEXT PRIMARY KEY,
				start_time INTEGER NOT NULL,
				end_time INTEGER NOT NULL,
				duration_seconds INTEGER NOT NULL DEFAULT 0,
				distance_meters REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_journeys_start_time ON journeys(start_time);
		`,
	},
	{
		Version: 2,
		Name:    "create_path_samples",
		SQL: `
			CREATE TABLE IF NOT EXISTS path_samples (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				journey_id TEXT NOT NULL REFERENCES journeys(id) ON DELETE CASCADE,
				seq INTEGER NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_path_samples_journey ON path_samples(journey_id, seq);
		`,
	},
	{
		Version: 3,
		Name:    "create_hesitations",
		SQL: `
			CREATE TABLE IF NOT EXISTS hesitations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				journey_id TEXT NOT NULL REFERENCES journeys(id) ON DELETE CASCADE,
				seq INTEGER NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				duration_seconds REAL NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_hesitations_journey ON hesitations(journey_id, seq);
		`,
	},
	{
		Version: 4,
		Name:    "create_checkpoints",
		SQL: `
			CREATE TABLE IF NOT EXISTS checkpoints (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				journey_id TEXT NOT NULL REFERENCES journeys(id) ON DELETE CASCADE,
				seq INTEGER NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				feeling TEXT NOT NULL,
				timestamp INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_checkpoints_journey ON checkpoints(journey_id, seq);
		`,
	},
}

// Migrate applies all pending migrations
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
