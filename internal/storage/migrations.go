package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// expectedSchemaVersion is the latest schema version the application expects.
const expectedSchemaVersion = 2

// migration represents a database schema migration.
type migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []migration{
	{
		Version:     1,
		Description: "Initial session schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS session_transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					date TEXT NOT NULL DEFAULT '',
					description TEXT NOT NULL DEFAULT '',
					amount REAL NOT NULL DEFAULT 0,
					category TEXT NOT NULL DEFAULT '',
					txn_type TEXT NOT NULL DEFAULT ''
				)`,

				`CREATE TABLE IF NOT EXISTS session_notes (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					note TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS session_meta (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Track note creation time",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`ALTER TABLE session_notes
				ADD COLUMN created_at DATETIME DEFAULT CURRENT_TIMESTAMP`)
			return err
		},
	},
}

// migrate brings the database to the expected schema version, applying any
// pending migrations in order.
func (s *SQLiteStore) migrate(ctx context.Context) error {
	var current int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if current > expectedSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than expected %d", current, expectedSchemaVersion)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Debug("Applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
