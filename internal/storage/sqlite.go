// Package storage implements the session.Store interface on SQLite so that
// separate CLI invocations share one session. The core analytics never touch
// this package; durability between processes is strictly an adapter concern.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tejuiceB/finwiseai/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements session.Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the session database at dbPath
// and migrates it to the current schema. Use ":memory:" for an ephemeral
// store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath must not be empty")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ReplaceTransactions swaps the stored transaction set for a new one and
// records where it came from. Replacement is atomic.
func (s *SQLiteStore) ReplaceTransactions(ctx context.Context, transactions []model.Transaction, source string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM session_transactions`); err != nil {
		return fmt.Errorf("failed to clear previous transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO session_transactions (date, description, amount, category, txn_type)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range transactions {
		if _, err = stmt.ExecContext(ctx, t.Date, t.Description, t.Amount, t.Category, t.Type); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO session_meta (key, value) VALUES ('last_source', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, source); err != nil {
		return fmt.Errorf("failed to record source: %w", err)
	}

	return tx.Commit()
}

// Transactions returns the stored transaction set in insertion order, or nil
// when the session is empty.
func (s *SQLiteStore) Transactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, description, amount, category, txn_type
		FROM session_transactions ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.Date, &t.Description, &t.Amount, &t.Category, &t.Type); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}

// LastSource returns the descriptor recorded with the last load, or empty
// when nothing has been loaded.
func (s *SQLiteStore) LastSource(ctx context.Context) (string, error) {
	var source string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session_meta WHERE key = 'last_source'`).Scan(&source)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query source: %w", err)
	}
	return source, nil
}

// AppendNote appends a note to the session.
func (s *SQLiteStore) AppendNote(ctx context.Context, note string) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO session_notes (note) VALUES (?)`, note); err != nil {
		return fmt.Errorf("failed to append note: %w", err)
	}
	return nil
}

// Notes returns all notes in insertion order.
func (s *SQLiteStore) Notes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT note FROM session_notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []string
	for rows.Next() {
		var note string
		if err := rows.Scan(&note); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	return notes, nil
}

// Clear removes the transaction set, source descriptor, and all notes.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, query := range []string{
		`DELETE FROM session_transactions`,
		`DELETE FROM session_notes`,
		`DELETE FROM session_meta`,
	} {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}
	return tx.Commit()
}
