// Package session holds the state a conversational or CLI front-end carries
// between analytical calls: the most recently loaded transaction set and
// free-form user notes.
//
// The design assumes one logical session per store. Stores serialize their
// own access, but concurrent logical sessions sharing a store are out of
// scope.
package session

import (
	"context"
	"strings"

	"github.com/tejuiceB/finwiseai/internal/common"
	"github.com/tejuiceB/finwiseai/internal/model"
)

// Store persists session state. A session holds at most one transaction set;
// ReplaceTransactions always replaces the previous set wholesale.
type Store interface {
	ReplaceTransactions(ctx context.Context, transactions []model.Transaction, source string) error
	Transactions(ctx context.Context) ([]model.Transaction, error)
	LastSource(ctx context.Context) (string, error)
	AppendNote(ctx context.Context, note string) error
	Notes(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// Status reports what the session currently holds.
type Status struct {
	LastSource       string `json:"last_source,omitempty"`
	TransactionCount int    `json:"count"`
	NoteCount        int    `json:"notes_count"`
	HasTransactions  bool   `json:"has_transactions"`
	HasNotes         bool   `json:"has_notes"`
}

// Session wraps a Store with the session-memory contract.
type Session struct {
	store Store
}

// New creates a session over the given store.
func New(store Store) *Session {
	return &Session{store: store}
}

// Load replaces the session's transaction set. The source string describes
// where the transactions came from (a path or "raw text") and is diagnostic
// only. Loading an empty set is an error; use Clear to empty the session.
func (s *Session) Load(ctx context.Context, transactions []model.Transaction, source string) error {
	if len(transactions) == 0 {
		return common.ErrNoTransactions
	}
	return s.store.ReplaceTransactions(ctx, transactions, source)
}

// Transactions returns the held transaction set, or common.ErrNoSession when
// nothing is loaded.
func (s *Session) Transactions(ctx context.Context) ([]model.Transaction, error) {
	txns, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, common.ErrNoSession
	}
	return txns, nil
}

// Remember appends a free-form note, trimming surrounding whitespace.
// Returns common.ErrInvalidNote when the note is empty or whitespace-only.
func (s *Session) Remember(ctx context.Context, note string) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return common.ErrInvalidNote
	}
	return s.store.AppendNote(ctx, note)
}

// RecallAll returns all notes in insertion order. The returned slice is the
// caller's to keep; mutating it does not affect session state.
func (s *Session) RecallAll(ctx context.Context) ([]string, error) {
	return s.store.Notes(ctx)
}

// Status reports whether transactions and notes are held, their counts, and
// the last source descriptor.
func (s *Session) Status(ctx context.Context) (Status, error) {
	txns, err := s.store.Transactions(ctx)
	if err != nil {
		return Status{}, err
	}
	notes, err := s.store.Notes(ctx)
	if err != nil {
		return Status{}, err
	}
	source, err := s.store.LastSource(ctx)
	if err != nil {
		return Status{}, err
	}
	return Status{
		HasTransactions:  len(txns) > 0,
		TransactionCount: len(txns),
		LastSource:       source,
		HasNotes:         len(notes) > 0,
		NoteCount:        len(notes),
	}, nil
}

// Clear resets the transaction set, source descriptor, and notes. It never
// fails on an already-empty session.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
