package session

import (
	"context"
	"sync"

	"github.com/tejuiceB/finwiseai/internal/model"
)

// MemoryStore implements Store with in-memory state. It is the default for
// library use and tests; the CLI uses the SQLite store so state survives
// between invocations.
type MemoryStore struct {
	mu           sync.RWMutex
	transactions []model.Transaction
	notes        []string
	lastSource   string
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ReplaceTransactions swaps in a new transaction set, discarding the old one.
func (m *MemoryStore) ReplaceTransactions(_ context.Context, transactions []model.Transaction, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = make([]model.Transaction, len(transactions))
	copy(m.transactions, transactions)
	m.lastSource = source
	return nil
}

// Transactions returns a copy of the held transaction set.
func (m *MemoryStore) Transactions(_ context.Context) ([]model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.transactions == nil {
		return nil, nil
	}
	out := make([]model.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out, nil
}

// LastSource returns the descriptor of the last loaded source.
func (m *MemoryStore) LastSource(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastSource, nil
}

// AppendNote appends a note.
func (m *MemoryStore) AppendNote(_ context.Context, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append(m.notes, note)
	return nil
}

// Notes returns a copy of all notes in insertion order.
func (m *MemoryStore) Notes(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.notes == nil {
		return nil, nil
	}
	out := make([]string, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

// Clear resets all session state.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = nil
	m.notes = nil
	m.lastSource = ""
	return nil
}
