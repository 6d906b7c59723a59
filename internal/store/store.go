// Package store holds the single process-wide spending aggregate.
package store

import (
	"sync"

	"spending-tracker/internal/models"
)

// DefaultBudgetCents is the budget a fresh or reset aggregate starts
// with: $500.00.
const DefaultBudgetCents int64 = 50_000

// Snapshot is an owned copy of the aggregate, safe to serialize without
// holding the store lock.
type Snapshot struct {
	Budget       int64
	Total        int64
	Transactions []models.Transaction
}

// Remaining returns the balance left in the budget. It may be negative
// once spending exceeds the budget.
func (s Snapshot) Remaining() int64 {
	return s.Budget - s.Total
}

// Store guards the aggregate with a readers-writer lock. Reads take the
// shared lock, mutations take the exclusive lock, and every operation
// returns an owned snapshot so callers never encode under the lock.
type Store struct {
	mu           sync.RWMutex
	budget       int64
	total        int64
	transactions []models.Transaction
}

// New creates the aggregate with its default state.
func New() *Store {
	return &Store{
		budget:       DefaultBudgetCents,
		transactions: []models.Transaction{},
	}
}

// Spend adds cents to the running total and appends the transaction
// record, atomically. Negative cents subtract.
func (s *Store) Spend(cents int64, category models.Category) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total += cents
	s.transactions = append(s.transactions, models.Transaction{
		Amount:   models.FormatCents(cents),
		Category: category,
	})
	return s.snapshotLocked()
}

// Snapshot returns a consistent copy of the aggregate.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Reset restores the default state in place.
func (s *Store) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budget = DefaultBudgetCents
	s.total = 0
	s.transactions = []models.Transaction{}
	return s.snapshotLocked()
}

// SetBudget replaces the budget, leaving the total and the transaction
// log untouched.
func (s *Store) SetBudget(cents int64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budget = cents
	return s.snapshotLocked()
}

// snapshotLocked copies the aggregate. Callers must hold at least the
// read lock.
func (s *Store) snapshotLocked() Snapshot {
	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	return Snapshot{
		Budget:       s.budget,
		Total:        s.total,
		Transactions: transactions,
	}
}
