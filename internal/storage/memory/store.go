// Package memory provides the in-memory deal store used for live sessions.
package memory

import (
	"context"
	"sync"

	"github.com/NoahPeres/ti4engine/internal/game/audit"
	"github.com/NoahPeres/ti4engine/internal/game/trade"
)

// Store keeps deal snapshots and audit events in memory, in insertion order.
// Put replaces the stored snapshot for an existing ID without reordering it.
type Store struct {
	mu     sync.RWMutex
	deals  map[string]trade.Transaction
	order  []string
	events []audit.Event
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{deals: map[string]trade.Transaction{}}
}

// Put stores or replaces the snapshot for the deal's ID.
func (s *Store) Put(ctx context.Context, tx trade.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.deals[tx.ID]; !exists {
		s.order = append(s.order, tx.ID)
	}
	s.deals[tx.ID] = tx
	return nil
}

// Get returns the stored snapshot for the ID.
func (s *Store) Get(ctx context.Context, id string) (trade.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.deals[id]
	if !ok {
		return trade.Transaction{}, trade.ErrNotFound
	}
	return tx, nil
}

// List returns every stored snapshot in creation order.
func (s *Store) List(ctx context.Context) ([]trade.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]trade.Transaction, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.deals[id])
	}
	return out, nil
}

// AppendAuditEvent records an audit event.
func (s *Store) AppendAuditEvent(ctx context.Context, evt audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
	return nil
}

// AuditEvents returns a copy of the recorded audit events.
func (s *Store) AuditEvents() []audit.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event(nil), s.events...)
}
