package events

import (
	"context"
	"sync"

	id "attest/pkg/domain"
)

// InMemoryStore is an append-only event sink for tests and single-process
// deployments without a broker.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// List returns all captured events in emission order.
func (s *InMemoryStore) List() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event(nil), s.events...)
}

// ListByPrincipal returns captured events concerning one principal.
func (s *InMemoryStore) ListByPrincipal(p id.Principal) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.Principal == p {
			out = append(out, e)
		}
	}
	return out
}
