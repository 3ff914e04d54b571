// Package index implements the Skill Index: a pure append-only log per
// principal of every skill name ever added. The log is intentionally never
// pruned on revocation, so entries may be stale and re-added names appear
// twice; "active" is a property of the Skill Store, not of this log.
package index

import (
	"context"
	"sync"

	id "attest/pkg/domain"
)

// InMemory backs the index with a slice per principal.
type InMemory struct {
	mu      sync.RWMutex
	entries map[id.Principal][]string
}

func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[id.Principal][]string)}
}

// Append records a skill name unconditionally, duplicates included.
func (s *InMemory) Append(_ context.Context, owner id.Principal, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[owner] = append(s.entries[owner], name)
	return nil
}

// List returns the raw historical log in append order. An owner with no
// entries gets an empty list, not an error.
func (s *InMemory) List(_ context.Context, owner id.Principal) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.entries[owner]...), nil
}
