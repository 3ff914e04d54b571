package skill

import (
	"context"
	"sync"

	"attest/internal/registry/models"
	id "attest/pkg/domain"
	"attest/pkg/platform/sentinel"
)

type key struct {
	owner id.Principal
	name  string
}

// InMemory keeps active skill records under a single mutex. The coarse lock
// gives every mutation the serialized-transaction-log semantics callers rely
// on; readers get cloned snapshots and never block writers out of order.
type InMemory struct {
	mu     sync.RWMutex
	skills map[key]*models.Skill
}

func NewInMemory() *InMemory {
	return &InMemory{skills: make(map[key]*models.Skill)}
}

// Create stores a fresh record if the (owner, name) slot is free.
func (s *InMemory) Create(_ context.Context, skill *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{owner: skill.Owner, name: skill.Name}
	if _, ok := s.skills[k]; ok {
		return sentinel.ErrAlreadyUsed
	}
	s.skills[k] = skill.Clone()
	return nil
}

// Find returns a snapshot copy of the active record.
func (s *InMemory) Find(_ context.Context, owner id.Principal, name string) (*models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if skill, ok := s.skills[key{owner: owner, name: name}]; ok {
		return skill.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// Execute runs validate-then-mutate while holding the lock, so invariant
// checks and state writes happen under one exclusive section. A validation
// error leaves the record untouched.
func (s *InMemory) Execute(
	_ context.Context,
	owner id.Principal,
	name string,
	validate func(*models.Skill) error,
	mutate func(*models.Skill),
) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	skill, ok := s.skills[key{owner: owner, name: name}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(skill); err != nil {
		return nil, err
	}
	mutate(skill)
	return skill.Clone(), nil
}

// Delete removes the record entirely; verifier history is discarded.
func (s *InMemory) Delete(_ context.Context, owner id.Principal, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{owner: owner, name: name}
	if _, ok := s.skills[k]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.skills, k)
	return nil
}
