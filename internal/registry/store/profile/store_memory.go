package profile

import (
	"context"
	"sync"

	"attest/internal/registry/models"
	id "attest/pkg/domain"
	"attest/pkg/platform/sentinel"
)

// InMemory keeps profiles keyed by principal. Save overwrites; profiles are
// never deleted, so absence means "never set".
type InMemory struct {
	mu       sync.RWMutex
	profiles map[id.Principal]*models.Profile
}

func NewInMemory() *InMemory {
	return &InMemory{profiles: make(map[id.Principal]*models.Profile)}
}

func (s *InMemory) Save(_ context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.Principal] = p.Clone()
	return nil
}

func (s *InMemory) Find(_ context.Context, principal id.Principal) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[principal]; ok {
		return p.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}
