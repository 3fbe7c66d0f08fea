package store

import (
	"context"
	"sync"

	"recruit/internal/reviewer/models"
	"recruit/pkg/domain"
	"recruit/pkg/platform/sentinel"
)

// InMemory keeps reviewers in a map keyed by id.
type InMemory struct {
	mu        sync.RWMutex
	reviewers map[domain.UserID]models.Reviewer
}

func NewInMemory() *InMemory {
	return &InMemory{reviewers: make(map[domain.UserID]models.Reviewer)}
}

// Save registers or replaces a reviewer.
func (s *InMemory) Save(r models.Reviewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewers[r.ID] = r
}

func (s *InMemory) FindByID(_ context.Context, id domain.UserID) (*models.Reviewer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviewers[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &r, nil
}

// FirstActiveDirector returns the active director of key with the lowest id.
func (s *InMemory) FirstActiveDirector(_ context.Context, key domain.SpecialtyKey) (*models.Reviewer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *models.Reviewer
	for _, r := range s.reviewers {
		if !r.CanEvaluate(key) {
			continue
		}
		if best == nil || r.ID < best.ID {
			candidate := r
			best = &candidate
		}
	}
	if best == nil {
		return nil, sentinel.ErrNotFound
	}
	return best, nil
}
