package store

import (
	"context"
	"sync"

	"recruit/internal/audit"
	"recruit/pkg/domain"
)

// InMemory keeps audit events in insertion order.
type InMemory struct {
	mu     sync.RWMutex
	events []audit.Event
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemory) ListByApplication(_ context.Context, id domain.ApplicationID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []audit.Event
	for _, e := range s.events {
		if e.ApplicationID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

// Truncate drops events appended after the first n. The in-memory
// application store uses it to undo a rolled-back unit of work.
func (s *InMemory) Truncate(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < len(s.events) {
		s.events = s.events[:n]
	}
}

// Len returns the number of stored events.
func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
