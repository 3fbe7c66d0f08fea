package store

import (
	"context"
	"sync"

	"recruit/internal/catalog/models"
	"recruit/pkg/domain"
	"recruit/pkg/platform/sentinel"
)

// InMemory is a catalog backed by maps. Used for tests and local runs
// without PostgreSQL.
type InMemory struct {
	mu          sync.RWMutex
	specialties map[domain.SpecialtyKey]models.Specialty
	courses     map[domain.CourseID]models.Course
}

func NewInMemory() *InMemory {
	return &InMemory{
		specialties: make(map[domain.SpecialtyKey]models.Specialty),
		courses:     make(map[domain.CourseID]models.Course),
	}
}

// AddSpecialty registers or replaces a specialty.
func (s *InMemory) AddSpecialty(sp models.Specialty) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specialties[sp.Key] = sp
}

// AddCourse registers or replaces a course.
func (s *InMemory) AddCourse(c models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses[c.ID] = c
}

func (s *InMemory) FindSpecialty(_ context.Context, key domain.SpecialtyKey) (*models.Specialty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.specialties[key]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &sp, nil
}

// FindCourses returns the subset of ids that exist. Missing ids are simply
// absent from the result.
func (s *InMemory) FindCourses(_ context.Context, ids []domain.CourseID) (map[domain.CourseID]*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.CourseID]*models.Course, len(ids))
	for _, id := range ids {
		if c, ok := s.courses[id]; ok {
			out[id] = &c
		}
	}
	return out, nil
}
