package store

import (
	"recruit/internal/catalog/models"
	"recruit/pkg/domain"
)

// SeedDevelopmentCatalog fills an in-memory catalog with a small fixed set of
// specialties and courses for local runs.
func SeedDevelopmentCatalog(s *InMemory) {
	science := domain.SpecialtyKey{Faculty: "S", Specialty: "S1"}
	maths := domain.SpecialtyKey{Faculty: "M", Specialty: "M1"}

	s.AddSpecialty(models.Specialty{Key: science, Name: "Physics"})
	s.AddSpecialty(models.Specialty{Key: maths, Name: "Mathematics"})

	s.AddCourse(models.Course{ID: 10, Specialty: science, Name: "Mechanics"})
	s.AddCourse(models.Course{ID: 11, Specialty: science, Name: "Electromagnetism"})
	s.AddCourse(models.Course{ID: 20, Specialty: maths, Name: "Linear Algebra"})
	s.AddCourse(models.Course{ID: 21, Specialty: maths, Name: "Calculus"})
}
