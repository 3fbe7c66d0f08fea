package store

import (
	"recruit/internal/reviewer/models"
	"recruit/pkg/domain"
)

// SeedDevelopmentReviewers registers one director per development specialty
// and a dean, matching the development catalog.
func SeedDevelopmentReviewers(s *InMemory) {
	science := domain.SpecialtyKey{Faculty: "S", Specialty: "S1"}
	maths := domain.SpecialtyKey{Faculty: "M", Specialty: "M1"}

	s.Save(models.Reviewer{ID: 500, Role: domain.RoleDirector, Specialty: &science, Active: true})
	s.Save(models.Reviewer{ID: 600, Role: domain.RoleDirector, Specialty: &maths, Active: true})
	s.Save(models.Reviewer{ID: 900, Role: domain.RoleDean, Active: true})
}
