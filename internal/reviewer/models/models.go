// Package models holds reviewer-to-specialty assignments.
package models

import "recruit/pkg/domain"

// Reviewer is a staff member who may evaluate applications. Directors carry
// the specialty they are assigned to; institution-wide roles do not.
type Reviewer struct {
	ID        domain.UserID
	Role      domain.Role
	Specialty *domain.SpecialtyKey
	Active    bool
}

// CanEvaluate reports whether the reviewer is an active director of key.
func (r *Reviewer) CanEvaluate(key domain.SpecialtyKey) bool {
	return r != nil && r.Active && r.Role == domain.RoleDirector &&
		r.Specialty != nil && *r.Specialty == key
}
