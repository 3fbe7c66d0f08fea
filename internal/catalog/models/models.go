// Package models holds the read-only catalog entities applications refer to.
package models

import "recruit/pkg/domain"

// Specialty is an academic specialty that accepts applications.
type Specialty struct {
	Key  domain.SpecialtyKey `json:"key"`
	Name string              `json:"name"`
}

// Course is a catalog course taught within one specialty.
type Course struct {
	ID        domain.CourseID     `json:"id"`
	Specialty domain.SpecialtyKey `json:"specialty"`
	Name      string              `json:"name"`
}

// BelongsTo reports whether the course is taught in the given specialty.
func (c *Course) BelongsTo(key domain.SpecialtyKey) bool {
	return c != nil && c.Specialty == key
}
