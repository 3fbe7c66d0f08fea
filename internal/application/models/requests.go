package models

import (
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/platform/dedupe"
)

const (
	maxScheduleSlots   = 50
	maxCourseInterests = 50

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SubmitRequest is the validated input of a submission.
type SubmitRequest struct {
	ApplicantID   domain.UserID
	Specialty     domain.SpecialtyKey
	ScheduleSlots []ScheduleSlot
	CourseIDs     []domain.CourseID
}

// Normalize collapses repeated course ids, keeping first occurrence order.
func (r *SubmitRequest) Normalize() {
	r.CourseIDs = dedupe.Values(r.CourseIDs)
}

// Validate checks everything that can be checked without storage.
func (r *SubmitRequest) Validate() error {
	if r.ApplicantID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "applicant id is required")
	}
	if err := r.Specialty.Validate(); err != nil {
		return err
	}
	if len(r.ScheduleSlots) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one schedule slot is required")
	}
	if len(r.ScheduleSlots) > maxScheduleSlots {
		return dErrors.New(dErrors.CodeValidation, "too many schedule slots")
	}
	for _, slot := range r.ScheduleSlots {
		if err := slot.Validate(); err != nil {
			return err
		}
	}
	if len(r.CourseIDs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "at least one course is required")
	}
	if len(r.CourseIDs) > maxCourseInterests {
		return dErrors.New(dErrors.CodeValidation, "too many courses")
	}
	for _, id := range r.CourseIDs {
		if id.IsNil() {
			return dErrors.New(dErrors.CodeValidation, "course ids must be positive")
		}
	}
	return nil
}

// PageRequest selects one page of a listing. Zero values take defaults.
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize applies defaults and rejects out-of-range values.
func (p *PageRequest) Normalize() error {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 {
		return dErrors.New(dErrors.CodeValidation, "page must be at least 1")
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return dErrors.New(dErrors.CodeValidation, "page_size must be between 1 and 100")
	}
	return nil
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ListFilter is what a store needs to select a visible page. Nil fields do
// not filter.
type ListFilter struct {
	Specialty   *domain.SpecialtyKey
	ApplicantID *domain.UserID
	Status      *Status
	Limit       int
	Offset      int
}
