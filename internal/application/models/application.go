package models

import (
	"time"

	"recruit/pkg/domain"
)

// Application is the aggregate root of a candidate's submission to one
// specialty.
//
// Invariants:
//   - At most one application exists per (ApplicantID, Specialty), whatever
//     its status. The storage unique key enforces this.
//   - ScheduleSlots and CourseInterests are written together with the
//     application and never change afterwards.
//   - SubmittedAt is set once at creation.
type Application struct {
	ID                domain.ApplicationID
	ApplicantID       domain.UserID
	Specialty         domain.SpecialtyKey
	Status            Status
	EvaluatorID       *domain.UserID
	EvaluationComment *string
	SubmittedAt       time.Time
	EvaluatedAt       *time.Time

	ScheduleSlots   []ScheduleSlot
	CourseInterests []CourseInterest
}

// CourseInterest references a catalog course the applicant wants to teach.
type CourseInterest struct {
	CourseID   domain.CourseID
	CourseName string
}

// NewApplication builds a pending application.
func NewApplication(applicant domain.UserID, key domain.SpecialtyKey, evaluator *domain.UserID, now time.Time) *Application {
	return &Application{
		ApplicantID: applicant,
		Specialty:   key,
		Status:      StatusPending,
		EvaluatorID: evaluator,
		SubmittedAt: now,
	}
}

// ApplyStatus records a reviewer decision. The comment is stored verbatim,
// including nil.
func (a *Application) ApplyStatus(to Status, comment *string, now time.Time) {
	a.Status = to
	a.EvaluationComment = comment
	evaluated := now
	a.EvaluatedAt = &evaluated
}

// VisibleTo reports whether the principal may read the application. A
// director's assignment is passed in because the token is not authoritative.
func (a *Application) VisibleTo(p domain.Principal, directorSpecialty *domain.SpecialtyKey) bool {
	if !p.UserID.IsNil() && a.ApplicantID == p.UserID {
		return true
	}
	switch p.Role.Scope() {
	case domain.ScopeAll:
		return true
	case domain.ScopeSpecialty:
		return directorSpecialty != nil && *directorSpecialty == a.Specialty
	}
	return false
}
