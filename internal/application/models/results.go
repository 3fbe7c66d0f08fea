package models

import "recruit/pkg/domain"

// ExistingApplication summarizes an application found by the duplicate check.
type ExistingApplication struct {
	ID     domain.ApplicationID
	Status Status
}

// Eligibility answers whether an applicant may still apply to a specialty.
type Eligibility struct {
	CanApply bool
	Existing *ExistingApplication
}

// SubmitResult is returned by a successful submission.
type SubmitResult struct {
	Application      *Application
	SlotsWritten     int
	InterestsWritten int
}

// Page is one page of applications with the size of the whole visible set.
type Page struct {
	Items    []*Application
	Total    int
	Page     int
	PageSize int
}
