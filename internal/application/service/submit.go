package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recruit/internal/application/models"
	"recruit/internal/audit"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/platform/sentinel"
	"recruit/pkg/requestcontext"
)

// Submit creates a PENDING application with its schedule slots and course
// interests as one unit. Every precondition is checked before the
// transaction opens; the duplicate check there is advisory and the store's
// unique key settles concurrent submissions.
func (s *Service) Submit(ctx context.Context, p domain.Principal, req *models.SubmitRequest) (*models.SubmitResult, error) {
	start := time.Now()
	result, err := s.submit(ctx, p, req)
	if s.metrics != nil {
		s.metrics.ObserveSubmit(start)
		if err != nil {
			s.metrics.IncrementRejected(string(dErrors.CodeOf(err)))
		}
	}
	return result, err
}

func (s *Service) submit(ctx context.Context, p domain.Principal, req *models.SubmitRequest) (*models.SubmitResult, error) {
	if p.Role != domain.RoleApplicant || p.UserID.IsNil() {
		return nil, dErrors.New(dErrors.CodeForbidden, "only applicants can submit applications")
	}
	req.ApplicantID = p.UserID
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	interests, err := s.checkCatalog(ctx, req.Specialty, req.CourseIDs)
	if err != nil {
		return nil, err
	}

	existing, err := s.findExisting(ctx, req.ApplicantID, req.Specialty)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, dErrors.New(dErrors.CodeConflict, "an application for this specialty already exists")
	}

	var result *models.SubmitResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context, store Store) error {
		evaluator, err := s.reviewers.ResolveEvaluator(txCtx, req.Specialty)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve evaluator")
		}

		app := models.NewApplication(req.ApplicantID, req.Specialty, evaluator, requestcontext.Now(txCtx))
		if err := store.Create(txCtx, app); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, "an application for this specialty already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create application")
		}

		slots, err := store.AddScheduleSlots(txCtx, app.ID, req.ScheduleSlots)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save schedule slots")
		}
		written, err := store.AddCourseInterests(txCtx, app.ID, interests)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save course interests")
		}

		if err := s.emit(txCtx, audit.Event{
			ApplicationID: app.ID,
			Action:        audit.ActionSubmitted,
			ActorID:       req.ApplicantID,
			Status:        app.Status.String(),
			Timestamp:     app.SubmittedAt,
		}); err != nil {
			return err
		}

		app.ScheduleSlots = append([]models.ScheduleSlot(nil), req.ScheduleSlots...)
		app.CourseInterests = interests
		result = &models.SubmitResult{Application: app, SlotsWritten: slots, InterestsWritten: written}
		return nil
	})
	if err != nil {
		return nil, asDomainError(err, "failed to submit application")
	}

	app := result.Application
	s.logAudit(ctx, string(audit.ActionSubmitted),
		"application_id", app.ID,
		"user_id", app.ApplicantID,
		"specialty", app.Specialty.String(),
		"slots", result.SlotsWritten,
		"courses", result.InterestsWritten,
	)
	if s.metrics != nil {
		s.metrics.IncrementSubmitted()
		if app.EvaluatorID == nil {
			s.metrics.IncrementWithoutEvaluator()
		}
	}
	return result, nil
}

// CheckEligibility reports whether the applicant may still apply to key.
func (s *Service) CheckEligibility(ctx context.Context, applicant domain.UserID, key domain.SpecialtyKey) (*models.Eligibility, error) {
	if applicant.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "applicant id is required")
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.findExisting(ctx, applicant, key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &models.Eligibility{CanApply: true}, nil
	}
	return &models.Eligibility{
		CanApply: false,
		Existing: &models.ExistingApplication{ID: existing.ID, Status: existing.Status},
	}, nil
}

func (s *Service) findExisting(ctx context.Context, applicant domain.UserID, key domain.SpecialtyKey) (*models.Application, error) {
	app, err := s.store.FindByApplicantAndSpecialty(ctx, applicant, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check existing applications")
	}
	return app, nil
}

// checkCatalog confirms the specialty exists and every course belongs to it,
// returning the interests to persist in request order.
func (s *Service) checkCatalog(ctx context.Context, key domain.SpecialtyKey, ids []domain.CourseID) ([]models.CourseInterest, error) {
	if _, err := s.catalog.FindSpecialty(ctx, key); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown specialty "+key.String())
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load specialty")
	}

	courses, err := s.catalog.FindCourses(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load courses")
	}
	interests := make([]models.CourseInterest, 0, len(ids))
	for _, id := range ids {
		course, ok := courses[id]
		if !ok {
			return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown course %d", id))
		}
		if !course.BelongsTo(key) {
			return nil, dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("course %d is not offered by specialty %s", id, key))
		}
		interests = append(interests, models.CourseInterest{CourseID: id, CourseName: course.Name})
	}
	return interests, nil
}
