package service

import (
	"context"
	"errors"

	"recruit/internal/application/models"
	"recruit/internal/audit"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/platform/sentinel"
	"recruit/pkg/requestcontext"
)

// UpdateStatus records a reviewer decision and its comment. The change and
// its audit event commit together. Unknown ids always yield not_found.
func (s *Service) UpdateStatus(ctx context.Context, p domain.Principal, id domain.ApplicationID, status string, comment *string) (*models.Application, error) {
	to, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *models.Application
	var from models.Status
	err = s.tx.RunInTx(ctx, func(txCtx context.Context, store Store) error {
		app, err := store.FindByID(txCtx, id)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "application not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
		}
		if err := s.authorizeReview(txCtx, p, app); err != nil {
			return err
		}
		if !s.policy.Allows(app.Status, to) {
			return dErrors.New(dErrors.CodeInvalidState,
				"cannot change status from "+app.Status.String()+" to "+to.String())
		}

		from = app.Status
		app.ApplyStatus(to, comment, requestcontext.Now(txCtx))
		if err := store.UpdateStatus(txCtx, app); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "application not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update application status")
		}

		if err := s.emit(txCtx, audit.Event{
			ApplicationID: app.ID,
			Action:        audit.ActionStatusChanged,
			ActorID:       p.UserID,
			Status:        to.String(),
			Comment:       comment,
			Timestamp:     *app.EvaluatedAt,
		}); err != nil {
			return err
		}
		updated = app
		return nil
	})
	if err != nil {
		return nil, asDomainError(err, "failed to update application status")
	}

	if err := s.enrich(ctx, []*models.Application{updated}); err != nil {
		return nil, err
	}

	s.logAudit(ctx, string(audit.ActionStatusChanged),
		"application_id", updated.ID,
		"user_id", p.UserID,
		"from_status", from,
		"to_status", to,
	)
	if s.metrics != nil {
		s.metrics.IncrementStatusChange(to.String())
	}
	return updated, nil
}

// authorizeReview allows administrators and deans everywhere and directors
// only within the specialty assigned to them.
func (s *Service) authorizeReview(ctx context.Context, p domain.Principal, app *models.Application) error {
	switch p.Role.Scope() {
	case domain.ScopeAll:
		return nil
	case domain.ScopeSpecialty:
		assigned, err := s.directorSpecialty(ctx, p)
		if err != nil {
			return err
		}
		if assigned != nil && *assigned == app.Specialty {
			return nil
		}
	}
	return dErrors.New(dErrors.CodeForbidden, "caller may not review this application")
}
