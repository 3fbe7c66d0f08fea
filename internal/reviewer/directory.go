// Package reviewer answers who reviews which specialty.
package reviewer

import (
	"context"
	"errors"
	"fmt"

	"recruit/internal/reviewer/models"
	"recruit/pkg/domain"
	"recruit/pkg/platform/sentinel"
)

// Store is the persistence contract for reviewer assignments.
type Store interface {
	FindByID(ctx context.Context, id domain.UserID) (*models.Reviewer, error)
	FirstActiveDirector(ctx context.Context, key domain.SpecialtyKey) (*models.Reviewer, error)
}

// Directory resolves evaluators and reviewer scopes.
type Directory struct {
	store Store
}

func NewDirectory(store Store) *Directory {
	return &Directory{store: store}
}

// ResolveEvaluator returns the id of the active director assigned to key,
// choosing the lowest id when several qualify. A specialty without a
// director yields nil and no error.
func (d *Directory) ResolveEvaluator(ctx context.Context, key domain.SpecialtyKey) (*domain.UserID, error) {
	r, err := d.store.FirstActiveDirector(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve evaluator: %w", err)
	}
	id := r.ID
	return &id, nil
}

// AssignedSpecialty returns the specialty an active director is assigned
// to. Unknown, inactive or non-director reviewers have no assignment.
func (d *Directory) AssignedSpecialty(ctx context.Context, reviewerID domain.UserID) (*domain.SpecialtyKey, error) {
	r, err := d.store.FindByID(ctx, reviewerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup reviewer assignment: %w", err)
	}
	if !r.Active || r.Role != domain.RoleDirector || r.Specialty == nil {
		return nil, nil
	}
	key := *r.Specialty
	return &key, nil
}
