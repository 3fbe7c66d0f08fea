package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"recruit/internal/application/models"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/platform/sentinel"
)

// List returns the page of applications the reviewer may see, newest first.
// Administrators and deans see everything; a director sees only the
// specialty the reviewer directory assigns to them; every other caller sees
// nothing. The scope is part of the store query so totals match the
// visible set.
func (s *Service) List(ctx context.Context, p domain.Principal, status *models.Status, page models.PageRequest) (*models.Page, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveList(start)
		}
	}()

	if err := page.Normalize(); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown status: "+status.String())
	}

	filter, visible, err := s.reviewerFilter(ctx, p)
	if err != nil {
		return nil, err
	}
	if !visible {
		return emptyPage(page), nil
	}
	filter.Status = status
	return s.listPage(ctx, filter, page)
}

// ListMine returns the caller's own applications.
func (s *Service) ListMine(ctx context.Context, p domain.Principal, page models.PageRequest) (*models.Page, error) {
	if err := page.Normalize(); err != nil {
		return nil, err
	}
	if !p.IsAuthenticated() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	applicant := p.UserID
	return s.listPage(ctx, models.ListFilter{ApplicantID: &applicant}, page)
}

// Get returns one application with its sub-records if the caller may see it.
func (s *Service) Get(ctx context.Context, p domain.Principal, id domain.ApplicationID) (*models.Application, error) {
	app, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	if err := s.authorizeRead(ctx, p, app); err != nil {
		return nil, err
	}
	if err := s.enrich(ctx, []*models.Application{app}); err != nil {
		return nil, err
	}
	return app, nil
}

// reviewerFilter turns the caller into a store filter. visible is false when
// the caller may see no application at all.
func (s *Service) reviewerFilter(ctx context.Context, p domain.Principal) (models.ListFilter, bool, error) {
	switch p.Role.Scope() {
	case domain.ScopeAll:
		return models.ListFilter{}, true, nil
	case domain.ScopeSpecialty:
		key, err := s.directorSpecialty(ctx, p)
		if err != nil {
			return models.ListFilter{}, false, err
		}
		if key == nil {
			s.logger.WarnContext(ctx, "director has no active specialty assignment",
				"user_id", p.UserID,
			)
			return models.ListFilter{}, false, nil
		}
		return models.ListFilter{Specialty: key}, true, nil
	default:
		return models.ListFilter{}, false, nil
	}
}

func (s *Service) directorSpecialty(ctx context.Context, p domain.Principal) (*domain.SpecialtyKey, error) {
	if p.Role != domain.RoleDirector {
		return nil, nil
	}
	key, err := s.reviewers.AssignedSpecialty(ctx, p.UserID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load reviewer assignment")
	}
	return key, nil
}

func (s *Service) authorizeRead(ctx context.Context, p domain.Principal, app *models.Application) error {
	assigned, err := s.directorSpecialty(ctx, p)
	if err != nil {
		return err
	}
	if !app.VisibleTo(p, assigned) {
		return dErrors.New(dErrors.CodeForbidden, "application is not visible to the caller")
	}
	return nil
}

func (s *Service) listPage(ctx context.Context, filter models.ListFilter, page models.PageRequest) (*models.Page, error) {
	filter.Limit = page.PageSize
	filter.Offset = page.Offset()

	items, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list applications")
	}
	if err := s.enrich(ctx, items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Application{}
	}
	return &models.Page{Items: items, Total: total, Page: page.Page, PageSize: page.PageSize}, nil
}

// enrich attaches schedule slots and course interests, fetching both kinds
// concurrently for the whole page.
func (s *Service) enrich(ctx context.Context, apps []*models.Application) error {
	if len(apps) == 0 {
		return nil
	}
	ids := make([]domain.ApplicationID, len(apps))
	for i, a := range apps {
		ids[i] = a.ID
	}

	var (
		slots     map[domain.ApplicationID][]models.ScheduleSlot
		interests map[domain.ApplicationID][]models.CourseInterest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slots, err = s.store.ScheduleSlotsFor(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		interests, err = s.store.CourseInterestsFor(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application details")
	}

	for _, a := range apps {
		a.ScheduleSlots = slots[a.ID]
		a.CourseInterests = interests[a.ID]
	}
	return nil
}

func emptyPage(page models.PageRequest) *models.Page {
	return &models.Page{Items: []*models.Application{}, Total: 0, Page: page.Page, PageSize: page.PageSize}
}
