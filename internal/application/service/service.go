// Package service implements the application workflow: submission,
// eligibility, role-scoped listing and reviewer status changes.
package service

import (
	"context"
	"errors"
	"log/slog"

	"recruit/internal/application/metrics"
	"recruit/internal/application/models"
	"recruit/internal/audit"
	catalogModels "recruit/internal/catalog/models"
	"recruit/pkg/domain"
	dErrors "recruit/pkg/domain-errors"
)

// Store persists applications and their owned sub-records. Lookups return
// sentinel.ErrNotFound; inserting a second application for the same
// applicant and specialty returns sentinel.ErrConflict.
type Store interface {
	FindByApplicantAndSpecialty(ctx context.Context, applicant domain.UserID, key domain.SpecialtyKey) (*models.Application, error)
	FindByID(ctx context.Context, id domain.ApplicationID) (*models.Application, error)
	Create(ctx context.Context, app *models.Application) error
	AddScheduleSlots(ctx context.Context, id domain.ApplicationID, slots []models.ScheduleSlot) (int, error)
	AddCourseInterests(ctx context.Context, id domain.ApplicationID, interests []models.CourseInterest) (int, error)
	UpdateStatus(ctx context.Context, app *models.Application) error
	List(ctx context.Context, filter models.ListFilter) ([]*models.Application, int, error)
	ScheduleSlotsFor(ctx context.Context, ids []domain.ApplicationID) (map[domain.ApplicationID][]models.ScheduleSlot, error)
	CourseInterestsFor(ctx context.Context, ids []domain.ApplicationID) (map[domain.ApplicationID][]models.CourseInterest, error)
}

// Reviewers resolves evaluators and director assignments.
type Reviewers interface {
	ResolveEvaluator(ctx context.Context, key domain.SpecialtyKey) (*domain.UserID, error)
	AssignedSpecialty(ctx context.Context, reviewerID domain.UserID) (*domain.SpecialtyKey, error)
}

// Catalog validates specialties and courses.
type Catalog interface {
	FindSpecialty(ctx context.Context, key domain.SpecialtyKey) (*catalogModels.Specialty, error)
	FindCourses(ctx context.Context, ids []domain.CourseID) (map[domain.CourseID]*catalogModels.Course, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// Service orchestrates the application workflow.
type Service struct {
	store          Store
	tx             StoreTx
	reviewers      Reviewers
	catalog        Catalog
	policy         models.TransitionPolicy
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTransitionPolicy selects how status changes are checked. The default
// is PolicyPermissive.
func WithTransitionPolicy(p models.TransitionPolicy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// New constructs a Service.
func New(store Store, tx StoreTx, reviewers Reviewers, catalog Catalog, opts ...Option) *Service {
	s := &Service{
		store:     store,
		tx:        tx,
		reviewers: reviewers,
		catalog:   catalog,
		policy:    models.PolicyPermissive,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// asDomainError keeps coded errors intact and wraps anything else as an
// internal failure with msg.
func asDomainError(err error, msg string) error {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}
