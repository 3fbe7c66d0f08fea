// Package application assembles the application workflow (stores, service
// and HTTP handler) for one process.
package application

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"recruit/internal/application/handler"
	"recruit/internal/application/metrics"
	"recruit/internal/application/models"
	"recruit/internal/application/service"
	"recruit/internal/application/store"
	"recruit/internal/audit"
	auditStore "recruit/internal/audit/store"
	catalogStore "recruit/internal/catalog/store"
	"recruit/internal/reviewer"
	reviewerStore "recruit/internal/reviewer/store"
)

// Config carries the workflow settings resolved from process configuration.
type Config struct {
	Policy               models.TransitionPolicy
	TxTimeout            time.Duration
	ExposeInternalErrors bool
}

// Module is the wired workflow.
type Module struct {
	Service *service.Service
	Handler *handler.Handler
	Audit   *audit.Publisher
}

// NewPostgres wires the workflow to PostgreSQL. catalog is usually the
// PostgreSQL catalog, optionally behind the Redis cache.
func NewPostgres(db *sql.DB, catalog service.Catalog, cfg Config, logger *slog.Logger, reg prometheus.Registerer) *Module {
	apps := store.NewPostgres(db)
	return build(
		apps,
		store.NewPostgresTx(db, apps, cfg.TxTimeout),
		reviewer.NewDirectory(reviewerStore.NewPostgres(db)),
		catalog,
		audit.NewPublisher(auditStore.NewPostgres(db)),
		cfg, logger, reg,
	)
}

// NewInMemory wires the workflow to process memory, seeded with the
// development catalog and reviewers. Nothing survives a restart.
func NewInMemory(cfg Config, logger *slog.Logger, reg prometheus.Registerer) *Module {
	catalog := catalogStore.NewInMemory()
	catalogStore.SeedDevelopmentCatalog(catalog)
	reviewers := reviewerStore.NewInMemory()
	reviewerStore.SeedDevelopmentReviewers(reviewers)

	events := auditStore.NewInMemory()
	apps := store.NewInMemory()
	return build(
		apps,
		store.NewInMemoryTx(apps, events),
		reviewer.NewDirectory(reviewers),
		catalog,
		audit.NewPublisher(events),
		cfg, logger, reg,
	)
}

func build(
	apps service.Store,
	tx service.StoreTx,
	reviewers service.Reviewers,
	catalog service.Catalog,
	publisher *audit.Publisher,
	cfg Config,
	logger *slog.Logger,
	reg prometheus.Registerer,
) *Module {
	opts := []service.Option{
		service.WithLogger(logger),
		service.WithAuditPublisher(publisher),
		service.WithTransitionPolicy(cfg.Policy),
	}
	if reg != nil {
		opts = append(opts, service.WithMetrics(metrics.New(reg)))
	}
	svc := service.New(apps, tx, reviewers, catalog, opts...)
	return &Module{
		Service: svc,
		Handler: handler.New(svc, logger, handler.WithInternalErrors(cfg.ExposeInternalErrors)),
		Audit:   publisher,
	}
}
