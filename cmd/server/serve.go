package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"recruit/internal/application"
	"recruit/internal/application/models"
	"recruit/internal/application/service"
	"recruit/internal/catalog/cache"
	catalogStore "recruit/internal/catalog/store"
	jwttoken "recruit/internal/jwt_token"
	"recruit/internal/platform/database"
	"recruit/internal/platform/httpserver"
	"recruit/internal/platform/logger"
	"recruit/internal/platform/metrics"
	platformredis "recruit/internal/platform/redis"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.inMemory, "in-memory", false, "use seeded in-memory stores instead of PostgreSQL")
	return cmd
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	policy, err := models.ParseTransitionPolicy(cfg.Application.TransitionPolicy)
	if err != nil {
		return err
	}
	appCfg := application.Config{
		Policy:               policy,
		TxTimeout:            cfg.Application.TxTimeout,
		ExposeInternalErrors: cfg.ExposeInternalErrors,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.New(reg)

	var (
		module *application.Module
		checks []healthCheck
	)
	if opts.inMemory {
		log.Warn("running with in-memory stores; data is lost on restart")
		module = application.NewInMemory(appCfg, log, reg)
	} else {
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		checks = append(checks, healthCheck{name: "postgres", check: db.PingContext})

		pgCatalog := catalogStore.NewPostgres(db)
		var catalog service.Catalog = pgCatalog
		rc, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		if rc != nil {
			defer rc.Close()
			catalog = cache.New(pgCatalog, rc.Client, cfg.Catalog.CacheTTL, cache.WithLogger(log))
			checks = append(checks, healthCheck{name: "redis", check: rc.Health})
		}
		module = application.NewPostgres(db, catalog, appCfg, log, reg)
	}

	tokens := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	router := newRouter(routerDeps{
		cfg:       cfg,
		logger:    log,
		metrics:   httpMetrics,
		gatherer:  reg,
		validator: jwttoken.NewJWTServiceAdapter(tokens),
		handler:   module.Handler,
		checks:    checks,
	})
	srv := httpserver.New(cfg.Addr, cfg.HTTP, router, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting recruit",
			"addr", cfg.Addr,
			"in_memory", opts.inMemory,
			"transition_policy", string(policy),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
