package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recruit/internal/application/handler"
	"recruit/internal/platform/config"
	"recruit/internal/platform/metrics"
	"recruit/internal/platform/middleware"
	"recruit/pkg/platform/httputil"
)

const (
	requestTimeout = 30 * time.Second
	healthTimeout  = 2 * time.Second
)

type healthCheck struct {
	name  string
	check func(ctx context.Context) error
}

type routerDeps struct {
	cfg       config.Server
	logger    *slog.Logger
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
	validator middleware.JWTValidator
	handler   *handler.Handler
	checks    []healthCheck
}

// newRouter mounts the operational endpoints unauthenticated and the
// application API behind bearer authentication.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.logger))
	if len(d.cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}
	r.Use(middleware.LatencyMiddleware(d.metrics))

	r.Get("/healthz", healthHandler(d.checks))
	r.Handle("/metrics", promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(d.validator, d.logger))
		d.handler.Register(r)
	})
	return r
}

func healthHandler(checks []healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		failed := map[string]string{}
		for _, c := range checks {
			if err := c.check(ctx); err != nil {
				failed[c.name] = err.Error()
			}
		}
		if len(failed) > 0 {
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
				"checks": failed,
			})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
