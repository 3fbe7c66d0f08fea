// Package httpserver builds the process HTTP server from configuration.
package httpserver

import (
	"log/slog"
	"net/http"

	"recruit/internal/platform/config"
)

// New returns a server for handler listening on addr. Server errors that
// net/http would print to stderr go to logger instead.
func New(addr string, cfg config.HTTPConfig, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
