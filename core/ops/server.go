// Package ops serves the operator-facing HTTP surface: liveness probe and
// Prometheus metrics. It is optional and stays off unless configured.
package ops

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/selfil/selfilbot/core/logger"
	"log/slog"
)

// Config declares the ops listener settings.
type Config struct {
	Enabled bool   `yaml:"enabled" envconfig:"OPS_ENABLED"`
	Listen  string `yaml:"listen" envconfig:"OPS_LISTEN"`
}

// Normalize fills listener defaults.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = ":9090"
	}
}

// Server hosts the /healthz and /metrics endpoints.
type Server struct {
	srv *http.Server
}

// New builds an ops server for the given listen address.
func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	listen := cfg.Listen
	if listen == "" {
		listen = ":9090"
	}
	return &Server{srv: &http.Server{
		Addr:              listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	go func() {
		logger.L.With("component", "ops").Info("ops listening",
			slog.String("event", "listen"),
			slog.String("listen", s.srv.Addr),
		)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.With("component", "ops").Error("ops server stopped",
				slog.String("event", "serve"),
				slog.String("err", err.Error()),
			)
		}
	}()
}

// Stop shuts the listener down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
