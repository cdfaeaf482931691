package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the directory service routes: the employee API,
// the database structure check, the health and metrics endpoints, and
// the static client page.
func NewRouter(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	pinger DBPinger,
	mtr *metrics.Metrics,
	reg *prometheus.Registry,
	staticDir string,
) chi.Router {
	handler := NewEmployeeHandler(repo, log)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(RequestLogger(log, mtr))

	router.Route("/api", func(r chi.Router) {
		r.Get("/employees", handler.List)
		r.Post("/employees", handler.Create)
		r.Delete("/employees/{id}", handler.Delete)
		r.Get("/check-db", handler.CheckDatabase)
		r.NotFound(handler.NotFound)
	})

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	router.Method(http.MethodGet, "/healthz", NewHealthChecker(pinger, log))
	router.Handle("/*", http.FileServer(http.Dir(staticDir)))

	return router
}

// Start runs the directory service HTTP server until ctx is canceled,
// then shuts it down gracefully with a bounded timeout.
func Start(
	ctx context.Context,
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	pinger DBPinger,
	mtr *metrics.Metrics,
	reg *prometheus.Registry,
	port, staticDir string,
) error {
	var (
		headerTimeout   = 5 * time.Second
		shutdownTimeout = 10 * time.Second
	)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           NewRouter(log, repo, pinger, mtr, reg, staticDir),
		ReadHeaderTimeout: headerTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Directory service is listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve HTTP: %w", err)
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutting down directory service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
