package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/davidbz/energysim/internal/config"
	"github.com/davidbz/energysim/internal/http/middleware"
	"github.com/davidbz/energysim/internal/observability"
	"github.com/davidbz/energysim/internal/observability/metrics"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	metrics     *metrics.Collector
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
	collector *metrics.Collector,
) *Server {
	s := &Server{
		config:      *cfg,
		handler:     handler,
		middlewares: middlewares,
		metrics:     collector,
	}
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
	return s
}

// Routes builds the router with the middleware chain applied.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	if s.middlewares != nil {
		r.Use(s.middlewares)
	}

	r.Get("/import/power", s.handler.HandleImportPower)
	r.Post("/import/power", s.handler.HandleImportPower)
	r.Get("/import/gas", s.handler.HandleImportGas)
	r.Post("/import/gas", s.handler.HandleImportGas)
	r.Get("/search", s.handler.HandleSearch)
	r.Delete("/tariffs/{energy}/{day}", s.handler.HandleInvalidateTariffs)
	r.Get("/health", s.handler.HandleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	observability.FromContext(context.Background()).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
