// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the lookup pipeline and search history over
// HTTP for local dashboards and scripting.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/internal/pipeline"
	"github.com/moleculab/chemscout/pkg/types"
)

// Runner performs one chemical lookup.
type Runner interface {
	Run(ctx context.Context, query string, limit int) pipeline.Outcome
}

// HistoryStore reads and clears the search history.
type HistoryStore interface {
	Load(ctx context.Context, limit int) ([]types.HistoryEntry, error)
	Clear(ctx context.Context) error
}

// Server is the chemscout HTTP API.
type Server struct {
	cfg      types.ServerConfig
	runner   Runner
	history  HistoryStore
	maxLimit int
	logger   zerolog.Logger
	http     *http.Server
}

// New builds a server. history may be nil, in which case the history
// endpoints return 503.
func New(cfg types.ServerConfig, runner Runner, history HistoryStore, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		runner:   runner,
		history:  history,
		maxLimit: 100,
		logger:   logger,
	}
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	if s.cfg.WriteTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.WriteTimeout))
	}

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/search/export", s.handleExport)
		r.Get("/history", s.handleHistoryList)
		r.Delete("/history", s.handleHistoryClear)
	})
	return r
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then drains connections within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info().Msg("shutting down http server")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
