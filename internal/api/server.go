// Package api exposes the analytics engine over a small read-only HTTP API.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskpulse/taskpulse/internal/logging"
	"github.com/taskpulse/taskpulse/internal/storage"
)

// Server serves analytics views computed from the task store.
type Server struct {
	store *storage.Storage
	mux   *chi.Mux
}

// NewServer builds a server around the given store.
func NewServer(store *storage.Storage) *Server {
	s := &Server{
		store: store,
		mux:   chi.NewRouter(),
	}

	s.mux.Use(middleware.Recoverer)
	s.mux.Use(middleware.Heartbeat("/ping"))

	s.mux.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/metrics", s.handleMetrics)
		r.Get("/heatmap", s.handleHeatmap)
		r.Get("/streaks", s.handleStreaks)
		r.Get("/tags", s.handleTags)
		r.Get("/recurring", s.handleRecurring)
		r.Get("/priorities", s.handlePriorities)
		r.Get("/tasks", s.handleTasks)
	})

	return s
}

// Handler returns the router for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logging.Infof("HTTP server listening on %s", addr)
	return srv.ListenAndServe()
}
