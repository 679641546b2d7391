// Package web serves a live preview of the flyer page.
//
// Every request rebuilds the catalog from the current export, so edits to
// the CSV show up on reload without running the build command.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/JonMunkholm/TireFlyer/internal/config"
	"github.com/JonMunkholm/TireFlyer/internal/core"
	"github.com/JonMunkholm/TireFlyer/internal/logging"
	"github.com/JonMunkholm/TireFlyer/internal/render"
	appmw "github.com/JonMunkholm/TireFlyer/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the preview HTTP server.
type Server struct {
	cfg    *config.Config
	router *chi.Mux
	server *http.Server
}

// NewServer creates a Server for cfg.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(appmw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(noCache)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handlePage)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
	})
}

// build runs one full rebuild from the configured export.
func (s *Server) build(ctx context.Context) (core.Catalog, error) {
	cat, err := core.BuildFile(s.cfg.Flyer.InputPath, s.cfg.Options())
	if err != nil {
		return core.Catalog{}, err
	}

	logging.FromContext(ctx).Debug("catalog rebuilt",
		"records", len(cat.Records),
		"skipped", cat.Skipped.Total(),
	)
	return cat, nil
}

// handlePage renders the flyer exactly as the build command would.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	cat, err := s.build(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	data := render.NewPageData(s.cfg.Flyer.Title, cat, s.cfg.Flyer.QuoteEndpoint)

	// Render fully before writing so a failure never sends half a page.
	var buf bytes.Buffer
	if err := render.Page(data).Render(r.Context(), &buf); err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleRecords returns the catalog as JSON.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	cat, err := s.build(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cat)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// Start begins listening for HTTP requests on the configured address.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:        s.cfg.Preview.Addr(),
		Handler:     s.router,
		ReadTimeout: s.cfg.Preview.ReadTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// noCache keeps browsers from showing a stale preview.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
