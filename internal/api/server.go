// Package api exposes a kitchen over HTTP.
//
// The server wraps one loaded kitchen and serves its tree, per-resource
// detail, occupancy grids, and utilization, plus item placement and removal.
// All mutation goes through a single lock, so concurrent requests observe a
// consistent tree.
package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mcelhennyi/boulangerie-milon/pkg/manifest"
	"github.com/mcelhennyi/boulangerie-milon/pkg/observability"
)

// Server serves one kitchen over HTTP. It implements http.Handler.
type Server struct {
	kitchen *manifest.Kitchen
	logger  *log.Logger
	router  chi.Router

	// mu guards the kitchen tree. Placement and removal take the write
	// lock; every read handler takes the read lock.
	mu sync.RWMutex
}

// NewServer creates a server for the given kitchen.
// If logger is nil, the default logger is used.
func NewServer(k *manifest.Kitchen, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{kitchen: k, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tree", s.handleTree)
		r.Get("/utilization", s.handleUtilization)
		r.Route("/resources", func(r chi.Router) {
			r.Get("/", s.handleListResources)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.handleGetResource)
				r.Get("/grid", s.handleGetGrid)
				r.Post("/items", s.handlePlaceItem)
				r.Delete("/items/{id}", s.handleRemoveItem)
			})
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// observe emits API hooks and an access log line for every request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration)
	})
}
