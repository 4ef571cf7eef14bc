// Package api serves projects and drawing operations over HTTP.
//
// All routes live under /api. Project CRUD follows the desktop client's
// storage contract; the drawing routes expose snapping, splitting, trimming
// and extending on stored projects. Errors are JSON bodies of the form
//
//	{"detail": "Project not found", "code": "PROJECT_NOT_FOUND"}
//
// with the HTTP status derived from the error code.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hydrodraw/pkg/config"
	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

// Banner is returned by GET /api/.
const Banner = "HydroDraw CAD API - PT Hidro Dinamika Internasional (Local Mode)"

// Server wires the HTTP routes to a workspace service.
type Server struct {
	svc    *workspace.Service
	cfg    config.Config
	logger *log.Logger

	mu     sync.Mutex
	checks []StatusCheck
}

// Option configures a Server.
type Option func(*Server)

// WithConfig sets the configuration used for CORS, timeouts and polar
// tracking. Defaults to config.Default().
func WithConfig(cfg config.Config) Option {
	return func(s *Server) { s.cfg = cfg }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New returns a Server over svc.
func New(svc *workspace.Service, opts ...Option) *Server {
	s := &Server{svc: svc, cfg: config.Default(), logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(corsHandler(s.cfg.Server.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.root)
		r.Post("/status", s.createStatus)
		r.Get("/status", s.listStatus)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.listProjects)
			r.Post("/", s.createProject)
			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", s.getProject)
				r.Put("/", s.updateProject)
				r.Delete("/", s.deleteProject)

				r.Post("/snap", s.snap)
				r.Post("/split", s.split)
				r.Post("/split-all", s.splitAll)
				r.Post("/trim", s.trim)
				r.Post("/extend", s.extend)
				r.Get("/export.{format}", s.export)
			})
		})

		r.Route("/geometry", func(r chi.Router) {
			r.Post("/ortho", s.ortho)
			r.Post("/polar", s.polar)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Detail: "Not Found", Code: "NOT_FOUND"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Detail: "Method Not Allowed", Code: "METHOD_NOT_ALLOWED"})
	})
	return r
}

// ListenAndServe serves on the configured address until ctx is canceled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
