package server

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/claude/workoutguide/internal/catalog"
	"github.com/claude/workoutguide/internal/session"
	"github.com/go-chi/chi/v5"
)

// ReloadFunc loads a fresh, already filtered catalog from the configured source.
type ReloadFunc func(ctx context.Context) (*catalog.Catalog, error)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog atomic.Pointer[catalog.Catalog]
	runs    *session.Manager
	reload  ReloadFunc
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured. reload may be nil, in
// which case the catalog cannot be reloaded at runtime.
func New(cat *catalog.Catalog, runs *session.Manager, reload ReloadFunc, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		runs:   runs,
		reload: reload,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.catalog.Store(cat)
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Catalog returns the catalog currently being served.
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog.Load()
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Catalog browsing (no auth: tsnet handles access)
	s.router.Get("/api/v1/workouts", s.handleListWorkouts)
	s.router.Get("/api/v1/workouts/{id}", s.handleGetWorkout)
	s.router.Get("/api/v1/workouts/{id}/plan", s.handleWorkoutPlan)

	// Runs
	s.router.Post("/api/v1/runs", s.handleStartRun)
	s.router.Route("/api/v1/runs/current", func(r chi.Router) {
		r.Get("/", s.handleCurrentRun)
		r.Get("/events", s.handleRunEvents)
		r.Post("/skip", s.handleRunTransition(s.runs.Skip))
		r.Post("/previous", s.handleRunTransition(s.runs.Previous))
		r.Post("/pause", s.handleRunTransition(s.runs.Pause))
		r.Post("/resume", s.handleRunTransition(s.runs.Resume))
		r.Post("/abort", s.handleAbortRun)
	})

	// Catalog administration (API key required)
	s.router.Route("/api/v1/catalog", func(r chi.Router) {
		if s.apiKey == "" || s.reload == nil {
			r.Post("/reload", s.handleReloadDisabled)
			return
		}
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/reload", s.handleReloadCatalog)
	})
}

// SetFrontend mounts the embedded SPA filesystem.
// Unmatched routes serve index.html for client-side routing.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		// Fallback to index.html for SPA routing
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
