// Package server exposes the tracker over a JSON HTTP API, for
// dashboards and automation outside the note-taking app.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gricha/obsidian-gym-tracker/internal/tracker"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker *tracker.Tracker
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(t *tracker.Tracker, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		tracker: t,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Get("/api/v1/exercises/search", s.handleSearchExercises)
	s.router.Get("/api/v1/exercises/{id}", s.handleGetExercise)
	s.router.Get("/api/v1/exercises/{id}/progression", s.handleExerciseProgression)
	s.router.Get("/api/v1/templates", s.handleListTemplates)
	s.router.Get("/api/v1/templates/{id}", s.handleGetTemplate)
	s.router.Get("/api/v1/workouts", s.handleListWorkouts)
	s.router.Get("/api/v1/workouts/next", s.handleSuggestWorkout)

	// Mutating endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/exercises", s.handleCreateExercise)
		r.Post("/api/v1/exercises/seed", s.handleSeed)
		r.Post("/api/v1/templates", s.handleCreateTemplate)
		r.Delete("/api/v1/templates/{id}", s.handleDeleteTemplate)
		r.Post("/api/v1/workouts", s.handleLogWorkout)
		r.Post("/api/v1/workouts/next", s.handleGenerateWorkout)
	})
}
