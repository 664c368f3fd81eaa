package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gricha/obsidian-gym-tracker/internal/markdown"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.Reload(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if muscle := r.URL.Query().Get("muscle"); muscle != "" {
		writeJSON(w, http.StatusOK, s.tracker.Exercises().GetAllByMuscle(muscle))
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.Exercises().GetAll())
}

func (s *Server) handleSearchExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q parameter required"})
		return
	}
	if err := s.tracker.Reload(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.Exercises().Search(q))
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.Reload(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	ex, ok := s.tracker.Exercises().GetByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleExerciseProgression(w http.ResponseWriter, r *http.Request) {
	points, err := s.tracker.Progression(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if points == nil {
		points = []models.ProgressionPoint{}
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.Reload(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if workoutType := r.URL.Query().Get("type"); workoutType != "" {
		writeJSON(w, http.StatusOK, s.tracker.Templates().GetByType(workoutType))
		return
	}
	writeJSON(w, http.StatusOK, s.tracker.Templates().GetAll())
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.Reload(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	tpl, ok := s.tracker.Templates().GetByID(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	history, err := s.tracker.History(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if history == nil {
		history = []models.Workout{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleSuggestWorkout(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.tracker.Today()
	}
	suggestion, err := s.tracker.Suggest(r.Context(), date)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

func (s *Server) handleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	path, created, err := s.tracker.NextWorkout(r.Context())
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": path, "created": created})
}

func (s *Server) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if workout.Type == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type is required"})
		return
	}

	path, err := s.tracker.LogWorkout(r.Context(), &workout)
	if err != nil {
		s.log.Error("log workout failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var ex models.Exercise
	if err := json.NewDecoder(r.Body).Decode(&ex); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if ex.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if ex.ID == "" {
		ex.ID = markdown.Slug(ex.Name)
	}

	if err := s.tracker.AddExercise(r.Context(), ex); err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	created, skipped, err := s.tracker.Seed(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"created": created, "skipped": skipped})
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var tpl models.WorkoutTemplate
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if tpl.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if tpl.ID == "" {
		tpl.ID = markdown.Slug(tpl.Name)
	}

	if err := s.tracker.CreateTemplate(r.Context(), tpl); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, tpl)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps domain sentinels onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrDuplicateExercise), errors.Is(err, models.ErrDuplicateTemplate):
		return http.StatusConflict
	case errors.Is(err, models.ErrNoActiveProgram),
		errors.Is(err, models.ErrNoProgramWorkout),
		errors.Is(err, models.ErrExerciseNotFound),
		errors.Is(err, models.ErrTemplateNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
