package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/tracker"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) (*Server, *vault.Mem) {
	t.Helper()
	v := vault.NewMem()
	tr := tracker.New(v, models.DefaultSettings(), slog.New(slog.DiscardHandler))
	return New(tr, testAPIKey, slog.New(slog.DiscardHandler)), v
}

func doJSON(t *testing.T, s *Server, method, target, body string, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("X-API-Key", testAPIKey)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestAuthRequired checks mutating routes reject missing and wrong keys.
func TestAuthRequired(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/workouts", `{"type":"push"}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", strings.NewReader(`{"type":"push"}`))
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", rec.Code)
	}

	// Reads stay open.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/workouts", "", false)
	if rec.Code != http.StatusOK {
		t.Errorf("read: status = %d, want 200", rec.Code)
	}
}

// TestLogAndListWorkouts posts a session and reads it back.
func TestLogAndListWorkouts(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"date":"2026-01-20","type":"push","exercises":[{"exerciseId":"bench-press","sets":[{"weight":135,"reps":10}]}]}`
	rec := doJSON(t, s, http.MethodPost, "/api/v1/workouts", body, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("log: status = %d, body = %s", rec.Code, rec.Body)
	}
	var created map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created["path"] != "Workouts/2026-01-20-push.md" {
		t.Errorf("path = %q", created["path"])
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/workouts", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d", rec.Code)
	}
	var history []models.Workout
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Type != "push" {
		t.Errorf("history = %+v", history)
	}
}

// TestLogWorkoutValidation rejects bodies without a type.
func TestLogWorkoutValidation(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/workouts", `{"date":"2026-01-20"}`, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestCreateExerciseDuplicate returns 409 for a second create.
func TestCreateExerciseDuplicate(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"name":"Bench Press","type":"compound","equipment":"barbell"}`
	rec := doJSON(t, s, http.MethodPost, "/api/v1/exercises", body, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body)
	}
	var ex models.Exercise
	if err := json.Unmarshal(rec.Body.Bytes(), &ex); err != nil {
		t.Fatal(err)
	}
	if ex.ID != "bench-press" {
		t.Errorf("derived id = %q", ex.ID)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/exercises", body, true)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate: status = %d, want 409", rec.Code)
	}
}

// TestSuggestWorkout covers 404 without a program and the happy path.
func TestSuggestWorkout(t *testing.T) {
	s, v := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/workouts/next?date=2026-01-20", "", false)
	if rec.Code != http.StatusNotFound {
		t.Errorf("no program: status = %d, want 404", rec.Code)
	}

	programDoc := "---\nname: PPL\nsplit: [push]\n---\n\n## Push\n\n| Exercise | Sets | Reps |\n| --- | --- | --- |\n| [[bench-press]] | 4 | 6-8 |\n"
	if err := v.Write(t.Context(), "Workouts/ppl.program.md", programDoc); err != nil {
		t.Fatal(err)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/workouts/next?date=2026-01-20", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var suggestion models.WorkoutSuggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &suggestion); err != nil {
		t.Fatal(err)
	}
	if suggestion.Type != "push" || len(suggestion.Exercises) != 1 {
		t.Errorf("suggestion = %+v", suggestion)
	}
}

// TestSeedAndQueryCatalog seeds over HTTP and exercises the query routes.
func TestSeedAndQueryCatalog(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/exercises/seed", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed: status = %d", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/exercises/search?q=bench", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("search: status = %d", rec.Code)
	}
	var results []models.Exercise
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Error("search returned nothing")
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/exercises/search", "", false)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/exercises/deadlift", "", false)
	if rec.Code != http.StatusOK {
		t.Errorf("get: status = %d", rec.Code)
	}
	rec = doJSON(t, s, http.MethodGet, "/api/v1/exercises/not-there", "", false)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing exercise: status = %d, want 404", rec.Code)
	}
}

// TestTemplateLifecycle creates, fetches and deletes a template.
func TestTemplateLifecycle(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"name":"Push A","type":"push","exercises":[{"exerciseId":"bench-press","sets":4,"reps":"6-8"}]}`
	rec := doJSON(t, s, http.MethodPost, "/api/v1/templates", body, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/v1/templates/push-a", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d", rec.Code)
	}
	var tpl models.WorkoutTemplate
	if err := json.Unmarshal(rec.Body.Bytes(), &tpl); err != nil {
		t.Fatal(err)
	}
	if tpl.Type != "push" || len(tpl.Exercises) != 1 {
		t.Errorf("template = %+v", tpl)
	}

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/templates/push-a", "", true)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete: status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, s, http.MethodGet, "/api/v1/templates/push-a", "", false)
	if rec.Code != http.StatusNotFound {
		t.Errorf("after delete: status = %d, want 404", rec.Code)
	}
}
