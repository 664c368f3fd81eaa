package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/tracker"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

func newTestHandlers(t *testing.T) (*handlers, *vault.Mem) {
	t.Helper()
	v := vault.NewMem()
	tr := tracker.New(v, models.DefaultSettings(), slog.New(slog.DiscardHandler))
	return &handlers{tracker: tr, log: slog.New(slog.DiscardHandler)}, v
}

func toolReq(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the single text content block from a tool result.
func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("content blocks = %d, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(mcplib.TextContent)
	if !ok {
		t.Fatalf("content = %T, want TextContent", res.Content[0])
	}
	return text.Text
}

const testProgram = `---
name: PPL
split: [push, pull]
---

## Push

| Exercise | Sets | Reps | Progression |
| --- | --- | --- | --- |
| [[bench-press]] | 3 | 6-8 | +5lbs at 3x8 |

## Pull

| Exercise | Sets | Reps |
| --- | --- | --- |
| [[deadlift]] | 3 | 5 |
`

// TestSuggestNextWorkoutNoProgram checks the tool reports a readable error
// instead of failing the request when the vault has no program.
func TestSuggestNextWorkoutNoProgram(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandlers(t)

	res, err := h.suggestNextWorkout(ctx, toolReq(map[string]any{"date": "2026-01-20"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if got := resultText(t, res); !strings.Contains(got, "no active program") {
		t.Errorf("error text = %q", got)
	}
}

// TestSuggestNextWorkout runs the full suggestion path against a seeded
// vault and checks the JSON payload.
func TestSuggestNextWorkout(t *testing.T) {
	ctx := context.Background()
	h, v := newTestHandlers(t)

	if err := v.Write(ctx, "Workouts/ppl.program.md", testProgram); err != nil {
		t.Fatal(err)
	}

	res, err := h.suggestNextWorkout(ctx, toolReq(map[string]any{"date": "2026-01-20"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}

	var suggestion models.WorkoutSuggestion
	if err := json.Unmarshal([]byte(resultText(t, res)), &suggestion); err != nil {
		t.Fatalf("decoding suggestion: %v", err)
	}
	if suggestion.Type != "push" {
		t.Errorf("type = %q, want push", suggestion.Type)
	}
	if len(suggestion.Exercises) != 1 || suggestion.Exercises[0].ExerciseID != "bench-press" {
		t.Errorf("exercises = %+v", suggestion.Exercises)
	}
}

// TestLogWorkoutRoundTrip logs a workout through the tool and reads it
// back through get_last_performance.
func TestLogWorkoutRoundTrip(t *testing.T) {
	ctx := context.Background()
	h, v := newTestHandlers(t)

	payload := `{"date":"2026-01-19","type":"push","exercises":[{"exerciseId":"bench-press","sets":[{"weight":185,"reps":8}]}]}`
	res, err := h.logWorkout(ctx, toolReq(map[string]any{"workout": payload}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	if ok, _ := v.Exists(ctx, "Workouts/2026-01-19-push.md"); !ok {
		t.Error("workout document not written")
	}

	res, err = h.getLastPerformance(ctx, toolReq(map[string]any{"exercise": "bench-press"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var perf models.Performance
	if err := json.Unmarshal([]byte(resultText(t, res)), &perf); err != nil {
		t.Fatalf("decoding performance: %v", err)
	}
	if perf.Date != "2026-01-19" || len(perf.Sets) != 1 || perf.Sets[0].Weight != 185 {
		t.Errorf("performance = %+v", perf)
	}
}

// TestLogWorkoutInvalidJSON checks malformed input surfaces as a tool
// error rather than a request failure.
func TestLogWorkoutInvalidJSON(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandlers(t)

	res, err := h.logWorkout(ctx, toolReq(map[string]any{"workout": "{not json"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if got := resultText(t, res); !strings.Contains(got, "invalid workout JSON") {
		t.Errorf("error text = %q", got)
	}
}

// TestSearchExercises seeds one exercise and searches the catalog.
func TestSearchExercises(t *testing.T) {
	ctx := context.Background()
	h, v := newTestHandlers(t)

	doc := `---
name: Bench Press
muscles:
  primary: [chest]
type: compound
equipment: barbell
---
`
	if err := v.Write(ctx, "Workouts/Exercises/bench-press.md", doc); err != nil {
		t.Fatal(err)
	}

	res, err := h.searchExercises(ctx, toolReq(map[string]any{"query": "chest"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var exercises []models.Exercise
	if err := json.Unmarshal([]byte(resultText(t, res)), &exercises); err != nil {
		t.Fatalf("decoding exercises: %v", err)
	}
	if len(exercises) != 1 || exercises[0].ID != "bench-press" {
		t.Errorf("exercises = %+v", exercises)
	}
}

// TestGetExerciseProgressionEmpty checks an exercise with no history
// returns an empty array, not null.
func TestGetExerciseProgressionEmpty(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandlers(t)

	res, err := h.getExerciseProgression(ctx, toolReq(map[string]any{"exercise": "bench-press"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(resultText(t, res)); got != "[]" {
		t.Errorf("result = %q, want []", got)
	}
}

// TestRecentWorkoutsResource checks old sessions are filtered out of the
// recent workouts resource.
func TestRecentWorkoutsResource(t *testing.T) {
	ctx := context.Background()
	h, v := newTestHandlers(t)

	old := "---\ndate: 2020-01-05\ntype: push\n---\n"
	if err := v.Write(ctx, "Workouts/2020-01-05-push.md", old); err != nil {
		t.Fatal(err)
	}

	req := mcplib.ReadResourceRequest{}
	req.Params.URI = "gym://recent_workouts"
	contents, err := h.recentWorkouts(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, ok := contents[0].(mcplib.TextResourceContents)
	if !ok {
		t.Fatalf("contents = %T, want TextResourceContents", contents[0])
	}

	var workouts []models.Workout
	if err := json.Unmarshal([]byte(text.Text), &workouts); err != nil {
		t.Fatalf("decoding workouts: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("recent workouts = %+v, want none", workouts)
	}
}
