package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gricha/obsidian-gym-tracker/internal/models"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

var toolSuggestNextWorkout = mcp.NewTool("suggest_next_workout",
	mcp.WithDescription("Suggest the next workout from the active program: workout type from the training split rotation, plus per-exercise target sets, reps, suggested weight, and last performance"),
	mcp.WithString("date",
		mcp.Description("Date to suggest for in YYYY-MM-DD format (defaults to today)"),
	),
)

var toolLogWorkout = mcp.NewTool("log_workout",
	mcp.WithDescription("Save a completed workout to the vault as a markdown document. Overwrites any existing document for the same date and type."),
	mcp.WithString("workout",
		mcp.Required(),
		mcp.Description(`Workout as a JSON object: {"date":"YYYY-MM-DD","type":"push","exercises":[{"exerciseId":"barbell-bench-press","sets":[{"weight":185,"reps":8,"exertion":8.5}]}]}. Date defaults to today when empty.`),
	),
)

var toolGetExerciseProgression = mcp.NewTool("get_exercise_progression",
	mcp.WithDescription("Per-session progression for one exercise: date, max weight, max reps, and total volume, oldest first"),
	mcp.WithString("exercise",
		mcp.Required(),
		mcp.Description("Exercise ID, e.g. barbell-bench-press"),
	),
)

var toolSearchExercises = mcp.NewTool("search_exercises",
	mcp.WithDescription("Search the exercise catalog by name, muscle, type, or equipment"),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search text, e.g. chest or dumbbell"),
	),
)

var toolGetLastPerformance = mcp.NewTool("get_last_performance",
	mcp.WithDescription("The most recent logged sets for one exercise, with the date they were performed"),
	mcp.WithString("exercise",
		mcp.Required(),
		mcp.Description("Exercise ID, e.g. barbell-bench-press"),
	),
)

func (h *handlers) suggestNextWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := req.GetString("date", "")
	if date == "" {
		date = h.tracker.Today()
	}

	suggestion, err := h.tracker.Suggest(ctx, date)
	if err != nil {
		if errors.Is(err, models.ErrNoActiveProgram) {
			return mcp.NewToolResultError("no active program found in the vault"), nil
		}
		if errors.Is(err, models.ErrNoProgramWorkout) {
			return mcp.NewToolResultError("the active program has no workout for the next type in the split"), nil
		}
		return mcp.NewToolResultError("suggestion failed: " + err.Error()), nil
	}
	return jsonResult(suggestion)
}

func (h *handlers) logWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("workout")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var w models.Workout
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return mcp.NewToolResultError("invalid workout JSON: " + err.Error()), nil
	}
	if strings.TrimSpace(w.Type) == "" {
		return mcp.NewToolResultError("workout type is required"), nil
	}

	path, err := h.tracker.LogWorkout(ctx, &w)
	if err != nil {
		return mcp.NewToolResultError("save failed: " + err.Error()), nil
	}
	return jsonResult(map[string]string{"path": path})
}

func (h *handlers) getExerciseProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	points, err := h.tracker.Progression(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("progression lookup failed: " + err.Error()), nil
	}
	if points == nil {
		points = []models.ProgressionPoint{}
	}
	return jsonResult(points)
}

func (h *handlers) searchExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := h.tracker.Reload(ctx); err != nil {
		return mcp.NewToolResultError("catalog load failed: " + err.Error()), nil
	}
	return jsonResult(h.tracker.Exercises().Search(query))
}

func (h *handlers) getLastPerformance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	perf, err := h.tracker.LastPerformance(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("lookup failed: " + err.Error()), nil
	}
	if perf == nil {
		return mcp.NewToolResultError("no logged sets found for " + id), nil
	}
	return jsonResult(perf)
}
