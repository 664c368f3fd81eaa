// Package mcp exposes the gym tracker over the Model Context Protocol so
// that LLM assistants can suggest workouts, log sessions, and browse the
// exercise catalog.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gricha/obsidian-gym-tracker/internal/tracker"
)

// New builds an MCP server wired to the given tracker. The caller decides
// how to serve it (stdio or HTTP).
func New(t *tracker.Tracker, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"obsidian-gym-tracker",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions(`Gym tracker over a markdown vault.

Tools:
- suggest_next_workout: next workout suggestion from the active program and recent history
- log_workout: save a completed workout document to the vault
- get_exercise_progression: per-session max weight, max reps, and volume for one exercise
- search_exercises: search the exercise catalog by name, muscle, or equipment
- get_last_performance: the most recent logged sets for one exercise

Resources:
- gym://active_program: the currently active workout program
- gym://recent_workouts: workouts logged in the last 30 days
- gym://exercise_catalog: all exercise definitions

Dates are YYYY-MM-DD strings. Weights are in the unit configured for the vault.`),
	)

	h := &handlers{tracker: t, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolSuggestNextWorkout, Handler: h.suggestNextWorkout},
		server.ServerTool{Tool: toolLogWorkout, Handler: h.logWorkout},
		server.ServerTool{Tool: toolGetExerciseProgression, Handler: h.getExerciseProgression},
		server.ServerTool{Tool: toolSearchExercises, Handler: h.searchExercises},
		server.ServerTool{Tool: toolGetLastPerformance, Handler: h.getLastPerformance},
	)

	s.AddResources(
		server.ServerResource{Resource: resActiveProgram, Handler: h.activeProgram},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

type handlers struct {
	tracker *tracker.Tracker
	log     *slog.Logger
}

var resActiveProgram = mcp.NewResource(
	"gym://active_program",
	"Active Program",
	mcp.WithResourceDescription("The currently active workout program with its training split and per-workout exercise targets"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"gym://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts logged in the last 30 days, most recent first"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"gym://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercise definitions in the vault: muscles, type, equipment, and alternatives"),
	mcp.WithMIMEType("application/json"),
)
