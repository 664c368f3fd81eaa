package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gricha/obsidian-gym-tracker/internal/models"
)

// recentWindow bounds the gym://recent_workouts resource so a vault with
// years of history stays a reasonable context size.
const recentWindow = 30 * 24 * time.Hour

func (h *handlers) activeProgram(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	prog, path, err := h.tracker.ActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNoActiveProgram) {
			return nil, fmt.Errorf("no active program found in the vault")
		}
		return nil, fmt.Errorf("loading active program: %w", err)
	}

	payload := struct {
		*models.Program
		Path string `json:"path"`
	}{prog, path}
	return jsonContents(req, payload)
}

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	history, err := h.tracker.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workouts: %w", err)
	}

	cutoff := time.Now().Add(-recentWindow).Format("2006-01-02")
	recent := make([]models.Workout, 0, len(history))
	for _, w := range history {
		if w.Date >= cutoff {
			recent = append(recent, w)
		}
	}
	return jsonContents(req, recent)
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if err := h.tracker.Reload(ctx); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return jsonContents(req, h.tracker.Exercises().GetAll())
}

func jsonContents(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding resource: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
