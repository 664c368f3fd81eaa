package catalog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustWrite(t *testing.T, v vault.Vault, path, content string) {
	t.Helper()
	if err := v.Write(context.Background(), path, content); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

const benchDoc = `---
id: barbell-bench-press
name: Barbell Bench Press
muscles:
  primary: [chest]
  secondary: [triceps, shoulders]
type: compound
equipment: barbell
alternatives: [dumbbell-bench-press]
---

Lie flat, grip slightly wider than shoulders, press.
`

// TestParseExercise verifies frontmatter extraction and the body becoming
// the description.
func TestParseExercise(t *testing.T) {
	ex, err := ParseExercise(benchDoc, "barbell-bench-press")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ex.ID != "barbell-bench-press" || ex.Name != "Barbell Bench Press" {
		t.Errorf("identity = %q, %q", ex.ID, ex.Name)
	}
	if len(ex.Muscles.Primary) != 1 || ex.Muscles.Primary[0] != "chest" {
		t.Errorf("primary = %v", ex.Muscles.Primary)
	}
	if len(ex.Muscles.Secondary) != 2 {
		t.Errorf("secondary = %v", ex.Muscles.Secondary)
	}
	if ex.Type != "compound" || ex.Equipment != "barbell" {
		t.Errorf("type/equipment = %q, %q", ex.Type, ex.Equipment)
	}
	if ex.Description != "Lie flat, grip slightly wider than shoulders, press." {
		t.Errorf("description = %q", ex.Description)
	}
}

// TestParseExerciseDefaults verifies filename fallback for id and name
// plus the type/equipment defaults.
func TestParseExerciseDefaults(t *testing.T) {
	ex, err := ParseExercise("---\nmuscles:\n  primary: [biceps]\n---\n", "hammer-curl")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ex.ID != "hammer-curl" || ex.Name != "hammer-curl" {
		t.Errorf("fallbacks = %q, %q", ex.ID, ex.Name)
	}
	if ex.Type != "isolation" || ex.Equipment != "other" {
		t.Errorf("defaults = %q, %q", ex.Type, ex.Equipment)
	}
}

// TestLoadAllSkipsBadDocuments verifies that documents without markers or
// with malformed headers are skipped, not propagated.
func TestLoadAllSkipsBadDocuments(t *testing.T) {
	ctx := context.Background()
	v := vault.NewMem()
	settings := models.DefaultSettings()

	mustWrite(t, v, "Workouts/Exercises/barbell-bench-press.md", benchDoc)
	mustWrite(t, v, "Workouts/Exercises/no-markers.md", "just a plain note")
	mustWrite(t, v, "Workouts/Exercises/broken.md", "---\nmuscles: [unclosed\n---\n")

	c := NewExercises(v, settings, testLogger())
	all, err := c.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("loaded = %d, want 1", len(all))
	}
	if _, ok := c.GetByID("barbell-bench-press"); !ok {
		t.Error("bench press missing from cache")
	}
}

// TestLoadAllMissingFolder verifies a missing exercises folder yields an
// empty catalog, not an error.
func TestLoadAllMissingFolder(t *testing.T) {
	c := NewExercises(vault.NewMem(), models.DefaultSettings(), testLogger())
	all, err := c.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("loaded = %d, want 0", len(all))
	}
}

// TestCreateRoundTrip verifies a created exercise parses back identically.
func TestCreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	v := vault.NewMem()
	c := NewExercises(v, models.DefaultSettings(), testLogger())

	in := models.Exercise{
		ID:   "farmer-s-walk",
		Name: "Farmer's Walk",
		Muscles: models.Muscles{
			Primary:   []string{"forearms", "traps"},
			Secondary: []string{"abs"},
		},
		Type:         "compound",
		Equipment:    "dumbbell",
		Alternatives: []string{"suitcase-carry"},
		Description:  "Pick them up and walk.",
	}
	if err := c.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	content, err := v.Read(ctx, "Workouts/Exercises/farmer-s-walk.md")
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out, err := ParseExercise(content, "farmer-s-walk")
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if out.ID != in.ID || out.Name != in.Name || out.Equipment != in.Equipment {
		t.Errorf("round trip = %+v", out)
	}
	if len(out.Muscles.Primary) != 2 || out.Muscles.Primary[1] != "traps" {
		t.Errorf("primary = %v", out.Muscles.Primary)
	}
	if out.Description != in.Description {
		t.Errorf("description = %q", out.Description)
	}
}

// TestQueries verifies GetAllByMuscle and Search over a small catalog.
func TestQueries(t *testing.T) {
	ctx := context.Background()
	c := NewExercises(vault.NewMem(), models.DefaultSettings(), testLogger())

	exercises := []models.Exercise{
		{ID: "barbell-bench-press", Name: "Barbell Bench Press", Equipment: "barbell",
			Muscles: models.Muscles{Primary: []string{"chest"}, Secondary: []string{"triceps"}}},
		{ID: "tricep-pushdown", Name: "Tricep Pushdown", Equipment: "cable",
			Muscles: models.Muscles{Primary: []string{"triceps"}}},
		{ID: "squat", Name: "Squat", Equipment: "barbell",
			Muscles: models.Muscles{Primary: []string{"quads"}, Secondary: []string{"glutes"}}},
	}
	for _, ex := range exercises {
		if err := c.Create(ctx, ex); err != nil {
			t.Fatalf("create %s: %v", ex.ID, err)
		}
	}

	byTriceps := c.GetAllByMuscle("triceps")
	if len(byTriceps) != 2 {
		t.Errorf("byMuscle(triceps) = %d, want 2 (primary and secondary match)", len(byTriceps))
	}

	if got := c.Search("BENCH"); len(got) != 1 || got[0].ID != "barbell-bench-press" {
		t.Errorf("search name = %v", got)
	}
	if got := c.Search("cable"); len(got) != 1 || got[0].ID != "tricep-pushdown" {
		t.Errorf("search equipment = %v", got)
	}
	if got := c.Search("quads"); len(got) != 1 || got[0].ID != "squat" {
		t.Errorf("search muscle = %v", got)
	}
	if got := c.Search("nothing-matches"); len(got) != 0 {
		t.Errorf("search miss = %v", got)
	}
}
