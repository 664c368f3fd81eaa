package catalog

import (
	"context"
	"testing"

	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

const pullADoc = `---
name: Pull-A
type: pull
---

## Exercises

| Exercise | Sets | Reps |
|----------|------|------|
| [[barbell-row]] | 4 | 6-8 |
| [[lat-pulldown]] | 3 | 10-12 |
| Face Pull | bad | |
`

// TestParseTemplate verifies table extraction and the template defaults:
// an unparseable set count becomes 3 and empty reps "8-12".
func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate(pullADoc, "pull-a")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tpl.ID != "pull-a" || tpl.Name != "Pull-A" || tpl.Type != "pull" {
		t.Errorf("identity = %q, %q, %q", tpl.ID, tpl.Name, tpl.Type)
	}
	if len(tpl.Exercises) != 3 {
		t.Fatalf("exercises = %d, want 3", len(tpl.Exercises))
	}
	if tpl.Exercises[0].ExerciseID != "barbell-row" || tpl.Exercises[0].Sets != 4 {
		t.Errorf("ex0 = %+v", tpl.Exercises[0])
	}
	// Plain-text reference with unparseable numbers falls back to defaults.
	last := tpl.Exercises[2]
	if last.ExerciseID != "face-pull" {
		t.Errorf("ex2 id = %q", last.ExerciseID)
	}
	if last.Sets != 3 || last.Reps != "8-12" {
		t.Errorf("ex2 defaults = %d sets, %q reps", last.Sets, last.Reps)
	}
}

// TestTemplateRoundTrip verifies generate/parse semantic idempotence.
func TestTemplateRoundTrip(t *testing.T) {
	in := models.WorkoutTemplate{
		ID:   "push-b",
		Name: "Push-B",
		Type: "push",
		Exercises: []models.TemplateExercise{
			{ExerciseID: "overhead-press", Sets: 4, Reps: "5"},
			{ExerciseID: "incline-dumbbell-press", Sets: 3, Reps: "8-12"},
		},
	}
	content, err := GenerateTemplate(in)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out, err := ParseTemplate(content, in.ID)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if out.Name != in.Name || out.Type != in.Type {
		t.Errorf("header = %q, %q", out.Name, out.Type)
	}
	if len(out.Exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(out.Exercises))
	}
	for i := range in.Exercises {
		if out.Exercises[i] != in.Exercises[i] {
			t.Errorf("exercise %d = %+v, want %+v", i, out.Exercises[i], in.Exercises[i])
		}
	}
}

// TestTemplateCreateOverwritesAndDelete verifies the upsert-on-create and
// tolerant-delete behaviors.
func TestTemplateCreateOverwritesAndDelete(t *testing.T) {
	ctx := context.Background()
	v := vault.NewMem()
	c := NewTemplates(v, models.DefaultSettings(), testLogger())

	tpl := models.WorkoutTemplate{
		ID: "legs-a", Name: "Legs-A", Type: "legs",
		Exercises: []models.TemplateExercise{{ExerciseID: "squat", Sets: 5, Reps: "5"}},
	}
	if err := c.Create(ctx, tpl); err != nil {
		t.Fatalf("create: %v", err)
	}

	tpl.Exercises[0].Sets = 3
	if err := c.Create(ctx, tpl); err != nil {
		t.Fatalf("re-create: %v", err)
	}
	got, ok := c.GetByID("legs-a")
	if !ok || got.Exercises[0].Sets != 3 {
		t.Errorf("cache after overwrite = %+v", got)
	}

	if err := c.Delete(ctx, "legs-a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := c.GetByID("legs-a"); ok {
		t.Error("cache entry survived delete")
	}
	if exists, _ := v.Exists(ctx, "Workouts/Templates/legs-a.md"); exists {
		t.Error("document survived delete")
	}
	// Deleting again must not error.
	if err := c.Delete(ctx, "legs-a"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

// TestTemplateLoadAllAndGetByType verifies cache rebuild and exact type
// matching.
func TestTemplateLoadAllAndGetByType(t *testing.T) {
	ctx := context.Background()
	v := vault.NewMem()
	mustWrite(t, v, "Workouts/Templates/pull-a.md", pullADoc)
	mustWrite(t, v, "Workouts/Templates/scratch.md", "not a template")

	c := NewTemplates(v, models.DefaultSettings(), testLogger())
	all, err := c.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("loaded = %d, want 1", len(all))
	}
	if got := c.GetByType("pull"); len(got) != 1 || got[0].ID != "pull-a" {
		t.Errorf("byType(pull) = %v", got)
	}
	if got := c.GetByType("push"); len(got) != 0 {
		t.Errorf("byType(push) = %v", got)
	}
}
