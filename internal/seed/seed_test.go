package seed

import (
	"context"
	"log/slog"
	"testing"

	"github.com/gricha/obsidian-gym-tracker/internal/catalog"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

// TestPopulateIdempotent seeds twice and checks the second run creates
// nothing and overwrites nothing.
func TestPopulateIdempotent(t *testing.T) {
	ctx := context.Background()
	v := vault.NewMem()
	exercises := catalog.NewExercises(v, models.DefaultSettings(), slog.New(slog.DiscardHandler))

	created, skipped, err := Populate(ctx, exercises)
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if created != len(Exercises()) || skipped != 0 {
		t.Errorf("first run created=%d skipped=%d", created, skipped)
	}

	// User edits one of the seeded documents.
	custom := "---\nid: plank\nname: Weighted Plank\ntype: isolation\nequipment: bodyweight\n---\nHold with a plate on your back.\n"
	if err := v.Write(ctx, models.DefaultSettings().ExercisesFolder+"/plank.md", custom); err != nil {
		t.Fatal(err)
	}

	created, skipped, err = Populate(ctx, exercises)
	if err != nil {
		t.Fatalf("second Populate: %v", err)
	}
	if created != 0 || skipped != len(Exercises()) {
		t.Errorf("second run created=%d skipped=%d", created, skipped)
	}

	if _, err := exercises.LoadAll(ctx); err != nil {
		t.Fatal(err)
	}
	ex, ok := exercises.GetByID("plank")
	if !ok || ex.Name != "Weighted Plank" {
		t.Errorf("seed overwrote user edit: %+v", ex)
	}
}

// TestBundledWellFormed checks ids are slugs and tags come from the
// known vocabularies.
func TestBundledWellFormed(t *testing.T) {
	knownMuscle := make(map[string]bool)
	for _, m := range models.MuscleGroups {
		knownMuscle[m] = true
	}
	knownEquipment := make(map[string]bool)
	for _, e := range models.EquipmentTypes {
		knownEquipment[e] = true
	}

	seen := make(map[string]bool)
	for _, ex := range Exercises() {
		if ex.ID == "" || ex.Name == "" || ex.Description == "" {
			t.Errorf("%q: incomplete entry", ex.ID)
		}
		if seen[ex.ID] {
			t.Errorf("%q: duplicate id", ex.ID)
		}
		seen[ex.ID] = true
		if !knownEquipment[ex.Equipment] {
			t.Errorf("%q: unknown equipment %q", ex.ID, ex.Equipment)
		}
		for _, m := range append(append([]string{}, ex.Muscles.Primary...), ex.Muscles.Secondary...) {
			if !knownMuscle[m] {
				t.Errorf("%q: unknown muscle %q", ex.ID, m)
			}
		}
		if ex.Type != "compound" && ex.Type != "isolation" {
			t.Errorf("%q: unknown type %q", ex.ID, ex.Type)
		}
	}
}
