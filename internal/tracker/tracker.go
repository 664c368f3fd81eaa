// Package tracker exposes the user-facing actions: logging workouts,
// maintaining the exercise and template catalogs, and generating the
// next prescribed session from the active program.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gricha/obsidian-gym-tracker/internal/catalog"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/program"
	"github.com/gricha/obsidian-gym-tracker/internal/seed"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
	"github.com/gricha/obsidian-gym-tracker/internal/workout"
)

// Tracker wires the catalogs, the workout parser and the program engine
// over one vault. Catalog reloads clear and repopulate shared maps, so
// they are serialized through a single mutex; reads of loaded state are
// safe without it.
type Tracker struct {
	vault     vault.Vault
	settings  models.Settings
	log       *slog.Logger
	exercises *catalog.Exercises
	templates *catalog.Templates
	workouts  *workout.Parser
	engine    *program.Engine

	mu  sync.Mutex
	now func() time.Time
}

// New creates a Tracker over the given vault.
func New(v vault.Vault, settings models.Settings, log *slog.Logger) *Tracker {
	return &Tracker{
		vault:     v,
		settings:  settings,
		log:       log,
		exercises: catalog.NewExercises(v, settings, log),
		templates: catalog.NewTemplates(v, settings, log),
		workouts:  workout.NewParser(v, settings, log),
		engine:    program.NewEngine(v, settings, log),
		now:       time.Now,
	}
}

// Today returns the current date in the document naming format.
func (t *Tracker) Today() string {
	return t.now().Format("2006-01-02")
}

// Reload rebuilds both catalogs from the vault.
func (t *Tracker) Reload(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.exercises.LoadAll(ctx); err != nil {
		return fmt.Errorf("loading exercise catalog: %w", err)
	}
	if _, err := t.templates.LoadAll(ctx); err != nil {
		return fmt.Errorf("loading template catalog: %w", err)
	}
	return nil
}

// LogWorkout persists a logged session, overwriting any earlier log for
// the same date and type. Empty sets are dropped on the way out.
// Returns the document path.
func (t *Tracker) LogWorkout(ctx context.Context, w *models.Workout) (string, error) {
	if w.Date == "" {
		w.Date = t.Today()
	}
	docPath, err := t.workouts.Save(ctx, w)
	if err != nil {
		return "", fmt.Errorf("saving workout: %w", err)
	}
	t.log.Info("workout logged", "path", docPath, "type", w.Type, "exercises", len(w.Exercises))
	return docPath, nil
}

// AddExercise creates a catalog document for a new exercise. An id
// already in the catalog is rejected before anything is written.
func (t *Tracker) AddExercise(ctx context.Context, ex models.Exercise) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.exercises.LoadAll(ctx); err != nil {
		return fmt.Errorf("loading exercise catalog: %w", err)
	}
	if _, ok := t.exercises.GetByID(ex.ID); ok {
		return fmt.Errorf("%w: %s", models.ErrDuplicateExercise, ex.ID)
	}
	if err := t.exercises.Create(ctx, ex); err != nil {
		return fmt.Errorf("creating exercise %s: %w", ex.ID, err)
	}
	t.log.Info("exercise added", "id", ex.ID)
	return nil
}

// CreateTemplate writes a workout template, overwriting an existing one
// with the same id.
func (t *Tracker) CreateTemplate(ctx context.Context, tpl models.WorkoutTemplate) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.templates.Create(ctx, tpl); err != nil {
		return fmt.Errorf("creating template %s: %w", tpl.ID, err)
	}
	return nil
}

// DeleteTemplate removes a template document, tolerating one that is
// already gone.
func (t *Tracker) DeleteTemplate(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.templates.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting template %s: %w", id, err)
	}
	return nil
}

// Seed populates the exercise catalog with the bundled starter set,
// skipping ids that already exist.
func (t *Tracker) Seed(ctx context.Context) (created, skipped int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	created, skipped, err = seed.Populate(ctx, t.exercises)
	if err != nil {
		return created, skipped, fmt.Errorf("seeding catalog: %w", err)
	}
	t.log.Info("catalog seeded", "created", created, "skipped", skipped)
	return created, skipped, nil
}

// Suggest computes the next session for the given date from the active
// program and workout history without writing anything.
func (t *Tracker) Suggest(ctx context.Context, date string) (*models.WorkoutSuggestion, error) {
	p, _, err := t.engine.FindActiveProgram(ctx)
	if err != nil {
		return nil, err
	}
	history, err := t.workouts.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	// Sessions dated the same day are excluded so that a previously
	// generated (still unfinished) document for today does not advance
	// the rotation past itself.
	prior := history[:0:0]
	for _, w := range history {
		if w.Date != date {
			prior = append(prior, w)
		}
	}
	s := program.GenerateSuggestion(p, prior, date)
	if s == nil {
		return nil, fmt.Errorf("%w: program %q", models.ErrNoProgramWorkout, p.Name)
	}
	return s, nil
}

// NextWorkout materializes today's suggestion as a pre-filled workout
// document. Idempotent per day: when a document for the resolved
// date and type already exists it is left untouched and created reports
// false, so the caller opens it instead.
func (t *Tracker) NextWorkout(ctx context.Context) (docPath string, created bool, err error) {
	date := t.Today()
	s, err := t.Suggest(ctx, date)
	if err != nil {
		return "", false, err
	}

	docPath = path.Join(t.settings.WorkoutsFolder, date+"-"+s.Type+".md")
	exists, err := t.vault.Exists(ctx, docPath)
	if err != nil {
		return "", false, err
	}
	if exists {
		t.log.Info("suggested workout already exists", "path", docPath)
		return docPath, false, nil
	}

	content, err := t.engine.RenderSuggestion(s)
	if err != nil {
		return "", false, err
	}
	if err := t.vault.Write(ctx, docPath, content); err != nil {
		return "", false, fmt.Errorf("writing suggested workout: %w", err)
	}
	t.log.Info("suggested workout generated", "path", docPath, "type", s.Type)
	return docPath, true, nil
}

// LastPerformance returns the most recent logged sets for one exercise,
// or nil when there is no history.
func (t *Tracker) LastPerformance(ctx context.Context, exerciseID string) (*models.Performance, error) {
	history, err := t.workouts.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return program.LastPerformance(exerciseID, history), nil
}

// LastPerformances fetches last performances for several exercises at
// once, as when populating a multi-exercise logging form. Fetches run
// concurrently; one failing is recorded as no history rather than
// aborting the rest.
func (t *Tracker) LastPerformances(ctx context.Context, exerciseIDs []string) map[string]*models.Performance {
	results := make([]*models.Performance, len(exerciseIDs))

	var g errgroup.Group
	for i, id := range exerciseIDs {
		g.Go(func() error {
			perf, err := t.LastPerformance(ctx, id)
			if err != nil {
				t.log.Warn("last performance fetch failed", "exercise", id, "error", err)
				return nil
			}
			results[i] = perf
			return nil
		})
	}
	g.Wait()

	out := make(map[string]*models.Performance, len(exerciseIDs))
	for i, id := range exerciseIDs {
		out[id] = results[i]
	}
	return out
}

// Progression returns the per-session aggregates for one exercise in
// chronological order.
func (t *Tracker) Progression(ctx context.Context, exerciseID string) ([]models.ProgressionPoint, error) {
	return t.workouts.Progression(ctx, exerciseID)
}

// History returns all logged sessions, most recent first.
func (t *Tracker) History(ctx context.Context) ([]models.Workout, error) {
	return t.workouts.LoadAll(ctx)
}

// ActiveProgram returns the parsed active program and its document path.
func (t *Tracker) ActiveProgram(ctx context.Context) (*models.Program, string, error) {
	return t.engine.FindActiveProgram(ctx)
}

// Exercises exposes the exercise catalog for read queries.
func (t *Tracker) Exercises() *catalog.Exercises {
	return t.exercises
}

// Templates exposes the template catalog for read queries.
func (t *Tracker) Templates() *catalog.Templates {
	return t.templates
}
