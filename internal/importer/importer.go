// Package importer backfills workout history from training-log CSV
// exports, writing one workout document per session. A SQLite state
// database remembers processed files so repeated runs only pick up new
// or changed exports.
package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gricha/obsidian-gym-tracker/internal/markdown"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
	"github.com/gricha/obsidian-gym-tracker/internal/workout"
)

const kgToLbs = 2.20462

// Stats tracks import progress.
type Stats struct {
	FilesProcessed   int
	FilesSkipped     int
	FilesErrored     int
	SessionsImported int
	SessionsSkipped  int
	SetsImported     int
}

// Importer converts CSV exports into workout documents.
type Importer struct {
	vault    vault.Vault
	settings models.Settings
	parser   *workout.Parser
	state    *StateDB
	log      *slog.Logger
	dryRun   bool
	stats    Stats
}

// New creates an Importer. A nil state database disables file-level
// deduplication, useful for one-off runs.
func New(v vault.Vault, settings models.Settings, state *StateDB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{
		vault:    v,
		settings: settings,
		parser:   workout.NewParser(v, settings, log),
		state:    state,
		log:      log,
		dryRun:   dryRun,
	}
}

// Import processes every .csv file under dir.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".csv") {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		imp.importFile(ctx, dir, p)
		return nil
	})
	if err != nil {
		return &imp.stats, fmt.Errorf("walking %s: %w", dir, err)
	}
	return &imp.stats, nil
}

func (imp *Importer) importFile(ctx context.Context, dir, filePath string) {
	relPath, err := filepath.Rel(dir, filePath)
	if err != nil {
		relPath = filePath
	}

	info, err := os.Stat(filePath)
	if err != nil {
		imp.log.Error("stat failed", "file", relPath, "error", err)
		imp.stats.FilesErrored++
		return
	}
	hash, err := HashFile(filePath)
	if err != nil {
		imp.log.Error("hashing failed", "file", relPath, "error", err)
		imp.stats.FilesErrored++
		return
	}

	if imp.state != nil {
		done, err := imp.state.IsImported(relPath, info.Size(), hash)
		if err != nil {
			imp.log.Error("state lookup failed", "file", relPath, "error", err)
			imp.stats.FilesErrored++
			return
		}
		if done {
			imp.log.Debug("already imported", "file", relPath)
			imp.stats.FilesSkipped++
			return
		}
	}

	f, err := os.Open(filePath)
	if err != nil {
		imp.log.Error("open failed", "file", relPath, "error", err)
		imp.stats.FilesErrored++
		return
	}
	sessions, err := ParseCSV(f)
	f.Close()
	if err != nil {
		imp.log.Error("parse failed", "file", relPath, "error", err)
		imp.stats.FilesErrored++
		return
	}

	for _, s := range sessions {
		if err := imp.importSession(ctx, s); err != nil {
			imp.log.Error("session import failed", "file", relPath, "session", s.Name, "error", err)
			imp.stats.FilesErrored++
			return
		}
	}

	imp.stats.FilesProcessed++
	if imp.state != nil && !imp.dryRun {
		if err := imp.state.MarkImported(relPath, info.Size(), hash); err != nil {
			imp.log.Error("state update failed", "file", relPath, "error", err)
		}
	}
	imp.log.Info("file imported", "file", relPath, "sessions", len(sessions))
}

// importSession writes one session as a workout document. Existing
// documents for the same date and type are left alone so manual logs
// are never clobbered by a backfill.
func (imp *Importer) importSession(ctx context.Context, s Session) error {
	w := imp.Convert(s)
	if len(w.Exercises) == 0 {
		imp.stats.SessionsSkipped++
		return nil
	}

	docPath := path.Join(imp.settings.WorkoutsFolder, w.FileName())
	exists, err := imp.vault.Exists(ctx, docPath)
	if err != nil {
		return err
	}
	if exists {
		imp.log.Debug("workout already logged", "path", docPath)
		imp.stats.SessionsSkipped++
		return nil
	}

	if !imp.dryRun {
		if _, err := imp.parser.Save(ctx, w); err != nil {
			return err
		}
	}
	imp.stats.SessionsImported++
	for _, ex := range w.Exercises {
		imp.stats.SetsImported += len(ex.Sets)
	}
	return nil
}

// Convert maps a CSV session onto a Workout: exercise names become
// catalog slugs, warmup sets are dropped, weights follow the configured
// unit and RIR values become the configured exertion metric.
func (imp *Importer) Convert(s Session) *models.Workout {
	w := &models.Workout{
		Date:     s.Date.Format("2006-01-02"),
		Type:     markdown.NormalizeType(s.Name),
		Duration: durationMinutes(s.Duration),
	}

	for _, ex := range s.Exercises {
		we := models.WorkoutExercise{ExerciseID: markdown.Slug(ex.Name)}
		for _, set := range ex.Sets {
			if set.IsWarmup {
				continue
			}
			ws := models.WorkoutSet{
				Weight: imp.convertWeight(set.WeightKg),
				Reps:   set.Reps,
			}
			if imp.settings.TrackExertion {
				e := imp.convertExertion(set.RIR)
				ws.Exertion = &e
			}
			if ws.Empty() {
				continue
			}
			we.Sets = append(we.Sets, ws)
		}
		if len(we.Sets) > 0 {
			w.Exercises = append(w.Exercises, we)
		}
	}
	return w
}

// convertWeight converts export kilograms to the configured unit,
// rounding pound values to the nearest half.
func (imp *Importer) convertWeight(kg float64) float64 {
	if imp.settings.WeightUnit != "lbs" {
		return kg
	}
	return math.Round(kg*kgToLbs*2) / 2
}

// convertExertion maps the export's RIR value onto the configured
// metric. RPE is the 10-point inverse of RIR, clamped to 0.
func (imp *Importer) convertExertion(rir float64) float64 {
	if imp.settings.Exertion == models.ExertionRIR {
		return rir
	}
	rpe := 10 - rir
	if rpe < 0 {
		return 0
	}
	return rpe
}

// durationMinutes parses durations like "1:02 hr" into whole minutes.
func durationMinutes(s string) int {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours := atoi(m[1])
	minutes := atoi(m[2])
	return hours*60 + minutes
}
