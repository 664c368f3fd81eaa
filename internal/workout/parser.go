// Package workout converts logged-session documents to and from Workout
// values and answers history queries over the workouts folder.
package workout

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/gricha/obsidian-gym-tracker/internal/markdown"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

// Parser parses and generates workout-log documents.
type Parser struct {
	vault    vault.Vault
	settings models.Settings
	log      *slog.Logger
}

// NewParser creates a Parser over the given vault.
func NewParser(v vault.Vault, settings models.Settings, log *slog.Logger) *Parser {
	return &Parser{vault: v, settings: settings, log: log}
}

type workoutFrontmatter struct {
	Date     string `yaml:"date"`
	Type     string `yaml:"type"`
	Duration int    `yaml:"duration,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
}

// ParseContent converts a workout document into a Workout. Returns
// markdown.ErrNotRecognized (or a header decode error) for documents that
// are not workout logs; callers log and skip, never fail.
func ParseContent(content string) (*models.Workout, error) {
	var fm workoutFrontmatter
	body, err := markdown.DecodeFrontmatter(content, &fm)
	if err != nil {
		return nil, err
	}
	if fm.Date == "" || fm.Type == "" {
		return nil, fmt.Errorf("%w: missing date or type", markdown.ErrNotRecognized)
	}

	return &models.Workout{
		Date:      fm.Date,
		Type:      fm.Type,
		Duration:  fm.Duration,
		Exercises: parseExerciseSections(body),
		Notes:     fm.Notes,
	}, nil
}

// parseExerciseSections scans the body for "### <exercise>" headings and
// parses the set table under each. Sections yielding zero sets contribute
// no exercise entry.
func parseExerciseSections(body string) []models.WorkoutExercise {
	var exercises []models.WorkoutExercise

	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "### ") {
			continue
		}
		id, ok := markdown.ExerciseRef(strings.TrimPrefix(trimmed, "### "))
		if !ok {
			continue
		}

		end := i + 1
		for end < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[end]), "### ") {
			end++
		}
		sets := parseSetTable(strings.Join(lines[i+1:end], "\n"))
		if len(sets) > 0 {
			exercises = append(exercises, models.WorkoutExercise{ExerciseID: id, Sets: sets})
		}
		i = end - 1
	}
	return exercises
}

// parseSetTable reads set rows positionally: set index (ignored), weight,
// reps, optional exertion. Rows where both weight and reps parse to zero
// are discarded.
func parseSetTable(text string) []models.WorkoutSet {
	table, ok := markdown.ParseTable(text)
	if !ok {
		return nil
	}

	var sets []models.WorkoutSet
	for _, row := range table.Rows {
		if len(row) < 3 {
			continue
		}
		weight, _ := strconv.ParseFloat(row[1], 64)
		reps, _ := strconv.Atoi(row[2])
		if weight <= 0 && reps <= 0 {
			continue
		}
		set := models.WorkoutSet{Weight: weight, Reps: reps}
		if len(row) >= 4 && row[3] != "" {
			if e, err := strconv.ParseFloat(row[3], 64); err == nil {
				set.Exertion = &e
			}
		}
		sets = append(sets, set)
	}
	return sets
}

// GenerateContent renders a Workout as document text. Empty sets and
// exercises left with no sets are dropped; the exertion column is emitted
// only when tracking is enabled.
func (p *Parser) GenerateContent(w *models.Workout) (string, error) {
	header, err := markdown.EncodeFrontmatter(workoutFrontmatter{
		Date:     w.Date,
		Type:     w.Type,
		Duration: w.Duration,
		Notes:    w.Notes,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n## Exercises\n")

	for _, ex := range w.Exercises {
		rows := setRows(ex.Sets, p.settings.TrackExertion)
		if len(rows) == 0 {
			continue
		}
		b.WriteString("\n### ")
		b.WriteString(markdown.WikiLink(ex.ExerciseID))
		b.WriteString("\n")
		b.WriteString(markdown.RenderTable(p.setTableHeader(), rows))
	}
	return b.String(), nil
}

func (p *Parser) setTableHeader() []string {
	header := []string{"Set", "Weight", "Reps"}
	if p.settings.TrackExertion {
		header = append(header, p.settings.ExertionLabel())
	}
	return header
}

func setRows(sets []models.WorkoutSet, trackExertion bool) [][]string {
	var rows [][]string
	for _, s := range sets {
		if s.Empty() {
			continue
		}
		row := []string{
			strconv.Itoa(len(rows) + 1),
			formatWeight(s.Weight),
			strconv.Itoa(s.Reps),
		}
		if trackExertion {
			cell := ""
			if s.Exertion != nil {
				cell = strconv.FormatFloat(*s.Exertion, 'f', -1, 64)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Save writes a workout document named {date}-{type}.md, overwriting an
// existing document for the same session. Returns the document path.
func (p *Parser) Save(ctx context.Context, w *models.Workout) (string, error) {
	exists, err := p.vault.FolderExists(ctx, p.settings.WorkoutsFolder)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := p.vault.CreateFolder(ctx, p.settings.WorkoutsFolder); err != nil {
			return "", err
		}
	}

	content, err := p.GenerateContent(w)
	if err != nil {
		return "", err
	}
	docPath := path.Join(p.settings.WorkoutsFolder, w.FileName())
	if err := p.vault.Write(ctx, docPath, content); err != nil {
		return "", err
	}
	return docPath, nil
}

// LoadAll parses every workout document in the workouts folder, skipping
// the exercise and template sub-locations and anything unparseable, and
// returns the sessions sorted by date descending. The descending order is
// what the program engine's history scans rely on.
func (p *Parser) LoadAll(ctx context.Context) ([]models.Workout, error) {
	res, err := p.vault.List(ctx, p.settings.WorkoutsFolder)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	if res.Kind != vault.KindFolder {
		return nil, nil
	}

	var workouts []models.Workout
	for _, f := range res.Files {
		if strings.HasPrefix(f.Path, p.settings.ExercisesFolder+"/") ||
			strings.HasPrefix(f.Path, p.settings.TemplatesFolder+"/") {
			continue
		}
		content, err := p.vault.Read(ctx, f.Path)
		if err != nil {
			p.log.Warn("skipping unreadable workout document", "path", f.Path, "error", err)
			continue
		}
		w, err := ParseContent(content)
		if err != nil {
			p.log.Debug("skipping non-workout document", "path", f.Path, "error", err)
			continue
		}
		workouts = append(workouts, *w)
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date > workouts[j].Date
	})
	return workouts, nil
}

// Progression computes the per-session aggregates for one exercise,
// sorted by date ascending for chronological charting.
func (p *Parser) Progression(ctx context.Context, exerciseID string) ([]models.ProgressionPoint, error) {
	workouts, err := p.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var points []models.ProgressionPoint
	for i := range workouts {
		ex := workouts[i].Exercise(exerciseID)
		if ex == nil || len(ex.Sets) == 0 {
			continue
		}
		point := models.ProgressionPoint{Date: workouts[i].Date}
		for _, s := range ex.Sets {
			if s.Weight > point.MaxWeight {
				point.MaxWeight = s.Weight
			}
			if s.Reps > point.MaxReps {
				point.MaxReps = s.Reps
			}
			point.TotalVolume += s.Weight * float64(s.Reps)
		}
		points = append(points, point)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points, nil
}
