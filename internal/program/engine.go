// Package program implements training-program documents and the
// rotation-and-progression engine that turns a program plus workout
// history into the next suggested session.
package program

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gricha/obsidian-gym-tracker/internal/markdown"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

var (
	thresholdRe = regexp.MustCompile(`(?i)at\s+(\d+)\s*[x×]\s*(\d+)`)
	incrementRe = regexp.MustCompile(`\+\s*([\d.]+)`)
	repRangeRe  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	repNumberRe = regexp.MustCompile(`(\d+)`)
)

// Engine parses program documents and computes workout suggestions.
type Engine struct {
	vault    vault.Vault
	settings models.Settings
	log      *slog.Logger
}

// NewEngine creates an Engine over the given vault.
func NewEngine(v vault.Vault, settings models.Settings, log *slog.Logger) *Engine {
	return &Engine{vault: v, settings: settings, log: log}
}

type programFrontmatter struct {
	Name    string   `yaml:"name"`
	Split   []string `yaml:"split"`
	Started string   `yaml:"started,omitempty"`
}

// ParseContent converts a program document into a Program. The name
// defaults to "Unnamed Program" and the split to empty when the header
// omits them.
func ParseContent(content string) (*models.Program, error) {
	var fm programFrontmatter
	body, err := markdown.DecodeFrontmatter(content, &fm)
	if err != nil {
		return nil, err
	}
	if fm.Name == "" {
		fm.Name = "Unnamed Program"
	}

	return &models.Program{
		Name:     fm.Name,
		Split:    fm.Split,
		Started:  fm.Started,
		Workouts: parseWorkoutSections(body),
	}, nil
}

// parseWorkoutSections scans for "## <Type>" headings, one training day
// per section. Sections whose table yields no exercises are dropped.
func parseWorkoutSections(body string) []models.ProgramWorkout {
	var workouts []models.ProgramWorkout

	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "## ") || strings.HasPrefix(trimmed, "### ") {
			continue
		}
		workoutType := markdown.NormalizeType(strings.TrimPrefix(trimmed, "## "))

		end := i + 1
		for end < len(lines) {
			next := strings.TrimSpace(lines[end])
			if strings.HasPrefix(next, "## ") && !strings.HasPrefix(next, "### ") {
				break
			}
			end++
		}
		exercises := parseExerciseTable(strings.Join(lines[i+1:end], "\n"))
		if len(exercises) > 0 {
			workouts = append(workouts, models.ProgramWorkout{Type: workoutType, Exercises: exercises})
		}
		i = end - 1
	}
	return workouts
}

// parseExerciseTable reads an Exercise/Sets/Reps/Progression table in any
// column order. Unparseable set counts default to 0 and empty rep cells
// to "0"; this leniency differs from template tables on purpose.
func parseExerciseTable(text string) []models.ProgramExercise {
	table, ok := markdown.ParseTable(text)
	if !ok {
		return nil
	}
	cols := markdown.DetectColumns(table.Header)

	var exercises []models.ProgramExercise
	for _, row := range table.Rows {
		id, ok := markdown.ExerciseRef(cell(row, cols.Exercise))
		if !ok {
			continue
		}
		sets, _ := strconv.Atoi(cell(row, cols.Sets))
		reps := cell(row, cols.Reps)
		if reps == "" {
			reps = "0"
		}
		exercises = append(exercises, models.ProgramExercise{
			ExerciseID:  id,
			Sets:        sets,
			Reps:        reps,
			Progression: cell(row, cols.Progression),
		})
	}
	return exercises
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// GenerateContent renders a Program as document text with one capitalized
// "## <Type>" section per training day.
func GenerateContent(p *models.Program) (string, error) {
	header, err := markdown.EncodeFrontmatter(programFrontmatter{
		Name:    p.Name,
		Split:   p.Split,
		Started: p.Started,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header)
	for _, w := range p.Workouts {
		b.WriteString("\n## ")
		b.WriteString(titleCase(w.Type))
		b.WriteString("\n")

		rows := make([][]string, 0, len(w.Exercises))
		for _, ex := range w.Exercises {
			rows = append(rows, []string{
				markdown.WikiLink(ex.ExerciseID),
				strconv.Itoa(ex.Sets),
				ex.Reps,
				ex.Progression,
			})
		}
		b.WriteString(markdown.RenderTable([]string{"Exercise", "Sets", "Reps", "Progression"}, rows))
	}
	return b.String(), nil
}

// titleCase turns a normalized type like "upper-body" back into a
// heading like "Upper Body".
func titleCase(workoutType string) string {
	words := strings.Split(workoutType, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// FindActiveProgram locates the program document in the workouts folder,
// by convention any "*.program.md" file or one named exactly
// "program.md", preferring the most recently modified candidate. Returns
// models.ErrNoActiveProgram when no candidate exists or the winner does
// not parse.
func (e *Engine) FindActiveProgram(ctx context.Context) (*models.Program, string, error) {
	res, err := e.vault.List(ctx, e.settings.WorkoutsFolder)
	if err != nil {
		return nil, "", fmt.Errorf("listing workouts folder: %w", err)
	}
	if res.Kind != vault.KindFolder {
		return nil, "", models.ErrNoActiveProgram
	}

	var candidates []vault.File
	for _, f := range res.Files {
		base := f.Path[strings.LastIndex(f.Path, "/")+1:]
		if strings.HasSuffix(base, ".program.md") || base == "program.md" {
			candidates = append(candidates, f)
		}
	}
	newest, ok := vault.MostRecentlyModified(candidates)
	if !ok {
		return nil, "", models.ErrNoActiveProgram
	}

	content, err := e.vault.Read(ctx, newest.Path)
	if err != nil {
		return nil, "", fmt.Errorf("reading program %s: %w", newest.Path, err)
	}
	p, err := ParseContent(content)
	if err != nil {
		e.log.Warn("active program candidate did not parse", "path", newest.Path, "error", err)
		return nil, "", models.ErrNoActiveProgram
	}
	return p, newest.Path, nil
}

// NextWorkoutType resolves the rotation position from the most recent
// history entry whose type belongs to the split. History entries outside
// the split, a cardio session in the middle of a push/pull/legs week for
// instance, are skipped without advancing the rotation.
func NextWorkoutType(p *models.Program, history []models.Workout) string {
	if len(p.Split) == 0 {
		if len(p.Workouts) > 0 {
			return p.Workouts[0].Type
		}
		return "workout"
	}
	if len(history) == 0 {
		return p.Split[0]
	}

	for i := range history {
		if !p.InSplit(history[i].Type) {
			continue
		}
		for j, t := range p.Split {
			if t == history[i].Type {
				return p.Split[(j+1)%len(p.Split)]
			}
		}
	}
	return p.Split[0]
}

// LastPerformance returns the most recent logged sets for an exercise,
// or nil when history has none. History must be sorted date-descending.
func LastPerformance(exerciseID string, history []models.Workout) *models.Performance {
	for i := range history {
		ex := history[i].Exercise(exerciseID)
		if ex != nil && len(ex.Sets) > 0 {
			return &models.Performance{Date: history[i].Date, Sets: ex.Sets}
		}
	}
	return nil
}

// SuggestedWeight computes the weight to pre-fill for the next session.
// The baseline is the first set of the last performance; a progression
// rule adds its increment only when the qualifying threshold was met.
// No history means 0, the user picks the starting weight.
func SuggestedWeight(last *models.Performance, targetSets int, targetReps, progression string) float64 {
	if last == nil || len(last.Sets) == 0 {
		return 0
	}
	baseline := last.Sets[0].Weight

	if progression != "" && shouldProgress(last.Sets, targetSets, parseMaxReps(targetReps), progression) {
		return baseline + progressionIncrement(progression)
	}
	return baseline
}

// parseMaxReps extracts the upper bound of a rep prescription: "6-8"
// gives 8, "10" gives 10, open-ended schemes like "AMRAP" give 0.
func parseMaxReps(reps string) int {
	if m := repRangeRe.FindStringSubmatch(reps); m != nil {
		n, _ := strconv.Atoi(m[2])
		return n
	}
	if m := repNumberRe.FindStringSubmatch(reps); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// shouldProgress tests a rule like "+5lbs at 4x8" against the last
// sets: progress when at least the required number of sets reached the
// required reps. A rule without a threshold never auto-progresses, and
// zero-valued rule numbers fall back to the exercise's own targets.
func shouldProgress(lastSets []models.WorkoutSet, targetSets, maxTargetReps int, progression string) bool {
	m := thresholdRe.FindStringSubmatch(progression)
	if m == nil {
		return false
	}
	requiredSets, _ := strconv.Atoi(m[1])
	if requiredSets == 0 {
		requiredSets = targetSets
	}
	requiredReps, _ := strconv.Atoi(m[2])
	if requiredReps == 0 {
		requiredReps = maxTargetReps
	}

	qualifying := 0
	for _, s := range lastSets {
		if s.Reps >= requiredReps {
			qualifying++
		}
	}
	return qualifying >= requiredSets
}

func progressionIncrement(progression string) float64 {
	m := incrementRe.FindStringSubmatch(progression)
	if m == nil {
		return 0
	}
	inc, _ := strconv.ParseFloat(m[1], 64)
	return inc
}

// GenerateSuggestion assembles the next session for the given date:
// rotation resolves the type, the program's matching training day
// supplies targets, history supplies baselines. Returns nil when the
// program defines no training day for the resolved type. History is
// re-sorted descending here so callers need not guarantee order.
func GenerateSuggestion(p *models.Program, history []models.Workout, date string) *models.WorkoutSuggestion {
	sorted := make([]models.Workout, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	nextType := NextWorkoutType(p, sorted)
	pw := p.Workout(nextType)
	if pw == nil {
		return nil
	}

	suggestion := &models.WorkoutSuggestion{
		Date:        date,
		Type:        nextType,
		ProgramName: p.Name,
	}
	for _, pe := range pw.Exercises {
		last := LastPerformance(pe.ExerciseID, sorted)
		suggestion.Exercises = append(suggestion.Exercises, models.ExerciseSuggestion{
			ExerciseID:      pe.ExerciseID,
			TargetSets:      pe.Sets,
			TargetReps:      pe.Reps,
			SuggestedWeight: SuggestedWeight(last, pe.Sets, pe.Reps, pe.Progression),
			LastPerformance: last,
			Progression:     pe.Progression,
		})
	}
	return suggestion
}

// RenderSuggestion renders a suggestion as a pre-filled workout document:
// weight and rep cells carry the suggested values, HTML comments carry
// the target/progression rule and the last session's actual sets. The
// comments are informational and ignored when the document is parsed
// back as a log.
func (e *Engine) RenderSuggestion(s *models.WorkoutSuggestion) (string, error) {
	header, err := markdown.EncodeFrontmatter(struct {
		Date string `yaml:"date"`
		Type string `yaml:"type"`
	}{Date: s.Date, Type: s.Type})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n> Generated from program: **")
	b.WriteString(s.ProgramName)
	b.WriteString("**\n\n## Exercises\n")

	for i := range s.Exercises {
		ex := &s.Exercises[i]
		b.WriteString("\n### ")
		b.WriteString(markdown.WikiLink(ex.ExerciseID))
		b.WriteString("\n")

		if ex.Progression != "" && ex.LastPerformance != nil {
			fmt.Fprintf(&b, "<!-- Target: %dx%s, Progression: %s -->\n",
				ex.TargetSets, ex.TargetReps, ex.Progression)
		}
		b.WriteString(markdown.RenderTable(e.suggestionHeader(), suggestionRows(ex, e.settings.TrackExertion)))
		if ex.LastPerformance != nil {
			fmt.Fprintf(&b, "<!-- Last (%s): %s -->\n",
				ex.LastPerformance.Date, formatSets(ex.LastPerformance.Sets))
		}
	}
	return b.String(), nil
}

func (e *Engine) suggestionHeader() []string {
	header := []string{"Set", "Weight", "Reps"}
	if e.settings.TrackExertion {
		header = append(header, e.settings.ExertionLabel())
	}
	return header
}

func suggestionRows(ex *models.ExerciseSuggestion, trackExertion bool) [][]string {
	weight := ""
	if ex.SuggestedWeight > 0 {
		weight = strconv.FormatFloat(ex.SuggestedWeight, 'f', -1, 64)
	}
	reps := ""
	if maxReps := parseMaxReps(ex.TargetReps); maxReps > 0 {
		reps = strconv.Itoa(maxReps)
	}

	rows := make([][]string, 0, ex.TargetSets)
	for i := 1; i <= ex.TargetSets; i++ {
		row := []string{strconv.Itoa(i), weight, reps}
		if trackExertion {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return rows
}

// formatSets renders logged sets compactly, "185x8, 185x7".
func formatSets(sets []models.WorkoutSet) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		parts = append(parts, strconv.FormatFloat(s.Weight, 'f', -1, 64)+"x"+strconv.Itoa(s.Reps))
	}
	return strings.Join(parts, ", ")
}
