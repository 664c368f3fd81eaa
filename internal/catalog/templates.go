package catalog

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

// Template-table defaults. Templates are hand-written blueprints, so an
// unparseable set count falls back to a usable prescription instead of
// zero; program tables default to 0 instead (see the program package).
const (
	defaultTemplateSets = 3
	defaultTemplateReps = "8-12"
)

// Templates is the workout-template catalog.
type Templates struct {
	vault    vault.Vault
	settings models.Settings
	log      *slog.Logger
	cache    map[string]models.WorkoutTemplate
}

// NewTemplates creates an empty template catalog over the given vault.
func NewTemplates(v vault.Vault, settings models.Settings, log *slog.Logger) *Templates {
	return &Templates{
		vault:    v,
		settings: settings,
		log:      log,
		cache:    make(map[string]models.WorkoutTemplate),
	}
}

type templateFrontmatter struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ParseTemplate converts a template document into a WorkoutTemplate. The
// id is filename-derived, not stored in the document.
func ParseTemplate(content, id string) (*models.WorkoutTemplate, error) {
	var fm templateFrontmatter
	body, err := markdown.DecodeFrontmatter(content, &fm)
	if err != nil {
		return nil, err
	}

	tpl := models.WorkoutTemplate{
		ID:        id,
		Name:      fm.Name,
		Type:      fm.Type,
		Exercises: parseTemplateTable(body),
	}
	if tpl.Name == "" {
		tpl.Name = id
	}
	return &tpl, nil
}

func parseTemplateTable(body string) []models.TemplateExercise {
	table, ok := markdown.ParseTable(body)
	if !ok {
		return nil
	}
	cols := markdown.DetectColumns(table.Header)

	var exercises []models.TemplateExercise
	for _, row := range table.Rows {
		id, ok := markdown.ExerciseRef(cell(row, cols.Exercise))
		if !ok {
			continue
		}
		sets, err := strconv.Atoi(cell(row, cols.Sets))
		if err != nil || sets == 0 {
			sets = defaultTemplateSets
		}
		reps := cell(row, cols.Reps)
		if reps == "" {
			reps = defaultTemplateReps
		}
		exercises = append(exercises, models.TemplateExercise{
			ExerciseID: id,
			Sets:       sets,
			Reps:       reps,
		})
	}
	return exercises
}

// GenerateTemplate renders a WorkoutTemplate back into document text.
func GenerateTemplate(tpl models.WorkoutTemplate) (string, error) {
	header, err := markdown.EncodeFrontmatter(templateFrontmatter{
		Name: tpl.Name,
		Type: tpl.Type,
	})
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(tpl.Exercises))
	for _, ex := range tpl.Exercises {
		rows = append(rows, []string{
			markdown.WikiLink(ex.ExerciseID),
			strconv.Itoa(ex.Sets),
			ex.Reps,
		})
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n## Exercises\n\n")
	b.WriteString(markdown.RenderTable([]string{"Exercise", "Sets", "Reps"}, rows))
	return b.String(), nil
}

// LoadAll clears the cache and rebuilds it from the templates folder.
func (c *Templates) LoadAll(ctx context.Context) (map[string]models.WorkoutTemplate, error) {
	c.cache = make(map[string]models.WorkoutTemplate)

	res, err := c.vault.List(ctx, c.settings.TemplatesFolder)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	if res.Kind != vault.KindFolder {
		return c.cache, nil
	}

	for _, f := range res.Files {
		content, err := c.vault.Read(ctx, f.Path)
		if err != nil {
			c.log.Warn("skipping unreadable template document", "path", f.Path, "error", err)
			continue
		}
		tpl, err := ParseTemplate(content, strings.TrimSuffix(f.Name, ".md"))
		if err != nil {
			c.log.Warn("skipping unparseable template document", "path", f.Path, "error", err)
			continue
		}
		c.cache[tpl.ID] = *tpl
	}
	return c.cache, nil
}

// Create writes a template document. An existing document at the target
// path is overwritten and the cache entry replaced.
func (c *Templates) Create(ctx context.Context, tpl models.WorkoutTemplate) error {
	exists, err := c.vault.FolderExists(ctx, c.settings.TemplatesFolder)
	if err != nil {
		return err
	}
	if !exists {
		if err := c.vault.CreateFolder(ctx, c.settings.TemplatesFolder); err != nil {
			return err
		}
	}

	content, err := GenerateTemplate(tpl)
	if err != nil {
		return err
	}
	if err := c.vault.Write(ctx, c.documentPath(tpl.ID), content); err != nil {
		return err
	}
	c.cache[tpl.ID] = tpl
	return nil
}

// Delete removes a template document and its cache entry. Tolerant of the
// document already being absent.
func (c *Templates) Delete(ctx context.Context, id string) error {
	if err := c.vault.Delete(ctx, c.documentPath(id)); err != nil {
		return err
	}
	delete(c.cache, id)
	return nil
}

func (c *Templates) documentPath(id string) string {
	return path.Join(c.settings.TemplatesFolder, id+".md")
}

// GetByID looks up a template in the cache.
func (c *Templates) GetByID(id string) (models.WorkoutTemplate, bool) {
	tpl, ok := c.cache[id]
	return tpl, ok
}

// GetAll returns the cached templates sorted by ID.
func (c *Templates) GetAll() []models.WorkoutTemplate {
	all := make([]models.WorkoutTemplate, 0, len(c.cache))
	for _, tpl := range c.cache {
		all = append(all, tpl)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// GetByType returns templates whose type matches exactly.
func (c *Templates) GetByType(workoutType string) []models.WorkoutTemplate {
	var out []models.WorkoutTemplate
	for _, tpl := range c.GetAll() {
		if tpl.Type == workoutType {
			out = append(out, tpl)
		}
	}
	return out
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
