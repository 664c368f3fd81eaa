// Package catalog holds the in-memory exercise and template collections.
// Each catalog is a map rebuilt wholesale from vault documents on LoadAll;
// reloads are not safe to run concurrently with themselves and must be
// serialized by the caller.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/gricha/obsidian-gym-tracker/internal/markdown"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"github.com/gricha/obsidian-gym-tracker/internal/vault"
)

// Exercises is the exercise catalog.
type Exercises struct {
	vault    vault.Vault
	settings models.Settings
	log      *slog.Logger
	cache    map[string]models.Exercise
}

// NewExercises creates an empty exercise catalog over the given vault.
func NewExercises(v vault.Vault, settings models.Settings, log *slog.Logger) *Exercises {
	return &Exercises{
		vault:    v,
		settings: settings,
		log:      log,
		cache:    make(map[string]models.Exercise),
	}
}

type exerciseFrontmatter struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Muscles      models.Muscles `yaml:"muscles"`
	Type         string         `yaml:"type"`
	Equipment    string         `yaml:"equipment"`
	Alternatives []string       `yaml:"alternatives,omitempty"`
}

// ParseExercise converts an exercise document into an Exercise. The
// fallbackID (filename-derived) fills in a missing frontmatter id and
// name. Returns markdown.ErrNotRecognized for non-exercise documents.
func ParseExercise(content, fallbackID string) (*models.Exercise, error) {
	var fm exerciseFrontmatter
	body, err := markdown.DecodeFrontmatter(content, &fm)
	if err != nil {
		return nil, err
	}

	ex := models.Exercise{
		ID:           fm.ID,
		Name:         fm.Name,
		Muscles:      fm.Muscles,
		Type:         fm.Type,
		Equipment:    fm.Equipment,
		Alternatives: fm.Alternatives,
		Description:  strings.TrimSpace(body),
	}
	if ex.ID == "" {
		ex.ID = fallbackID
	}
	if ex.Name == "" {
		ex.Name = fallbackID
	}
	if ex.Type == "" {
		ex.Type = "isolation"
	}
	if ex.Equipment == "" {
		ex.Equipment = "other"
	}
	return &ex, nil
}

// GenerateExercise renders an Exercise back into document text.
func GenerateExercise(ex models.Exercise) (string, error) {
	header, err := markdown.EncodeFrontmatter(exerciseFrontmatter{
		ID:           ex.ID,
		Name:         ex.Name,
		Muscles:      ex.Muscles,
		Type:         ex.Type,
		Equipment:    ex.Equipment,
		Alternatives: ex.Alternatives,
	})
	if err != nil {
		return "", err
	}
	return header + "\n" + ex.Description + "\n", nil
}

// LoadAll clears the cache and rebuilds it from the exercises folder.
// Documents that fail recognition or header decoding are logged and
// skipped, never propagated.
func (c *Exercises) LoadAll(ctx context.Context) (map[string]models.Exercise, error) {
	c.cache = make(map[string]models.Exercise)

	res, err := c.vault.List(ctx, c.settings.ExercisesFolder)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	if res.Kind != vault.KindFolder {
		return c.cache, nil
	}

	for _, f := range res.Files {
		content, err := c.vault.Read(ctx, f.Path)
		if err != nil {
			c.log.Warn("skipping unreadable exercise document", "path", f.Path, "error", err)
			continue
		}
		ex, err := ParseExercise(content, strings.TrimSuffix(f.Name, ".md"))
		if err != nil {
			c.log.Warn("skipping unparseable exercise document", "path", f.Path, "error", err)
			continue
		}
		c.cache[ex.ID] = *ex
	}
	return c.cache, nil
}

// Create writes a new exercise document and inserts it into the cache.
// Duplicate IDs are the calling layer's concern; an existing document is
// overwritten.
func (c *Exercises) Create(ctx context.Context, ex models.Exercise) error {
	exists, err := c.vault.FolderExists(ctx, c.settings.ExercisesFolder)
	if err != nil {
		return err
	}
	if !exists {
		if err := c.vault.CreateFolder(ctx, c.settings.ExercisesFolder); err != nil {
			return err
		}
	}

	content, err := GenerateExercise(ex)
	if err != nil {
		return err
	}
	if err := c.vault.Write(ctx, c.documentPath(ex.ID), content); err != nil {
		return err
	}
	c.cache[ex.ID] = ex
	return nil
}

func (c *Exercises) documentPath(id string) string {
	return path.Join(c.settings.ExercisesFolder, id+".md")
}

// GetByID looks up an exercise in the cache.
func (c *Exercises) GetByID(id string) (models.Exercise, bool) {
	ex, ok := c.cache[id]
	return ex, ok
}

// GetAll returns the cached exercises sorted by ID.
func (c *Exercises) GetAll() []models.Exercise {
	all := make([]models.Exercise, 0, len(c.cache))
	for _, ex := range c.cache {
		all = append(all, ex)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// GetAllByMuscle returns exercises whose primary or secondary muscles
// include the given tag.
func (c *Exercises) GetAllByMuscle(muscle string) []models.Exercise {
	var out []models.Exercise
	for _, ex := range c.GetAll() {
		if containsTag(ex.Muscles.Primary, muscle) || containsTag(ex.Muscles.Secondary, muscle) {
			out = append(out, ex)
		}
	}
	return out
}

// Search matches the query case-insensitively against name, id, primary
// muscles, and equipment. Linear scan; catalogs stay small.
func (c *Exercises) Search(query string) []models.Exercise {
	q := strings.ToLower(query)
	var out []models.Exercise
	for _, ex := range c.GetAll() {
		if strings.Contains(strings.ToLower(ex.Name), q) ||
			strings.Contains(strings.ToLower(ex.ID), q) ||
			anyContains(ex.Muscles.Primary, q) ||
			strings.Contains(strings.ToLower(ex.Equipment), q) {
			out = append(out, ex)
		}
	}
	return out
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func anyContains(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
