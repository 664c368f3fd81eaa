package markdown

import (
	"regexp"
	"strings"
)

var (
	wikiLinkRe = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]+)?\]\]`)
	slugRunRe  = regexp.MustCompile(`[^a-z0-9]+`)
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// Slug derives a stable identifier from free text: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, edges trimmed.
// Idempotent: Slug(Slug(x)) == Slug(x).
func Slug(s string) string {
	s = slugRunRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// NormalizeType lowercases a workout-type heading and joins words with
// hyphens ("Full Body" -> "full-body").
func NormalizeType(s string) string {
	return spaceRunRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// ExerciseRef resolves a table cell or heading into an exercise ID.
// Bracket links ([[id]] or [[id|Display Name]]) yield the id segment
// verbatim; plain text is slugified. Returns ok=false for cells that
// resolve to nothing.
func ExerciseRef(cell string) (string, bool) {
	if m := wikiLinkRe.FindStringSubmatch(cell); m != nil {
		return m[1], true
	}
	if slug := Slug(cell); slug != "" {
		return slug, true
	}
	return "", false
}

// WikiLink renders an exercise ID as a bracket link.
func WikiLink(id string) string {
	return "[[" + id + "]]"
}
