// Package markdown implements the structured-document and table codecs
// shared by every parser and generator in the tracker: frontmatter
// splitting and rendering, pipe-table parsing with discovered column
// order, and exercise-reference resolution.
package markdown

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotRecognized is returned when a document does not start with a
// frontmatter block. Callers treat it as "not a document of this kind".
var ErrNotRecognized = errors.New("no frontmatter block recognized")

const frontmatterOpen = "---\n"

// SplitFrontmatter separates a document into its raw frontmatter block
// and the body after the closing marker.
func SplitFrontmatter(content string) (header, body string, err error) {
	if !strings.HasPrefix(content, frontmatterOpen) {
		return "", "", ErrNotRecognized
	}
	rest := content[len(frontmatterOpen):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", "", ErrNotRecognized
	}
	return rest[:end], rest[end+len("\n---"):], nil
}

// DecodeFrontmatter splits content and unmarshals the frontmatter into v,
// returning the body. A malformed header fails with a decode error that
// callers downgrade to a recognition failure.
func DecodeFrontmatter(content string, v any) (body string, err error) {
	header, body, err := SplitFrontmatter(content)
	if err != nil {
		return "", err
	}
	if err := yaml.Unmarshal([]byte(header), v); err != nil {
		return "", fmt.Errorf("decoding frontmatter: %w", err)
	}
	return body, nil
}

// EncodeFrontmatter marshals v and wraps it in marker lines. Field order
// follows the struct definition, so re-parsing yields the same values
// even though the text may differ byte-for-byte from its source.
func EncodeFrontmatter(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}
	return "---\n" + string(data) + "---\n", nil
}
