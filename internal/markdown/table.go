package markdown

import "strings"

// Columns maps recognized table semantics to cell indexes. Indexes are
// discovered from header text so tables survive reordered or renamed
// columns; unmatched labels keep their positional defaults.
type Columns struct {
	Exercise    int
	Sets        int
	Reps        int
	Progression int
}

// DefaultColumns is the canonical column order tables are generated in.
func DefaultColumns() Columns {
	return Columns{Exercise: 0, Sets: 1, Reps: 2, Progression: 3}
}

// DetectColumns inspects header cells case-insensitively by substring.
func DetectColumns(header []string) Columns {
	cols := DefaultColumns()
	for i, cell := range header {
		lower := strings.ToLower(cell)
		switch {
		case strings.Contains(lower, "exercise") || strings.Contains(lower, "name"):
			cols.Exercise = i
		case strings.Contains(lower, "set"):
			cols.Sets = i
		case strings.Contains(lower, "rep"):
			cols.Reps = i
		case strings.Contains(lower, "progress"):
			cols.Progression = i
		}
	}
	return cols
}

// Table holds the first pipe table found in a block of text: header cells
// plus data rows, separator row dropped.
type Table struct {
	Header []string
	Rows   [][]string
}

// IsRow reports whether a line is a pipe-table row.
func IsRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// SplitRow splits a pipe-table row into trimmed cells, dropping the empty
// boundary cells produced by the leading and trailing pipes.
func SplitRow(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cell := strings.TrimSpace(part)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// ParseTable locates the first pipe table in text. The table is a header
// row, a separator row (required but otherwise ignored), and data rows,
// terminated by the first non-table, non-blank line or end of input.
// Returns ok=false when the text contains no table rows.
func ParseTable(text string) (Table, bool) {
	var t Table
	started := false
	separatorSeen := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if IsRow(trimmed) {
			switch {
			case !started:
				started = true
				t.Header = SplitRow(trimmed)
			case !separatorSeen:
				separatorSeen = true
			default:
				t.Rows = append(t.Rows, SplitRow(trimmed))
			}
			continue
		}
		if started && trimmed != "" {
			break
		}
	}
	return t, started
}

// RenderTable emits a table with a header row, separator, and one row per
// record, in the canonical column order.
func RenderTable(header []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, cell := range cells {
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	sep := make([]string, len(header))
	for i, cell := range header {
		sep[i] = strings.Repeat("-", max(len(cell)+2, 3))
	}
	b.WriteString("|")
	b.WriteString(strings.Join(sep, "|"))
	b.WriteString("|\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
