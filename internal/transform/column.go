package transform

import "strings"

const (
	// DefaultPairIDColumn is the zero-based index of the pair id column in razers output.
	DefaultPairIDColumn = 8
	// DefaultPairIDMinCols is the field count a line must exceed before the column is dropped.
	DefaultPairIDMinCols = 8
)

// RemoveColumn drops one tab-separated field from every line that has more
// than MinCols fields. Shorter lines (headers, single-end records) pass
// through untouched. It applies to both sides.
type RemoveColumn struct {
	Index   int
	MinCols int
}

// RemovePairID returns the RemoveColumn used for razers output, where paired-end
// records carry a run-dependent pair id.
func RemovePairID() RemoveColumn {
	return RemoveColumn{Index: DefaultPairIDColumn, MinCols: DefaultPairIDMinCols}
}

// Apply implements Transform
func (c RemoveColumn) Apply(text string, _ Side) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(c.applyLine(line))
	}
	return b.String()
}

func (c RemoveColumn) applyLine(line string) string {
	body := strings.TrimSuffix(line, "\n")
	eol := line[len(body):]

	cols := strings.Split(body, "\t")
	if len(cols) <= c.MinCols || c.Index < 0 || c.Index >= len(cols) {
		return line
	}
	cols = append(cols[:c.Index], cols[c.Index+1:]...)
	return strings.Join(cols, "\t") + eol
}
