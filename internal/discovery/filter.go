package discovery

import (
	"path/filepath"
	"strings"

	"rzt/internal/domain"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the cases whose name matches pattern.
// Supports patterns like "pe-*" or "*-of4", and plain substrings like "reads100".
func (f *Filter) FilterByName(suite domain.Suite, pattern string) domain.Suite {
	if pattern == "" {
		return suite
	}

	var filtered domain.Suite
	for _, tc := range suite {
		if matchName(pattern, tc.Name) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

func matchName(pattern, name string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*-i9*" style patterns: every literal part must appear, in order
	rest := name
	nonEmpty := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		nonEmpty = true
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return nonEmpty
}
