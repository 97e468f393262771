package domain

import (
	"path/filepath"
	"strings"

	"rzt/internal/transform"
)

// DiffPair is one golden/produced file comparison within a test case
type DiffPair struct {
	Expected   string         // Golden file under the source tree
	Actual     string         // File written by the program under test
	Transforms transform.List // Normalization applied before comparing, may be empty
}

// TestCase describes a single invocation of the program under test.
// It holds no live resources and is not modified once built.
type TestCase struct {
	Name        string     // Case identifier, used for filtering and reporting
	Program     string     // Path to the executable
	Args        []string   // Arguments passed to the program
	RedirStdout string     // File receiving stdout, empty to capture it in the result
	Diffs       []DiffPair // Comparisons performed after the program exits
}

// CommandLine renders the program base name followed by its arguments
func (tc TestCase) CommandLine() string {
	parts := make([]string, 0, len(tc.Args)+1)
	parts = append(parts, strings.TrimSuffix(filepath.Base(tc.Program), ".exe"))
	parts = append(parts, tc.Args...)
	return strings.Join(parts, " ")
}

// Suite is an ordered list of test cases. Order only affects reporting.
type Suite []TestCase

// Names returns the case names in suite order
func (s Suite) Names() []string {
	names := make([]string, len(s))
	for i, tc := range s {
		names[i] = tc.Name
	}
	return names
}
