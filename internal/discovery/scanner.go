package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner finds golden output files in a fixture directory
type Scanner struct {
	prefixes []string
}

// NewScanner creates a Scanner matching files whose names start with one of prefixes
func NewScanner(prefixes []string) *Scanner {
	return &Scanner{prefixes: prefixes}
}

// Scan returns the golden files directly inside root, sorted by name
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("tests path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tests path is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read tests path: %w", err)
	}

	var golden []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if s.matches(name) {
			golden = append(golden, filepath.Join(root, name))
		}
	}
	return golden, nil
}

func (s *Scanner) matches(name string) bool {
	for _, p := range s.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
