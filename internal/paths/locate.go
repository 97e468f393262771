package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrBinaryNotFound is returned when no candidate executable exists
	ErrBinaryNotFound = errors.New("binary not found")
	// ErrAmbiguousBinary is returned when more than one candidate executable exists
	ErrAmbiguousBinary = errors.New("more than one binary found")
)

// candidateDirs lists the build layouts searched below the binary root
func candidateDirs(root, projectPath string) []string {
	project := filepath.Join(root, filepath.FromSlash(projectPath))
	return []string{
		filepath.Join(root, "bin"),
		filepath.Join(root, "bin", "Release"),
		filepath.Join(root, "bin", "Debug"),
		project,
		filepath.Join(project, "Release"),
		filepath.Join(project, "Debug"),
	}
}

// LocateBinary finds the single executable called name below root. Both the
// top-level bin directory and the project build directory are searched, with
// Release/Debug subdirectories for multi-config generators.
func LocateBinary(root, projectPath, name string) (string, error) {
	names := []string{name}
	if !strings.HasSuffix(name, ".exe") {
		names = append(names, name+".exe")
	}

	var found []string
	seen := make(map[string]bool)
	for _, dir := range candidateDirs(root, projectPath) {
		for _, n := range names {
			path := filepath.Join(dir, n)
			if !isExecutable(path) {
				continue
			}
			key := path
			if resolved, err := filepath.EvalSymlinks(path); err == nil {
				key = resolved
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			found = append(found, path)
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s under %s", ErrBinaryNotFound, name, root)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousBinary, strings.Join(found, ", "))
	}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return strings.EqualFold(filepath.Ext(path), ".exe")
	}
	return info.Mode().Perm()&0111 != 0
}
