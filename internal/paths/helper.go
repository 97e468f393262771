package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rzt/internal/transform"
)

// ErrScratchNotOpen is returned when an output path is requested before Open
var ErrScratchNotOpen = errors.New("scratch directory is not open")

// Helper resolves fixture and output paths for one test directory and owns
// the scratch directory that receives program output for a whole run.
type Helper struct {
	sourceBase string
	testsDir   string
	tempDir    string
}

// NewHelper creates a Helper for testsDir, a path relative to sourceBase.
// No scratch directory exists until Open is called.
func NewHelper(sourceBase, testsDir string) *Helper {
	return &Helper{
		sourceBase: filepath.Clean(sourceBase),
		testsDir:   filepath.FromSlash(testsDir),
	}
}

// Open creates the scratch directory. Calling Open twice is an error.
func (h *Helper) Open() error {
	if h.tempDir != "" {
		return fmt.Errorf("scratch directory already open: %s", h.tempDir)
	}
	dir, err := os.MkdirTemp("", "rzt-*")
	if err != nil {
		return fmt.Errorf("create scratch directory: %w", err)
	}
	h.tempDir = dir
	return nil
}

// Close recursively removes the scratch directory. It is safe to call when
// Open was never called or has already been undone.
func (h *Helper) Close() error {
	if h.tempDir == "" {
		return nil
	}
	dir := h.tempDir
	h.tempDir = ""
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove scratch directory: %w", err)
	}
	return nil
}

// TestsDir returns the absolute fixture directory
func (h *Helper) TestsDir() string {
	return filepath.Join(h.sourceBase, h.testsDir)
}

// TempDir returns the scratch directory, or "" when it is not open
func (h *Helper) TempDir() string {
	return h.tempDir
}

// InFile returns the path of a read-only fixture
func (h *Helper) InFile(name string) string {
	return filepath.Join(h.TestsDir(), name)
}

// OutFile returns the path of an output file inside the scratch directory
func (h *Helper) OutFile(name string) (string, error) {
	if h.tempDir == "" {
		return "", ErrScratchNotOpen
	}
	return filepath.Join(h.tempDir, name), nil
}

// StripTransforms returns the transforms removing the fixture directory and
// the scratch directory from produced output, making it host independent.
func (h *Helper) StripTransforms() transform.List {
	l := transform.List{transform.StripPrefix(h.TestsDir() + string(filepath.Separator))}
	if h.tempDir != "" {
		l = append(l, transform.StripPrefix(h.tempDir+string(filepath.Separator)))
	}
	return l
}
