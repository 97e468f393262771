package compare

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"rzt/internal/domain"
	"rzt/internal/transform"
)

// Text reports whether the normalized texts are equal. When they differ the
// returned diff shows the golden side as "-" and the produced side as "+".
func Text(expected, actual string) (bool, string) {
	if expected == actual {
		return true, ""
	}
	return false, cmp.Diff(expected, actual)
}

// Files reads both sides of pair, normalizes them and compares the result.
// It returns nil when they match.
func Files(pair domain.DiffPair) *domain.Mismatch {
	expected, err := os.ReadFile(pair.Expected)
	if err != nil {
		return &domain.Mismatch{
			Expected: pair.Expected,
			Actual:   pair.Actual,
			Reason:   fmt.Sprintf("read expected file: %v", err),
		}
	}
	actual, err := os.ReadFile(pair.Actual)
	if err != nil {
		return &domain.Mismatch{
			Expected: pair.Expected,
			Actual:   pair.Actual,
			Reason:   fmt.Sprintf("read actual file: %v", err),
		}
	}

	left := pair.Transforms.Apply(string(expected), transform.Left)
	right := pair.Transforms.Apply(string(actual), transform.Right)
	if ok, diff := Text(left, right); !ok {
		return &domain.Mismatch{
			Expected: pair.Expected,
			Actual:   pair.Actual,
			Reason:   "content differs",
			Diff:     diff,
		}
	}
	return nil
}
