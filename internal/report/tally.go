package report

import (
	"errors"
	"fmt"

	"rzt/internal/domain"
)

// ErrCasesFailed is returned by Tally.Err when at least one case failed
var ErrCasesFailed = errors.New("test cases failed")

// Tally accumulates case verdicts in the order they are recorded
type Tally struct {
	total    int
	failed   int
	failures []domain.CaseResult
}

// NewTally creates an empty Tally
func NewTally() *Tally {
	return &Tally{}
}

// Record adds one verdict
func (t *Tally) Record(r domain.CaseResult) {
	t.total++
	if !r.Success {
		t.failed++
		t.failures = append(t.failures, r)
	}
}

// CaseFinished lets a Tally observe an executor
func (t *Tally) CaseFinished(r domain.CaseResult) {
	t.Record(r)
}

// Total returns the number of recorded cases
func (t *Tally) Total() int { return t.total }

// Failed returns the number of failed cases
func (t *Tally) Failed() int { return t.failed }

// Passed returns the number of successful cases
func (t *Tally) Passed() int { return t.total - t.failed }

// Failures returns the failed results in record order
func (t *Tally) Failures() []domain.CaseResult { return t.failures }

// ExitCode is 0 when nothing failed and 1 otherwise
func (t *Tally) ExitCode() int {
	if t.failed > 0 {
		return 1
	}
	return 0
}

// Err returns nil when nothing failed, otherwise an error wrapping ErrCasesFailed
func (t *Tally) Err() error {
	if t.failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d: %w", t.failed, t.total, ErrCasesFailed)
}
