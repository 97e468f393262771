package execution

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"rzt/internal/domain"
)

// Sequential runs test cases one after another
type Sequential struct {
	runner    *Runner
	observers []Observer
	failFast  bool
	logger    *log.Logger
}

// NewSequential creates a new Sequential executor
func NewSequential(runner *Runner, logger *log.Logger) *Sequential {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sequential{runner: runner, logger: logger}
}

// AddObserver registers an observer, called in registration order
func (s *Sequential) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// SetFailFast stops the run after the first failing case when enabled
func (s *Sequential) SetFailFast(failFast bool) {
	s.failFast = failFast
}

// Execute runs every case to completion before starting the next. A
// cancelled context aborts the run and is returned as an error; failing
// cases are not errors.
func (s *Sequential) Execute(ctx context.Context, suite domain.Suite) ([]domain.CaseResult, time.Duration, error) {
	startTime := time.Now()
	results := make([]domain.CaseResult, 0, len(suite))

	for i, tc := range suite {
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), fmt.Errorf("run aborted before %s: %w", tc.Name, err)
		}

		result := s.runner.Run(ctx, tc)
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), fmt.Errorf("run aborted during %s: %w", tc.Name, err)
		}

		results = append(results, result)
		for _, o := range s.observers {
			o.CaseFinished(result)
		}

		if s.failFast && !result.Success {
			s.logger.Warn("stopping after first failure", "case", tc.Name, "remaining", len(suite)-i-1)
			break
		}
	}

	return results, time.Since(startTime), nil
}
