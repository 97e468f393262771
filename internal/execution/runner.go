package execution

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"rzt/internal/compare"
	"rzt/internal/domain"
)

// Runner executes a single test case
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a new Runner
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger}
}

// Run spawns the program of tc, waits for it and compares every diff pair.
// Failures are reported in the result, never as an error.
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) domain.CaseResult {
	start := time.Now()
	result := domain.CaseResult{Case: tc}

	stdout, stderr, err := r.spawn(ctx, tc)
	result.Stdout = stdout
	result.Stderr = stderr
	if err != nil {
		result.ExitErr = err
		result.Duration = time.Since(start)
		r.logger.Debug("program failed", "case", tc.Name, "err", err, "stderr", stderr)
		return result
	}

	for _, pair := range tc.Diffs {
		if m := compare.Files(pair); m != nil {
			result.Mismatches = append(result.Mismatches, *m)
			r.logger.Debug("comparison failed", "case", tc.Name, "expected", m.Expected, "actual", m.Actual, "reason", m.Reason)
			if m.Diff != "" {
				r.logger.Debug("diff (-expected +actual)\n" + m.Diff)
			}
		}
	}

	result.Success = len(result.Mismatches) == 0
	result.Duration = time.Since(start)
	return result
}

func (r *Runner) spawn(ctx context.Context, tc domain.TestCase) (string, string, error) {
	cmd := exec.CommandContext(ctx, tc.Program, tc.Args...)
	r.logger.Debug("running", "cmd", tc.CommandLine())

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if tc.RedirStdout != "" {
		f, err := os.Create(tc.RedirStdout)
		if err != nil {
			return "", "", fmt.Errorf("open stdout redirect: %w", err)
		}
		defer f.Close()
		cmd.Stdout = f
	} else {
		cmd.Stdout = &stdoutBuf
	}

	if err := cmd.Run(); err != nil {
		return stdoutBuf.String(), stderrBuf.String(), fmt.Errorf("run %s: %w", tc.Name, err)
	}
	return stdoutBuf.String(), stderrBuf.String(), nil
}
