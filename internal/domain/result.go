package domain

import "time"

// Mismatch describes why one DiffPair did not compare equal
type Mismatch struct {
	Expected string `json:"expected"`       // Golden file path
	Actual   string `json:"actual"`         // Produced file path
	Reason   string `json:"reason"`         // Short human readable cause
	Diff     string `json:"diff,omitempty"` // Rendered diff of the normalized contents, empty if a file was unreadable
}

// CaseResult represents the outcome of executing one test case
type CaseResult struct {
	Case       TestCase      // The case that was executed
	Success    bool          // Process exited cleanly and every comparison matched
	ExitErr    error         // Spawn or exit error, nil when the process exited with status 0
	Mismatches []Mismatch    // Failed comparisons
	Stdout     string        // Captured stdout when the case has no redirect target
	Stderr     string        // Captured stderr
	Duration   time.Duration // Time taken to run and compare
}

// RunMeta contains summary data about a suite run
type RunMeta struct {
	Program         string  `json:"program"`
	TotalCases      int     `json:"total_cases"`
	FailedCases     int     `json:"failed_cases"`
	PassedCases     int     `json:"passed_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete JSON run report
type RunOutput struct {
	Meta    RunMeta         `json:"meta"`
	Details []FailureRecord `json:"details"`
}
