package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rzt/internal/domain"
)

// BuildOutput summarizes results into a run report
func BuildOutput(program string, results []domain.CaseResult, duration time.Duration) *domain.RunOutput {
	details := make([]domain.FailureRecord, 0)
	for _, r := range results {
		if !r.Success {
			details = append(details, domain.NewFailureRecord(r))
		}
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			Program:         program,
			TotalCases:      len(results),
			FailedCases:     len(details),
			PassedCases:     len(results) - len(details),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}
}

// Save writes a report for results to the configured JSON file.
func (s *JSONStorage) Save(program string, results []domain.CaseResult, duration time.Duration) error {
	return s.SaveOutput(BuildOutput(program, results, duration))
}

// Load reads a report from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
