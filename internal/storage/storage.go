package storage

import (
	"time"

	"rzt/internal/domain"
)

// Storage persists and loads run reports (e.g. for the failures viewer).
type Storage interface {
	Save(program string, results []domain.CaseResult, duration time.Duration) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after marking failures reviewed).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores a run report in one JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage returns a Storage that reads/writes path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the report file location
func (s *JSONStorage) Path() string {
	return s.path
}
