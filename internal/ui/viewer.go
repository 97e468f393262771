package ui

import "rzt/internal/domain"

// Viewer displays a run report
type Viewer interface {
	View(results *domain.RunOutput) error
}
