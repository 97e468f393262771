package execution

import (
	"context"
	"time"

	"rzt/internal/domain"
)

// Executor executes a suite and returns results in suite order
type Executor interface {
	Execute(ctx context.Context, suite domain.Suite) ([]domain.CaseResult, time.Duration, error)
}

// Observer is notified after every case finishes
type Observer interface {
	CaseFinished(result domain.CaseResult)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(result domain.CaseResult)

// CaseFinished implements Observer
func (f ObserverFunc) CaseFinished(result domain.CaseResult) {
	f(result)
}
