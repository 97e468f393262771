package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rzt/internal/domain"
)

func TestSequential_RunsInOrder(t *testing.T) {
	f := newFixture(t)
	broken := f.tc
	broken.Name = "broken"
	broken.Diffs = []domain.DiffPair{{Expected: f.helper.InFile("missing.razers"), Actual: f.tc.Diffs[0].Actual}}

	suite := domain.Suite{f.tc, broken, f.tc}

	var seen []string
	exec := NewSequential(NewRunner(nil), nil)
	exec.AddObserver(ObserverFunc(func(r domain.CaseResult) { seen = append(seen, r.Case.Name) }))

	results, _, err := exec.Execute(context.Background(), suite)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"identity95", "broken", "identity95"}, seen)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success)
}

func TestSequential_FailFast(t *testing.T) {
	f := newFixture(t)
	broken := f.tc
	broken.Name = "broken"
	broken.Diffs = []domain.DiffPair{{Expected: f.helper.InFile("missing.razers"), Actual: f.tc.Diffs[0].Actual}}

	exec := NewSequential(NewRunner(nil), nil)
	exec.SetFailFast(true)

	results, _, err := exec.Execute(context.Background(), domain.Suite{broken, f.tc})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSequential_Cancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, _, err := NewSequential(NewRunner(nil), nil).Execute(ctx, domain.Suite{f.tc})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, results)
}
