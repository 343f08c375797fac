package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

func TestStateRepo_RestoreEmpty(t *testing.T) {
	repo := NewStateRepo(setupTestDB(t))

	state, err := repo.Restore(context.Background())

	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.LastRun.IsZero())
	assert.Empty(t, state.MarkedStale)
}

func TestStateRepo_PersistAndRestore(t *testing.T) {
	repo := NewStateRepo(setupTestDB(t))
	ctx := context.Background()

	state := model.NewRunState()
	state.LastRun = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	state.MarkStale(7, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	state.MarkStale(12, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Persist(ctx, state))

	restored, err := repo.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.LastRun, restored.LastRun)
	assert.Equal(t, state.MarkedStale, restored.MarkedStale)
}

func TestStateRepo_PersistReplacesPriorState(t *testing.T) {
	repo := NewStateRepo(setupTestDB(t))
	ctx := context.Background()

	first := model.NewRunState()
	first.LastRun = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	first.MarkStale(7, first.LastRun)
	require.NoError(t, repo.Persist(ctx, first))

	second := model.NewRunState()
	second.LastRun = time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	second.MarkStale(12, second.LastRun)
	require.NoError(t, repo.Persist(ctx, second))

	restored, err := repo.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.LastRun, restored.LastRun)
	assert.NotContains(t, restored.MarkedStale, 7, "cleared marks do not survive")
	assert.Contains(t, restored.MarkedStale, 12)
}
