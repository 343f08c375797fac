package driven

import (
	"context"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

// StateStore defines the driven port for cross-run bookkeeping. Restore and
// Persist bracket the processor's execution; nothing else touches the store.
type StateStore interface {
	// Restore loads the previous run's state. A store with no prior state
	// returns an empty RunState, not an error.
	Restore(ctx context.Context) (*model.RunState, error)

	// Persist saves the state produced by this run, replacing the prior one.
	Persist(ctx context.Context, state *model.RunState) error
}
