// Package driven defines the driven ports (outbound interfaces) of the
// application core.
package driven

import (
	"context"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

// GitHubClient defines the driven port for GitHub read operations.
type GitHubClient interface {
	// SearchItems returns open issues and pull requests matching a compiled
	// search query, sorted by update time in the given order. At most limit
	// items are returned; limit <= 0 means no cap.
	SearchItems(ctx context.Context, query string, ascending bool, limit int) ([]model.Item, error)

	// ListItems returns the repository's open issues and pull requests
	// sorted by creation time in the given order.
	ListItems(ctx context.Context, repo model.Repo, ascending bool) ([]model.Item, error)

	// RateLimit returns a snapshot of the core API rate limit.
	RateLimit(ctx context.Context) (*model.RateLimit, error)
}
