package driven

import (
	"context"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

// GitHubMutator defines the driven port for GitHub write operations.
// It is intentionally separate from GitHubClient (read operations) following
// the Interface Segregation Principle; the debug-only run mode swaps in a
// no-op implementation.
type GitHubMutator interface {
	// AddLabels adds the given labels to an issue or pull request.
	AddLabels(ctx context.Context, repo model.Repo, number int, labels []string) error

	// RemoveLabel removes a single label from an issue or pull request.
	// Removing a label the item does not carry is not an error.
	RemoveLabel(ctx context.Context, repo model.Repo, number int, label string) error

	// CreateComment posts a comment on an issue or pull request.
	CreateComment(ctx context.Context, repo model.Repo, number int, body string) error

	// CloseItem closes an issue or pull request. The reason is recorded on
	// issues only; GitHub does not accept state reasons on pull requests.
	CloseItem(ctx context.Context, repo model.Repo, item model.Item, reason model.CloseReason) error

	// DeleteHeadBranch deletes a closed pull request's head branch.
	DeleteHeadBranch(ctx context.Context, repo model.Repo, item model.Item) error
}
