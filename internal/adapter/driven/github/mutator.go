package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v82/github"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
	"github.com/ericfisherdev/stalesweep/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubMutator = (*Client)(nil)

// AddLabels adds the given labels to an issue or pull request.
func (c *Client) AddLabels(ctx context.Context, repo model.Repo, number int, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	_, _, err := c.gh.Issues.AddLabelsToIssue(ctx, repo.Owner, repo.Name, number, labels)
	if err != nil {
		return fmt.Errorf("adding labels %v to %s#%d: %w", labels, repo.FullName(), number, err)
	}

	return nil
}

// RemoveLabel removes a single label from an issue or pull request. A 404
// (label not on the item) is swallowed so un-staling an item someone already
// relabeled by hand does not fail the run.
func (c *Client) RemoveLabel(ctx context.Context, repo model.Repo, number int, label string) error {
	_, err := c.gh.Issues.RemoveLabelForIssue(ctx, repo.Owner, repo.Name, number, label)
	if err != nil {
		var ghErr *gh.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("removing label %q from %s#%d: %w", label, repo.FullName(), number, err)
	}

	return nil
}

// CreateComment posts a comment on an issue or pull request.
func (c *Client) CreateComment(ctx context.Context, repo model.Repo, number int, body string) error {
	_, _, err := c.gh.Issues.CreateComment(ctx, repo.Owner, repo.Name, number, &gh.IssueComment{
		Body: gh.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("creating comment on %s#%d: %w", repo.FullName(), number, err)
	}

	return nil
}

// CloseItem closes an issue or pull request. Issues carry the configured
// state reason; pull requests are closed through the Issues API without one,
// since GitHub rejects state reasons on pull requests.
func (c *Client) CloseItem(ctx context.Context, repo model.Repo, item model.Item, reason model.CloseReason) error {
	req := &gh.IssueRequest{State: gh.Ptr("closed")}
	if !item.IsPullRequest() && reason != model.CloseReasonDefault {
		req.StateReason = gh.Ptr(string(reason))
	}

	_, _, err := c.gh.Issues.Edit(ctx, repo.Owner, repo.Name, item.Number, req)
	if err != nil {
		return fmt.Errorf("closing %s#%d: %w", repo.FullName(), item.Number, err)
	}

	return nil
}

// DeleteHeadBranch deletes a pull request's head branch. The head ref is
// fetched on demand because the Issues API listing the candidates does not
// carry it. Cross-repository (fork) heads are left alone.
func (c *Client) DeleteHeadBranch(ctx context.Context, repo model.Repo, item model.Item) error {
	if !item.IsPullRequest() {
		return fmt.Errorf("cannot delete branch of %s#%d: not a pull request", repo.FullName(), item.Number)
	}

	pr, _, err := c.gh.PullRequests.Get(ctx, repo.Owner, repo.Name, item.Number)
	if err != nil {
		return fmt.Errorf("fetching head ref for %s#%d: %w", repo.FullName(), item.Number, err)
	}

	if pr.GetHead().GetRepo().GetFullName() != repo.FullName() {
		return nil
	}

	ref := "heads/" + pr.GetHead().GetRef()
	if _, err := c.gh.Git.DeleteRef(ctx, repo.Owner, repo.Name, ref); err != nil {
		return fmt.Errorf("deleting branch %q of %s#%d: %w", pr.GetHead().GetRef(), repo.FullName(), item.Number, err)
	}

	return nil
}
