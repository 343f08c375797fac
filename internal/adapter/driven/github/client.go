// Package github implements the GitHubClient and GitHubMutator ports using
// the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
	"github.com/ericfisherdev/stalesweep/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubClient = (*Client)(nil)

// Client implements the driven.GitHubClient port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient).WithAuthToken(token)

	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// SearchItems retrieves open issues and pull requests matching a compiled
// search query, sorted by update time. It handles pagination automatically
// and maps go-github types to domain model types. At most limit items are
// returned; limit <= 0 means no cap.
func (c *Client) SearchItems(ctx context.Context, query string, ascending bool, limit int) ([]model.Item, error) {
	order := "desc"
	if ascending {
		order = "asc"
	}

	opts := &gh.SearchOptions{
		Sort:  "updated",
		Order: order,
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var allItems []model.Item

	for {
		result, resp, err := c.gh.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, fmt.Errorf("searching issues with %q (page %d): %w", query, opts.Page, err)
		}

		logRateLimit(resp, "search", opts.Page, len(result.Issues))

		for _, issue := range result.Issues {
			allItems = append(allItems, mapIssue(issue))
			if limit > 0 && len(allItems) >= limit {
				return allItems, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allItems, nil
}

// ListItems retrieves the repository's open issues and pull requests sorted
// by creation time. It handles pagination automatically and maps go-github
// types to domain model types.
func (c *Client) ListItems(ctx context.Context, repo model.Repo, ascending bool) ([]model.Item, error) {
	direction := "desc"
	if ascending {
		direction = "asc"
	}

	opts := &gh.IssueListByRepoOptions{
		State:     "open",
		Sort:      "created",
		Direction: direction,
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var allItems []model.Item

	for {
		issues, resp, err := c.gh.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("listing issues for %s (page %d): %w", repo.FullName(), opts.ListOptions.Page, err)
		}

		logRateLimit(resp, repo.FullName(), opts.ListOptions.Page, len(issues))

		for _, issue := range issues {
			allItems = append(allItems, mapIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	if allItems == nil {
		allItems = []model.Item{}
	}

	return allItems, nil
}

// RateLimit returns a snapshot of the core API rate limit.
func (c *Client) RateLimit(ctx context.Context) (*model.RateLimit, error) {
	limits, _, err := c.gh.RateLimit.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching rate limit: %w", err)
	}

	core := limits.GetCore()
	if core == nil {
		return nil, fmt.Errorf("rate limit response missing core resource")
	}

	return &model.RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Reset:     core.Reset.Time,
	}, nil
}

// mapIssue converts a go-github Issue (which covers pull requests too) to a
// domain model Item. It uses GetXxx() helper methods exclusively to avoid
// nil pointer panics.
func mapIssue(issue *gh.Issue) model.Item {
	kind := model.ItemKindIssue
	if issue.IsPullRequest() {
		kind = model.ItemKindPullRequest
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	assignees := make([]string, 0, len(issue.Assignees))
	for _, a := range issue.Assignees {
		assignees = append(assignees, a.GetLogin())
	}

	return model.Item{
		Kind:      kind,
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Labels:    labels,
		Assignees: assignees,
		Milestone: issue.GetMilestone().GetTitle(),
		IsDraft:   issue.GetDraft(),
		URL:       issue.GetHTMLURL(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}
