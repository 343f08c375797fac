package model

import (
	"strings"
	"time"
)

// ItemKind distinguishes issues from pull requests. GitHub's Issues API
// returns both; the kind decides which labels, messages, and thresholds
// apply to an item.
type ItemKind string

const (
	ItemKindIssue       ItemKind = "issue"
	ItemKindPullRequest ItemKind = "pull_request"
)

// Item is an open issue or pull request as seen by the lifecycle processor.
type Item struct {
	Kind      ItemKind  `json:"kind"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Labels    []string  `json:"labels"`
	Assignees []string  `json:"assignees"`
	Milestone string    `json:"milestone,omitempty"`
	IsDraft   bool      `json:"is_draft,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPullRequest reports whether the item is a pull request.
func (i Item) IsPullRequest() bool {
	return i.Kind == ItemKindPullRequest
}

// HasLabel reports whether the item carries the given label.
// GitHub label names are case-insensitive.
func (i Item) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}
