package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
	"github.com/ericfisherdev/stalesweep/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.GitHubMutator = (*NoopMutator)(nil)

// NoopMutator implements the GitHubMutator port without touching GitHub.
// Debug-only runs wire it in so the processor reports what it would have
// done while mutating nothing.
type NoopMutator struct{}

func (NoopMutator) AddLabels(_ context.Context, repo model.Repo, number int, labels []string) error {
	slog.Info("debug-only: would add labels", "repo", repo.FullName(), "number", number, "labels", labels)
	return nil
}

func (NoopMutator) RemoveLabel(_ context.Context, repo model.Repo, number int, label string) error {
	slog.Info("debug-only: would remove label", "repo", repo.FullName(), "number", number, "label", label)
	return nil
}

func (NoopMutator) CreateComment(_ context.Context, repo model.Repo, number int, _ string) error {
	slog.Info("debug-only: would comment", "repo", repo.FullName(), "number", number)
	return nil
}

func (NoopMutator) CloseItem(_ context.Context, repo model.Repo, item model.Item, reason model.CloseReason) error {
	slog.Info("debug-only: would close", "repo", repo.FullName(), "number", item.Number, "reason", reason)
	return nil
}

func (NoopMutator) DeleteHeadBranch(_ context.Context, repo model.Repo, item model.Item) error {
	slog.Info("debug-only: would delete head branch", "repo", repo.FullName(), "number", item.Number)
	return nil
}
