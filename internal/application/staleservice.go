// Package application contains use-case orchestration services.
package application

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
	"github.com/ericfisherdev/stalesweep/internal/domain/port/driven"
	"github.com/ericfisherdev/stalesweep/internal/options"
)

// Result collects the items this run marked stale and the items it closed,
// later serialized to the action's outputs.
type Result struct {
	StaleItems  []model.Item `json:"stale_items"`
	ClosedItems []model.Item `json:"closed_items"`
}

// Statistics counts what a run did, logged at the end when enabled.
type Statistics struct {
	ItemsProcessed int
	MarkedStale    int
	Unstaled       int
	Closed         int
	Operations     int
}

// StaleService walks the repository's open issues and pull requests, marks
// inactive ones stale, and closes the ones that stayed stale past the close
// threshold. All remote effects go through the mutator port; debug-only runs
// wire in a NoopMutator.
type StaleService struct {
	client  driven.GitHubClient
	mutator driven.GitHubMutator
	state   driven.StateStore
	repo    model.Repo
	opts    *options.Options
	now     func() time.Time

	stats Statistics
}

// NewStaleService creates a new StaleService with all required dependencies.
// The options must already be merged, validated, and filter-compiled.
func NewStaleService(
	client driven.GitHubClient,
	mutator driven.GitHubMutator,
	state driven.StateStore,
	repo model.Repo,
	opts *options.Options,
) *StaleService {
	return &StaleService{
		client:  client,
		mutator: mutator,
		state:   state,
		repo:    repo,
		opts:    opts,
		now:     time.Now,
	}
}

// Run executes one full pass: restore prior state, fetch candidates, process
// each one under the operations budget, persist state, and return the result.
// The first failure aborts the pass; state is only persisted on success.
func (s *StaleService) Run(ctx context.Context) (*Result, error) {
	state, err := s.state.Restore(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.fetchCandidates(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("candidates fetched", "count", len(items))

	var startDate time.Time
	if s.opts.StartDate != "" {
		// Validated earlier; parse cannot fail here.
		startDate, _ = options.ParseStartDate(s.opts.StartDate)
	}

	result := &Result{StaleItems: []model.Item{}, ClosedItems: []model.Item{}}
	budget := int(s.opts.OperationsPerRun)

	for _, item := range items {
		if budget > 0 && s.stats.Operations >= budget {
			slog.Info("operations budget spent, stopping early",
				"budget", budget,
				"processed", s.stats.ItemsProcessed,
			)
			break
		}
		if !startDate.IsZero() && item.CreatedAt.Before(startDate) {
			continue
		}
		if err := s.processItem(ctx, state, item, result); err != nil {
			return nil, err
		}
		s.stats.ItemsProcessed++
	}

	state.LastRun = s.now()
	if err := s.state.Persist(ctx, state); err != nil {
		return nil, err
	}

	if s.opts.EnableStatistics != nil && *s.opts.EnableStatistics {
		slog.Info("run statistics",
			"items_processed", s.stats.ItemsProcessed,
			"marked_stale", s.stats.MarkedStale,
			"unstaled", s.stats.Unstaled,
			"closed", s.stats.Closed,
			"operations", s.stats.Operations,
		)
	}

	return result, nil
}

// fetchCandidates lists the items to consider. When the operator supplied
// filter terms, each compiled query is searched and the results merged,
// de-duplicated by number; otherwise the whole repository is listed.
func (s *StaleService) fetchCandidates(ctx context.Context) ([]model.Item, error) {
	ascending := s.opts.Ascending != nil && *s.opts.Ascending

	if len(s.opts.OnlyMatchingFilter) == 0 {
		return s.client.ListItems(ctx, s.repo, ascending)
	}

	seen := make(map[int]bool)
	var items []model.Item
	for _, query := range s.opts.OnlyMatchingFilter {
		found, err := s.client.SearchItems(ctx, query, ascending, 0)
		if err != nil {
			return nil, err
		}
		for _, item := range found {
			if seen[item.Number] {
				continue
			}
			seen[item.Number] = true
			items = append(items, item)
		}
	}
	return items, nil
}

// processItem applies the lifecycle rules to a single issue or pull request.
func (s *StaleService) processItem(ctx context.Context, state *model.RunState, item model.Item, result *Result) error {
	cfg := s.configFor(item)

	if s.isExempt(item, cfg) {
		slog.Debug("item exempt", "number", item.Number, "kind", item.Kind)
		return nil
	}

	now := s.now()

	if !item.HasLabel(cfg.staleLabel) {
		if cfg.daysBeforeStale < 0 {
			return nil
		}
		cutoff := now.Add(-daysToDuration(cfg.daysBeforeStale))
		if item.UpdatedAt.After(cutoff) {
			return nil
		}
		return s.markStale(ctx, state, item, cfg, result)
	}

	staleSince := state.StaleSince(item.Number)
	if staleSince.IsZero() {
		// Label applied by hand or by another tool; treat the last update
		// as the start of staleness.
		staleSince = item.UpdatedAt
	}

	if !cfg.ignoreUpdates && cfg.removeStaleWhenUpdated && item.UpdatedAt.After(staleSince) {
		return s.unstale(ctx, state, item, cfg)
	}

	if cfg.daysBeforeClose < 0 {
		return nil
	}
	if now.Sub(staleSince) < daysToDuration(cfg.daysBeforeClose) {
		return nil
	}
	return s.closeItem(ctx, state, item, cfg, result)
}

func (s *StaleService) markStale(ctx context.Context, state *model.RunState, item model.Item, cfg itemConfig, result *Result) error {
	slog.Info("marking item stale", "number", item.Number, "kind", item.Kind, "title", item.Title)

	if cfg.staleMessage != "" {
		if err := s.mutator.CreateComment(ctx, s.repo, item.Number, cfg.staleMessage); err != nil {
			return err
		}
		s.stats.Operations++
	}
	if err := s.mutator.AddLabels(ctx, s.repo, item.Number, []string{cfg.staleLabel}); err != nil {
		return err
	}
	s.stats.Operations++

	for _, label := range splitList(s.opts.LabelsToRemoveWhenStale) {
		if err := s.mutator.RemoveLabel(ctx, s.repo, item.Number, label); err != nil {
			return err
		}
		s.stats.Operations++
	}

	state.MarkStale(item.Number, s.now())
	result.StaleItems = append(result.StaleItems, item)
	s.stats.MarkedStale++
	return nil
}

func (s *StaleService) unstale(ctx context.Context, state *model.RunState, item model.Item, cfg itemConfig) error {
	slog.Info("item saw activity, removing stale label", "number", item.Number, "kind", item.Kind)

	if err := s.mutator.RemoveLabel(ctx, s.repo, item.Number, cfg.staleLabel); err != nil {
		return err
	}
	s.stats.Operations++

	for _, label := range splitList(s.opts.LabelsToRemoveWhenUnstale) {
		if err := s.mutator.RemoveLabel(ctx, s.repo, item.Number, label); err != nil {
			return err
		}
		s.stats.Operations++
	}
	if add := splitList(s.opts.LabelsToAddWhenUnstale); len(add) > 0 {
		if err := s.mutator.AddLabels(ctx, s.repo, item.Number, add); err != nil {
			return err
		}
		s.stats.Operations++
	}

	state.ClearStale(item.Number)
	s.stats.Unstaled++
	return nil
}

func (s *StaleService) closeItem(ctx context.Context, state *model.RunState, item model.Item, cfg itemConfig, result *Result) error {
	slog.Info("closing stale item", "number", item.Number, "kind", item.Kind, "title", item.Title)

	if cfg.closeMessage != "" {
		if err := s.mutator.CreateComment(ctx, s.repo, item.Number, cfg.closeMessage); err != nil {
			return err
		}
		s.stats.Operations++
	}
	if cfg.closeLabel != "" {
		if err := s.mutator.AddLabels(ctx, s.repo, item.Number, []string{cfg.closeLabel}); err != nil {
			return err
		}
		s.stats.Operations++
	}
	if err := s.mutator.CloseItem(ctx, s.repo, item, model.CloseReason(s.opts.CloseIssueReason)); err != nil {
		return err
	}
	s.stats.Operations++

	if item.IsPullRequest() && s.opts.DeleteBranch != nil && *s.opts.DeleteBranch {
		if err := s.mutator.DeleteHeadBranch(ctx, s.repo, item); err != nil {
			return err
		}
		s.stats.Operations++
	}

	state.ClearStale(item.Number)
	result.ClosedItems = append(result.ClosedItems, item)
	s.stats.Closed++
	return nil
}

// isExempt applies the label, milestone, assignee, and draft exemptions.
func (s *StaleService) isExempt(item model.Item, cfg itemConfig) bool {
	for _, label := range cfg.exemptLabels {
		if item.HasLabel(label) {
			return true
		}
	}

	for _, label := range cfg.onlyLabels {
		if !item.HasLabel(label) {
			return true
		}
	}

	if len(cfg.anyOfLabels) > 0 {
		any := false
		for _, label := range cfg.anyOfLabels {
			if item.HasLabel(label) {
				any = true
				break
			}
		}
		if !any {
			return true
		}
	}

	if item.Milestone != "" {
		if cfg.exemptAllMilestones {
			return true
		}
		for _, ms := range cfg.exemptMilestones {
			if strings.EqualFold(ms, item.Milestone) {
				return true
			}
		}
	}

	if len(item.Assignees) > 0 {
		if cfg.exemptAllAssignees {
			return true
		}
		for _, exempt := range cfg.exemptAssignees {
			for _, assignee := range item.Assignees {
				if strings.EqualFold(exempt, assignee) {
					return true
				}
			}
		}
	}

	if s.opts.IncludeOnlyAssigned != nil && *s.opts.IncludeOnlyAssigned && len(item.Assignees) == 0 {
		return true
	}

	if item.IsPullRequest() && item.IsDraft && s.opts.ExemptDraftPR != nil && *s.opts.ExemptDraftPR {
		return true
	}

	return false
}

// itemConfig is the per-item view of the options after resolving each
// general/override triple for the item's kind.
type itemConfig struct {
	staleLabel             string
	closeLabel             string
	staleMessage           string
	closeMessage           string
	daysBeforeStale        float64
	daysBeforeClose        float64
	removeStaleWhenUpdated bool
	ignoreUpdates          bool
	exemptLabels           []string
	onlyLabels             []string
	anyOfLabels            []string
	exemptMilestones       []string
	exemptAllMilestones    bool
	exemptAssignees        []string
	exemptAllAssignees     bool
}

// configFor resolves the general/override triples for the item's kind: a
// present override wins, an absent one inherits the general field.
func (s *StaleService) configFor(item model.Item) itemConfig {
	o := s.opts
	if item.IsPullRequest() {
		return itemConfig{
			staleLabel:             o.StalePRLabel,
			closeLabel:             o.ClosePRLabel,
			staleMessage:           o.StalePRMessage,
			closeMessage:           o.ClosePRMessage,
			daysBeforeStale:        resolveNum(o.DaysBeforeStale, o.DaysBeforePRStale),
			daysBeforeClose:        resolveNum(o.DaysBeforeClose, o.DaysBeforePRClose),
			removeStaleWhenUpdated: resolveBool(o.RemoveStaleWhenUpdated, o.RemovePRStaleWhenUpdated),
			ignoreUpdates:          resolveBool(o.IgnoreUpdates, o.IgnorePRUpdates),
			exemptLabels:           splitList(o.ExemptPRLabels),
			onlyLabels:             splitList(firstNonEmpty(o.OnlyPRLabels, o.OnlyLabels)),
			anyOfLabels:            splitList(firstNonEmpty(o.AnyOfPRLabels, o.AnyOfLabels)),
			exemptMilestones:       splitList(firstNonEmpty(o.ExemptPRMilestones, o.ExemptMilestones)),
			exemptAllMilestones:    resolveBool(o.ExemptAllMilestones, o.ExemptAllPRMilestones),
			exemptAssignees:        splitList(firstNonEmpty(o.ExemptPRAssignees, o.ExemptAssignees)),
			exemptAllAssignees:     resolveBool(o.ExemptAllAssignees, o.ExemptAllPRAssignees),
		}
	}
	return itemConfig{
		staleLabel:             o.StaleIssueLabel,
		closeLabel:             o.CloseIssueLabel,
		staleMessage:           o.StaleIssueMessage,
		closeMessage:           o.CloseIssueMessage,
		daysBeforeStale:        resolveNum(o.DaysBeforeStale, o.DaysBeforeIssueStale),
		daysBeforeClose:        resolveNum(o.DaysBeforeClose, o.DaysBeforeIssueClose),
		removeStaleWhenUpdated: resolveBool(o.RemoveStaleWhenUpdated, o.RemoveIssueStaleWhenUpdated),
		ignoreUpdates:          resolveBool(o.IgnoreUpdates, o.IgnoreIssueUpdates),
		exemptLabels:           splitList(o.ExemptIssueLabels),
		onlyLabels:             splitList(firstNonEmpty(o.OnlyIssueLabels, o.OnlyLabels)),
		anyOfLabels:            splitList(firstNonEmpty(o.AnyOfIssueLabels, o.AnyOfLabels)),
		exemptMilestones:       splitList(firstNonEmpty(o.ExemptIssueMilestones, o.ExemptMilestones)),
		exemptAllMilestones:    resolveBool(o.ExemptAllMilestones, o.ExemptAllIssueMilestones),
		exemptAssignees:        splitList(firstNonEmpty(o.ExemptIssueAssignees, o.ExemptAssignees)),
		exemptAllAssignees:     resolveBool(o.ExemptAllAssignees, o.ExemptAllIssueAssignees),
	}
}

// resolveNum returns the override when present (not NaN), else the general
// value.
func resolveNum(general, override float64) float64 {
	if !math.IsNaN(override) {
		return override
	}
	return general
}

// resolveBool returns the override when present, else the general flag,
// else false.
func resolveBool(general, override *bool) bool {
	if override != nil {
		return *override
	}
	if general != nil {
		return *general
	}
	return false
}

// splitList splits a comma-separated set field into trimmed, non-empty
// entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// daysToDuration converts a fractional day count to a duration.
func daysToDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}
