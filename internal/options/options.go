// Package options resolves the run-time configuration for a lifecycle run
// from three layered sources (defaults, named action inputs, JSON overrides),
// validates the merged result, and compiles the operator's search filters.
package options

import (
	"math"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

// Options is the fully-typed run configuration. Numeric override fields use
// NaN as the "inherit the general field" sentinel; boolean fields use nil.
// Comma-separated set fields stay raw delimited strings; splitting them is
// the processor's job.
type Options struct {
	RepoToken string

	StaleIssueMessage string
	StalePRMessage    string
	CloseIssueMessage string
	ClosePRMessage    string

	DaysBeforeStale      float64
	DaysBeforeIssueStale float64
	DaysBeforePRStale    float64
	DaysBeforeClose      float64
	DaysBeforeIssueClose float64
	DaysBeforePRClose    float64

	StaleIssueLabel string
	CloseIssueLabel string
	StalePRLabel    string
	ClosePRLabel    string

	ExemptIssueLabels string
	ExemptPRLabels    string
	OnlyLabels        string
	OnlyIssueLabels   string
	OnlyPRLabels      string
	AnyOfLabels       string
	AnyOfIssueLabels  string
	AnyOfPRLabels     string

	OperationsPerRun float64

	RemoveStaleWhenUpdated      *bool
	RemoveIssueStaleWhenUpdated *bool
	RemovePRStaleWhenUpdated    *bool

	DebugOnly    *bool
	Ascending    *bool
	DeleteBranch *bool
	StartDate    string

	ExemptMilestones         string
	ExemptIssueMilestones    string
	ExemptPRMilestones       string
	ExemptAllMilestones      *bool
	ExemptAllIssueMilestones *bool
	ExemptAllPRMilestones    *bool

	ExemptAssignees         string
	ExemptIssueAssignees    string
	ExemptPRAssignees       string
	ExemptAllAssignees      *bool
	ExemptAllIssueAssignees *bool
	ExemptAllPRAssignees    *bool

	EnableStatistics *bool

	LabelsToRemoveWhenStale   string
	LabelsToRemoveWhenUnstale string
	LabelsToAddWhenUnstale    string

	OnlyMatchingFilter []string

	IgnoreUpdates      *bool
	IgnoreIssueUpdates *bool
	IgnorePRUpdates    *bool

	ExemptDraftPR       *bool
	CloseIssueReason    string
	IncludeOnlyAssigned *bool
}

// empty returns an Options with every field at its absence sentinel:
// strings empty, numbers NaN, booleans nil, lists nil. Both source adapters
// start from this so merge can tell supplied fields from omitted ones.
func empty() *Options {
	nan := math.NaN()
	return &Options{
		DaysBeforeStale:      nan,
		DaysBeforeIssueStale: nan,
		DaysBeforePRStale:    nan,
		DaysBeforeClose:      nan,
		DaysBeforeIssueClose: nan,
		DaysBeforePRClose:    nan,
		OperationsPerRun:     nan,
	}
}

// Defaults returns the baseline configuration, the identity element for
// merge. Override fields of general/override triples stay at their absence
// sentinel so per-item resolution falls back to the general field.
func Defaults() *Options {
	o := empty()
	o.DaysBeforeStale = 60
	o.DaysBeforeClose = 7
	o.StaleIssueLabel = "Stale"
	o.StalePRLabel = "Stale"
	o.OperationsPerRun = 30
	o.RemoveStaleWhenUpdated = boolPtr(true)
	o.DebugOnly = boolPtr(false)
	o.Ascending = boolPtr(false)
	o.DeleteBranch = boolPtr(false)
	o.ExemptAllMilestones = boolPtr(false)
	o.ExemptAllAssignees = boolPtr(false)
	o.EnableStatistics = boolPtr(true)
	o.IgnoreUpdates = boolPtr(false)
	o.ExemptDraftPR = boolPtr(false)
	o.IncludeOnlyAssigned = boolPtr(false)
	o.CloseIssueReason = string(model.CloseReasonNotPlanned)
	o.OnlyMatchingFilter = []string{}
	return o
}

// Resolved returns a log-friendly view of the options keyed by schema name.
// Absence sentinels (NaN, nil) come out as nil so the view serializes
// cleanly; the token is redacted.
func (o *Options) Resolved() map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f.kind {
		case kindString:
			out[f.name] = *f.str(o)
		case kindNumber:
			if v := *f.num(o); !math.IsNaN(v) {
				out[f.name] = v
			} else {
				out[f.name] = nil
			}
		case kindBool:
			if v := *f.flag(o); v != nil {
				out[f.name] = *v
			} else {
				out[f.name] = nil
			}
		case kindList:
			out[f.name] = *f.list(o)
		}
	}
	if o.RepoToken != "" {
		out["repoToken"] = "[redacted]"
	}
	return out
}

func boolPtr(v bool) *bool {
	return &v
}
