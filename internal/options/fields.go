package options

// fieldKind is the declared coercion type of a schema field.
type fieldKind int

const (
	kindString fieldKind = iota
	kindNumber
	kindBool
	kindList
)

// field describes one schema field: its camelCase name (used by the JSON
// overrides source), its kebab-case named-input key, its kind, and an
// accessor into Options. One registry drives both source adapters, the
// merge engine, and the diagnostic dump, so absence semantics cannot drift
// between them.
type field struct {
	name  string
	input string
	kind  fieldKind
	str   func(*Options) *string
	num   func(*Options) *float64
	flag  func(*Options) **bool
	list  func(*Options) *[]string
}

func strField(name, input string, get func(*Options) *string) field {
	return field{name: name, input: input, kind: kindString, str: get}
}

func numField(name, input string, get func(*Options) *float64) field {
	return field{name: name, input: input, kind: kindNumber, num: get}
}

func boolField(name, input string, get func(*Options) **bool) field {
	return field{name: name, input: input, kind: kindBool, flag: get}
}

func listField(name, input string, get func(*Options) *[]string) field {
	return field{name: name, input: input, kind: kindList, list: get}
}

var fields = []field{
	strField("repoToken", "repo-token", func(o *Options) *string { return &o.RepoToken }),
	strField("staleIssueMessage", "stale-issue-message", func(o *Options) *string { return &o.StaleIssueMessage }),
	strField("stalePrMessage", "stale-pr-message", func(o *Options) *string { return &o.StalePRMessage }),
	strField("closeIssueMessage", "close-issue-message", func(o *Options) *string { return &o.CloseIssueMessage }),
	strField("closePrMessage", "close-pr-message", func(o *Options) *string { return &o.ClosePRMessage }),
	numField("daysBeforeStale", "days-before-stale", func(o *Options) *float64 { return &o.DaysBeforeStale }),
	numField("daysBeforeIssueStale", "days-before-issue-stale", func(o *Options) *float64 { return &o.DaysBeforeIssueStale }),
	numField("daysBeforePrStale", "days-before-pr-stale", func(o *Options) *float64 { return &o.DaysBeforePRStale }),
	numField("daysBeforeClose", "days-before-close", func(o *Options) *float64 { return &o.DaysBeforeClose }),
	numField("daysBeforeIssueClose", "days-before-issue-close", func(o *Options) *float64 { return &o.DaysBeforeIssueClose }),
	numField("daysBeforePrClose", "days-before-pr-close", func(o *Options) *float64 { return &o.DaysBeforePRClose }),
	strField("staleIssueLabel", "stale-issue-label", func(o *Options) *string { return &o.StaleIssueLabel }),
	strField("closeIssueLabel", "close-issue-label", func(o *Options) *string { return &o.CloseIssueLabel }),
	strField("stalePrLabel", "stale-pr-label", func(o *Options) *string { return &o.StalePRLabel }),
	strField("closePrLabel", "close-pr-label", func(o *Options) *string { return &o.ClosePRLabel }),
	strField("exemptIssueLabels", "exempt-issue-labels", func(o *Options) *string { return &o.ExemptIssueLabels }),
	strField("exemptPrLabels", "exempt-pr-labels", func(o *Options) *string { return &o.ExemptPRLabels }),
	strField("onlyLabels", "only-labels", func(o *Options) *string { return &o.OnlyLabels }),
	strField("onlyIssueLabels", "only-issue-labels", func(o *Options) *string { return &o.OnlyIssueLabels }),
	strField("onlyPrLabels", "only-pr-labels", func(o *Options) *string { return &o.OnlyPRLabels }),
	strField("anyOfLabels", "any-of-labels", func(o *Options) *string { return &o.AnyOfLabels }),
	strField("anyOfIssueLabels", "any-of-issue-labels", func(o *Options) *string { return &o.AnyOfIssueLabels }),
	strField("anyOfPrLabels", "any-of-pr-labels", func(o *Options) *string { return &o.AnyOfPRLabels }),
	numField("operationsPerRun", "operations-per-run", func(o *Options) *float64 { return &o.OperationsPerRun }),
	boolField("removeStaleWhenUpdated", "remove-stale-when-updated", func(o *Options) **bool { return &o.RemoveStaleWhenUpdated }),
	boolField("removeIssueStaleWhenUpdated", "remove-issue-stale-when-updated", func(o *Options) **bool { return &o.RemoveIssueStaleWhenUpdated }),
	boolField("removePrStaleWhenUpdated", "remove-pr-stale-when-updated", func(o *Options) **bool { return &o.RemovePRStaleWhenUpdated }),
	boolField("debugOnly", "debug-only", func(o *Options) **bool { return &o.DebugOnly }),
	boolField("ascending", "ascending", func(o *Options) **bool { return &o.Ascending }),
	boolField("deleteBranch", "delete-branch", func(o *Options) **bool { return &o.DeleteBranch }),
	strField("startDate", "start-date", func(o *Options) *string { return &o.StartDate }),
	strField("exemptMilestones", "exempt-milestones", func(o *Options) *string { return &o.ExemptMilestones }),
	strField("exemptIssueMilestones", "exempt-issue-milestones", func(o *Options) *string { return &o.ExemptIssueMilestones }),
	strField("exemptPrMilestones", "exempt-pr-milestones", func(o *Options) *string { return &o.ExemptPRMilestones }),
	boolField("exemptAllMilestones", "exempt-all-milestones", func(o *Options) **bool { return &o.ExemptAllMilestones }),
	boolField("exemptAllIssueMilestones", "exempt-all-issue-milestones", func(o *Options) **bool { return &o.ExemptAllIssueMilestones }),
	boolField("exemptAllPrMilestones", "exempt-all-pr-milestones", func(o *Options) **bool { return &o.ExemptAllPRMilestones }),
	strField("exemptAssignees", "exempt-assignees", func(o *Options) *string { return &o.ExemptAssignees }),
	strField("exemptIssueAssignees", "exempt-issue-assignees", func(o *Options) *string { return &o.ExemptIssueAssignees }),
	strField("exemptPrAssignees", "exempt-pr-assignees", func(o *Options) *string { return &o.ExemptPRAssignees }),
	boolField("exemptAllAssignees", "exempt-all-assignees", func(o *Options) **bool { return &o.ExemptAllAssignees }),
	boolField("exemptAllIssueAssignees", "exempt-all-issue-assignees", func(o *Options) **bool { return &o.ExemptAllIssueAssignees }),
	boolField("exemptAllPrAssignees", "exempt-all-pr-assignees", func(o *Options) **bool { return &o.ExemptAllPRAssignees }),
	boolField("enableStatistics", "enable-statistics", func(o *Options) **bool { return &o.EnableStatistics }),
	strField("labelsToRemoveWhenStale", "labels-to-remove-when-stale", func(o *Options) *string { return &o.LabelsToRemoveWhenStale }),
	strField("labelsToRemoveWhenUnstale", "labels-to-remove-when-unstale", func(o *Options) *string { return &o.LabelsToRemoveWhenUnstale }),
	strField("labelsToAddWhenUnstale", "labels-to-add-when-unstale", func(o *Options) *string { return &o.LabelsToAddWhenUnstale }),
	listField("onlyMatchingFilter", "only-matching-filter", func(o *Options) *[]string { return &o.OnlyMatchingFilter }),
	boolField("ignoreUpdates", "ignore-updates", func(o *Options) **bool { return &o.IgnoreUpdates }),
	boolField("ignoreIssueUpdates", "ignore-issue-updates", func(o *Options) **bool { return &o.IgnoreIssueUpdates }),
	boolField("ignorePrUpdates", "ignore-pr-updates", func(o *Options) **bool { return &o.IgnorePRUpdates }),
	boolField("exemptDraftPr", "exempt-draft-pr", func(o *Options) **bool { return &o.ExemptDraftPR }),
	strField("closeIssueReason", "close-issue-reason", func(o *Options) *string { return &o.CloseIssueReason }),
	boolField("includeOnlyAssigned", "include-only-assigned", func(o *Options) **bool { return &o.IncludeOnlyAssigned }),
}

// fieldsByName indexes the registry by camelCase schema name.
func fieldsByName() map[string]field {
	byName := make(map[string]field, len(fields))
	for _, f := range fields {
		byName[f.name] = f
	}
	return byName
}
