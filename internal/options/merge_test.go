package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/stalesweep/internal/input"
)

func TestMerge_LaterPresentValueWins(t *testing.T) {
	inputs := FromInputs(input.MapSource{"days-before-stale": "10"})
	overrides := FromJSON(`{"days-before-stale": 30}`)

	o := Merge(Defaults(), inputs, overrides)

	assert.Equal(t, 30.0, o.DaysBeforeStale, "JSON overrides win over named inputs")
}

func TestMerge_AbsentFieldInheritsEarlierValue(t *testing.T) {
	inputs := FromInputs(input.MapSource{"days-before-stale": "10"})
	overrides := FromJSON(`{}`)

	o := Merge(Defaults(), inputs, overrides)

	assert.Equal(t, 10.0, o.DaysBeforeStale)
	// Everything else stays at its default.
	assert.Equal(t, 7.0, o.DaysBeforeClose)
	assert.Equal(t, 30.0, o.OperationsPerRun)
	assert.Equal(t, "Stale", o.StaleIssueLabel)
	assert.Equal(t, "not_planned", o.CloseIssueReason)
}

func TestMerge_NamedInputZeroDoesNotOverride(t *testing.T) {
	// The named-input coercion folds a zero into absence, so a 0 cannot
	// displace an earlier present value. Documented quirk of the inputs
	// contract.
	inputs := FromInputs(input.MapSource{"operations-per-run": "0"})

	o := Merge(Defaults(), inputs)

	assert.Equal(t, 30.0, o.OperationsPerRun)
}

func TestMerge_JSONZeroDoesOverride(t *testing.T) {
	o := Merge(Defaults(), FromJSON(`{"operations-per-run": 0}`))
	assert.Equal(t, 0.0, o.OperationsPerRun)
}

func TestMerge_ExplicitFalseOverridesTrueDefault(t *testing.T) {
	inputs := FromInputs(input.MapSource{"remove-stale-when-updated": "false"})

	o := Merge(Defaults(), inputs)

	require.NotNil(t, o.RemoveStaleWhenUpdated)
	assert.False(t, *o.RemoveStaleWhenUpdated, "false is a present value, distinct from absence")
}

func TestMerge_TriStateOverrideStaysAbsent(t *testing.T) {
	o := Merge(Defaults(), FromInputs(input.MapSource{}), FromJSON(`{}`))

	// The PR-specific override was never supplied anywhere, so per-item
	// resolution must fall back to the general flag.
	assert.Nil(t, o.RemovePRStaleWhenUpdated)
	require.NotNil(t, o.RemoveStaleWhenUpdated)
	assert.True(t, *o.RemoveStaleWhenUpdated)
}

func TestMerge_EmptyStringDoesNotOverride(t *testing.T) {
	overrides := FromJSON(`{"stale-issue-label": ""}`)

	o := Merge(Defaults(), overrides)

	assert.Equal(t, "Stale", o.StaleIssueLabel)
}

func TestMerge_PresentListOverridesDefault(t *testing.T) {
	inputs := FromInputs(input.MapSource{"only-matching-filter": `["label:bug"]`})

	o := Merge(Defaults(), inputs)

	assert.Equal(t, []string{"label:bug"}, o.OnlyMatchingFilter)
}

func TestMerge_NilOverlayIsANoOp(t *testing.T) {
	o := Merge(Defaults(), nil)
	assert.Equal(t, 60.0, o.DaysBeforeStale)
}
