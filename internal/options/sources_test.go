package options

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/stalesweep/internal/input"
)

func TestFromInputs_Strings(t *testing.T) {
	src := input.MapSource{
		"stale-issue-message": "This issue is stale.",
		"stale-issue-label":   "",
	}

	o := FromInputs(src)

	assert.Equal(t, "This issue is stale.", o.StaleIssueMessage)
	assert.Equal(t, "", o.StaleIssueLabel, "empty input stays absent")
}

func TestFromInputs_Numbers(t *testing.T) {
	src := input.MapSource{
		"days-before-stale":    "10",
		"days-before-close":    "not-a-number",
		"operations-per-run":   "0",
		"days-before-pr-stale": "2.5",
	}

	o := FromInputs(src)

	assert.Equal(t, 10.0, o.DaysBeforeStale)
	assert.Equal(t, 2.5, o.DaysBeforePRStale)
	assert.True(t, math.IsNaN(o.DaysBeforeClose), "unparsable input is absent")
	// Zero is coerced to absent, same as not supplying the input at all.
	assert.True(t, math.IsNaN(o.OperationsPerRun))
}

func TestFromInputs_Booleans(t *testing.T) {
	src := input.MapSource{
		"debug-only":                "true",
		"delete-branch":             "false",
		"ascending":                 "yes",
		"remove-stale-when-updated": "",
	}

	o := FromInputs(src)

	require.NotNil(t, o.DebugOnly)
	assert.True(t, *o.DebugOnly)
	require.NotNil(t, o.DeleteBranch)
	assert.False(t, *o.DeleteBranch)
	assert.Nil(t, o.Ascending, "non-literal value is absent, not false")
	assert.Nil(t, o.RemoveStaleWhenUpdated)
}

func TestFromInputs_FilterList(t *testing.T) {
	o := FromInputs(input.MapSource{
		"only-matching-filter": `["label:bug", "label:regression"]`,
	})
	assert.Equal(t, []string{"label:bug", "label:regression"}, o.OnlyMatchingFilter)
}

func TestFromInputs_FilterList_FallbackToSingleElement(t *testing.T) {
	o := FromInputs(input.MapSource{
		"only-matching-filter": "label:bug",
	})
	assert.Equal(t, []string{"label:bug"}, o.OnlyMatchingFilter)
}

func TestFromInputs_FilterList_EmptyIsAbsent(t *testing.T) {
	o := FromInputs(input.MapSource{})
	assert.Nil(t, o.OnlyMatchingFilter)
}

func TestFromJSON_KeyRewriting(t *testing.T) {
	o := FromJSON(`{
		"days-before-stale": 10,
		"stale_issue_label": "rotten",
		"debugOnly": true
	}`)

	assert.Equal(t, 10.0, o.DaysBeforeStale)
	assert.Equal(t, "rotten", o.StaleIssueLabel)
	require.NotNil(t, o.DebugOnly)
	assert.True(t, *o.DebugOnly)
}

func TestFromJSON_ZeroNumberIsPresent(t *testing.T) {
	// Unlike the named-input coercion, a JSON zero carries through; only
	// the merge-level sentinels (NaN, empty string, nil) mean absent.
	o := FromJSON(`{"days-before-close": 0}`)
	assert.Equal(t, 0.0, o.DaysBeforeClose)
}

func TestFromJSON_UnknownKeysIgnored(t *testing.T) {
	o := FromJSON(`{"no-such-option": "x", "days-before-stale": 3}`)
	assert.Equal(t, 3.0, o.DaysBeforeStale)
}

func TestFromJSON_WrongTypeIsAbsent(t *testing.T) {
	o := FromJSON(`{"days-before-stale": "soon", "stale-issue-label": 7}`)
	assert.True(t, math.IsNaN(o.DaysBeforeStale))
	assert.Equal(t, "", o.StaleIssueLabel)
}

func TestFromJSON_List(t *testing.T) {
	o := FromJSON(`{"only-matching-filter": ["label:bug"]}`)
	assert.Equal(t, []string{"label:bug"}, o.OnlyMatchingFilter)

	o = FromJSON(`{"only-matching-filter": "label:bug"}`)
	assert.Equal(t, []string{"label:bug"}, o.OnlyMatchingFilter)
}

func TestFromJSON_EmptyAndMalformed(t *testing.T) {
	for _, raw := range []string{"", "{", "not json"} {
		o := FromJSON(raw)
		assert.True(t, math.IsNaN(o.DaysBeforeStale), "raw %q should produce an all-absent source", raw)
		assert.Nil(t, o.DebugOnly)
	}
}
