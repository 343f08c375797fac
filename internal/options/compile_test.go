package options

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

var testRepo = model.Repo{Owner: "acme", Name: "widgets"}

func TestCompileFilters_AddsScopeAndState(t *testing.T) {
	got := CompileFilters(testRepo, []string{"label:bug"})
	assert.Equal(t, []string{"repo:acme/widgets label:bug is:open"}, got)
}

func TestCompileFilters_ExistingScopePassesThrough(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{"fully qualified", "org:acme is:open custom", "org:acme is:open custom"},
		{"repo scope without state", "repo:acme/gears label:bug", "repo:acme/gears label:bug is:open"},
		{"owner scope", "owner:acme label:bug", "owner:acme label:bug is:open"},
		{"user scope", "user:octocat", "user:octocat is:open"},
		{"unscoped with state", "label:bug is:open", "repo:acme/widgets label:bug is:open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, CompileFilters(testRepo, []string{tt.term}))
		})
	}
}

func TestCompileFilters_OrderAndCardinalityPreserved(t *testing.T) {
	terms := []string{"label:bug", "org:acme is:open custom", "label:feature"}

	got := CompileFilters(testRepo, terms)

	assert.Equal(t, []string{
		"repo:acme/widgets label:bug is:open",
		"org:acme is:open custom",
		"repo:acme/widgets label:feature is:open",
	}, got)
}

func TestCompileFilters_EmptyTermStillFullyQualified(t *testing.T) {
	got := CompileFilters(testRepo, []string{""})
	assert.Equal(t, []string{"repo:acme/widgets is:open"}, got)
}

func TestCompileFilters_EmptyList(t *testing.T) {
	assert.Empty(t, CompileFilters(testRepo, nil))
	assert.Empty(t, CompileFilters(testRepo, []string{}))
}
