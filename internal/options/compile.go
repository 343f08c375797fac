package options

import (
	"strings"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

// scopeTokens are the search qualifiers that already pin a term to a
// repository, owner, organization, or user. Matching is a case-sensitive
// substring test, mirroring GitHub's search qualifier syntax.
var scopeTokens = []string{"repo:", "owner:", "org:", "user:"}

const openQualifier = "is:open"

// CompileFilters rewrites each operator-supplied filter term into a fully
// scoped, state-qualified search query. Terms without a scope qualifier get
// the run's own repository prepended; terms without the open-state
// qualifier get it appended. Order and cardinality are preserved, and
// already-qualified terms pass through unchanged.
func CompileFilters(repo model.Repo, terms []string) []string {
	compiled := make([]string, 0, len(terms))
	for _, term := range terms {
		q := term
		if !hasScope(q) {
			q = strings.TrimSpace("repo:" + repo.FullName() + " " + q)
		}
		if !strings.Contains(q, openQualifier) {
			q += " " + openQualifier
		}
		compiled = append(compiled, q)
	}
	return compiled
}

func hasScope(term string) bool {
	for _, tok := range scopeTokens {
		if strings.Contains(term, tok) {
			return true
		}
	}
	return false
}
