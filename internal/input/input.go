// Package input abstracts where named action inputs come from. Production
// reads the GitHub Actions environment; tests substitute a map.
package input

import (
	"os"
	"strings"
)

// Source supplies raw string values for named inputs keyed by their fixed
// kebab-case names. A missing input is the empty string.
type Source interface {
	Get(name string) string
}

// ActionsSource reads inputs the way the GitHub Actions runner exposes them:
// the env var INPUT_<NAME> with hyphens replaced by underscores and the name
// upper-cased, surrounding whitespace trimmed.
type ActionsSource struct{}

// Get returns the raw value of the named input, or "" when unset.
func (ActionsSource) Get(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return strings.TrimSpace(os.Getenv(key))
}

// MapSource is an in-memory Source for tests and programmatic use.
type MapSource map[string]string

// Get returns the mapped value, or "" when the key is absent.
func (m MapSource) Get(name string) string {
	return m[name]
}
