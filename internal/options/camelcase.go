package options

import (
	"strings"
	"unicode"
)

// camelCase rewrites a hyphen- or underscore-delimited key to camelCase:
// "days-before-stale" and "days_before_stale" both become "daysBeforeStale".
// A key with no delimiters passes through unchanged.
func camelCase(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
