package options

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/ericfisherdev/stalesweep/internal/input"
)

// FromInputs reads every schema field from its named action input and
// coerces the raw string per the field's declared kind. Fields whose input
// is empty, unparsable, or a zero number stay at their absence sentinel so
// merge leaves the earlier source's value in place.
func FromInputs(src input.Source) *Options {
	o := empty()
	for _, f := range fields {
		raw := src.Get(f.input)
		if raw == "" {
			continue
		}
		switch f.kind {
		case kindString:
			*f.str(o) = raw
		case kindNumber:
			// Zero doubles as "not provided": parseFloat-style coercion
			// inherited from the original inputs contract. Callers cannot
			// force a zero-valued override through a named input.
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil || n == 0 {
				continue
			}
			*f.num(o) = n
		case kindBool:
			// Tri-state: only the exact literals are present.
			switch raw {
			case "true":
				*f.flag(o) = boolPtr(true)
			case "false":
				*f.flag(o) = boolPtr(false)
			}
		case kindList:
			var items []string
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				items = []string{raw}
			}
			*f.list(o) = items
		}
	}
	return o
}

// FromJSON parses a single JSON object of bulk overrides. Top-level keys
// are rewritten from hyphen/underscore-delimited form to the camelCase
// schema names; values keep their JSON types, so a numeric zero is a
// present value here (unlike the named-input coercion). Empty or
// unparsable input yields an all-absent Options rather than an error.
func FromJSON(raw string) *Options {
	o := empty()
	if raw == "" {
		return o
	}

	var overrides map[string]any
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		slog.Debug("ignoring unparsable config overrides", "error", err)
		return o
	}

	byName := fieldsByName()
	for key, val := range overrides {
		f, ok := byName[camelCase(key)]
		if !ok {
			slog.Debug("ignoring unknown override key", "key", key)
			continue
		}
		assignJSON(o, f, val)
	}
	return o
}

// assignJSON applies one override value under the same absence rules as the
// named-input adapter. Values of the wrong JSON type for the field's kind
// are treated as absent.
func assignJSON(o *Options, f field, val any) {
	switch f.kind {
	case kindString:
		if s, ok := val.(string); ok && s != "" {
			*f.str(o) = s
		}
	case kindNumber:
		if n, ok := val.(float64); ok {
			*f.num(o) = n
		}
	case kindBool:
		if b, ok := val.(bool); ok {
			*f.flag(o) = boolPtr(b)
		}
	case kindList:
		switch v := val.(type) {
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					items = append(items, s)
				}
			}
			*f.list(o) = items
		case string:
			if v != "" {
				*f.list(o) = []string{v}
			}
		}
	}
}
