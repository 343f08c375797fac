package options

import "math"

// Merge folds the overlays into base in order and returns base. A field
// overrides only when the overlay carries a present value: strings when
// non-empty, numbers when not NaN, booleans when non-nil, lists when
// non-nil. The asymmetry is deliberate — a later, more specific source
// omits a field to inherit the earlier value instead of forcing it back
// to a falsy default. Note that a numeric zero is present here; only the
// named-input coercion folds zero into absence.
func Merge(base *Options, overlays ...*Options) *Options {
	for _, src := range overlays {
		if src == nil {
			continue
		}
		for _, f := range fields {
			switch f.kind {
			case kindString:
				if v := *f.str(src); v != "" {
					*f.str(base) = v
				}
			case kindNumber:
				if v := *f.num(src); !math.IsNaN(v) {
					*f.num(base) = v
				}
			case kindBool:
				if v := *f.flag(src); v != nil {
					*f.flag(base) = v
				}
			case kindList:
				if v := *f.list(src); v != nil {
					*f.list(base) = v
				}
			}
		}
	}
	return base
}
