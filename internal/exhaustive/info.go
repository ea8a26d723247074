package exhaustive

import "slices"

// Info is the outcome of classifying a single switch statement.
// The zero value describes a switch with no missing members and no default.
type Info struct {
	missing       []string
	hasDefault    bool
	defaultAborts bool
}

// NewInfo creates an Info. The missing slice is copied.
func NewInfo(missing []string, hasDefault, defaultAborts bool) Info {
	return Info{
		missing:       slices.Clone(missing),
		hasDefault:    hasDefault,
		defaultAborts: hasDefault && defaultAborts,
	}
}

// Missing returns the names of uncovered members in declaration order.
func (i Info) Missing() []string {
	return slices.Clone(i.missing)
}

// HasDefault reports whether the switch has a default clause.
func (i Info) HasDefault() bool {
	return i.hasDefault
}

// DefaultAborts reports whether the default clause starts with an abort.
func (i Info) DefaultAborts() bool {
	return i.defaultAborts
}

// NonExhaustive reports whether some members are neither handled by a case
// nor by a default clause with real fallback logic.
func (i Info) NonExhaustive() bool {
	return len(i.missing) > 0 && (!i.hasDefault || i.defaultAborts)
}

// UnreachableDefault reports whether the default clause can only run for
// values outside the enum.
func (i Info) UnreachableDefault() bool {
	return i.hasDefault && len(i.missing) == 0 && !i.defaultAborts
}
