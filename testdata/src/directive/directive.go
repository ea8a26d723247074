// Package directive tests //switchenum:ignore directives.
package directive

type Phase int // want Phase:"enum members: Plan,Apply,Destroy"

const (
	Plan Phase = iota
	Apply
	Destroy
)

// ===== IGNORE DIRECTIVES =====

// [GOOD]: Ignore directive - same line
func goodIgnoredSameLine(p Phase) {
	switch p { //switchenum:ignore
	case Plan:
	}
}

// [GOOD]: Ignore directive - previous line
func goodIgnoredPreviousLine(p Phase) {
	//switchenum:ignore
	switch p {
	case Plan:
	}
}

// [GOOD]: Ignore directive - with reason
func goodIgnoredWithReason(p Phase) {
	//switchenum:ignore - Destroy is handled by the caller
	switch p {
	case Plan, Apply:
	}
}

// [GOOD]: Ignore directive - check-specific
func goodIgnoredCheckSpecific(p Phase) {
	switch p { //switchenum:ignore unreachabledefault - values come from old state files
	case Plan, Apply, Destroy:
	default:
	}
}

// [BAD]: Ignore directive - unused check-specific
//
// Ignoring an unrelated check doesn't suppress the diagnostic.
func badIgnoredWrongCheck(p Phase) {
	//switchenum:ignore unreachabledefault // want `unused switchenum:ignore directive for check\(s\): unreachabledefault`
	switch p { // want "missing cases in switch of type directive.Phase:\nDestroy$"
	case Plan, Apply:
	}
}

// [BAD]: Ignore directive - completely unused
func badUnusedIgnore(p Phase) {
	//switchenum:ignore // want `unused switchenum:ignore directive`
	switch p {
	case Plan, Apply, Destroy:
	}
}

// [BAD]: Ignore directive - unknown check name
func badUnknownCheck(p Phase) {
	//switchenum:ignore nonexhaustive,exhaustive // want `unused switchenum:ignore directive for check\(s\): exhaustive`
	switch p {
	case Plan:
	}
}
