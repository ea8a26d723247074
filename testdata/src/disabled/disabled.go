// Package disabled tests the check enable flags.
// The analyzer runs with -unreachabledefault=false.
package disabled

type Answer int // want Answer:"enum members: Yes,No"

const (
	Yes Answer = iota
	No
)

// [BAD]: Non-exhaustive check stays enabled
func badMissing(a Answer) {
	switch a { // want "missing cases in switch of type disabled.Answer:\nNo$"
	case Yes:
	}
}

// [GOOD]: Unreachable default check is disabled
func goodDisabledCheck(a Answer) {
	switch a {
	case Yes, No:
	default:
	}
}

// [BAD]: Directives for disabled checks are reported
func badDirectiveForDisabledCheck(a Answer) {
	//switchenum:ignore unreachabledefault // want `unused switchenum:ignore directive for check\(s\): unreachabledefault`
	switch a {
	case Yes, No:
	default:
	}
}
