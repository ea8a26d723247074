// Package abortfuncs tests the -abort-funcs flag.
// The flag is set to abortfuncs.unreachable,abortfuncs.Guard.Fail.
package abortfuncs

type Weekday int // want Weekday:"enum members: Monday,Tuesday,Wednesday"

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
)

type Guard struct{}

func (*Guard) Fail(v any) {
	panic(v)
}

func unreachable(v any) {
	panic(v)
}

func recoverable(v any) {}

// [BAD]: Configured function makes the default a guard
func badConfiguredFunc(d Weekday) {
	switch d { // want "missing cases in switch of type abortfuncs.Weekday:\nWednesday$"
	case Monday, Tuesday:
	default:
		unreachable(d)
	}
}

// [BAD]: Configured method makes the default a guard
func badConfiguredMethod(g *Guard, d Weekday) {
	switch d { // want "missing cases in switch of type abortfuncs.Weekday:\nTuesday\nWednesday$"
	case Monday:
	default:
		g.Fail(d)
	}
}

// [GOOD]: Configured guard after every member
func goodConfiguredGuard(d Weekday) {
	switch d {
	case Monday, Tuesday, Wednesday:
	default:
		unreachable(d)
	}
}

// [GOOD]: Other functions are ordinary fallback logic
func goodOrdinaryFunc(d Weekday) {
	switch d {
	case Monday:
	default:
		recoverable(d)
	}
}

// [BAD]: Other functions are ordinary fallback logic
func badOrdinaryFunc(d Weekday) {
	switch d { // want "switch default unreachable: all cases of abortfuncs.Weekday are handled"
	case Monday, Tuesday, Wednesday:
	default:
		recoverable(d)
	}
}
