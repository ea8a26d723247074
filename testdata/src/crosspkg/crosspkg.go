// Package crosspkg tests switches over enums declared in other packages.
package crosspkg

import "enums"

// [BAD]: Unexported members of imported enums are still members
func badMissingImported(s enums.Status) {
	switch s { // want "missing cases in switch of type enums.Status:\nStatusDone\nstatusInternal$"
	case enums.StatusPending, enums.StatusRunning:
	}
}

// [GOOD]: Every exported member plus a fallback
func goodImportedFallback(s enums.Status) {
	switch s {
	case enums.StatusPending:
	default:
	}
}

// [BAD]: Unreachable default for imported enum
func badImportedUnreachable(p enums.Protocol) {
	switch p { // want "switch default unreachable: all cases of enums.Protocol are handled"
	case enums.HTTP, enums.HTTPS:
	default:
	}
}

// [BAD]: Enum value from a call
func badFromCall() {
	switch enums.Current() { // want "missing cases in switch of type enums.Status:\nStatusPending\nStatusRunning\nStatusDone\nstatusInternal$"
	}
}
