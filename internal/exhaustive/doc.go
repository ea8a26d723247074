// Package exhaustive decides whether a switch over an enum is exhaustive.
//
// # Overview
//
// The package knows nothing about go/ast or go/types. It works on three
// abstract inputs supplied by a [Resolver]:
//
//   - the selector, whose enum members are listed by [Resolver.Members]
//   - the case labels, each resolved to a member key by [Resolver.Resolve]
//   - the default clause body, whose first statement is checked with
//     [Resolver.Aborts]
//
// [Classify] turns these into an [Info]:
//
//	info, ok := exhaustive.Classify(r, tagType, labels, def)
//	if !ok {
//	    return // selector is not an enum
//	}
//	if info.NonExhaustive() {
//	    // report info.Missing()
//	}
//
// # Decision Rules
//
//	NonExhaustive      = len(missing) > 0 && (!hasDefault || defaultAborts)
//	UnreachableDefault = hasDefault && len(missing) == 0 && !defaultAborts
//
// A default clause whose first statement aborts (panic, os.Exit, ...) is a
// guard for impossible values, so it does not excuse missing cases and is
// never reported as unreachable.
//
// # Resolution Failures
//
// Labels that cannot be resolved, or that resolve to a value outside the
// enum, cover nothing. A selector that is not an enum makes [Classify]
// return false. Nothing in this package returns an error.
package exhaustive
