// Package typeutil provides type checking utilities for switchenum.
//
// # Enum Candidates
//
// Use [EnumCandidate] to check if the tag of a switch may be an enum:
//
//	named, ok := typeutil.EnumCandidate(pass.TypesInfo.TypeOf(stmt.Tag))
//	if !ok {
//	    return // not an integer or string defined type
//	}
//
// Aliases are resolved first, so both of these are candidates:
//
//	type Color int
//	type Colour = Color
//
// Generic types, pointers and types with non-basic underlying types are
// never candidates.
//
// # Builtin Calls
//
// [IsBuiltinCall] recognizes calls such as panic(...) and ignores local
// functions that shadow the builtin:
//
//	panic("unreachable")    // true
//
//	func panic(string) {}
//	panic("shadowed")       // false
package typeutil
