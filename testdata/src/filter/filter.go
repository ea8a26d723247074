// Package filter tests the -ignore-enum-types and -ignore-enum-members flags.
// The flags are set to ^filter\.Legacy$ and Unknown|^max.
package filter

type Kind int // want Kind:"enum members: KindUnknown,KindFile,KindDir,maxKind"

const (
	KindUnknown Kind = iota
	KindFile
	KindDir
	maxKind
)

type Unknown int // want Unknown:"enum members: UnknownA,UnknownB"

const (
	UnknownA Unknown = iota
	UnknownB
)

type Legacy int // want Legacy:"enum members: LegacyA,LegacyB"

const (
	LegacyA Legacy = iota
	LegacyB
)

// [GOOD]: Ignored members need no case
func goodIgnoredMembers(k Kind) {
	switch k {
	case KindUnknown, KindFile, KindDir:
	}
}

// [GOOD]: Ignored members without a case still reach the default
func goodIgnoredMembersDefault(k Kind) string {
	switch k {
	case KindFile, KindDir:
		return "known"
	default:
		return "fallback"
	}
}

// [BAD]: Default is unreachable once ignored members have cases too
func badIgnoredMembersCovered(k Kind) string {
	switch k { // want "switch default unreachable: all cases of filter.Kind are handled"
	case KindUnknown, KindFile, KindDir, maxKind:
		return "known"
	default:
		return "fallback"
	}
}

// [GOOD]: One uncovered ignored member is enough to reach the default
func goodOneIgnoredMemberMissing(k Kind) {
	switch k {
	case KindUnknown, KindFile, KindDir:
	default:
	}
}

// [BAD]: Remaining members are still required
func badRemainingMembers(k Kind) {
	switch k { // want "missing cases in switch of type filter.Kind:\nKindDir$"
	case KindFile:
	}
}

// [GOOD]: Filtering every member leaves nothing to check
func goodAllMembersIgnored(u Unknown) {
	switch u {
	case UnknownA:
	default:
	}
}

// [GOOD]: Ignored type
func goodIgnoredType(l Legacy) {
	switch l {
	case LegacyA:
	}
}
