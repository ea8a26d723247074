// Package fix tests the suggested fix that adds missing cases.
package fix

import "enums"

type Suit int // want Suit:"enum members: Spades,Hearts,Diamonds,Clubs"

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

func missingNoDefault(s Suit) {
	switch s { // want "missing cases in switch of type fix.Suit:\nDiamonds\nClubs$"
	case Spades:
	case Hearts:
	}
}

func missingGuardDefault(s Suit) {
	switch s { // want "missing cases in switch of type fix.Suit:\nHearts\nClubs$"
	case Spades, Diamonds:
	default:
		panic(s)
	}
}

func missingImported(p enums.Protocol) {
	switch p { // want "missing cases in switch of type enums.Protocol:\nHTTPS$"
	case enums.HTTP:
	}
}

// No fix: the missing member cannot be named here
func missingUnexported(s enums.Status) {
	switch s { // want "missing cases in switch of type enums.Status:\nstatusInternal$"
	case enums.StatusPending, enums.StatusRunning, enums.StatusDone:
	}
}

// No fix: a local variable shadows a missing member
func missingShadowedMember(s Suit) {
	Clubs := 7
	_ = Clubs

	switch s { // want "missing cases in switch of type fix.Suit:\nClubs$"
	case Spades, Hearts, Diamonds:
	}
}

// No fix: a local variable shadows the import name
func missingShadowedImport(p enums.Protocol) {
	enums := "local"
	_ = enums

	switch p { // want "missing cases in switch of type enums.Protocol:\nHTTPS$"
	case "http":
	}
}
