// Package filefilter tests file filtering functionality.
// Generated files are always skipped (see generated.go).
package filefilter

type Size int // want Size:"enum members: Small,Large"

const (
	Small Size = iota
	Large
)

// [BAD]: Reported in regular files
func badSwitch(s Size) {
	switch s { // want "missing cases in switch of type filefilter.Size:\nLarge$"
	case Small:
	}
}
