package filefilter

// [BAD]: Test files are analyzed too
func badSwitchInTest(s Size) {
	switch s { // want "switch default unreachable: all cases of filefilter.Size are handled"
	case Small, Large:
	default:
	}
}
