// Package ignore handles //switchenum:ignore directives.
package ignore

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

const prefix = "switchenum:ignore"

// CheckerName represents a check that can be ignored.
// It doubles as the category of the diagnostics the check reports.
type CheckerName string

// Valid checker names.
const (
	NonExhaustive      CheckerName = "nonexhaustive"
	UnreachableDefault CheckerName = "unreachabledefault"
)

// AllCheckerNames returns all valid checker names.
func AllCheckerNames() []CheckerName {
	return []CheckerName{
		NonExhaustive,
		UnreachableDefault,
	}
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos      token.Pos            // Position of the ignore comment
	checkers []CheckerName        // List of checker names (empty = all)
	used     map[CheckerName]bool // Track usage per checker
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// EnabledCheckers tracks which checkers are currently enabled.
type EnabledCheckers map[CheckerName]bool

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if checkers, ok := parseIgnoreComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:      c.Pos(),
					checkers: checkers,
					used:     make(map[CheckerName]bool),
				}
			}
		}
	}

	return m
}

// parseIgnoreComment parses an ignore directive and returns the checker names.
// Returns nil slice if no specific checkers are specified (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //switchenum:ignore                                  -> ignore all checks
//   - //switchenum:ignore nonexhaustive                    -> ignore specific check
//   - //switchenum:ignore nonexhaustive,unreachabledefault -> ignore multiple checks
//   - //switchenum:ignore - reason                         -> ignore all with comment
//   - //switchenum:ignore unreachabledefault - reason      -> ignore specific with comment
func parseIgnoreComment(text string) ([]CheckerName, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return nil, false
	}

	// "switchenum:ignored" is not a directive
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false
	}

	rest = strings.TrimSpace(rest)

	if rest == "" {
		return nil, true // No specific checkers = ignore all
	}

	// " - " and " //" start a human-readable reason
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || strings.HasPrefix(rest, "//") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	// Parse comma-separated checker names
	parts := strings.Split(rest, ",")
	checkers := make([]CheckerName, 0, len(parts))

	for _, part := range parts {
		name := CheckerName(strings.TrimSpace(part))
		if name != "" {
			checkers = append(checkers, name)
		}
	}

	return checkers, true
}

// ShouldIgnore returns true if the given line should be ignored for the specified check.
// A directive applies to its own line and the line below it.
// Matching entries are marked as used for that check.
func (m Map) ShouldIgnore(line int, checker CheckerName) bool {
	return m[line].ignores(checker) || m[line-1].ignores(checker)
}

func (e *Entry) ignores(checker CheckerName) bool {
	if e == nil {
		return false
	}

	if len(e.checkers) > 0 && !slices.Contains(e.checkers, checker) {
		return false
	}

	e.used[checker] = true

	return true
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos      token.Pos
	Checkers []CheckerName // Unused check names (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that were not used, ordered by position.
// Names of disabled or unknown checks are always reported as unused.
func (m Map) GetUnusedIgnores(enabled EnabledCheckers) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.checkers) == 0 {
			anyUsed := false
			for checker := range enabled {
				if entry.used[checker] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}

			continue
		}

		var unusedCheckers []CheckerName
		for _, checker := range entry.checkers {
			if !enabled[checker] || !entry.used[checker] {
				unusedCheckers = append(unusedCheckers, checker)
			}
		}
		if len(unusedCheckers) > 0 {
			unused = append(unused, UnusedIgnore{
				Pos:      entry.pos,
				Checkers: unusedCheckers,
			})
		}
	}

	slices.SortFunc(unused, func(a, b UnusedIgnore) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return unused
}
