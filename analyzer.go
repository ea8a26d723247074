// Package switchenum provides a go/analysis based analyzer for detecting
// non-exhaustive switch statements over enums and default clauses that can
// never run.
package switchenum

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/switchenum/internal/abort"
	"github.com/mpyw/switchenum/internal/checker"
	"github.com/mpyw/switchenum/internal/directives/ignore"
	"github.com/mpyw/switchenum/internal/enum"
)

// Flags for the analyzer.
var (
	abortFuncs        string
	ignoreEnumMembers string
	ignoreEnumTypes   string

	// Check enable/disable flags (all enabled by default).
	enableNonExhaustive      bool
	enableUnreachableDefault bool
)

func init() {
	Analyzer.Flags.StringVar(&abortFuncs, "abort-funcs", "",
		"comma-separated list of functions that never return, in addition to panic, os.Exit and log.Fatal "+
			"(e.g., pkg.Func or pkg.Type.Method)")
	Analyzer.Flags.StringVar(&ignoreEnumMembers, "ignore-enum-members", "",
		"regexp of enum member names that do not need a case")
	Analyzer.Flags.StringVar(&ignoreEnumTypes, "ignore-enum-types", "",
		"regexp of enum types (e.g., github.com/example/pkg.Color) whose switches are not checked")

	Analyzer.Flags.BoolVar(&enableNonExhaustive, "nonexhaustive", true, "enable non-exhaustive switch check")
	Analyzer.Flags.BoolVar(&enableUnreachableDefault, "unreachabledefault", true, "enable unreachable default check")
}

// Analyzer is the main analyzer for switchenum.
var Analyzer = &analysis.Analyzer{
	Name:      "switchenum",
	Doc:       "checks that switch statements over enums handle every member and have no unreachable default",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{new(enum.MembersFact)},
}

var (
	ErrNoInspector    = errors.New("inspector analyzer result not found")
	ErrInvalidPattern = errors.New("invalid pattern")
)

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	filter, err := buildFilter()
	if err != nil {
		return nil, err
	}

	// Enums declared here are needed by importers even if nothing is reported
	enums := enum.Collect(pass.Pkg)
	enum.Export(pass, enums)

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	enabled := buildEnabledCheckers()

	aborts, err := abort.NewMatcher(abortFuncs)
	if err != nil {
		return nil, fmt.Errorf("-abort-funcs: %w", err)
	}

	resolver := enum.NewResolver(pass, enums, aborts, filter)
	checker.New(resolver, enabled, ignoreMaps, skipFiles).Run(pass, insp)

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps, enabled)

	return nil, nil
}

// buildFilter compiles the -ignore-enum-* flags.
func buildFilter() (enum.Filter, error) {
	var filter enum.Filter

	for _, p := range []struct {
		flag  string
		value string
		dst   **regexp.Regexp
	}{
		{"ignore-enum-types", ignoreEnumTypes, &filter.Types},
		{"ignore-enum-members", ignoreEnumMembers, &filter.Members},
	} {
		if p.value == "" {
			continue
		}

		re, err := regexp.Compile(p.value)
		if err != nil {
			return enum.Filter{}, fmt.Errorf("%w: -%s: %w", ErrInvalidPattern, p.flag, err)
		}
		*p.dst = re
	}

	return filter, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			skipFiles[pass.Fset.Position(file.Pos()).Filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// buildEnabledCheckers creates a map of which checks are enabled.
func buildEnabledCheckers() ignore.EnabledCheckers {
	enabled := make(ignore.EnabledCheckers)

	if enableNonExhaustive {
		enabled[ignore.NonExhaustive] = true
	}

	if enableUnreachableDefault {
		enabled[ignore.UnreachableDefault] = true
	}

	return enabled
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map, enabled ignore.EnabledCheckers) {
	for _, file := range pass.Files {
		ignoreMap, ok := ignoreMaps[pass.Fset.Position(file.Pos()).Filename]
		if !ok {
			continue
		}

		for _, unused := range ignoreMap.GetUnusedIgnores(enabled) {
			if len(unused.Checkers) == 0 {
				pass.Reportf(unused.Pos, "unused switchenum:ignore directive")
				continue
			}

			names := make([]string, len(unused.Checkers))
			for i, c := range unused.Checkers {
				names[i] = string(c)
			}
			pass.Reportf(unused.Pos, "unused switchenum:ignore directive for check(s): %s", strings.Join(names, ", "))
		}
	}
}
