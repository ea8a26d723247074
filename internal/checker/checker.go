// Package checker reports non-exhaustive switches and unreachable defaults.
package checker

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/switchenum/internal/directives/ignore"
	"github.com/mpyw/switchenum/internal/enum"
	"github.com/mpyw/switchenum/internal/exhaustive"
)

// Checker visits switch statements and reports diagnostics.
type Checker struct {
	resolver   *enum.Resolver
	enabled    ignore.EnabledCheckers
	ignoreMaps map[string]ignore.Map
	skipFiles  map[string]bool
}

// New creates a new checker.
func New(
	resolver *enum.Resolver,
	enabled ignore.EnabledCheckers,
	ignoreMaps map[string]ignore.Map,
	skipFiles map[string]bool,
) *Checker {
	return &Checker{
		resolver:   resolver,
		enabled:    enabled,
		ignoreMaps: ignoreMaps,
		skipFiles:  skipFiles,
	}
}

// Run executes the checker on the given pass.
func (c *Checker) Run(pass *analysis.Pass, insp *inspector.Inspector) {
	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.SwitchStmt)(nil),
	}

	var file *ast.File

	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch node := n.(type) {
		case *ast.File:
			file = node
		case *ast.SwitchStmt:
			if c.skipFiles[pass.Fset.Position(node.Pos()).Filename] {
				return
			}
			c.checkSwitch(pass, file, node)
		}
	})
}

// checkSwitch classifies a single switch statement and reports the outcome.
func (c *Checker) checkSwitch(pass *analysis.Pass, file *ast.File, stmt *ast.SwitchStmt) {
	if stmt.Tag == nil {
		return
	}

	tagType := pass.TypesInfo.TypeOf(stmt.Tag)
	if tagType == nil {
		return
	}

	labels, def, defClause := splitClauses(stmt.Body)

	info, ok := exhaustive.Classify(c.resolver, tagType, labels, def)
	if !ok {
		return
	}

	typeName := types.TypeString(types.Unalias(tagType), (*types.Package).Name)

	switch {
	case info.NonExhaustive():
		if c.shouldIgnore(pass, stmt.Tag.Pos(), ignore.NonExhaustive) {
			return
		}

		diag := analysis.Diagnostic{
			Pos:      stmt.Tag.Pos(),
			End:      stmt.Tag.End(),
			Category: string(ignore.NonExhaustive),
			Message:  fmt.Sprintf("missing cases in switch of type %s:\n%s", typeName, strings.Join(info.Missing(), "\n")),
		}
		if fix, ok := missingCasesFix(pass, file, stmt, defClause, tagType, info.Missing()); ok {
			diag.SuggestedFixes = []analysis.SuggestedFix{fix}
		}

		pass.Report(diag)

	case info.UnreachableDefault():
		if c.reachesIgnored(tagType, labels) {
			return
		}

		if c.shouldIgnore(pass, stmt.Tag.Pos(), ignore.UnreachableDefault) {
			return
		}

		pass.Report(analysis.Diagnostic{
			Pos:      stmt.Tag.Pos(),
			End:      stmt.Tag.End(),
			Category: string(ignore.UnreachableDefault),
			Message:  fmt.Sprintf("switch default unreachable: all cases of %s are handled", typeName),
		})
	}
}

// reachesIgnored reports whether a member excluded by the member filter has
// no case, so that the default clause still handles it.
func (c *Checker) reachesIgnored(tagType types.Type, labels []ast.Expr) bool {
	ignored := c.resolver.Ignored(tagType)
	if len(ignored) == 0 {
		return false
	}

	covered := make(map[string]bool, len(labels))
	for _, label := range labels {
		if key, ok := c.resolver.Resolve(label); ok {
			covered[key] = true
		}
	}

	for _, key := range ignored {
		if !covered[key] {
			return true
		}
	}

	return false
}

// splitClauses collects case labels in source order and the first default clause.
func splitClauses(body *ast.BlockStmt) ([]ast.Expr, *exhaustive.Default[ast.Stmt], *ast.CaseClause) {
	var (
		labels    []ast.Expr
		def       *exhaustive.Default[ast.Stmt]
		defClause *ast.CaseClause
	)

	for _, s := range body.List {
		clause, ok := s.(*ast.CaseClause)
		if !ok {
			continue
		}

		if clause.List == nil {
			if def == nil {
				def = &exhaustive.Default[ast.Stmt]{Body: clause.Body}
				defClause = clause
			}

			continue
		}

		labels = append(labels, clause.List...)
	}

	return labels, def, defClause
}

// shouldIgnore checks if the diagnostic is disabled or suppressed by a directive.
func (c *Checker) shouldIgnore(pass *analysis.Pass, pos token.Pos, checker ignore.CheckerName) bool {
	if !c.enabled[checker] {
		return true
	}

	position := pass.Fset.Position(pos)

	ignoreMap, ok := c.ignoreMaps[position.Filename]
	if !ok {
		return false
	}

	return ignoreMap.ShouldIgnore(position.Line, checker)
}
