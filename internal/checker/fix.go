package checker

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// missingCasesFix builds a fix that adds an empty case clause per missing
// member, inserted before the default clause or the closing brace.
// It returns false if the members cannot be named from this file.
func missingCasesFix(
	pass *analysis.Pass,
	file *ast.File,
	stmt *ast.SwitchStmt,
	defClause *ast.CaseClause,
	tagType types.Type,
	missing []string,
) (analysis.SuggestedFix, bool) {
	named, ok := types.Unalias(tagType).(*types.Named)
	if !ok || file == nil {
		return analysis.SuggestedFix{}, false
	}

	enumPkg := named.Obj().Pkg()

	qualifier, ok := memberQualifier(pass.Pkg, file, enumPkg)
	if !ok {
		return analysis.SuggestedFix{}, false
	}

	pos := stmt.Body.Rbrace
	if defClause != nil {
		pos = defClause.Pos()
	}

	indent := strings.Repeat("\t", max(pass.Fset.Position(stmt.Pos()).Column-1, 0))

	var b strings.Builder
	if pass.Fset.Position(stmt.Body.Lbrace).Line == pass.Fset.Position(pos).Line {
		b.WriteString("\n" + indent)
	}

	scope := pass.Pkg.Scope().Innermost(stmt.Pos())
	if scope == nil {
		return analysis.SuggestedFix{}, false
	}

	for _, name := range missing {
		if enumPkg != pass.Pkg && !token.IsExported(name) {
			return analysis.SuggestedFix{}, false
		}

		if !namesMember(scope, stmt.Pos(), qualifier, enumPkg, name) {
			return analysis.SuggestedFix{}, false
		}

		b.WriteString("case " + qualifier + name + ":\n" + indent)
	}

	return analysis.SuggestedFix{
		Message: fmt.Sprintf("Add cases for %s", named.Obj().Name()),
		TextEdits: []analysis.TextEdit{{
			Pos:     pos,
			End:     pos,
			NewText: []byte(b.String()),
		}},
	}, true
}

// memberQualifier returns the prefix that names members of enumPkg in file,
// such as "color." or "" for the current package and dot imports.
func memberQualifier(pkg *types.Package, file *ast.File, enumPkg *types.Package) (string, bool) {
	if enumPkg == pkg {
		return "", true
	}

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != enumPkg.Path() {
			continue
		}

		if spec.Name == nil {
			return enumPkg.Name() + ".", true
		}

		switch spec.Name.Name {
		case "_":
			return "", false
		case ".":
			return "", true
		default:
			return spec.Name.Name + ".", true
		}
	}

	return "", false
}

// namesMember reports whether qualifier+name, written at pos, refers to the
// member constant declared in enumPkg and not to a shadowing declaration.
func namesMember(scope *types.Scope, pos token.Pos, qualifier string, enumPkg *types.Package, name string) bool {
	member, ok := enumPkg.Scope().Lookup(name).(*types.Const)
	if !ok {
		return false
	}

	if qualifier == "" {
		_, obj := scope.LookupParent(name, pos)
		return obj == member
	}

	_, obj := scope.LookupParent(strings.TrimSuffix(qualifier, "."), pos)
	pkgName, ok := obj.(*types.PkgName)

	return ok && pkgName.Imported() == enumPkg
}
