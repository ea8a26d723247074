package typeutil

import (
	"go/ast"
	"go/types"
)

// EnumCandidate returns the defined type behind t if it could be an enum:
// a non-generic named type whose underlying type is an integer or string.
// Whether it actually has members is decided by the caller.
func EnumCandidate(t types.Type) (*types.Named, bool) {
	if t == nil {
		return nil, false
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	if named.TypeParams().Len() > 0 || named.TypeArgs().Len() > 0 {
		return nil, false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return nil, false
	}

	basic, ok := named.Underlying().(*types.Basic)
	if !ok {
		return nil, false
	}

	return named, basic.Info()&(types.IsInteger|types.IsString) != 0
}

// QualifiedName returns "pkg/path.Name" for a named type.
func QualifiedName(named *types.Named) string {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}

// IsBuiltinCall checks if call invokes the named builtin function.
func IsBuiltinCall(info *types.Info, call *ast.CallExpr, name string) bool {
	ident, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return false
	}

	b, ok := info.Uses[ident].(*types.Builtin)

	return ok && b.Name() == name
}
