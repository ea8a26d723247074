// Package enum discovers enum types and resolves switch statements over them.
//
// An enum is a defined integer or string type with at least one
// package-level constant of that type declared in the same package.
// Constants with equal values form a single member named after the first
// of them.
package enum

import (
	"cmp"
	"go/constant"
	"go/types"
	"slices"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/switchenum/internal/exhaustive"
	"github.com/mpyw/switchenum/internal/typeutil"
)

// Collect finds the enums declared in the package under analysis.
func Collect(pkg *types.Package) map[*types.TypeName][]exhaustive.Member {
	scope := pkg.Scope()

	var consts []*types.Const

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || c.Name() == "_" {
			continue
		}

		consts = append(consts, c)
	}

	// Scope names are sorted alphabetically; members follow the source.
	slices.SortFunc(consts, func(a, b *types.Const) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	enums := make(map[*types.TypeName][]exhaustive.Member)
	seen := make(map[*types.TypeName]map[string]bool)

	for _, c := range consts {
		named, ok := typeutil.EnumCandidate(c.Type())
		if !ok || named.Obj().Pkg() != pkg {
			continue
		}

		tn := named.Obj()
		key := Key(c.Val())

		if seen[tn] == nil {
			seen[tn] = make(map[string]bool)
		}
		if seen[tn][key] {
			continue
		}
		seen[tn][key] = true

		enums[tn] = append(enums[tn], exhaustive.Member{Key: key, Name: c.Name()})
	}

	return enums
}

// Export records every enum of the package as a fact.
func Export(pass *analysis.Pass, enums map[*types.TypeName][]exhaustive.Member) {
	for tn, members := range enums {
		pass.ExportObjectFact(tn, &MembersFact{Members: members})
	}
}

// Key returns the identity of a constant value.
// Integral floats are normalized so that 1 and 1.0 are the same member.
func Key(v constant.Value) string {
	if v.Kind() == constant.Float {
		if i := constant.ToInt(v); i.Kind() == constant.Int {
			v = i
		}
	}

	return v.ExactString()
}
