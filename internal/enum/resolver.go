package enum

import (
	"go/ast"
	"go/types"
	"regexp"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/switchenum/internal/abort"
	"github.com/mpyw/switchenum/internal/exhaustive"
	"github.com/mpyw/switchenum/internal/typeutil"
)

// Filter excludes enums and members from checking.
// Nil patterns exclude nothing.
type Filter struct {
	Types   *regexp.Regexp // matched against "pkg/path.Type"
	Members *regexp.Regexp // matched against member names
}

// Resolver resolves switch statements of one analysis pass.
// It implements exhaustive.Resolver.
type Resolver struct {
	pass   *analysis.Pass
	local  map[*types.TypeName][]exhaustive.Member
	aborts *abort.Matcher
	filter Filter
}

var _ exhaustive.Resolver[types.Type, ast.Expr, ast.Stmt] = (*Resolver)(nil)

// NewResolver creates a Resolver. local holds the enums of the package
// under analysis; enums of other packages are read from facts.
func NewResolver(
	pass *analysis.Pass,
	local map[*types.TypeName][]exhaustive.Member,
	aborts *abort.Matcher,
	filter Filter,
) *Resolver {
	return &Resolver{
		pass:   pass,
		local:  local,
		aborts: aborts,
		filter: filter,
	}
}

// Members returns the members of the enum type t.
// It returns false if t is not an enum, is filtered out, or all of its
// members are filtered out.
func (r *Resolver) Members(t types.Type) ([]exhaustive.Member, bool) {
	named, ok := typeutil.EnumCandidate(t)
	if !ok {
		return nil, false
	}

	if r.filter.Types != nil && r.filter.Types.MatchString(typeutil.QualifiedName(named)) {
		return nil, false
	}

	members, ok := r.lookup(named.Obj())
	if !ok {
		return nil, false
	}

	if r.filter.Members != nil {
		kept := make([]exhaustive.Member, 0, len(members))
		for _, m := range members {
			if !r.filter.Members.MatchString(m.Name) {
				kept = append(kept, m)
			}
		}
		members = kept
	}

	return members, len(members) > 0
}

// Ignored returns the keys of the members of t removed by the member
// filter. Ignored members need no case, but they can still reach the
// default clause.
func (r *Resolver) Ignored(t types.Type) []string {
	if r.filter.Members == nil {
		return nil
	}

	named, ok := typeutil.EnumCandidate(t)
	if !ok {
		return nil
	}

	members, ok := r.lookup(named.Obj())
	if !ok {
		return nil
	}

	var keys []string
	for _, m := range members {
		if r.filter.Members.MatchString(m.Name) {
			keys = append(keys, m.Key)
		}
	}

	return keys
}

func (r *Resolver) lookup(tn *types.TypeName) ([]exhaustive.Member, bool) {
	if tn.Pkg() == r.pass.Pkg {
		members, ok := r.local[tn]
		return members, ok
	}

	var fact MembersFact
	if !r.pass.ImportObjectFact(tn, &fact) {
		return nil, false
	}

	return fact.Members, true
}

// Resolve returns the member key of a constant case label.
func (r *Resolver) Resolve(label ast.Expr) (string, bool) {
	tv, ok := r.pass.TypesInfo.Types[label]
	if !ok || tv.Value == nil {
		return "", false
	}

	return Key(tv.Value), true
}

// Aborts reports whether stmt unconditionally stops normal control flow.
func (r *Resolver) Aborts(stmt ast.Stmt) bool {
	return r.aborts.IsAbort(r.pass.TypesInfo, stmt)
}
