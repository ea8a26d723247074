// Package abort recognizes statements that unconditionally stop normal
// control flow, such as panic(...) or os.Exit(1).
package abort

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"github.com/mpyw/switchenum/internal/funcspec"
	"github.com/mpyw/switchenum/internal/typeutil"
)

// Abort functions from the standard library.
var stdlibAborts = []string{
	"os.Exit",
	"runtime.Goexit",
	"log.Fatal",
	"log.Fatalf",
	"log.Fatalln",
	"log.Panic",
	"log.Panicf",
	"log.Panicln",
	"log.Logger.Fatal",
	"log.Logger.Fatalf",
	"log.Logger.Fatalln",
	"log.Logger.Panic",
	"log.Logger.Panicf",
	"log.Logger.Panicln",
}

// ErrInvalidFuncSpec is returned for an abort function without a package path.
var ErrInvalidFuncSpec = errors.New("function spec needs a package path")

// Matcher checks statements against the builtin panic, the standard
// library abort functions and user supplied ones.
type Matcher struct {
	specs []funcspec.Spec
}

// NewMatcher creates a Matcher. extra is the -abort-funcs flag value.
func NewMatcher(extra string) (*Matcher, error) {
	specs := make([]funcspec.Spec, 0, len(stdlibAborts))
	for _, s := range stdlibAborts {
		specs = append(specs, funcspec.Parse(s))
	}

	for _, spec := range funcspec.ParseList(extra) {
		if spec.PkgPath == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFuncSpec, spec)
		}

		specs = append(specs, spec)
	}

	return &Matcher{specs: specs}, nil
}

// IsAbort reports whether stmt is a call statement that never returns.
func (m *Matcher) IsAbort(info *types.Info, stmt ast.Stmt) bool {
	exprStmt, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return false
	}

	call, ok := ast.Unparen(exprStmt.X).(*ast.CallExpr)
	if !ok {
		return false
	}

	if typeutil.IsBuiltinCall(info, call, "panic") {
		return true
	}

	fn := funcspec.ExtractFunc(info, call)
	if fn == nil {
		return false
	}

	for _, spec := range m.specs {
		if spec.Matches(fn) {
			return true
		}
	}

	return false
}
