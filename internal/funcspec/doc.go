// Package funcspec provides function specification parsing and matching.
//
// # Specification Format
//
// A function specification has the format:
//
//	pkg/path.FuncName           # Package-level function
//	pkg/path.TypeName.Method    # Method on type
//
// Examples:
//
//	os.Exit
//	log.Logger.Fatalf
//	github.com/example/app/must.Unreachable
//
// # Parsing
//
// Use [Parse] for a single value and [ParseList] for a flag value:
//
//	specs := funcspec.ParseList("os.Exit, log.Logger.Fatal")
//	// specs[0] = {PkgPath: "os", FuncName: "Exit"}
//	// specs[1] = {PkgPath: "log", TypeName: "Logger", FuncName: "Fatal"}
//
// # Matching
//
// Use [ExtractFunc] and [Spec.Matches] together:
//
//	fn := funcspec.ExtractFunc(pass.TypesInfo, call)
//	if fn != nil && spec.Matches(fn) {
//	    // call invokes the specified function
//	}
//
// Pointer and value receivers both match a Type.Method specification.
package funcspec
