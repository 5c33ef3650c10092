// Package noprintf provides noprintf analyzer.
package noprintf

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// Analyzer provides noprintf analyzer.
//
// It reports fmt.Print, fmt.Printf and fmt.Println calls outside of main
// packages. Library code should emit diagnostics through the injected zap
// logger instead of printing to stdout.
var Analyzer = &analysis.Analyzer{ //nolint:gochecknoglobals
	Name: "noprintf",
	Doc:  "check for fmt print calls to stdout outside of main packages",
	Run:  run,
}

// run checks for the analyzer.
func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil //nolint:nilnil
	}

	for _, file := range pass.Files {
		// Walk through the file.
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}

			if isFmtPrintCall(call) {
				pass.Reportf(call.Pos(), "use the zap logger instead of fmt print calls")
			}

			return true
		})
	}

	return nil, nil //nolint:nilnil
}

// isFmtPrintCall checks if the given call expression is a fmt.Print, fmt.Printf
// or fmt.Println call.
func isFmtPrintCall(call *ast.CallExpr) bool {
	selector, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	ident, ok := selector.X.(*ast.Ident)
	if !ok || ident.Name != "fmt" {
		return false
	}

	switch selector.Sel.Name {
	case "Print", "Printf", "Println":
		return true
	}

	return false
}
