// Command galliumc demonstrates wiring internal/pipeline end to end. It
// has no source parser (out of scope, spec.md §1 Non-goals): instead of
// reading a `.ga` file, it builds one hardcoded demo Program — a `main`
// that greets the world via the builtins' `println` — and runs it
// through name resolution, type checking, and mangling, printing
// whatever diagnostics come out the other end the way orizon-compiler's
// main.go prints lexer/parser errors against flag-selected behavior.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/pipeline"
	"github.com/gallium-lang/gallium/internal/position"
)

var version = "0.1.0-alpha"

func main() {
	var (
		showVersion     = flag.Bool("version", false, "show version information")
		strictShadowing = flag.Bool("strict-shadowing", false, "reject bindings that shadow an enclosing scope")
		noEnforceMain   = flag.Bool("no-enforce-main", false, "do not require a `fn main() -> i32` declaration")
		target          = flag.String("target", "", "target triple to validate `arch(...)` attributes against")
		noColor         = flag.Bool("no-color", false, "disable ANSI-colored diagnostic output")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("galliumc %s\n", version)
		return
	}

	cfg := pipeline.Config{
		StrictShadowing:      *strictShadowing,
		EnforceMainSignature: !*noEnforceMain,
		TargetTriple:         *target,
	}

	prog := demoProgram()
	reporter := diagnostic.NewConsoleReporter(os.Stdout, position.NewSourceMap(), !*noColor)

	result, err := pipeline.Run(prog, reporter, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "galliumc: %v\n", err)
		os.Exit(1)
	}

	if result.HadError {
		fmt.Printf("galliumc: stopped at %s with %d diagnostic(s)\n", result.Reached, reporter.Count())
		os.Exit(1)
	}

	if len(result.Violations) != 0 {
		fmt.Println("galliumc: back-end boundary contract violated:")

		for _, v := range result.Violations {
			fmt.Println("  " + v.String())
		}

		os.Exit(1)
	}

	fmt.Printf("galliumc: reached %s cleanly — %d top-level declaration(s) mangled\n", result.Reached, len(prog.Declarations))
}

func sp() position.Span { return position.NonexistentSpan }

func i32Type() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int32, Signed: true}
}

func ident(name string) ast.Expression {
	return &ast.IdentifierExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: name}}
}

// demoProgram builds `fn main() -> i32 { println("hello, gallium"); 0 }`
// directly as an AST, standing in for what a surface parser would
// produce from source.
func demoProgram() *ast.Program {
	greeting := &ast.StringLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: "hello, gallium"}
	call := &ast.CallExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Callee: ident("println"), Args: []ast.Expression{greeting}}

	body := &ast.BlockExpr{
		ExprBase:   ast.ExprBase{NodeSpan: sp()},
		Statements: []ast.Statement{&ast.ExpressionStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Expr: call}},
		Tail:       &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 0, Raw: "0"},
	}

	mainDecl := &ast.FunctionDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Proto:    &ast.Prototype{Span: sp(), Name: "main", ReturnType: i32Type()},
		Body:     body,
	}

	return &ast.Program{Declarations: []ast.Declaration{mainDecl}}
}
