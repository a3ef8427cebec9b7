package resolver

import (
	"testing"

	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/position"
)

func sp() position.Span {
	return position.Span{
		Start: position.Position{Filename: "t.ga", Line: 1, Column: 1, Offset: 0},
		End:   position.Position{Filename: "t.ga", Line: 1, Column: 2, Offset: 1},
	}
}

func i32Type() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int32, Signed: true}
}

func ident(name string) *ast.IdentifierExpr {
	return &ast.IdentifierExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: name}}
}

func fn(name string, params []*ast.Parameter, ret ast.Type, body *ast.BlockExpr) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Proto:    &ast.Prototype{Span: sp(), Name: name, Params: params, ReturnType: ret},
		Body:     body,
	}
}

func block(stmts []ast.Statement, tail ast.Expression) *ast.BlockExpr {
	return &ast.BlockExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Statements: stmts, Tail: tail}
}

func TestCollectGlobalsDuplicateEntity(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	prog := &ast.Program{Declarations: []ast.Declaration{
		&ast.StructDeclaration{DeclBase: ast.DeclBase{NodeSpan: sp()}, Name: "Point"},
		&ast.StructDeclaration{DeclBase: ast.DeclBase{NodeSpan: sp()}, Name: "Point"},
	}}

	CollectGlobals(prog, reporter)

	if got := reporter.Codes(); len(got) != 1 || got[0] != 6 {
		t.Fatalf("Codes() = %v, want [6]", got)
	}
}

func TestCollectGlobalsConflictingOverload(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	params := []*ast.Parameter{{Span: sp(), Name: "x", Type: i32Type()}}

	prog := &ast.Program{Declarations: []ast.Declaration{
		fn("add_one", params, i32Type(), block(nil, ident("x"))),
		fn("add_one", params, i32Type(), block(nil, ident("x"))),
	}}

	CollectGlobals(prog, reporter)

	if got := reporter.Codes(); len(got) != 1 || got[0] != 9 {
		t.Fatalf("Codes() = %v, want [9]", got)
	}
}

func TestCollectGlobalsExternParticipatesInOverloadSet(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	prog := &ast.Program{Declarations: []ast.Declaration{
		&ast.ExternalFnDeclaration{
			DeclBase: ast.DeclBase{NodeSpan: sp()},
			Proto:    &ast.Prototype{Span: sp(), Name: "puts", Params: nil},
		},
	}}

	table := CollectGlobals(prog, reporter)

	if reporter.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.Codes())
	}

	set, ok := table.Root.Functions["puts"]
	if !ok || len(set.Decls) != 1 {
		t.Fatalf("expected puts to be collected as a one-candidate overload set")
	}

	if _, ok := set.Decls[0].(*ast.ExternalFnDeclaration); !ok {
		t.Fatalf("extern candidate should remain an *ExternalFnDeclaration, not a synthetic wrapper")
	}
}

func TestCollectGlobalsClassSubstitutesErrorDeclaration(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	prog := &ast.Program{Declarations: []ast.Declaration{
		&ast.ClassDeclaration{DeclBase: ast.DeclBase{NodeSpan: sp()}, Name: "Widget"},
	}}

	CollectGlobals(prog, reporter)

	if got := reporter.Codes(); len(got) != 1 || got[0] != 99 {
		t.Fatalf("Codes() = %v, want [99]", got)
	}

	if _, ok := prog.Declarations[0].(*ast.ErrorDeclaration); !ok {
		t.Fatalf("class declaration should be substituted with an ErrorDeclaration")
	}
}

func TestResolveUnknownIdentifier(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	body := block(nil, ident("nonexistent"))
	decl := fn("main", nil, nil, body)

	prog := &ast.Program{Declarations: []ast.Declaration{decl}}
	table := CollectGlobals(prog, reporter)

	NewResolver(table, reporter).Resolve(prog)

	if got := reporter.Codes(); len(got) != 1 || got[0] != 18 {
		t.Fatalf("Codes() = %v, want [18]", got)
	}

	if _, ok := body.Tail.(*ast.ErrorExpr); !ok {
		t.Fatalf("unresolved identifier should become an ErrorExpr")
	}
}

func TestResolveParameterBecomesLocalIdentifier(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	params := []*ast.Parameter{{Span: sp(), Name: "x", Type: i32Type()}}
	body := block(nil, ident("x"))
	decl := fn("identity", params, i32Type(), body)

	prog := &ast.Program{Declarations: []ast.Declaration{decl}}
	table := CollectGlobals(prog, reporter)

	NewResolver(table, reporter).Resolve(prog)

	if reporter.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.Codes())
	}

	local, ok := body.Tail.(*ast.LocalIdentifierExpr)
	if !ok {
		t.Fatalf("parameter reference should resolve to LocalIdentifierExpr, got %T", body.Tail)
	}

	if local.Binding.Name != "x" {
		t.Fatalf("Binding.Name = %q, want x", local.Binding.Name)
	}
}

func TestResolveCallResolvesToOverloadRef(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	helper := fn("helper", nil, i32Type(), block(nil, &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 1, Raw: "1"}))
	call := &ast.CallExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Callee: ident("helper")}
	main := fn("main", nil, nil, block(nil, call))

	prog := &ast.Program{Declarations: []ast.Declaration{helper, main}}
	table := CollectGlobals(prog, reporter)

	NewResolver(table, reporter).Resolve(prog)

	if reporter.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.Codes())
	}

	overload, ok := call.Callee.(*ast.OverloadRefExpr)
	if !ok {
		t.Fatalf("callee should resolve to OverloadRefExpr, got %T", call.Callee)
	}

	if len(overload.Candidates) != 1 {
		t.Fatalf("expected one candidate, got %d", len(overload.Candidates))
	}
}

func TestResolveDuplicateBindingInSameScope(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	one := &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 1, Raw: "1"}
	two := &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 2, Raw: "2"}

	stmts := []ast.Statement{
		&ast.BindingStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Name: "x", Init: one},
		&ast.BindingStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Name: "x", Init: two},
	}
	decl := fn("main", nil, nil, block(stmts, nil))

	prog := &ast.Program{Declarations: []ast.Declaration{decl}}
	table := CollectGlobals(prog, reporter)

	NewResolver(table, reporter).Resolve(prog)

	if got := reporter.Codes(); len(got) != 1 || got[0] != 8 {
		t.Fatalf("Codes() = %v, want [8]", got)
	}
}

func TestResolveOuterShadowAllowedByDefault(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	outer := &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 1, Raw: "1"}
	inner := &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 2, Raw: "2"}

	nested := &ast.LoopExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Body: block(
		[]ast.Statement{&ast.BindingStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Name: "x", Init: inner}}, nil)}

	stmts := []ast.Statement{
		&ast.BindingStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Name: "x", Init: outer},
		&ast.ExpressionStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Expr: nested},
	}
	decl := fn("main", nil, nil, block(stmts, nil))

	prog := &ast.Program{Declarations: []ast.Declaration{decl}}
	table := CollectGlobals(prog, reporter)

	NewResolverWithConfig(table, reporter, false).Resolve(prog)

	if got := reporter.Codes(); len(got) != 0 {
		t.Fatalf("Codes() = %v, want none (shadowing an outer scope is allowed by default)", got)
	}
}

func TestResolveOuterShadowRejectedUnderStrictConfig(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	outer := &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 1, Raw: "1"}
	inner := &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 2, Raw: "2"}

	nested := &ast.LoopExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Body: block(
		[]ast.Statement{&ast.BindingStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Name: "x", Init: inner}}, nil)}

	stmts := []ast.Statement{
		&ast.BindingStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Name: "x", Init: outer},
		&ast.ExpressionStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Expr: nested},
	}
	decl := fn("main", nil, nil, block(stmts, nil))

	prog := &ast.Program{Declarations: []ast.Declaration{decl}}
	table := CollectGlobals(prog, reporter)

	NewResolverWithConfig(table, reporter, true).Resolve(prog)

	if got := reporter.Codes(); len(got) != 1 || got[0] != 60 {
		t.Fatalf("Codes() = %v, want [60]", got)
	}
}

func TestResolveStructFieldTypeAndInit(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	structDecl := &ast.StructDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Name:     "Point",
		Fields: []ast.FieldDef{
			{Name: "x", Type: &ast.UnqualifiedUserDefinedType{TypeBase: ast.TypeBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: "Unknown"}}},
		},
	}

	prog := &ast.Program{Declarations: []ast.Declaration{structDecl}}
	table := CollectGlobals(prog, reporter)

	NewResolver(table, reporter).Resolve(prog)

	if got := reporter.Codes(); len(got) != 1 || got[0] != 14 {
		t.Fatalf("Codes() = %v, want [14] for an unknown field type", got)
	}

	if _, ok := structDecl.Fields[0].Type.(*ast.ErrorType); !ok {
		t.Fatalf("unresolved field type should become ErrorType")
	}
}

func TestResolveStructSelfReferenceSynthesizesUserDefinedType(t *testing.T) {
	reporter := diagnostic.NewBufferReporter()

	structDecl := &ast.StructDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Name:     "Node",
		Fields: []ast.FieldDef{
			{Name: "next", Type: &ast.ReferenceType{
				TypeBase: ast.TypeBase{NodeSpan: sp()},
				Elem:     &ast.UnqualifiedUserDefinedType{TypeBase: ast.TypeBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: "Node"}},
			}},
		},
	}

	prog := &ast.Program{Declarations: []ast.Declaration{structDecl}}
	table := CollectGlobals(prog, reporter)

	NewResolver(table, reporter).Resolve(prog)

	if reporter.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.Codes())
	}

	ref := structDecl.Fields[0].Type.(*ast.ReferenceType)
	resolved, ok := ref.Elem.(*ast.UserDefinedType)
	if !ok {
		t.Fatalf("self-referencing field should resolve to UserDefinedType, got %T", ref.Elem)
	}

	if resolved.FQID.Name != "Node" {
		t.Fatalf("FQID.Name = %q, want Node", resolved.FQID.Name)
	}
}
