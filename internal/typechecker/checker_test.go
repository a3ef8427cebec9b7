package typechecker

import (
	"testing"

	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/resolver"
)

// fn builds a *ast.FunctionDeclaration fixture; unlike stdlibFn (which
// always tags AttrStdlib for the builtins registry) this is a plain
// source-level function, the shape every test below needs.
func fn(name string, params []*ast.Parameter, ret ast.Type, body *ast.BlockExpr) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Proto:    &ast.Prototype{Span: sp(), Name: name, Params: params, ReturnType: ret},
		Body:     body,
	}
}

func intLit(raw string, value uint64) *ast.IntegerLiteralExpr {
	return &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: value, Raw: raw}
}

func boolLit(v bool) *ast.BoolLiteralExpr {
	return &ast.BoolLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: v}
}

func exprStmt(e ast.Expression) ast.Statement {
	return &ast.ExpressionStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Expr: e}
}

func bindStmt(name string, mutable bool, hint ast.Type, init ast.Expression) ast.Statement {
	return &ast.BindingStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Name: name, Mutable: mutable, TypeHint: hint, Init: init}
}

// tailed is the test-local analog of builtins.go's block(): statements
// then a tail expression, matching resolver_test.go's block() shape.
func tailed(stmts []ast.Statement, tail ast.Expression) *ast.BlockExpr {
	return &ast.BlockExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Statements: stmts, Tail: tail}
}

// run resolves and type-checks prog, returning the diagnostics reported by
// either phase.
func run(prog *ast.Program) *diagnostic.BufferReporter {
	reporter := diagnostic.NewBufferReporter()
	table := resolver.CollectGlobals(prog, reporter)
	resolver.NewResolver(table, reporter).Resolve(prog)
	NewChecker(table, reporter).Check(prog)

	return reporter
}

func codes(t *testing.T, r *diagnostic.BufferReporter, want ...diagnostic.Code) {
	t.Helper()

	got := r.Codes()
	if len(got) != len(want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Codes() = %v, want %v", got, want)
		}
	}
}

func TestCheckBindingHintMismatch(t *testing.T) {
	body := tailed([]ast.Statement{
		bindStmt("x", false, boolType(), intLit("1", 1)),
	}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 7)
}

func TestCheckBindingNilWithoutHint(t *testing.T) {
	body := tailed([]ast.Statement{
		bindStmt("x", false, nil, &ast.NilLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}}),
	}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 21)
}

func TestCheckReturnTypeMismatch(t *testing.T) {
	// The mismatched `return` sits mid-body as a statement; the tail
	// expression (0) still agrees with the declared return type, so the
	// only diagnostic is the return's own mismatch (code 20), not a
	// second one from the function body's overall fall-through value.
	body := tailed([]ast.Statement{
		exprStmt(&ast.ReturnExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: boolLit(true)}),
	}, intLit("0", 0))

	prog := &ast.Program{Declarations: []ast.Declaration{fn("main", nil, i32Type(), body)}}

	codes(t, run(prog), 20)
}

func TestCheckMainInvalidSignature(t *testing.T) {
	params := []*ast.Parameter{{Span: sp(), Name: "argc", Type: i32Type()}}
	body := tailed(nil, intLit("0", 0))

	prog := &ast.Program{Declarations: []ast.Declaration{fn("main", params, i32Type(), body)}}

	codes(t, run(prog), 52)
}

func TestCheckMainValidSignatureNoDiagnostics(t *testing.T) {
	body := tailed(nil, intLit("0", 0))

	prog := &ast.Program{Declarations: []ast.Declaration{fn("main", nil, i32Type(), body)}}

	r := run(prog)
	if r.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Codes())
	}
}

func TestCheckIfConditionNotBool(t *testing.T) {
	ifThen := &ast.IfThenExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Cond: intLit("1", 1), Then: tailed(nil, nil)}
	body := tailed([]ast.Statement{exprStmt(ifThen)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 15)
}

func TestCheckIfElseBranchMismatch(t *testing.T) {
	ifElse := &ast.IfElseExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp()},
		Cond:     boolLit(true),
		Then:     tailed(nil, boolLit(false)),
		Else:     tailed(nil, &ast.CharLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 'x'}),
	}
	body := tailed([]ast.Statement{exprStmt(ifElse)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 16)
}

func TestCheckBreakOutsideLoop(t *testing.T) {
	body := tailed([]ast.Statement{exprStmt(&ast.BreakExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}})}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 27)
}

func TestCheckBreakValueInsideWhile(t *testing.T) {
	loopBody := tailed([]ast.Statement{
		exprStmt(&ast.BreakExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: intLit("1", 1)}),
	}, nil)
	while := &ast.WhileExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Cond: boolLit(true), Body: loopBody}
	body := tailed([]ast.Statement{exprStmt(while)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 36)
}

func TestCheckLoopBreakValueMismatch(t *testing.T) {
	loopBody := tailed([]ast.Statement{
		exprStmt(&ast.BreakExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: boolLit(true)}),
		exprStmt(&ast.BreakExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: &ast.CharLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: 'x'}}),
	}, nil)
	loop := &ast.LoopExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Body: loopBody}
	body := tailed([]ast.Statement{exprStmt(loop)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 37)
}

func TestCheckForRequiresIntegral(t *testing.T) {
	forEx := &ast.ForExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp()},
		LoopVar:  "i",
		Init:     boolLit(true),
		Last:     boolLit(false),
		Body:     tailed(nil, nil),
	}
	body := tailed([]ast.Statement{exprStmt(forEx)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 54, 54)
}

func TestCheckForEndpointsMustAgree(t *testing.T) {
	forEx := &ast.ForExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp()},
		LoopVar:  "i",
		Init:     castTo(intLit("0", 0), i32Type()),
		Last:     castTo(intLit("1", 1), u32Type()),
		Body:     tailed(nil, nil),
	}
	body := tailed([]ast.Statement{exprStmt(forEx)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 55)
}

func TestCheckStructInitMissingAndMismatchedField(t *testing.T) {
	structDecl := &ast.StructDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Name:     "Point",
		Fields: []ast.FieldDef{
			{Name: "x", Type: i32Type()},
			{Name: "y", Type: i32Type()},
		},
	}

	target := &ast.UnqualifiedUserDefinedType{TypeBase: ast.TypeBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: "Point"}}
	init := &ast.StructInitExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp()},
		Target:   target,
		Fields: []ast.StructFieldInit{
			{Name: "x", Value: boolLit(true), Span: sp()},
		},
	}

	body := tailed([]ast.Statement{exprStmt(init)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{structDecl, fn("f", nil, nil, body)}}

	codes(t, run(prog), 12, 13)
}

func TestCheckFieldAccessUnknownField(t *testing.T) {
	structDecl := &ast.StructDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Name:     "Point",
		Fields:   []ast.FieldDef{{Name: "x", Type: i32Type()}},
	}

	target := &ast.UnqualifiedUserDefinedType{TypeBase: ast.TypeBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: "Point"}}
	init := &ast.StructInitExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp()},
		Target:   target,
		Fields:   []ast.StructFieldInit{{Name: "x", Value: intLit("1", 1), Span: sp()}},
	}

	access := &ast.FieldAccessExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Object: init, Field: "z"}
	body := tailed([]ast.Statement{exprStmt(access)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{structDecl, fn("f", nil, nil, body)}}

	codes(t, run(prog), 35)
}

func TestCheckIndexNotIndexable(t *testing.T) {
	index := &ast.IndexExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Object: intLit("1", 1), Index: intLit("0", 0)}
	body := tailed([]ast.Statement{exprStmt(index)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 46)
}

func TestCheckIndexRequiresIsizeCast(t *testing.T) {
	params := []*ast.Parameter{
		{Span: sp(), Name: "s", Type: sliceOf(i32Type())},
		{Span: sp(), Name: "i", Type: u32Type()},
	}

	index := &ast.IndexExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Object: ident("s"), Index: ident("i")}
	body := tailed([]ast.Statement{exprStmt(index)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("at", params, nil, body)}}

	codes(t, run(prog), 48)
}

func TestCheckBinaryArithmeticTypeMismatch(t *testing.T) {
	params := []*ast.Parameter{
		{Span: sp(), Name: "a", Type: i32Type()},
		{Span: sp(), Name: "b", Type: u32Type()},
	}

	bin := &ast.BinaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinAdd, Left: ident("a"), Right: ident("b")}
	body := tailed([]ast.Statement{exprStmt(bin)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("add", params, nil, body)}}

	codes(t, run(prog), 40)
}

func TestCheckBinaryBitwiseRequiresIntegral(t *testing.T) {
	bin := &ast.BinaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinBitAnd, Left: boolLit(true), Right: boolLit(false)}
	body := tailed([]ast.Statement{exprStmt(bin)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 41)
}

func TestCheckBinaryLogicalRequiresBool(t *testing.T) {
	bin := &ast.BinaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinAnd, Left: intLit("1", 1), Right: intLit("2", 2)}
	body := tailed([]ast.Statement{exprStmt(bin)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 38)
}

func TestCheckNegateUnsigned(t *testing.T) {
	params := []*ast.Parameter{{Span: sp(), Name: "x", Type: u32Type()}}
	neg := &ast.UnaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.UnaryNeg, Operand: ident("x")}
	body := tailed([]ast.Statement{exprStmt(neg)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("negate", params, nil, body)}}

	codes(t, run(prog), 53)
}

func TestCheckDerefRequiresPointer(t *testing.T) {
	params := []*ast.Parameter{{Span: sp(), Name: "x", Type: i32Type()}}
	deref := &ast.UnaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.UnaryDeref, Operand: ident("x")}
	body := tailed([]ast.Statement{exprStmt(deref)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("deref", params, nil, body)}}

	codes(t, run(prog), 45)
}

func TestCheckAssignRequiresLvalue(t *testing.T) {
	assign := &ast.BinaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinAssign, Left: intLit("1", 1), Right: intLit("2", 2)}
	body := tailed([]ast.Statement{exprStmt(assign)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 42)
}

func TestCheckAssignRequiresMutableLvalue(t *testing.T) {
	body := tailed([]ast.Statement{
		bindStmt("x", false, i32Type(), intLit("1", 1)),
		exprStmt(&ast.BinaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinAssign, Left: ident("x"), Right: intLit("2", 2)}),
	}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 49)
}

func TestCheckAssignIncompatibleRHS(t *testing.T) {
	body := tailed([]ast.Statement{
		bindStmt("x", true, i32Type(), intLit("1", 1)),
		exprStmt(&ast.BinaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinAssign, Left: ident("x"), Right: boolLit(true)}),
	}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 50)
}

func TestCheckAssignMutableLvalueSucceeds(t *testing.T) {
	body := tailed([]ast.Statement{
		bindStmt("x", true, i32Type(), intLit("1", 1)),
		exprStmt(&ast.BinaryExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinAssign, Left: ident("x"), Right: intLit("2", 2)}),
	}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	r := run(prog)
	if r.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Codes())
	}
}

func TestCheckAddressOfRequiresLvalue(t *testing.T) {
	addr := &ast.AddressOfExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Operand: intLit("1", 1)}
	body := tailed([]ast.Statement{exprStmt(addr)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 43)
}

func TestCheckAddressOfMutRequiresMutableOperand(t *testing.T) {
	body := tailed([]ast.Statement{
		bindStmt("x", false, i32Type(), intLit("1", 1)),
		exprStmt(&ast.AddressOfExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Operand: ident("x"), Mutable: true}),
	}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 44)
}

func TestCheckCastInvalid(t *testing.T) {
	cast := castTo(boolLit(true), ptrTo(i32Type()))
	body := tailed([]ast.Statement{exprStmt(cast)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 17)
}

func TestCheckCastUnsafeAlwaysSucceeds(t *testing.T) {
	cast := &ast.CastExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Operand: boolLit(true), Target: ptrTo(i32Type()), Unsafe: true}
	body := tailed([]ast.Statement{exprStmt(cast)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	r := run(prog)
	if r.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Codes())
	}
}

func TestCheckIntegerLiteralOutOfRange(t *testing.T) {
	body := tailed([]ast.Statement{
		bindStmt("x", false, &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int8, Signed: false}, intLit("300", 300)),
	}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("f", nil, nil, body)}}

	codes(t, run(prog), 32)
}

func TestCheckOverloadAmbiguous(t *testing.T) {
	// Each overload binds one literal to i32 and the other to i64, so the
	// literal-narrowing tie-break ranks both the same and cannot pick one.
	firstParams := []*ast.Parameter{{Span: sp(), Name: "x", Type: i32Type()}, {Span: sp(), Name: "y", Type: i64Type()}}
	secondParams := []*ast.Parameter{{Span: sp(), Name: "x", Type: i64Type()}, {Span: sp(), Name: "y", Type: i32Type()}}

	overloadA := fn("describe", firstParams, nil, tailed(nil, nil))
	overloadB := fn("describe", secondParams, nil, tailed(nil, nil))

	call := callExpr("describe", intLit("1", 1), intLit("2", 2))
	main := fn("f", nil, nil, tailed([]ast.Statement{exprStmt(call)}, nil))

	prog := &ast.Program{Declarations: []ast.Declaration{overloadA, overloadB, main}}

	codes(t, run(prog), 28)
}

func TestCheckOverloadNoMatch(t *testing.T) {
	params := []*ast.Parameter{{Span: sp(), Name: "x", Type: i32Type()}}
	callee := fn("describe", params, nil, tailed(nil, nil))

	call := callExpr("describe", boolLit(true))
	main := fn("f", nil, nil, tailed([]ast.Statement{exprStmt(call)}, nil))

	prog := &ast.Program{Declarations: []ast.Declaration{callee, main}}

	codes(t, run(prog), 51)
}

func TestCheckCallViaFunctionPointerArity(t *testing.T) {
	fpType := &ast.FunctionPointerType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Params: []ast.Type{i32Type()}, Return: i32Type()}
	params := []*ast.Parameter{{Span: sp(), Name: "f", Type: fpType}}

	tooMany := &ast.CallExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Callee: ident("f"), Args: []ast.Expression{intLit("1", 1), intLit("2", 2)}}
	body := tailed([]ast.Statement{exprStmt(tooMany)}, nil)

	prog := &ast.Program{Declarations: []ast.Declaration{fn("apply", params, nil, body)}}

	codes(t, run(prog), 24)
}

func TestCheckSuccessfulProgramNoDiagnostics(t *testing.T) {
	addParams := []*ast.Parameter{
		{Span: sp(), Name: "a", Type: i32Type()},
		{Span: sp(), Name: "b", Type: i32Type()},
	}
	add := fn("add", addParams, i32Type(), tailed(nil, &ast.BinaryExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp()}, Op: ast.BinAdd, Left: ident("a"), Right: ident("b"),
	}))

	call := callExpr("add", intLit("1", 1), intLit("2", 2))
	main := fn("main", nil, i32Type(), tailed(nil, call))

	prog := &ast.Program{Declarations: []ast.Declaration{add, main}}

	r := run(prog)
	if r.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Codes())
	}
}

func TestRegisterBuiltinsResolveCleanly(t *testing.T) {
	prog := &ast.Program{Declarations: []ast.Declaration{
		fn("main", nil, i32Type(), tailed([]ast.Statement{
			exprStmt(callExpr("println", castTo(intLit("1", 1), i32Type()))),
		}, intLit("0", 0))),
	}}

	RegisterBuiltins(prog)

	r := run(prog)
	if r.Count() != 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Codes())
	}
}

func TestCheckMainSignatureEnforcedByDefault(t *testing.T) {
	prog := &ast.Program{Declarations: []ast.Declaration{
		fn("main", []*ast.Parameter{{Span: sp(), Name: "argc", Type: i32Type()}}, i32Type(), tailed(nil, intLit("0", 0))),
	}}

	reporter := diagnostic.NewBufferReporter()
	table := resolver.CollectGlobals(prog, reporter)
	resolver.NewResolver(table, reporter).Resolve(prog)
	NewChecker(table, reporter).Check(prog)

	codes(t, reporter, 52)
}

func TestCheckMainSignatureSkippedWhenDisabled(t *testing.T) {
	prog := &ast.Program{Declarations: []ast.Declaration{
		fn("main", []*ast.Parameter{{Span: sp(), Name: "argc", Type: i32Type()}}, i32Type(), tailed(nil, intLit("0", 0))),
	}}

	reporter := diagnostic.NewBufferReporter()
	table := resolver.CollectGlobals(prog, reporter)
	resolver.NewResolver(table, reporter).Resolve(prog)
	NewCheckerWithConfig(table, reporter, false, "").Check(prog)

	if reporter.Count() != 0 {
		t.Fatalf("unexpected diagnostics with main-signature check disabled: %v", reporter.Codes())
	}
}

func TestCheckArchAttributeMismatchReported(t *testing.T) {
	proto := &ast.Prototype{
		Span: sp(),
		Name: "fast_path",
		Attributes: []*ast.Attribute{
			{NodeSpan: sp(), Kind: ast.AttrArch, Triple: "x86_64"},
		},
	}
	decl := &ast.ExternalFnDeclaration{DeclBase: ast.DeclBase{NodeSpan: sp()}, Proto: proto}

	prog := &ast.Program{Declarations: []ast.Declaration{decl}}

	reporter := diagnostic.NewBufferReporter()
	table := resolver.CollectGlobals(prog, reporter)
	resolver.NewResolver(table, reporter).Resolve(prog)
	NewCheckerWithConfig(table, reporter, false, "aarch64").Check(prog)

	codes(t, reporter, 61)
}

func TestCheckArchAttributeMatchingTripleAccepted(t *testing.T) {
	proto := &ast.Prototype{
		Span: sp(),
		Name: "fast_path",
		Attributes: []*ast.Attribute{
			{NodeSpan: sp(), Kind: ast.AttrArch, Triple: "x86_64"},
		},
	}
	decl := &ast.ExternalFnDeclaration{DeclBase: ast.DeclBase{NodeSpan: sp()}, Proto: proto}

	prog := &ast.Program{Declarations: []ast.Declaration{decl}}

	reporter := diagnostic.NewBufferReporter()
	table := resolver.CollectGlobals(prog, reporter)
	resolver.NewResolver(table, reporter).Resolve(prog)
	NewCheckerWithConfig(table, reporter, false, "x86_64").Check(prog)

	if reporter.Count() != 0 {
		t.Fatalf("unexpected diagnostics for matching target triple: %v", reporter.Codes())
	}
}
