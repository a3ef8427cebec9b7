package backend

import (
	"testing"

	"github.com/gallium-lang/gallium/internal/ast"
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

func mangled(name string) *ast.MangleInfo {
	return &ast.MangleInfo{FQID: ast.NewFullyQualifiedID(ast.ModuleID{FromRoot: true}, name), Symbol: name}
}

// cleanFn builds a function whose body is a single typed local
// reference, representative of what a successful resolver+typechecker
// run leaves behind.
func cleanFn(name string) *ast.FunctionDeclaration {
	param := &ast.Parameter{Span: sp(), Name: "x", Type: i32Type()}

	local := &ast.LocalIdentifierExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()},
		Name:      "x",
		Binding:   &ast.LocalBinding{Name: "x", Type: i32Type()},
	}

	return &ast.FunctionDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp(), Mangled: mangled(name)},
		Proto:    &ast.Prototype{Span: sp(), Name: name, Params: []*ast.Parameter{param}, ReturnType: i32Type()},
		Body:     &ast.BlockExpr{ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()}, Tail: local},
	}
}

func TestVerifyAcceptsCleanProgram(t *testing.T) {
	prog := &ast.Program{Declarations: []ast.Declaration{cleanFn("f")}}

	if got := Verify(prog); len(got) != 0 {
		t.Fatalf("Verify() = %v, want no violations", got)
	}
}

func TestVerifyCatchesUnmangledFunction(t *testing.T) {
	fn := cleanFn("f")
	fn.DeclBase.Mangled = nil

	got := Verify(&ast.Program{Declarations: []ast.Declaration{fn}})

	if len(got) != 1 {
		t.Fatalf("Verify() = %v, want exactly one violation", got)
	}
}

func TestVerifyCatchesMissingResultType(t *testing.T) {
	fn := cleanFn("f")
	fn.Body.Tail.(*ast.LocalIdentifierExpr).Result = nil

	got := Verify(&ast.Program{Declarations: []ast.Declaration{fn}})

	if len(got) != 1 {
		t.Fatalf("Verify() = %v, want exactly one violation", got)
	}
}

func TestVerifyCatchesUnresolvedIdentifier(t *testing.T) {
	fn := cleanFn("f")
	fn.Body.Tail = &ast.IdentifierExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()},
		ID:       ast.UnqualifiedID{Name: "x"},
	}

	got := Verify(&ast.Program{Declarations: []ast.Declaration{fn}})

	if len(got) != 1 {
		t.Fatalf("Verify() = %v, want exactly one violation", got)
	}
}

func TestVerifyCatchesUnresolvedOverloadCall(t *testing.T) {
	fn := cleanFn("f")
	fn.Body.Tail = &ast.CallExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()},
		Callee: &ast.OverloadRefExpr{
			ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()},
			FQID:     ast.NewFullyQualifiedID(ast.ModuleID{FromRoot: true}, "g"),
		},
	}

	got := Verify(&ast.Program{Declarations: []ast.Declaration{fn}})

	// One for the OverloadRefExpr callee surviving unresolved, one for
	// the CallExpr itself never having been rewritten to a static call.
	if len(got) != 2 {
		t.Fatalf("Verify() = %v, want exactly two violations", got)
	}
}

func TestVerifyCatchesUnresolvedMethodCall(t *testing.T) {
	fn := cleanFn("f")
	fn.Body.Tail = &ast.MethodCallExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()},
		Receiver: &ast.LocalIdentifierExpr{
			ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()},
			Name:      "x",
			Binding:   &ast.LocalBinding{Name: "x", Type: i32Type()},
		},
		Method: "double",
	}

	got := Verify(&ast.Program{Declarations: []ast.Declaration{fn}})

	if len(got) != 1 {
		t.Fatalf("Verify() = %v, want exactly one violation", got)
	}
}

func TestVerifyAcceptsExplicitFunctionPointerCall(t *testing.T) {
	fn := cleanFn("f")
	fpType := &ast.FunctionPointerType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Return: i32Type()}

	fn.Body.Tail = &ast.CallExpr{
		ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()},
		Callee: &ast.LocalIdentifierExpr{
			ExprBase: ast.ExprBase{NodeSpan: sp(), Result: fpType},
			Name:      "callback",
			Binding:   &ast.LocalBinding{Name: "callback", Type: fpType},
		},
	}

	got := Verify(&ast.Program{Declarations: []ast.Declaration{fn}})

	if len(got) != 0 {
		t.Fatalf("Verify() = %v, want no violations for an explicit function-pointer call", got)
	}
}

func TestVerifyCatchesUnqualifiedType(t *testing.T) {
	alias := &ast.TypeAliasDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Name:     "Alias",
		Aliased:  &ast.UnqualifiedUserDefinedType{TypeBase: ast.TypeBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: "Point"}},
	}

	got := Verify(&ast.Program{Declarations: []ast.Declaration{alias}})

	if len(got) != 1 {
		t.Fatalf("Verify() = %v, want exactly one violation", got)
	}
}

func TestVerifySkipsAlreadyReportedErrors(t *testing.T) {
	fn := cleanFn("f")
	fn.Body.Tail = &ast.ErrorExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}}

	got := Verify(&ast.Program{Declarations: []ast.Declaration{fn}})

	if len(got) != 0 {
		t.Fatalf("Verify() = %v, want ErrorExpr to be skipped, not flagged", got)
	}
}

// fakeTarget is the hand-written stand-in SPEC_FULL's domain-stack
// section calls for in place of a mocking library: Target is narrow
// enough that recording calls in plain slices is simpler than any
// generated mock would be.
type fakeTarget struct {
	functions []string
	constants []string
	externals []string
}

func (f *fakeTarget) EmitFunction(fn *ast.FunctionDeclaration) error {
	f.functions = append(f.functions, fn.Proto.Name)
	return nil
}

func (f *fakeTarget) EmitConstant(c *ast.ConstantDeclaration) error {
	f.constants = append(f.constants, c.Name)
	return nil
}

func (f *fakeTarget) EmitExternal(fn *ast.ExternalFnDeclaration) error {
	f.externals = append(f.externals, fn.Proto.Name)
	return nil
}

func TestEmitDispatchesEveryMangleableDeclaration(t *testing.T) {
	extern := &ast.ExternalFnDeclaration{DeclBase: ast.DeclBase{NodeSpan: sp(), Mangled: mangled("raw_write")}, Proto: &ast.Prototype{Span: sp(), Name: "raw_write"}}
	block := &ast.ExternalBlockDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		ABI:      "C",
		Decls: []*ast.ExternalFnDeclaration{
			{DeclBase: ast.DeclBase{NodeSpan: sp(), Mangled: mangled("raw_read")}, Proto: &ast.Prototype{Span: sp(), Name: "raw_read"}},
		},
	}
	constant := &ast.ConstantDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp(), Mangled: mangled("count")},
		Name:     "count",
		TypeHint: i32Type(),
		Value:    &ast.IntegerLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp(), Result: i32Type()}, Value: 1, Raw: "1"},
	}

	prog := &ast.Program{Declarations: []ast.Declaration{cleanFn("f"), constant, extern, block}}

	target := &fakeTarget{}
	if err := Emit(prog, target); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	if len(target.functions) != 1 || target.functions[0] != "f" {
		t.Fatalf("functions = %v, want [f]", target.functions)
	}

	if len(target.constants) != 1 || target.constants[0] != "count" {
		t.Fatalf("constants = %v, want [count]", target.constants)
	}

	if len(target.externals) != 2 || target.externals[0] != "raw_write" || target.externals[1] != "raw_read" {
		t.Fatalf("externals = %v, want [raw_write raw_read]", target.externals)
	}
}

func TestEmitRefusesOnContractViolation(t *testing.T) {
	fn := cleanFn("f")
	fn.DeclBase.Mangled = nil

	target := &fakeTarget{}

	err := Emit(&ast.Program{Declarations: []ast.Declaration{fn}}, target)
	if err == nil {
		t.Fatalf("Emit() succeeded on an unmangled function, want error")
	}

	if len(target.functions) != 0 {
		t.Fatalf("Emit() called target %v despite a contract violation", target.functions)
	}
}
