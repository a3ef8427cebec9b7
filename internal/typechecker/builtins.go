package typechecker

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/position"
)

// RegisterBuiltins prepends the predefined `__builtin_*`/`__gallium_*`
// externs and a subset of the `print`/`println` stdlib shims to prog,
// before resolution runs (§4.4's "Builtins" paragraph). Every injected
// declaration carries position.NonexistentSpan, same as the original
// compiler's registration pass: these names exist nowhere in source, so
// a diagnostic naming one has nowhere in a source file to point at.
//
// The full registry (predefined.cc) enumerates roughly thirty overloads
// of print/println, one per printable builtin type; this keeps the core
// externs and a representative subset — `[char]` (string), `char`,
// `i32`, `i64`, `isize`, `u32`, and `bool` — enough for overload
// resolution and the mangler to have real declarations to exercise
// without transcribing the entire table mechanically.
func RegisterBuiltins(prog *ast.Program) {
	injected := []ast.Declaration{
		builtinExternBlock(),
		ioFFIExternBlock(),
	}

	for _, variant := range printVariants() {
		injected = append(injected, variant.print, variant.println)
	}

	prog.Declarations = append(injected, prog.Declarations...)
}

func sp() position.Span { return position.NonexistentSpan }

func charType() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int8, Signed: false}
}

func byteType() ast.Type { return &ast.ByteType{TypeBase: ast.TypeBase{NodeSpan: sp()}} }
func boolType() ast.Type { return &ast.BoolType{TypeBase: ast.TypeBase{NodeSpan: sp()}} }

func isizeType() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.IntNative, Signed: true}
}

func usizeType() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.IntNative, Signed: false}
}

func i32Type() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int32, Signed: true}
}

func i64Type() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int64, Signed: true}
}

func u32Type() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int32, Signed: false}
}

func sliceOf(elem ast.Type) ast.Type {
	return &ast.SliceType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: elem}
}

func ptrTo(elem ast.Type) ast.Type {
	return &ast.PointerType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: elem}
}

func param(name string, t ast.Type) *ast.Parameter {
	return &ast.Parameter{Span: sp(), Name: name, Type: t}
}

func extern(name string, ret ast.Type, attrs []*ast.Attribute, params ...*ast.Parameter) *ast.ExternalFnDeclaration {
	return &ast.ExternalFnDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Proto: &ast.Prototype{
			Span:       sp(),
			Name:       name,
			Params:     params,
			Attributes: attrs,
			ReturnType: ret,
		},
	}
}

// builtinExternBlock is predefined.cc's register_builtins: the trap,
// string-pointer/length, and black-box intrinsics that receive special
// code-generation treatment at the back end rather than being resolved
// like an ordinary FFI call.
func builtinExternBlock() *ast.ExternalBlockDeclaration {
	return &ast.ExternalBlockDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		ABI:      "gallium-intrinsic",
		Decls: []*ast.ExternalFnDeclaration{
			extern("__builtin_trap", nil, []*ast.Attribute{{NodeSpan: sp(), Kind: ast.AttrNoreturn}}),
			extern("__builtin_string_ptr", ptrTo(charType()), nil, param("__1", sliceOf(charType()))),
			extern("__builtin_string_len", usizeType(), nil, param("__1", sliceOf(charType()))),
			extern("__builtin_black_box", nil, nil, param("__1", ptrTo(byteType()))),
		},
	}
}

// ioFFIExternBlock is predefined.cc's register_io_ffi: the runtime
// functions the print shims below call through to.
func ioFFIExternBlock() *ast.ExternalBlockDeclaration {
	f32 := &ast.FloatType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Float32}
	f64 := &ast.FloatType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Float64}

	return &ast.ExternalBlockDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		ABI:      "C",
		Decls: []*ast.ExternalFnDeclaration{
			extern("__gallium_print_f32", nil, nil, param("__1", f32), param("__2", i32Type())),
			extern("__gallium_print_f64", nil, nil, param("__1", f64), param("__2", i32Type())),
			extern("__gallium_print_int", nil, nil, param("__1", isizeType())),
			extern("__gallium_print_uint", nil, nil, param("__1", usizeType())),
			extern("__gallium_print_char", nil, nil, param("__1", charType())),
			extern("__gallium_print_string", nil, nil, param("__1", ptrTo(charType())), param("__2", usizeType())),
		},
	}
}

func stdlibAttrs() []*ast.Attribute {
	return []*ast.Attribute{{NodeSpan: sp(), Kind: ast.AttrStdlib}}
}

func ident(name string) ast.Expression {
	return &ast.IdentifierExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, ID: ast.UnqualifiedID{Name: name}}
}

func callExpr(callee string, args ...ast.Expression) ast.Expression {
	return &ast.CallExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Callee: ident(callee), Args: args}
}

func castTo(e ast.Expression, target ast.Type) ast.Expression {
	return &ast.CastExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Operand: e, Target: target}
}

func block(stmts ...ast.Expression) *ast.BlockExpr {
	statements := make([]ast.Statement, len(stmts))
	for i, s := range stmts {
		statements[i] = &ast.ExpressionStatement{StmtBase: ast.StmtBase{NodeSpan: sp()}, Expr: s}
	}

	return &ast.BlockExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Statements: statements}
}

// tailBlock is a block evaluating to e's value, for use as an
// if-else/loop branch whose result feeds a further expression — unlike
// block, which wraps every expression as a void statement.
func tailBlock(e ast.Expression) *ast.BlockExpr {
	return &ast.BlockExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Tail: e}
}

func stdlibFn(name string, body *ast.BlockExpr, params ...*ast.Parameter) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{
		DeclBase: ast.DeclBase{NodeSpan: sp()},
		Proto: &ast.Prototype{
			Span:       sp(),
			Name:       name,
			Params:     params,
			Attributes: stdlibAttrs(),
			ReturnType: nil,
		},
		Body: body,
	}
}

type printVariant struct {
	print   *ast.FunctionDeclaration
	println *ast.FunctionDeclaration
}

// printVariants mirrors predefined.cc's register_io: each variant's
// print(...) calls straight through to the matching __gallium_print_*
// runtime function (casting to the runtime's expected width first, where
// the source type is narrower), and println(...) is print(...) followed
// by print('\n') — the same composition create_println builds.
func printVariants() []printVariant {
	return []printVariant{
		sliceOfCharVariant(),
		charVariant(),
		intVariant("i32", i32Type(), isizeType()),
		intVariant("i64", i64Type(), isizeType()),
		intVariant("isize", isizeType(), nil),
		uintVariant("u32", u32Type(), usizeType()),
		boolVariant(),
	}
}

func sliceOfCharVariant() printVariant {
	p := param("__1", sliceOf(charType()))
	body := block(callExpr("__gallium_print_string", callExpr("__builtin_string_ptr", ident("__1")), callExpr("__builtin_string_len", ident("__1"))))

	return printVariant{
		print:   stdlibFn("print", body, p),
		println: stdlibFn("println", block(callExpr("print", ident("__1")), callExpr("print", &ast.CharLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: '\n'})), p),
	}
}

func charVariant() printVariant {
	p := param("__1", charType())

	return printVariant{
		print:   stdlibFn("print", block(callExpr("__gallium_print_char", ident("__1"))), p),
		println: stdlibFn("println", block(callExpr("print", ident("__1")), callExpr("print", &ast.CharLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: '\n'})), p),
	}
}

// intVariant builds print/println(__1: srcType) -> void, casting to
// runtimeType first when it differs from srcType (narrower signed
// integers all funnel through __gallium_print_int at isize width).
func intVariant(name string, srcType, runtimeType ast.Type) printVariant {
	p := param("__1", srcType)

	arg := ident("__1")
	if runtimeType != nil {
		arg = castTo(arg, runtimeType)
	}

	return printVariant{
		print:   stdlibFn("print", block(callExpr("__gallium_print_int", arg)), p),
		println: stdlibFn("println", block(callExpr("print", ident("__1")), callExpr("print", &ast.CharLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: '\n'})), p),
	}
}

func uintVariant(name string, srcType, runtimeType ast.Type) printVariant {
	p := param("__1", srcType)

	arg := ident("__1")
	if runtimeType != nil {
		arg = castTo(arg, runtimeType)
	}

	return printVariant{
		print:   stdlibFn("print", block(callExpr("__gallium_print_uint", arg)), p),
		println: stdlibFn("println", block(callExpr("print", ident("__1")), callExpr("print", &ast.CharLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: '\n'})), p),
	}
}

// boolVariant mirrors predefined.cc's print(__1: bool) shim: an
// if-then-else selecting between two string literals, passed back
// through print(__1: [char]).
func boolVariant() printVariant {
	p := param("__1", boolType())

	selectString := func() ast.Expression {
		trueLit := &ast.StringLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: "true"}
		falseLit := &ast.StringLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: "false"}

		return &ast.IfElseExpr{
			ExprBase: ast.ExprBase{NodeSpan: sp()},
			Cond:     ident("__1"),
			Then:     tailBlock(trueLit),
			Else:     tailBlock(falseLit),
		}
	}

	return printVariant{
		print:   stdlibFn("print", block(callExpr("print", selectString())), p),
		println: stdlibFn("println", block(callExpr("print", selectString()), callExpr("print", &ast.CharLiteralExpr{ExprBase: ast.ExprBase{NodeSpan: sp()}, Value: '\n'})), p),
	}
}
