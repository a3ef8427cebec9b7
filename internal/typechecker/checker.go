// Package typechecker implements §4.4's traversal: for every expression
// node it computes a result type (stored via Expression.SetResultType)
// and, where the expression needs rewriting — a call resolved to one
// overload, an implicit conversion inserted — replaces the node in place. Type equality is structural with the error-type
// short-circuit throughout, via package types.
package typechecker

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/resolver"
	"github.com/gallium-lang/gallium/internal/types"
)

// funcContext is the enclosing function's declared return type, tracked
// so Return/code-26 and the function-body check (code 31) both have it
// without threading it through every recursive call.
type funcContext struct {
	returnType ast.Type // nil means void
}

// loopKind distinguishes a `loop` (evaluable via `break value`) from
// `while`/`for` (always void; `break value` inside one is code 36).
type loopKind int

const (
	loopPlain loopKind = iota
	loopWhileOrFor
)

type loopContext struct {
	kind       loopKind
	breakTypes []ast.Type // every `break value`'s type seen so far, for code 37
}

// Checker runs Phase 3 (§4.4) over a resolver.GlobalTable's Program:
// method lookup by receiver type still goes through the same table the
// resolver built, since struct/method declarations don't carry their own
// back-reference to it.
type Checker struct {
	table    *resolver.GlobalTable
	reporter diagnostic.Reporter

	funcs []*funcContext
	loops []*loopContext

	enforceMain  bool
	targetTriple string // empty disables arch(...) attribute validation
}

// NewChecker builds a Phase 3 checker over a resolved program's global
// table, enforcing the `main` signature the way a standalone executable
// requires.
func NewChecker(table *resolver.GlobalTable, reporter diagnostic.Reporter) *Checker {
	return &Checker{table: table, reporter: reporter, enforceMain: true}
}

// NewCheckerWithConfig builds a Phase 3 checker honoring
// internal/pipeline.Config's EnforceMainSignature and TargetTriple
// toggles: a library snippet with no `main` sets enforceMain false, and
// targetTriple, when non-empty, is checked against every `arch(...)`
// attribute (code 61).
func NewCheckerWithConfig(table *resolver.GlobalTable, reporter diagnostic.Reporter, enforceMain bool, targetTriple string) *Checker {
	return &Checker{table: table, reporter: reporter, enforceMain: enforceMain, targetTriple: targetTriple}
}

// voidOf returns a VoidType carrying like's span, for a synthesized
// result type that has no source location of its own to borrow.
func voidOf(like ast.Node) ast.Type {
	return &ast.VoidType{TypeBase: ast.TypeBase{NodeSpan: like.Span()}}
}

func errorOf(like ast.Node) ast.Type {
	return &ast.ErrorType{TypeBase: ast.TypeBase{NodeSpan: like.Span()}}
}

// Check runs Phase 3 over every declaration in prog in place, then (when
// configured to) verifies the root `main` declaration's signature (§4.4,
// code 52) and every `arch(...)` attribute against a target triple
// (code 61).
func (c *Checker) Check(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		c.checkDeclaration(decl)
	}

	if c.enforceMain {
		c.checkMainSignature()
	}

	if c.targetTriple != "" {
		for _, decl := range prog.Declarations {
			c.checkArchAttributes(decl)
		}
	}
}

// checkArchAttributes reports code 61 against every `arch(...)` attribute
// on decl's prototype (or each member prototype, for an extern block)
// whose triple disagrees with c.targetTriple. Only runs when a target
// triple was configured — most callers (library snippets, unit tests)
// never set one and skip this entirely.
func (c *Checker) checkArchAttributes(decl ast.Declaration) {
	check := func(proto *ast.Prototype) {
		for _, attr := range proto.Attributes {
			if attr.Kind == ast.AttrArch && attr.Triple != c.targetTriple {
				c.reporter.Report(diagnostic.New(61, diagnostic.PointOut(attr.Span(), diagnostic.SeverityError,
					"`"+proto.Name+"` is only valid for `arch(\""+attr.Triple+"\")`, not `"+c.targetTriple+"`")))
			}
		}
	}

	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		check(d.Proto)
	case *ast.MethodDeclaration:
		check(d.Proto)
	case *ast.ExternalFnDeclaration:
		check(d.Proto)
	case *ast.ExternalBlockDeclaration:
		for _, fn := range d.Decls {
			check(fn.Proto)
		}
	}
}

func (c *Checker) checkMainSignature() {
	set, ok := c.table.Root.Functions["main"]
	if !ok {
		return
	}

	for _, candidate := range set.Decls {
		fn, ok := candidate.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}

		proto := fn.Proto
		ret, isI32 := proto.ReturnType.(*ast.IntegralType)
		validReturn := isI32 && ret.Signed && ret.Width == ast.Int32

		if len(proto.Params) != 0 || !validReturn {
			c.reporter.Report(diagnostic.New(52, diagnostic.PointOut(fn.Span(), diagnostic.SeverityError, "`main` must be `fn main() -> i32`")))
		}
	}
}

func (c *Checker) checkDeclaration(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		c.checkFunctionLike(d.Proto, d.Body)
	case *ast.MethodDeclaration:
		c.checkFunctionLike(d.Proto, d.Body)
	case *ast.ConstantDeclaration:
		valueType := c.checkExprType(&d.Value)

		if d.TypeHint != nil && !types.CanImplicitlyConvert(valueType, d.TypeHint) {
			c.reporter.Report(diagnostic.New(7, diagnostic.PointOut(d.Value.Span(), diagnostic.SeverityError, "initializer type does not match the declared type")))
		} else if d.TypeHint != nil {
			d.Value = c.wrapImplicit(d.Value, valueType, d.TypeHint)
		}
	case *ast.ExternalFnDeclaration, *ast.ExternalBlockDeclaration, *ast.StructDeclaration,
		*ast.TypeAliasDeclaration, *ast.ClassDeclaration, *ast.ImportDeclaration,
		*ast.ImportFromDeclaration, *ast.ErrorDeclaration:
		// No body, and every type reachable from these was already fixed
		// up by the resolver; nothing left for this pass to check.
	}
}

func (c *Checker) checkFunctionLike(proto *ast.Prototype, body *ast.BlockExpr) {
	if body == nil {
		return
	}

	c.funcs = append(c.funcs, &funcContext{returnType: proto.ReturnType})
	defer func() { c.funcs = c.funcs[:len(c.funcs)-1] }()

	bodyType := c.checkBlock(body)

	expected := proto.ReturnType
	if expected == nil {
		expected = voidOf(body)
	}

	if !types.CanImplicitlyConvert(bodyType, expected) {
		c.reporter.Report(diagnostic.New(31, diagnostic.PointOut(body.Span(), diagnostic.SeverityError, "function body does not evaluate to the declared return type")))
	} else if body.Tail != nil {
		body.Tail = c.wrapImplicit(body.Tail, bodyType, expected)
	}
}

// checkExprType checks *expr in place, storing any rewritten expression
// back through the pointer, and returns its result type.
func (c *Checker) checkExprType(expr *ast.Expression) ast.Type {
	*expr = c.checkExpr(*expr)
	return (*expr).ResultType()
}

func (c *Checker) currentFunc() *funcContext {
	if len(c.funcs) == 0 {
		return nil
	}

	return c.funcs[len(c.funcs)-1]
}

func (c *Checker) currentLoop() *loopContext {
	if len(c.loops) == 0 {
		return nil
	}

	return c.loops[len(c.loops)-1]
}

// wrapImplicit inserts an ImplicitConversionExpr around e when from and to
// differ, per §4.4's conversion mechanism; when they already agree it
// returns e unchanged so the tree doesn't accumulate no-op wrappers.
func (c *Checker) wrapImplicit(e ast.Expression, from, to ast.Type) ast.Expression {
	if ast.EqualType(from, to) {
		return e
	}

	wrapped := &ast.ImplicitConversionExpr{ExprBase: ast.ExprBase{NodeSpan: e.Span()}, Inner: e, Target: to}
	wrapped.SetResultType(to)

	return wrapped
}

// checkIntegerLiteralRange checks an integer literal's range once its
// target integral type is known (§4.4 code 32), reporting against lit's
// own span.
func (c *Checker) checkIntegerLiteralRange(lit *ast.IntegerLiteralExpr, target ast.Type) {
	if !types.IsIntegral(target) {
		return
	}

	if !types.FitsInIntegral(lit.Value, target) {
		c.reporter.Report(diagnostic.New(32, diagnostic.PointOut(lit.Span(), diagnostic.SeverityError, "literal `"+lit.Raw+"` does not fit in `"+target.String()+"`")))
	}
}
