package backend

import (
	"fmt"

	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/position"
	"github.com/gallium-lang/gallium/internal/types"
)

// Violation records one place a Program failed to uphold a back-end
// boundary-contract invariant (§4.6).
type Violation struct {
	Span    position.Span
	Message string
}

func (v Violation) String() string {
	if v.Span.IsNonexistent() {
		return v.Message
	}

	return fmt.Sprintf("%s: %s", v.Span, v.Message)
}

// Verify walks prog and returns every place it fails the back-end
// boundary contract: every mangleable declaration stamped, every
// expression's result type set, every call already resolved to a
// StaticCallExpr/StaticMethodCallExpr or an explicit function-pointer
// call, every unqualified identifier or type already replaced by a
// qualified form, and every node carrying a source span that is either
// real or the synthesized sentinel. An empty result means a code
// generator could consume prog as-is.
//
// Verify assumes prog already passed through the type checker with
// HadError() false (internal/pipeline checks this between phases before
// a Program ever reaches here): a leftover ErrorExpr/ErrorType/ErrorStatement/
// ErrorDeclaration node is the reporter's problem, not this contract's,
// so walking skips back inside one rather than flagging it again.
func Verify(prog *ast.Program) []Violation {
	v := &verifier{}

	for _, decl := range prog.Declarations {
		v.decl(decl)
	}

	return v.violations
}

type verifier struct {
	violations []Violation
}

func (v *verifier) fail(span position.Span, format string, args ...interface{}) {
	v.violations = append(v.violations, Violation{Span: span, Message: fmt.Sprintf(format, args...)})
}

func (v *verifier) span(n ast.Node) {
	s := n.Span()
	if !s.IsValid() && !s.IsNonexistent() {
		v.fail(s, "%T carries a malformed source span", n)
	}
}

func (v *verifier) mangled(base *ast.DeclBase, what string) {
	if base.Mangled == nil {
		v.fail(base.Span(), "%s has no mangled symbol", what)
	}
}

func (v *verifier) decl(d ast.Declaration) {
	v.span(d)

	switch decl := d.(type) {
	case *ast.FunctionDeclaration:
		v.mangled(&decl.DeclBase, fmt.Sprintf("function %q", decl.Proto.Name))
		v.prototype(decl.Proto)
		v.block(decl.Body)

	case *ast.MethodDeclaration:
		// §4.5 defers method mangling (the mangler's own mangle_program
		// walk skips this kind too); nothing to check here beyond the
		// receiver/body's own invariants.
		v.typ(decl.ReceiverType)
		v.prototype(decl.Proto)
		v.block(decl.Body)

	case *ast.StructDeclaration:
		for _, f := range decl.Fields {
			v.typ(f.Type)
		}

	case *ast.ClassDeclaration:
		// §9 leaves classes unimplemented; nothing of this kind ever
		// reaches a back end.

	case *ast.TypeAliasDeclaration:
		v.typ(decl.Aliased)

	case *ast.ExternalFnDeclaration:
		v.mangled(&decl.DeclBase, fmt.Sprintf("external function %q", decl.Proto.Name))
		v.prototype(decl.Proto)

	case *ast.ExternalBlockDeclaration:
		for _, fn := range decl.Decls {
			v.span(fn)
			v.mangled(&fn.DeclBase, fmt.Sprintf("external function %q", fn.Proto.Name))
			v.prototype(fn.Proto)
		}

	case *ast.ConstantDeclaration:
		v.mangled(&decl.DeclBase, fmt.Sprintf("constant %q", decl.Name))
		v.typ(decl.TypeHint)
		v.expr(decl.Value)

	case *ast.ImportDeclaration, *ast.ImportFromDeclaration:
		// Imports are consumed by the resolver; nothing downstream needs
		// them.

	case *ast.ErrorDeclaration:
		// Leftover from a failed earlier pass — see Verify's doc comment.

	default:
		v.fail(d.Span(), "unrecognized declaration kind %T reached the back-end boundary", d)
	}
}

func (v *verifier) prototype(p *ast.Prototype) {
	for _, param := range p.Params {
		v.typ(param.Type)
	}

	if p.ReturnType != nil {
		v.typ(p.ReturnType)
	}
}

// typ recurses into a type's structure looking for the two forms the
// resolver is supposed to have eliminated everywhere: an unqualified
// user-defined or dyn-interface reference.
func (v *verifier) typ(t ast.Type) {
	if t == nil {
		return
	}

	switch ty := t.(type) {
	case *ast.UnqualifiedUserDefinedType:
		v.fail(t.Span(), "unqualified type %q reached the back-end boundary", ty.ID.String())
	case *ast.UnqualifiedDynInterfaceType:
		v.fail(t.Span(), "unqualified type %q reached the back-end boundary", ty.String())
	case *ast.ReferenceType:
		v.typ(ty.Elem)
	case *ast.PointerType:
		v.typ(ty.Elem)
	case *ast.SliceType:
		v.typ(ty.Elem)
	case *ast.ArrayType:
		v.typ(ty.Elem)
	case *ast.IndirectionType:
		v.typ(ty.Elem)
	case *ast.UserDefinedType:
		for _, arg := range ty.GenericArgs {
			v.typ(arg)
		}
	case *ast.FunctionPointerType:
		for _, p := range ty.Params {
			v.typ(p)
		}

		if ty.Return != nil {
			v.typ(ty.Return)
		}
	}
}

func (v *verifier) block(b *ast.BlockExpr) {
	if b == nil {
		return
	}

	v.expr(b)
}

func (v *verifier) stmt(s ast.Statement) {
	v.span(s)

	switch st := s.(type) {
	case *ast.BindingStatement:
		if st.TypeHint != nil {
			v.typ(st.TypeHint)
		}

		v.expr(st.Init)

	case *ast.AssertionStatement:
		v.expr(st.Cond)

	case *ast.ExpressionStatement:
		v.expr(st.Expr)

	case *ast.ErrorStatement:
		// See Verify's doc comment.

	default:
		v.fail(s.Span(), "unrecognized statement kind %T reached the back-end boundary", s)
	}
}

// expr recurses into e's structure, checking that every reachable
// expression carries a result type and that every call site has already
// been resolved. It returns early on anything the type checker marked as
// an already-reported error, per Verify's doc comment.
func (v *verifier) expr(e ast.Expression) {
	if e == nil {
		return
	}

	v.span(e)

	if _, ok := e.(*ast.ErrorExpr); ok {
		return
	}

	if e.ResultType() == nil {
		v.fail(e.Span(), "%T has no result type", e)
	} else if types.IsError(e.ResultType()) {
		return
	}

	switch ex := e.(type) {
	case *ast.StringLiteralExpr, *ast.IntegerLiteralExpr, *ast.FloatLiteralExpr,
		*ast.BoolLiteralExpr, *ast.CharLiteralExpr, *ast.NilLiteralExpr,
		*ast.ContinueExpr:
		// Leaves.

	case *ast.ArrayLiteralExpr:
		for _, el := range ex.Elements {
			v.expr(el)
		}

	case *ast.IdentifierExpr:
		v.fail(ex.Span(), "unqualified identifier %q reached the back-end boundary", ex.ID.String())

	case *ast.LocalIdentifierExpr:
		// Resolved against a lexical binding by the resolver; nothing
		// further to check.

	case *ast.OverloadRefExpr:
		v.fail(ex.Span(), "unresolved overload reference %q reached the back-end boundary", ex.FQID.String())

	case *ast.StaticGlobalExpr:
		// Already qualified by the resolver.

	case *ast.CallExpr:
		if _, ok := ex.Callee.ResultType().(*ast.FunctionPointerType); !ok {
			v.fail(ex.Span(), "call site was never resolved to a static call or a function-pointer call")
		}

		v.expr(ex.Callee)

		for _, a := range ex.Args {
			v.expr(a)
		}

	case *ast.StaticCallExpr:
		for _, a := range ex.Args {
			v.expr(a)
		}

	case *ast.MethodCallExpr:
		v.fail(ex.Span(), "method call %q was never resolved", ex.Method)
		v.expr(ex.Receiver)

		for _, a := range ex.Args {
			v.expr(a)
		}

	case *ast.StaticMethodCallExpr:
		v.expr(ex.Receiver)

		for _, a := range ex.Args {
			v.expr(a)
		}

	case *ast.IndexExpr:
		v.expr(ex.Object)
		v.expr(ex.Index)

	case *ast.FieldAccessExpr:
		v.expr(ex.Object)

	case *ast.GroupExpr:
		v.expr(ex.Inner)

	case *ast.UnaryExpr:
		v.expr(ex.Operand)

	case *ast.BinaryExpr:
		v.expr(ex.Left)
		v.expr(ex.Right)

	case *ast.CastExpr:
		v.typ(ex.Target)
		v.expr(ex.Operand)

	case *ast.BlockExpr:
		for _, s := range ex.Statements {
			v.stmt(s)
		}

		if ex.Tail != nil {
			v.expr(ex.Tail)
		}

	case *ast.IfThenExpr:
		v.expr(ex.Cond)
		v.block(ex.Then)

	case *ast.IfElseExpr:
		v.expr(ex.Cond)
		v.block(ex.Then)

		for _, ei := range ex.ElseIfs {
			v.expr(ei.Cond)
			v.block(ei.Then)
		}

		if ex.Else != nil {
			v.block(ex.Else)
		}

	case *ast.LoopExpr:
		v.block(ex.Body)

	case *ast.WhileExpr:
		v.expr(ex.Cond)
		v.block(ex.Body)

	case *ast.ForExpr:
		v.expr(ex.Init)
		v.expr(ex.Last)
		v.block(ex.Body)

	case *ast.ReturnExpr:
		if ex.Value != nil {
			v.expr(ex.Value)
		}

	case *ast.BreakExpr:
		if ex.Value != nil {
			v.expr(ex.Value)
		}

	case *ast.StructInitExpr:
		v.typ(ex.Target)

		for _, f := range ex.Fields {
			v.expr(f.Value)
		}

	case *ast.ImplicitConversionExpr:
		v.typ(ex.Target)
		v.expr(ex.Inner)

	case *ast.LoadExpr:
		v.expr(ex.Inner)

	case *ast.AddressOfExpr:
		v.expr(ex.Operand)

	case *ast.SliceOfExpr:
		v.expr(ex.Operand)

	case *ast.RangeExpr:
		v.expr(ex.Start)
		v.expr(ex.End)

	case *ast.SizeofExpr:
		v.typ(ex.Target)

	default:
		v.fail(e.Span(), "unrecognized expression kind %T reached the back-end boundary", e)
	}
}
