package ast

import "fmt"

// ErrorStatement is the statement sort's error variant (§4.1 equality
// semantics).
type ErrorStatement struct{ StmtBase }

func (*ErrorStatement) Kind() NodeKind               { return KindErrorStatement }
func (*ErrorStatement) String() string               { return "<error-stmt>" }
func (s *ErrorStatement) AcceptStatement(v StatementVisitor) { v.VisitErrorStatement(s) }

// BindingStatement is `let name = init` or `mut name: Type = init`. A
// binding without a type hint may not be initialized with `nil` (§4.4
// code 21); with a hint, the initializer's type must match it (code 7).
type BindingStatement struct {
	StmtBase
	Name      string
	Mutable   bool
	TypeHint  Type // nil if absent.
	Init      Expression
	Binding   *LocalBinding // filled in by the resolver.
}

func (*BindingStatement) Kind() NodeKind { return KindBindingStatement }
func (s *BindingStatement) String() string {
	kw := "let"
	if s.Mutable {
		kw = "mut"
	}

	if s.TypeHint != nil {
		return fmt.Sprintf("%s %s: %s = %s", kw, s.Name, s.TypeHint, s.Init)
	}

	return fmt.Sprintf("%s %s = %s", kw, s.Name, s.Init)
}
func (s *BindingStatement) AcceptStatement(v StatementVisitor) { v.VisitBindingStatement(s) }

// AssertionStatement is `assert cond, "message"`.
type AssertionStatement struct {
	StmtBase
	Cond    Expression
	Message string
}

func (*AssertionStatement) Kind() NodeKind { return KindAssertionStatement }
func (s *AssertionStatement) String() string {
	return fmt.Sprintf("assert %s, %q", s.Cond, s.Message)
}
func (s *AssertionStatement) AcceptStatement(v StatementVisitor) { v.VisitAssertionStatement(s) }

// ExpressionStatement wraps an expression evaluated for its side effects.
type ExpressionStatement struct {
	StmtBase
	Expr Expression
}

func (*ExpressionStatement) Kind() NodeKind   { return KindExpressionStatement }
func (s *ExpressionStatement) String() string { return s.Expr.String() }
func (s *ExpressionStatement) AcceptStatement(v StatementVisitor) { v.VisitExpressionStatement(s) }
