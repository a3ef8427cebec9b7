package ast

import (
	"fmt"
	"strings"

	"github.com/gallium-lang/gallium/internal/position"
)

// ErrorExpr is the distinguished error variant: it compares equal to any
// expression of any kind, so that once one diagnostic has been reported
// against a subtree, later passes that would otherwise recheck it and
// cascade spurious diagnostics instead see "already reported" and move on.
type ErrorExpr struct{ ExprBase }

func (*ErrorExpr) Kind() NodeKind                    { return KindErrorExpr }
func (*ErrorExpr) String() string                    { return "<error>" }
func (e *ErrorExpr) AcceptExpression(v ExpressionVisitor) { v.VisitErrorExpr(e) }

// StringLiteralExpr is a string literal.
type StringLiteralExpr struct {
	ExprBase
	Value string
}

func (*StringLiteralExpr) Kind() NodeKind           { return KindStringLiteralExpr }
func (e *StringLiteralExpr) String() string         { return fmt.Sprintf("%q", e.Value) }
func (e *StringLiteralExpr) AcceptExpression(v ExpressionVisitor) { v.VisitStringLiteralExpr(e) }

// IntegerLiteralExpr is an integer literal. Its Value is stored as an
// unsigned 64-bit magnitude plus a Negative flag so literals up to the
// full unsigned 64-bit range can be represented before a sign is applied;
// Raw preserves the source text for diagnostics like "literal out of
// range" that want to quote what the user wrote.
type IntegerLiteralExpr struct {
	ExprBase
	Value    uint64
	Negative bool
	Raw      string
}

func (*IntegerLiteralExpr) Kind() NodeKind   { return KindIntegerLiteralExpr }
func (e *IntegerLiteralExpr) String() string { return e.Raw }
func (e *IntegerLiteralExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitIntegerLiteralExpr(e)
}

// FloatLiteralExpr is a floating-point literal.
type FloatLiteralExpr struct {
	ExprBase
	Value float64
	Raw   string
}

func (*FloatLiteralExpr) Kind() NodeKind   { return KindFloatLiteralExpr }
func (e *FloatLiteralExpr) String() string { return e.Raw }
func (e *FloatLiteralExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitFloatLiteralExpr(e)
}

// BoolLiteralExpr is `true` or `false`.
type BoolLiteralExpr struct {
	ExprBase
	Value bool
}

func (*BoolLiteralExpr) Kind() NodeKind   { return KindBoolLiteralExpr }
func (e *BoolLiteralExpr) String() string { return fmt.Sprintf("%t", e.Value) }
func (e *BoolLiteralExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitBoolLiteralExpr(e)
}

// CharLiteralExpr is a character literal.
type CharLiteralExpr struct {
	ExprBase
	Value rune
}

func (*CharLiteralExpr) Kind() NodeKind   { return KindCharLiteralExpr }
func (e *CharLiteralExpr) String() string { return fmt.Sprintf("'%c'", e.Value) }
func (e *CharLiteralExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitCharLiteralExpr(e)
}

// NilLiteralExpr is `nil`.
type NilLiteralExpr struct{ ExprBase }

func (*NilLiteralExpr) Kind() NodeKind   { return KindNilLiteralExpr }
func (*NilLiteralExpr) String() string   { return "nil" }
func (e *NilLiteralExpr) AcceptExpression(v ExpressionVisitor) { v.VisitNilLiteralExpr(e) }

// ArrayLiteralExpr is `[e1, e2, ...]`; all elements must unify to one
// element type during type checking (§4.4).
type ArrayLiteralExpr struct {
	ExprBase
	Elements []Expression
}

func (*ArrayLiteralExpr) Kind() NodeKind { return KindArrayLiteralExpr }
func (e *ArrayLiteralExpr) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *ArrayLiteralExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitArrayLiteralExpr(e)
}

// IdentifierExpr is an unqualified identifier reference as produced by
// the parser, before the resolver has run.
type IdentifierExpr struct {
	ExprBase
	ID UnqualifiedID
}

func (*IdentifierExpr) Kind() NodeKind   { return KindIdentifierExpr }
func (e *IdentifierExpr) String() string { return e.ID.String() }
func (e *IdentifierExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitIdentifierExpr(e)
}

// LocalBinding is what a LocalIdentifierExpr points to: the scope entry
// created by a binding statement or function parameter.
type LocalBinding struct {
	Name      string
	Type      Type
	IsMutable bool
	DeclSpan  position.Span
}

// LocalIdentifierExpr is an identifier the resolver found in an enclosing
// lexical scope (a parameter or a `let`/`mut` binding).
type LocalIdentifierExpr struct {
	ExprBase
	Name    string
	Binding *LocalBinding
}

func (*LocalIdentifierExpr) Kind() NodeKind   { return KindLocalIdentifierExpr }
func (e *LocalIdentifierExpr) String() string { return e.Name }
func (e *LocalIdentifierExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitLocalIdentifierExpr(e)
}

// CallableDecl is implemented by the two declaration kinds an
// OverloadRefExpr can name: ordinary functions and externs. Call checking
// only ever needs a candidate's prototype to test argument compatibility
// against (§4.4); it reaches the concrete declaration back out via a type
// switch when it needs to know whether the winning candidate is an extern
// (which the mangler then skips, §4.5).
type CallableDecl interface {
	Declaration
	Prototype() *Prototype
}

func (d *FunctionDeclaration) Prototype() *Prototype   { return d.Proto }
func (d *ExternalFnDeclaration) Prototype() *Prototype { return d.Proto }

// OverloadRefExpr is what an unqualified identifier is rewritten to when
// it resolves to a function overload set: resolution is deferred to call
// checking, which picks the one candidate matching the call's argument
// types (§4.3, §4.4). Candidates mixes FunctionDeclaration and
// ExternalFnDeclaration freely — externs participate in overload
// resolution exactly like ordinary functions (§4.4).
type OverloadRefExpr struct {
	ExprBase
	FQID       FullyQualifiedID
	Candidates []CallableDecl
}

func (*OverloadRefExpr) Kind() NodeKind   { return KindOverloadRefExpr }
func (e *OverloadRefExpr) String() string { return e.FQID.String() }
func (e *OverloadRefExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitOverloadRefExpr(e)
}

// StaticGlobalExpr is an identifier the resolver qualified to a specific
// non-overload global entity (a constant or, after §4.4's invalid-entity
// check, nothing else is legal here).
type StaticGlobalExpr struct {
	ExprBase
	FQID FullyQualifiedID
	Decl Declaration
}

func (*StaticGlobalExpr) Kind() NodeKind   { return KindStaticGlobalExpr }
func (e *StaticGlobalExpr) String() string { return e.FQID.String() }
func (e *StaticGlobalExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitStaticGlobalExpr(e)
}

// CallExpr is a call before overload resolution: an arbitrary callee
// expression, positional arguments, and explicit generic arguments.
type CallExpr struct {
	ExprBase
	Callee      Expression
	Args        []Expression
	GenericArgs []Type
}

func (*CallExpr) Kind() NodeKind { return KindCallExpr }
func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s(%s)", e.Callee.String(), strings.Join(args, ", "))
}
func (e *CallExpr) AcceptExpression(v ExpressionVisitor) { v.VisitCallExpr(e) }

// StaticCallExpr is a call after overload resolution succeeded: it
// carries the chosen declaration and its fully qualified id directly,
// with argument expressions already wrapped in any ImplicitConversion
// their corresponding parameter required (§4.4). Overload is a
// CallableDecl since the winning candidate may be an extern (§4.4's
// builtins-participate-in-overload-resolution rule) as well as an
// ordinary function; the mangler type-switches on it to skip mangling an
// extern's call site.
type StaticCallExpr struct {
	ExprBase
	FQID     FullyQualifiedID
	Overload CallableDecl
	Args     []Expression
}

func (*StaticCallExpr) Kind() NodeKind { return KindStaticCallExpr }
func (e *StaticCallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s(%s)", e.FQID.String(), strings.Join(args, ", "))
}
func (e *StaticCallExpr) AcceptExpression(v ExpressionVisitor) { v.VisitStaticCallExpr(e) }

// MethodCallExpr is `receiver.method(args...)` before method resolution.
type MethodCallExpr struct {
	ExprBase
	Receiver Expression
	Method   string
	Args     []Expression
}

func (*MethodCallExpr) Kind() NodeKind { return KindMethodCallExpr }
func (e *MethodCallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s.%s(%s)", e.Receiver.String(), e.Method, strings.Join(args, ", "))
}
func (e *MethodCallExpr) AcceptExpression(v ExpressionVisitor) { v.VisitMethodCallExpr(e) }

// StaticMethodCallExpr is a MethodCallExpr after resolution against the
// receiver's methods/implemented interfaces (§4.4).
type StaticMethodCallExpr struct {
	ExprBase
	Receiver Expression
	FQID     FullyQualifiedID
	Method   *MethodDeclaration
	Args     []Expression
}

func (*StaticMethodCallExpr) Kind() NodeKind { return KindStaticMethodCallExpr }
func (e *StaticMethodCallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s.%s(%s)", e.Receiver.String(), e.FQID.Name, strings.Join(args, ", "))
}
func (e *StaticMethodCallExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitStaticMethodCallExpr(e)
}

// IndexExpr is `object[index]`.
type IndexExpr struct {
	ExprBase
	Object Expression
	Index  Expression
}

func (*IndexExpr) Kind() NodeKind   { return KindIndexExpr }
func (e *IndexExpr) String() string { return fmt.Sprintf("%s[%s]", e.Object, e.Index) }
func (e *IndexExpr) AcceptExpression(v ExpressionVisitor) { v.VisitIndexExpr(e) }

// FieldAccessExpr is `object.field`.
type FieldAccessExpr struct {
	ExprBase
	Object Expression
	Field  string
}

func (*FieldAccessExpr) Kind() NodeKind   { return KindFieldAccessExpr }
func (e *FieldAccessExpr) String() string { return e.Object.String() + "." + e.Field }
func (e *FieldAccessExpr) AcceptExpression(v ExpressionVisitor) { v.VisitFieldAccessExpr(e) }

// GroupExpr is a parenthesized expression, kept distinct from its inner
// expression so source spans and printers reflect the explicit grouping.
type GroupExpr struct {
	ExprBase
	Inner Expression
}

func (*GroupExpr) Kind() NodeKind   { return KindGroupExpr }
func (e *GroupExpr) String() string { return "(" + e.Inner.String() + ")" }
func (e *GroupExpr) AcceptExpression(v ExpressionVisitor) { v.VisitGroupExpr(e) }

// UnaryOp is the closed set of unary operators.
type UnaryOp int

const (
	UnaryNeg UnaryOp = iota
	UnaryNot
	UnaryAddr
	UnaryAddrMut
	UnaryDeref
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryNot:
		return "!"
	case UnaryAddr:
		return "&"
	case UnaryAddrMut:
		return "&mut "
	case UnaryDeref:
		return "*"
	default:
		return "?"
	}
}

// UnaryExpr is `op operand`.
type UnaryExpr struct {
	ExprBase
	Op      UnaryOp
	Operand Expression
}

func (*UnaryExpr) Kind() NodeKind   { return KindUnaryExpr }
func (e *UnaryExpr) String() string { return e.Op.String() + e.Operand.String() }
func (e *UnaryExpr) AcceptExpression(v ExpressionVisitor) { v.VisitUnaryExpr(e) }

// BinaryOp is the closed set of binary operators.
type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinAnd
	BinOr
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinAssign
)

func (op BinaryOp) String() string {
	names := map[BinaryOp]string{
		BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
		BinBitAnd: "&", BinBitOr: "|", BinBitXor: "^", BinShl: "<<", BinShr: ">>",
		BinAnd: "&&", BinOr: "||", BinEq: "==", BinNe: "!=",
		BinLt: "<", BinLe: "<=", BinGt: ">", BinGe: ">=", BinAssign: "=",
	}

	return names[op]
}

// IsArithmetic reports whether op requires arithmetic operand types.
func (op BinaryOp) IsArithmetic() bool {
	switch op {
	case BinAdd, BinSub, BinMul, BinDiv, BinMod:
		return true
	default:
		return false
	}
}

// IsBitwise reports whether op requires integral operand types.
func (op BinaryOp) IsBitwise() bool {
	switch op {
	case BinBitAnd, BinBitOr, BinBitXor, BinShl, BinShr:
		return true
	default:
		return false
	}
}

// IsLogical reports whether op requires bool operand types.
func (op BinaryOp) IsLogical() bool { return op == BinAnd || op == BinOr }

// IsComparison reports whether op yields a bool result.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case BinEq, BinNe, BinLt, BinLe, BinGt, BinGe:
		return true
	default:
		return false
	}
}

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	ExprBase
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (*BinaryExpr) Kind() NodeKind { return KindBinaryExpr }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}
func (e *BinaryExpr) AcceptExpression(v ExpressionVisitor) { v.VisitBinaryExpr(e) }

// CastExpr is `operand as Target` (safe) or `operand as! Target` (unsafe
// bitcast); see §4.4 and internal/typechecker/cast.go for the legality
// table distinguishing the two.
type CastExpr struct {
	ExprBase
	Operand Expression
	Target  Type
	Unsafe  bool
}

func (*CastExpr) Kind() NodeKind { return KindCastExpr }
func (e *CastExpr) String() string {
	op := "as"
	if e.Unsafe {
		op = "as!"
	}

	return fmt.Sprintf("%s %s %s", e.Operand, op, e.Target)
}
func (e *CastExpr) AcceptExpression(v ExpressionVisitor) { v.VisitCastExpr(e) }

// BlockExpr is `{ stmts...; tail }`. Tail is nil when the block has no
// trailing expression (and so evaluates to void).
type BlockExpr struct {
	ExprBase
	Statements []Statement
	Tail       Expression
}

func (*BlockExpr) Kind() NodeKind { return KindBlockExpr }
func (e *BlockExpr) String() string {
	var b strings.Builder

	b.WriteString("{ ")

	for _, s := range e.Statements {
		b.WriteString(s.String())
		b.WriteString("; ")
	}

	if e.Tail != nil {
		b.WriteString(e.Tail.String())
	}

	b.WriteString(" }")

	return b.String()
}
func (e *BlockExpr) AcceptExpression(v ExpressionVisitor) { v.VisitBlockExpr(e) }

// IfThenExpr is `if cond { then }` with no else branch: always void, never
// evaluable.
type IfThenExpr struct {
	ExprBase
	Cond Expression
	Then *BlockExpr
}

func (*IfThenExpr) Kind() NodeKind   { return KindIfThenExpr }
func (e *IfThenExpr) String() string { return fmt.Sprintf("if %s %s", e.Cond, e.Then) }
func (e *IfThenExpr) AcceptExpression(v ExpressionVisitor) { v.VisitIfThenExpr(e) }

// ElseIfClause is one `else if cond { body }` link in an IfElseExpr chain.
type ElseIfClause struct {
	Cond Expression
	Then *BlockExpr
}

// IfElseExpr is an `if`/`else if`*/`else`? chain. Per the decided
// semantics for the open question in spec.md §9 ("else present ⇒
// evaluable"): IsEvaluable is true exactly when Else is non-nil, in which
// case every branch (Then, each ElseIfs[i].Then, Else) must unify to one
// result type (§4.4); with no Else the chain's result type is void and it
// is not evaluable, regardless of whether every branch happens to yield
// the same type.
type IfElseExpr struct {
	ExprBase
	Cond    Expression
	Then    *BlockExpr
	ElseIfs []ElseIfClause
	Else    *BlockExpr // nil when there is no trailing else.
}

// IsEvaluable reports whether this chain yields a value (has a final else).
func (e *IfElseExpr) IsEvaluable() bool { return e.Else != nil }

func (*IfElseExpr) Kind() NodeKind { return KindIfElseExpr }
func (e *IfElseExpr) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "if %s %s", e.Cond, e.Then)

	for _, ei := range e.ElseIfs {
		fmt.Fprintf(&b, " else if %s %s", ei.Cond, ei.Then)
	}

	if e.Else != nil {
		fmt.Fprintf(&b, " else %s", e.Else)
	}

	return b.String()
}
func (e *IfElseExpr) AcceptExpression(v ExpressionVisitor) { v.VisitIfElseExpr(e) }

// LoopExpr is `loop { body }`; it evaluates to whatever its `break value`
// sites agree on (§4.4), or void if it has none.
type LoopExpr struct {
	ExprBase
	Body *BlockExpr
}

func (*LoopExpr) Kind() NodeKind   { return KindLoopExpr }
func (e *LoopExpr) String() string { return "loop " + e.Body.String() }
func (e *LoopExpr) AcceptExpression(v ExpressionVisitor) { v.VisitLoopExpr(e) }

// WhileExpr is `while cond { body }`; always void.
type WhileExpr struct {
	ExprBase
	Cond Expression
	Body *BlockExpr
}

func (*WhileExpr) Kind() NodeKind   { return KindWhileExpr }
func (e *WhileExpr) String() string { return fmt.Sprintf("while %s %s", e.Cond, e.Body) }
func (e *WhileExpr) AcceptExpression(v ExpressionVisitor) { v.VisitWhileExpr(e) }

// ForDirection is the closed set of `for` loop directions.
type ForDirection int

const (
	ForUp ForDirection = iota
	ForDown
)

// ForExpr is `for loopVar in init..last { body }` (ascending) or the `..=`
// analog for descending ranges; always void. Init and Last must both be
// integral and of the same type (§4.4 codes 54/55); LoopVar is bound in a
// fresh inner scope to that type.
type ForExpr struct {
	ExprBase
	LoopVar   string
	Direction ForDirection
	Init      Expression
	Last      Expression
	Body      *BlockExpr
}

func (*ForExpr) Kind() NodeKind { return KindForExpr }
func (e *ForExpr) String() string {
	return fmt.Sprintf("for %s in %s..%s %s", e.LoopVar, e.Init, e.Last, e.Body)
}
func (e *ForExpr) AcceptExpression(v ExpressionVisitor) { v.VisitForExpr(e) }

// ReturnExpr is `return` or `return value`.
type ReturnExpr struct {
	ExprBase
	Value Expression // nil for a bare `return`.
}

func (*ReturnExpr) Kind() NodeKind { return KindReturnExpr }
func (e *ReturnExpr) String() string {
	if e.Value == nil {
		return "return"
	}

	return "return " + e.Value.String()
}
func (e *ReturnExpr) AcceptExpression(v ExpressionVisitor) { v.VisitReturnExpr(e) }

// BreakExpr is `break` or `break value`.
type BreakExpr struct {
	ExprBase
	Value Expression // nil for a bare `break`.
}

func (*BreakExpr) Kind() NodeKind { return KindBreakExpr }
func (e *BreakExpr) String() string {
	if e.Value == nil {
		return "break"
	}

	return "break " + e.Value.String()
}
func (e *BreakExpr) AcceptExpression(v ExpressionVisitor) { v.VisitBreakExpr(e) }

// ContinueExpr is `continue`.
type ContinueExpr struct{ ExprBase }

func (*ContinueExpr) Kind() NodeKind   { return KindContinueExpr }
func (*ContinueExpr) String() string   { return "continue" }
func (e *ContinueExpr) AcceptExpression(v ExpressionVisitor) { v.VisitContinueExpr(e) }

// StructFieldInit is one `name: value` pair inside a struct-init.
type StructFieldInit struct {
	Name  string
	Value Expression
	Span  position.Span
}

// StructInitExpr is `Target { field: value, ... }` — also the form a
// struct literal takes (§3.3 lists "literals (... struct)" and
// "struct-init" together; they are the one construct).
type StructInitExpr struct {
	ExprBase
	Target Type
	Fields []StructFieldInit
}

func (*StructInitExpr) Kind() NodeKind { return KindStructInitExpr }
func (e *StructInitExpr) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Value)
	}

	return fmt.Sprintf("%s { %s }", e.Target, strings.Join(parts, ", "))
}
func (e *StructInitExpr) AcceptExpression(v ExpressionVisitor) { v.VisitStructInitExpr(e) }

// ImplicitConversionExpr wraps an expression the type checker determined
// needs converting to Target to satisfy its context — the mechanism
// behind every implicit conversion in §4.4 (unsized-integer narrowing,
// `&[T; N]` to `[T]`, `nil` to a pointer type, ...).
type ImplicitConversionExpr struct {
	ExprBase
	Inner  Expression
	Target Type
}

func (*ImplicitConversionExpr) Kind() NodeKind { return KindImplicitConversionExpr }
func (e *ImplicitConversionExpr) String() string {
	return fmt.Sprintf("<convert %s to %s>", e.Inner, e.Target)
}
func (e *ImplicitConversionExpr) AcceptExpression(v ExpressionVisitor) {
	v.VisitImplicitConversionExpr(e)
}

// LoadExpr marks an lvalue-to-rvalue conversion: reading through an
// IndirectionType to produce a plain value.
type LoadExpr struct {
	ExprBase
	Inner Expression
}

func (*LoadExpr) Kind() NodeKind   { return KindLoadExpr }
func (e *LoadExpr) String() string { return "load(" + e.Inner.String() + ")" }
func (e *LoadExpr) AcceptExpression(v ExpressionVisitor) { v.VisitLoadExpr(e) }

// AddressOfExpr is `&operand` or `&mut operand`; the operand must be an
// lvalue (§4.4 codes 43/44).
type AddressOfExpr struct {
	ExprBase
	Operand Expression
	Mutable bool
}

func (*AddressOfExpr) Kind() NodeKind { return KindAddressOfExpr }
func (e *AddressOfExpr) String() string {
	if e.Mutable {
		return "&mut " + e.Operand.String()
	}

	return "&" + e.Operand.String()
}
func (e *AddressOfExpr) AcceptExpression(v ExpressionVisitor) { v.VisitAddressOfExpr(e) }

// SliceOfExpr is the explicit-conversion-site counterpart of the implicit
// `&[T; N]` to `[T]` rule: it marks an array reference being viewed as a
// slice.
type SliceOfExpr struct {
	ExprBase
	Operand Expression
}

func (*SliceOfExpr) Kind() NodeKind   { return KindSliceOfExpr }
func (e *SliceOfExpr) String() string { return "sliceof(" + e.Operand.String() + ")" }
func (e *SliceOfExpr) AcceptExpression(v ExpressionVisitor) { v.VisitSliceOfExpr(e) }

// RangeExpr is `start..end`, used by ForExpr's Init/Last pair and
// available as a first-class expression elsewhere.
type RangeExpr struct {
	ExprBase
	Start Expression
	End   Expression
}

func (*RangeExpr) Kind() NodeKind   { return KindRangeExpr }
func (e *RangeExpr) String() string { return fmt.Sprintf("%s..%s", e.Start, e.End) }
func (e *RangeExpr) AcceptExpression(v ExpressionVisitor) { v.VisitRangeExpr(e) }

// SizeofExpr is `sizeof(Target)`.
type SizeofExpr struct {
	ExprBase
	Target Type
}

func (*SizeofExpr) Kind() NodeKind   { return KindSizeofExpr }
func (e *SizeofExpr) String() string { return "sizeof(" + e.Target.String() + ")" }
func (e *SizeofExpr) AcceptExpression(v ExpressionVisitor) { v.VisitSizeofExpr(e) }
