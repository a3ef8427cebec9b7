package ast

import "github.com/gallium-lang/gallium/internal/position"

// Node is the base interface every AST node implements: the four sorts
// (Declaration, Statement, Expression, Type) plus the fifth, narrower sort
// for prototype parts (Attribute). Every node carries a source span so
// later passes can point diagnostics at it; synthesized nodes carry
// position.NonexistentSpan.
type Node interface {
	Span() position.Span
	String() string
	// Kind returns the node's tag. Equality short-circuits on a Kind
	// mismatch before doing any structural comparison.
	Kind() NodeKind
}

// Declaration is implemented by every module-scope declaration kind (§3.5).
type Declaration interface {
	Node
	AcceptDeclaration(v DeclarationVisitor)
	declarationNode()
}

// Statement is implemented by every statement kind (§3.4).
type Statement interface {
	Node
	AcceptStatement(v StatementVisitor)
	statementNode()
}

// Expression is implemented by every expression kind (§3.3). ResultType is
// nil until the type checker annotates it; after a successful type-check
// pass every reachable non-error expression has a non-nil, non-error
// result type (spec.md §8 invariant 7).
type Expression interface {
	Node
	AcceptExpression(v ExpressionVisitor)
	ResultType() Type
	SetResultType(t Type)
	expressionNode()
}

// Type is implemented by every type-kind (§3.2).
type Type interface {
	Node
	AcceptType(v TypeVisitor)
	typeNode()
}

// NodeKind tags every concrete node with a discriminant so structural
// equality can short-circuit on a mismatch without a type switch, and so
// that the distinguished Error variants can compare equal to anything of
// the same sort regardless of what else the comparison would have found.
type NodeKind int

// ExprBase is embedded by every Expression implementation. It carries the
// span and the result-type slot the type checker fills in.
type ExprBase struct {
	NodeSpan position.Span
	Result   Type
}

func (b *ExprBase) Span() position.Span   { return b.NodeSpan }
func (b *ExprBase) ResultType() Type      { return b.Result }
func (b *ExprBase) SetResultType(t Type)  { b.Result = t }
func (b *ExprBase) expressionNode()       {}

// StmtBase is embedded by every Statement implementation.
type StmtBase struct {
	NodeSpan position.Span
}

func (b *StmtBase) Span() position.Span { return b.NodeSpan }
func (b *StmtBase) statementNode()      {}

// DeclBase is embedded by every Declaration implementation, plus the
// mangling slot §3.5 says every mangled-capable declaration is eventually
// stamped with.
type DeclBase struct {
	NodeSpan position.Span
	Mangled  *MangleInfo
}

func (b *DeclBase) Span() position.Span { return b.NodeSpan }
func (b *DeclBase) declarationNode()    {}

// MangleInfo is attached to a declaration once the mangler pass runs.
type MangleInfo struct {
	FQID   FullyQualifiedID
	Symbol string
}

// TypeBase is embedded by every Type implementation.
type TypeBase struct {
	NodeSpan position.Span
}

func (b *TypeBase) Span() position.Span { return b.NodeSpan }
func (b *TypeBase) typeNode()           {}

// Program is the root of the AST, and the sole owner of every declaration
// it contains. Resolution back-pointers into a Program's declarations
// remain valid for the Program's lifetime (§4.6).
type Program struct {
	Span         position.Span
	Declarations []Declaration
}

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Declarations))
	for _, d := range p.Declarations {
		parts = append(parts, d.String())
	}

	out := ""

	for i, s := range parts {
		if i > 0 {
			out += "\n"
		}

		out += s
	}

	return out
}
