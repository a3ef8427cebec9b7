package ast

import (
	"testing"

	"github.com/gallium-lang/gallium/internal/position"
)

func span() position.Span {
	return position.Span{
		Start: position.Position{Filename: "t.ga", Line: 1, Column: 1, Offset: 0},
		End:   position.Position{Filename: "t.ga", Line: 1, Column: 2, Offset: 1},
	}
}

func intLit(n uint64) *IntegerLiteralExpr {
	return &IntegerLiteralExpr{ExprBase: ExprBase{NodeSpan: span()}, Value: n, Raw: "n"}
}

func TestNodeKindAndString(t *testing.T) {
	e := intLit(42)

	if e.Kind() != KindIntegerLiteralExpr {
		t.Fatalf("Kind() = %v, want KindIntegerLiteralExpr", e.Kind())
	}

	if e.String() != "n" {
		t.Fatalf("String() = %q, want %q", e.String(), "n")
	}

	if e.Span() != span() {
		t.Fatalf("Span() mismatch")
	}
}

func TestExpressionResultTypeSlot(t *testing.T) {
	e := intLit(1)
	if e.ResultType() != nil {
		t.Fatalf("fresh expression should have nil ResultType")
	}

	want := &IntegralType{Width: Int32, Signed: true}
	e.SetResultType(want)

	if e.ResultType() != Type(want) {
		t.Fatalf("SetResultType did not stick")
	}
}

func TestEqualTypeErrorShortCircuit(t *testing.T) {
	errT := &ErrorType{}
	i32 := &IntegralType{Width: Int32, Signed: true}

	if !EqualType(errT, i32) {
		t.Fatalf("ErrorType must compare equal to any other type")
	}

	if !EqualType(i32, errT) {
		t.Fatalf("EqualType must be symmetric with ErrorType on either side")
	}
}

func TestEqualTypeStructural(t *testing.T) {
	a := &ReferenceType{Elem: &IntegralType{Width: Int64, Signed: false}, Mut: true}
	b := &ReferenceType{Elem: &IntegralType{Width: Int64, Signed: false}, Mut: true}
	c := &ReferenceType{Elem: &IntegralType{Width: Int64, Signed: false}, Mut: false}

	if !EqualType(a, b) {
		t.Fatalf("structurally identical reference types should compare equal")
	}

	if EqualType(a, c) {
		t.Fatalf("mutability mismatch should not compare equal")
	}
}

func TestEqualTypeUserDefinedGenericArgs(t *testing.T) {
	fqid := NewFullyQualifiedID(ModuleID{Parts: []string{"a", "b"}}, "Box")

	a := &UserDefinedType{FQID: fqid, GenericArgs: []Type{&IntegralType{Width: Int32, Signed: true}}}
	b := &UserDefinedType{FQID: fqid, GenericArgs: []Type{&IntegralType{Width: Int32, Signed: true}}}
	c := &UserDefinedType{FQID: fqid, GenericArgs: []Type{&IntegralType{Width: Int64, Signed: true}}}

	if !EqualType(a, b) {
		t.Fatalf("identical generic args should compare equal")
	}

	if EqualType(a, c) {
		t.Fatalf("different generic args should not compare equal")
	}
}

func TestEqualExprErrorShortCircuit(t *testing.T) {
	errE := &ErrorExpr{}
	lit := intLit(7)

	if !EqualExpr(errE, lit) || !EqualExpr(lit, errE) {
		t.Fatalf("ErrorExpr must compare equal to any expression, both directions")
	}
}

func TestEqualExprBinaryAndCall(t *testing.T) {
	left := &BinaryExpr{Op: BinAdd, Left: intLit(1), Right: intLit(2)}
	right := &BinaryExpr{Op: BinAdd, Left: intLit(1), Right: intLit(2)}
	mismatched := &BinaryExpr{Op: BinSub, Left: intLit(1), Right: intLit(2)}

	if !EqualExpr(left, right) {
		t.Fatalf("identical binary expressions should compare equal")
	}

	if EqualExpr(left, mismatched) {
		t.Fatalf("different operators should not compare equal")
	}

	fqid := NewFullyQualifiedID(ModuleID{Parts: []string{"core"}}, "max")
	call1 := &StaticCallExpr{FQID: fqid, Args: []Expression{intLit(1), intLit(2)}}
	call2 := &StaticCallExpr{FQID: fqid, Args: []Expression{intLit(1), intLit(2)}}

	if !EqualExpr(call1, call2) {
		t.Fatalf("identical static calls should compare equal")
	}
}

func TestEqualStmtAndDecl(t *testing.T) {
	s1 := &BindingStatement{Name: "x", Mutable: false, Init: intLit(1)}
	s2 := &BindingStatement{Name: "x", Mutable: false, Init: intLit(1)}
	s3 := &BindingStatement{Name: "x", Mutable: true, Init: intLit(1)}

	if !EqualStmt(s1, s2) {
		t.Fatalf("identical binding statements should compare equal")
	}

	if EqualStmt(s1, s3) {
		t.Fatalf("mutability mismatch should not compare equal")
	}

	d1 := &ConstantDeclaration{Name: "K", TypeHint: &IntegralType{Width: Int32, Signed: true}, Value: intLit(1)}
	d2 := &ConstantDeclaration{Name: "K", TypeHint: &IntegralType{Width: Int32, Signed: true}, Value: intLit(1)}

	if !EqualDecl(d1, d2) {
		t.Fatalf("identical constant declarations should compare equal")
	}

	if !EqualDecl(&ErrorDeclaration{}, d1) {
		t.Fatalf("ErrorDeclaration must compare equal to any declaration")
	}
}

func TestCloneTypeIndependence(t *testing.T) {
	orig := &ReferenceType{Elem: &IntegralType{Width: Int32, Signed: true}, Mut: true}
	clone := CloneType(orig).(*ReferenceType)

	if !EqualType(orig, clone) {
		t.Fatalf("clone should compare equal to original")
	}

	clone.Elem.(*IntegralType).Signed = false

	if orig.Elem.(*IntegralType).Signed == false {
		t.Fatalf("mutating the clone's subtree must not affect the original")
	}
}

func TestCloneExpressionIndependence(t *testing.T) {
	orig := &CallExpr{
		Callee: &IdentifierExpr{ID: UnqualifiedID{Name: "f"}},
		Args:   []Expression{intLit(1), intLit(2)},
	}
	clone := CloneExpression(orig).(*CallExpr)

	if !EqualExpr(orig, clone) {
		t.Fatalf("cloned call should compare equal to original")
	}

	clone.Args[0].(*IntegerLiteralExpr).Value = 99

	if orig.Args[0].(*IntegerLiteralExpr).Value == 99 {
		t.Fatalf("cloning a call's args must deep-copy, not alias, the slice elements")
	}
}

func TestCloneDeclarationStruct(t *testing.T) {
	orig := &StructDeclaration{
		Name: "Point",
		Fields: []FieldDef{
			{Name: "x", Type: &IntegralType{Width: Int32, Signed: true}},
			{Name: "y", Type: &IntegralType{Width: Int32, Signed: true}},
		},
	}
	clone := CloneDeclaration(orig).(*StructDeclaration)

	if !EqualDecl(orig, clone) {
		t.Fatalf("cloned struct decl should compare equal to original")
	}

	clone.Fields[0].Type.(*IntegralType).Width = Int64

	if orig.Fields[0].Type.(*IntegralType).Width == Int64 {
		t.Fatalf("cloning fields must deep-copy field types")
	}
}

type countingExprVisitor struct {
	BaseExpressionVisitor
	binaryCount int
}

func (c *countingExprVisitor) VisitBinaryExpr(e *BinaryExpr) { c.binaryCount++ }

func TestVisitorDispatch(t *testing.T) {
	e := &BinaryExpr{Op: BinAdd, Left: intLit(1), Right: intLit(2)}

	v := &countingExprVisitor{}
	e.AcceptExpression(v)

	if v.binaryCount != 1 {
		t.Fatalf("AcceptExpression should dispatch to VisitBinaryExpr exactly once, got %d", v.binaryCount)
	}
}

func TestWalkDeclarations(t *testing.T) {
	p := &Program{
		Declarations: []Declaration{
			&ConstantDeclaration{Name: "A"},
			&ConstantDeclaration{Name: "B"},
		},
	}

	var names []string
	WalkDeclarations(p, func(d Declaration) {
		names = append(names, d.(*ConstantDeclaration).Name)
	})

	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Fatalf("WalkDeclarations visited %v, want [A B]", names)
	}
}

func TestIfElseIsEvaluable(t *testing.T) {
	withElse := &IfElseExpr{Then: &BlockExpr{}, Else: &BlockExpr{}}
	if !withElse.IsEvaluable() {
		t.Fatalf("an if/else chain with a final else must be evaluable")
	}

	withoutElse := &IfElseExpr{Then: &BlockExpr{}}
	if withoutElse.IsEvaluable() {
		t.Fatalf("an if/else chain with no final else must not be evaluable")
	}
}

func TestFullyQualifiedIDRoundTrip(t *testing.T) {
	fqid := NewFullyQualifiedID(ModuleID{Parts: []string{"core", "mem"}}, "swap")
	if fqid.String() != "::core::mem::swap" {
		t.Fatalf("String() = %q, want %q", fqid.String(), "::core::mem::swap")
	}

	other := NewFullyQualifiedID(ModuleID{Parts: []string{"core", "mem"}}, "swap")
	if !fqid.Equal(other) {
		t.Fatalf("two FQ ids built from the same module/name should be Equal")
	}
}
