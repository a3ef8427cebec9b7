package types

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

func i32() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int32, Signed: true}
}

func u8() ast.Type {
	return &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Width: ast.Int8, Signed: false}
}

func byteType() ast.Type {
	return &ast.ByteType{TypeBase: ast.TypeBase{NodeSpan: sp()}}
}

func TestIsArithmetic(t *testing.T) {
	if !IsArithmetic(i32()) {
		t.Fatalf("i32 should be arithmetic")
	}

	if IsArithmetic(&ast.BoolType{TypeBase: ast.TypeBase{NodeSpan: sp()}}) {
		t.Fatalf("bool should not be arithmetic")
	}
}

func TestIsMutableVariants(t *testing.T) {
	mutRef := &ast.ReferenceType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: i32(), Mut: true}
	constRef := &ast.ReferenceType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: i32(), Mut: false}

	if !IsMutable(mutRef) {
		t.Fatalf("&mut T should be mutable")
	}

	if IsMutable(constRef) {
		t.Fatalf("&T should not be mutable")
	}
}

func TestCanImplicitlyConvertUnsizedInteger(t *testing.T) {
	unsized := &ast.UnsizedIntegerType{TypeBase: ast.TypeBase{NodeSpan: sp()}}

	if !CanImplicitlyConvert(unsized, i32()) {
		t.Fatalf("unsized integer literal should implicitly convert to i32")
	}

	if CanImplicitlyConvert(unsized, &ast.BoolType{TypeBase: ast.TypeBase{NodeSpan: sp()}}) {
		t.Fatalf("unsized integer literal should not implicitly convert to bool")
	}
}

func TestCanImplicitlyConvertByteU8(t *testing.T) {
	if !CanImplicitlyConvert(byteType(), u8()) {
		t.Fatalf("byte should implicitly convert to u8")
	}

	if !CanImplicitlyConvert(u8(), byteType()) {
		t.Fatalf("u8 should implicitly convert to byte")
	}
}

func TestCanImplicitlyConvertRefArrayToSlice(t *testing.T) {
	arr := &ast.ArrayType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: i32(), Size: 4}
	ref := &ast.ReferenceType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: arr, Mut: false}
	slice := &ast.SliceType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: i32(), Mut: false}

	if !CanImplicitlyConvert(ref, slice) {
		t.Fatalf("&[i32; 4] should implicitly convert to [i32]")
	}
}

func TestCanImplicitlyConvertNilToPointer(t *testing.T) {
	nilType := &ast.NilPointerType{TypeBase: ast.TypeBase{NodeSpan: sp()}}
	ptr := &ast.PointerType{TypeBase: ast.TypeBase{NodeSpan: sp()}, Elem: i32(), Mut: true}

	if !CanImplicitlyConvert(nilType, ptr) {
		t.Fatalf("nil should implicitly convert to *mut i32")
	}
}

func TestFitsInIntegral(t *testing.T) {
	if !FitsInIntegral(127, i32()) {
		t.Fatalf("127 should fit in i32")
	}

	if FitsInIntegral(256, u8()) {
		t.Fatalf("256 should not fit in u8")
	}

	if !FitsInIntegral(255, u8()) {
		t.Fatalf("255 should fit in u8")
	}
}

func TestUnifyMismatch(t *testing.T) {
	common, ok := Unify([]ast.Type{i32(), i32()})
	if !ok || !ast.EqualType(common, i32()) {
		t.Fatalf("identical types should unify")
	}

	_, ok = Unify([]ast.Type{i32(), &ast.BoolType{TypeBase: ast.TypeBase{NodeSpan: sp()}}})
	if ok {
		t.Fatalf("i32 and bool should not unify")
	}
}

func TestUnifyErrorShortCircuit(t *testing.T) {
	errType := &ast.ErrorType{TypeBase: ast.TypeBase{NodeSpan: sp()}}

	common, ok := Unify([]ast.Type{errType, i32()})
	if !ok {
		t.Fatalf("error type should not block unification")
	}

	if !ast.EqualType(common, i32()) {
		t.Fatalf("common type should be i32 after skipping error type")
	}
}
