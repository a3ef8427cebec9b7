// Package types holds semantic predicates and conversion/cast rules over
// the closed set of ast.Type kinds (§3.2): which kinds are arithmetic,
// integral, or comparable; which implicit conversions the type checker may
// insert; and (in cast.go) which explicit casts are safe versus
// bitcast-only. The AST node shapes themselves, their structural equality
// and deep clone live in package ast — this package only answers "is this
// kind of type" and "can I get from this type to that one" questions the
// type checker asks repeatedly.
package types

import "github.com/gallium-lang/gallium/internal/ast"

// IsError reports whether t is the error-type sentinel, or nil.
func IsError(t ast.Type) bool {
	if t == nil {
		return true
	}

	_, ok := t.(*ast.ErrorType)

	return ok
}

// IsIntegral reports whether t is a builtin signed/unsigned integer of any
// width, or the byte type (byte behaves like u8 for every integral rule
// except implicit conversion, §4.4).
func IsIntegral(t ast.Type) bool {
	switch t.(type) {
	case *ast.IntegralType, *ast.ByteType:
		return true
	default:
		return false
	}
}

// IsFloating reports whether t is a builtin floating-point type.
func IsFloating(t ast.Type) bool {
	_, ok := t.(*ast.FloatType)
	return ok
}

// IsArithmetic reports whether t accepts the arithmetic operators (`+ - * /
// %`): any integral or floating-point type (§4.4, code 39).
func IsArithmetic(t ast.Type) bool {
	return IsIntegral(t) || IsFloating(t)
}

// IsSigned reports whether t is a signed integral type. Unsigned integral
// types, byte, and every non-integral type return false.
func IsSigned(t ast.Type) bool {
	it, ok := t.(*ast.IntegralType)
	return ok && it.Signed
}

// IsBool reports whether t is the builtin bool type.
func IsBool(t ast.Type) bool {
	_, ok := t.(*ast.BoolType)
	return ok
}

// IsPointerLike reports whether t is a reference or pointer type — the
// operand kinds the dereference operator (`*`) accepts (§4.4, code 45).
func IsPointerLike(t ast.Type) bool {
	switch t.(type) {
	case *ast.ReferenceType, *ast.PointerType:
		return true
	default:
		return false
	}
}

// IsIndexable reports whether t can appear on the left of an index
// expression: a slice or a fixed-size array (§4.4, code 46).
func IsIndexable(t ast.Type) bool {
	switch t.(type) {
	case *ast.SliceType, *ast.ArrayType:
		return true
	default:
		return false
	}
}

// IsMutable reports whether t is a mutable reference, slice, or pointer —
// the shapes `&mut` is allowed to target (§4.4, code 44).
func IsMutable(t ast.Type) bool {
	switch v := t.(type) {
	case *ast.ReferenceType:
		return v.Mut
	case *ast.SliceType:
		return v.Mut
	case *ast.PointerType:
		return v.Mut
	default:
		return false
	}
}

// IsUnsizedInteger reports whether t is the inference placeholder type of
// an integer literal before the type checker narrows it.
func IsUnsizedInteger(t ast.Type) bool {
	_, ok := t.(*ast.UnsizedIntegerType)
	return ok
}

// IsNilPointer reports whether t is the inference placeholder type of a
// `nil` literal before the type checker fixes it to a concrete pointer.
func IsNilPointer(t ast.Type) bool {
	_, ok := t.(*ast.NilPointerType)
	return ok
}

// IsUserDefined reports whether t names a struct/class/alias declaration,
// resolved or not.
func IsUserDefined(t ast.Type) bool {
	switch t.(type) {
	case *ast.UserDefinedType, *ast.UnqualifiedUserDefinedType:
		return true
	default:
		return false
	}
}

// IsDynInterface reports whether t names a `dyn Interface`, resolved or
// not — struct-init rejects these (§4.4, code 10).
func IsDynInterface(t ast.Type) bool {
	switch t.(type) {
	case *ast.DynInterfaceType, *ast.UnqualifiedDynInterfaceType:
		return true
	default:
		return false
	}
}

// Deref strips exactly one level of reference, pointer, or indirection
// around t, returning the element type and true. Field access auto-derefs
// through one such level (§4.4); it does not recurse, so a double pointer
// or reference-to-pointer still requires an explicit second dereference.
func Deref(t ast.Type) (ast.Type, bool) {
	switch v := t.(type) {
	case *ast.ReferenceType:
		return v.Elem, true
	case *ast.PointerType:
		return v.Elem, true
	case *ast.IndirectionType:
		return v.Elem, true
	default:
		return nil, false
	}
}

// Width returns the bit width of an integral type, along with whether t
// was in fact integral. byte is reported as an 8-bit unsigned width.
func Width(t ast.Type) (ast.IntWidth, bool, bool) {
	switch v := t.(type) {
	case *ast.IntegralType:
		return v.Width, v.Signed, true
	case *ast.ByteType:
		return ast.Int8, false, true
	default:
		return 0, false, false
	}
}
