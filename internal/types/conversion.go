package types

import "github.com/gallium-lang/gallium/internal/ast"

// CanImplicitlyConvert reports whether the type checker may insert an
// ImplicitConversion(expr, to) wrapper around an expression of type from
// when a target type is known from context — a binding's type hint, a
// call argument's parameter type, or a return expression's declared
// return type (§4.4). It never fires during binary-operand unification,
// where both sides must already agree without help.
//
// Recognized conversions: unsized-integer to any integral type (the
// literal range check in FitsInIntegral still has to pass); a reference
// to a fixed-size array to the matching slice type; nil to any pointer
// type; byte to u8 and u8 to byte in either direction, since the two
// share representation and only differ by declared intent.
func CanImplicitlyConvert(from, to ast.Type) bool {
	if IsError(from) || IsError(to) {
		return true
	}

	if ast.EqualType(from, to) {
		return true
	}

	switch {
	case IsUnsizedInteger(from):
		return IsIntegral(to)
	case IsNilPointer(from):
		_, ok := to.(*ast.PointerType)
		return ok
	}

	if refToSlice(from, to) {
		return true
	}

	if byteU8Pair(from, to) {
		return true
	}

	return false
}

// refToSlice reports whether from is `&[T; N]` (or `&mut [T; N]`) and to
// is the matching `[T]`/`[mut T]` slice type.
func refToSlice(from, to ast.Type) bool {
	ref, ok := from.(*ast.ReferenceType)
	if !ok {
		return false
	}

	arr, ok := ref.Elem.(*ast.ArrayType)
	if !ok {
		return false
	}

	slice, ok := to.(*ast.SliceType)
	if !ok {
		return false
	}

	return slice.Mut == ref.Mut && ast.EqualType(arr.Elem, slice.Elem)
}

func byteU8Pair(from, to ast.Type) bool {
	isByte := func(t ast.Type) bool { _, ok := t.(*ast.ByteType); return ok }
	isU8 := func(t ast.Type) bool {
		it, ok := t.(*ast.IntegralType)
		return ok && !it.Signed && it.Width == ast.Int8
	}

	return (isByte(from) && isU8(to)) || (isU8(from) && isByte(to))
}

// FitsInIntegral reports whether the literal value v fits in the range of
// the target integral type target, after an unsized-integer literal has
// been assigned that target (§4.4, code 32). Signed targets use the
// symmetric two's-complement range for their width; unsigned and byte
// targets use [0, 2^width - 1]. Native width (isize/usize) is
// back-end-resolved and is always accepted here — its real range isn't
// known until code generation picks a pointer width.
func FitsInIntegral(v uint64, target ast.Type) bool {
	width, signed, ok := Width(target)
	if !ok {
		return false
	}

	if width == ast.IntNative {
		return true
	}

	bits := intWidthBits(width)

	if !signed {
		if bits >= 64 {
			return true
		}

		return v < uint64(1)<<bits
	}

	// A signed literal's sign is carried by the surface syntax as a unary
	// minus wrapping the literal, so the unsigned literal value itself
	// only ever needs to fit the non-negative half of the signed range.
	if bits > 64 {
		return true
	}

	if bits == 64 {
		return v < 1<<63
	}

	return v < uint64(1)<<(bits-1)
}

// RankIntegralNarrowing orders integral types by how "narrow" they are for
// the literal-overload tie-break spec.md §8 describes: `f(1)` against
// `f(i32)`/`f(i64)` resolves to `f(i32)` because the literal narrows to
// the smallest signed type it fits. Smaller width ranks lower; at equal
// width, signed ranks lower than unsigned. ok is false for a non-integral
// target, which can't take part in this tie-break at all.
func RankIntegralNarrowing(t ast.Type) (rank int, ok bool) {
	width, signed, ok := Width(t)
	if !ok {
		return 0, false
	}

	rank = intWidthBits(width) * 2
	if !signed {
		rank++
	}

	return rank, true
}

func intWidthBits(w ast.IntWidth) int {
	switch w {
	case ast.Int8:
		return 8
	case ast.Int16:
		return 16
	case ast.Int32:
		return 32
	case ast.Int64:
		return 64
	case ast.Int128:
		return 128
	default:
		return 64
	}
}
