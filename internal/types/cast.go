package types

import "github.com/gallium-lang/gallium/internal/ast"

// IsSafeCast reports whether `operand as Target` is a legal safe cast
// (§4.4): numeric widening/narrowing between any two arithmetic kinds,
// pointer-to-pointer (including reference-to-reference), and the same
// reference-to-slice conversion CanImplicitlyConvert already recognizes
// for `&[T; N]` to `[T]`. Anything else requires the `as!` unsafe bitcast
// instead.
func IsSafeCast(from, to ast.Type) bool {
	if IsError(from) || IsError(to) {
		return true
	}

	if ast.EqualType(from, to) {
		return true
	}

	if IsArithmetic(from) && IsArithmetic(to) {
		return true
	}

	if IsUnsizedInteger(from) && IsIntegral(to) {
		return true
	}

	if IsPointerLike(from) && IsPointerLike(to) {
		return true
	}

	if IsNilPointer(from) {
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
