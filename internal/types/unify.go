package types

import "github.com/gallium-lang/gallium/internal/ast"

// Unify folds a sequence of expression types down to one common type, the
// way array-literal elements (§3.3) and if/if-else branches (§4.4) must
// agree. The first non-error type seen becomes the accumulator; every
// later type must compare structurally equal to it (the error type
// short-circuits in both directions, so one bad branch doesn't also
// report every other branch as mismatched). Returns the common type and
// false at the first disagreement — the caller attaches its own
// diagnostic code (16 for if-expressions, 34 for array literals) rather
// than this package choosing one.
func Unify(types []ast.Type) (ast.Type, bool) {
	var common ast.Type

	for _, t := range types {
		if IsError(t) {
			continue
		}

		if common == nil {
			common = t
			continue
		}

		if !ast.EqualType(common, t) {
			return common, false
		}
	}

	if common == nil && len(types) > 0 {
		common = types[0]
	}

	return common, true
}
