// Package galliumerr provides a small structured error type for the
// compiler's true Go-error boundary: the handful of spots where a pass
// fails in a way that isn't a user-facing diagnostic (§4.2's Reporter is
// the channel for those) but a genuine implementation-level failure —
// a malformed mangled symbol handed to Demangle, or an internal index
// miscalculation during mangling/demangling.
package galliumerr

import (
	"fmt"
	"runtime"
)

// Category groups related failures the way the teacher's
// internal/errors package groups memory/bounds/overflow failures.
type Category string

const (
	// CategoryMangling covers Demangle rejecting malformed input.
	CategoryMangling Category = "MANGLING"
	// CategoryInternal covers bookkeeping mistakes that should be
	// impossible given a well-formed input — a substitution or arena
	// index computed out of range.
	CategoryInternal Category = "INTERNAL"
	// CategoryContract covers a Program reaching the back-end boundary
	// (§4.6) without satisfying the invariants a code generator is
	// entitled to assume.
	CategoryContract Category = "CONTRACT"
)

// Error is a structured error carrying the category, a human message,
// and the name of the constructor that raised it.
type Error struct {
	Category Category
	Message  string
	Caller   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s (from %s)", e.Category, e.Message, e.Caller)
}

func newError(category Category, message string) *Error {
	caller := "unknown"
	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &Error{Category: category, Message: message, Caller: caller}
}

// MalformedSymbol reports a string Demangle could not parse as a valid
// mangled symbol.
func MalformedSymbol(symbol, reason string) *Error {
	return newError(CategoryMangling, fmt.Sprintf("malformed mangled symbol %q: %s", symbol, reason))
}

// IndexOutOfRange reports an internal substitution/arena index outside
// the bounds it should never leave.
func IndexOutOfRange(index, length int, context string) *Error {
	return newError(CategoryInternal, fmt.Sprintf("index %d out of range for length %d in %s", index, length, context))
}

// Internal reports a miscellaneous invariant violation — an unsupported
// declaration or type kind reaching a pass that assumed it had already
// been rejected or rewritten by an earlier one.
func Internal(reason string) *Error {
	return newError(CategoryInternal, reason)
}

// ContractViolation reports a Program that failed the back-end boundary
// contract (§4.6) — e.g. a call site no earlier pass resolved, or a
// declaration the mangler never stamped.
func ContractViolation(reason string) *Error {
	return newError(CategoryContract, reason)
}
