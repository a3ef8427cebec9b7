// Package pipeline wires the three core passes — name resolution (§4.3),
// type checking (§4.4), and symbol mangling (§4.5) — into the single
// driver a caller actually runs over a parsed Program, checking
// reporter.HadError() between phases (§2, §5) so a Program that failed
// an earlier phase never reaches one that assumes it succeeded.
package pipeline

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/backend"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/galliumlog"
	"github.com/gallium-lang/gallium/internal/mangler"
	"github.com/gallium-lang/gallium/internal/resolver"
	"github.com/gallium-lang/gallium/internal/typechecker"
)

// Config carries the handful of toggles the core needs from a caller
// that isn't always compiling a standalone executable from scratch
// source: a unit test feeding the checker a bare snippet has no `main`,
// and a library embedding this pipeline may want the resolver to reject
// more shadowing than the language itself requires.
type Config struct {
	// StrictShadowing also rejects a binding that shadows an enclosing
	// scope's binding of the same name (code 60). Off by default — the
	// language itself only forbids same-scope redeclaration (code 8).
	StrictShadowing bool

	// EnforceMainSignature runs the `fn main() -> i32` check (code 52).
	// Off lets the checker accept a Program with no `main` at all, for
	// library-style snippets under test.
	EnforceMainSignature bool

	// TargetTriple, when non-empty, is checked against every `arch(...)`
	// attribute (code 61). Empty disables the check entirely.
	TargetTriple string
}

// DefaultConfig is what a standalone-executable caller wants: same-scope
// shadow checking only, `main`'s signature enforced, no target triple
// configured (so `arch(...)` attributes are accepted unconditionally).
func DefaultConfig() Config {
	return Config{EnforceMainSignature: true}
}

// Stage identifies which phase Run reached before stopping.
type Stage int

const (
	StageBuiltins Stage = iota
	StageGlobals
	StageResolve
	StageCheck
	StageMangle
	StageContract
)

func (s Stage) String() string {
	switch s {
	case StageBuiltins:
		return "builtins"
	case StageGlobals:
		return "collect-globals"
	case StageResolve:
		return "resolve"
	case StageCheck:
		return "check"
	case StageMangle:
		return "mangle"
	case StageContract:
		return "contract"
	default:
		return "?"
	}
}

// Result is what Run leaves behind: which stage it reached, whether the
// Program reported a diagnostic error along the way, and — only once
// every prior stage succeeded — the back-end boundary-contract
// violations (§4.6) found in the finished Program, if any.
type Result struct {
	Reached    Stage
	HadError   bool
	Violations []backend.Violation
}

// Run sequences builtin registration, the two-phase resolver, the type
// checker, and the mangler over prog, in place, reporting every expected
// failure (unresolved names, type mismatches) through reporter. It
// checks reporter.HadError() after each diagnostic-producing phase and
// stops before running the next one: a Program the resolver already gave
// up on has nothing for the checker to safely assume, and likewise into
// the mangler and the final boundary check (§4.6), which both run only
// once the Program reports zero errors.
//
// RegisterBuiltins runs first and unconditionally — it only prepends
// declarations with synthesized, nonexistent spans and cannot itself
// fail or report (§4.4's builtins paragraph).
//
// The mangler's own failures are not diagnostics: per §A.2, a malformed
// input to a truly internal invariant (an unmangleable declaration shape
// slipping past the checker) is a *galliumerr.Error returned directly,
// not routed through reporter.
func Run(prog *ast.Program, reporter diagnostic.Reporter, cfg Config) (Result, error) {
	galliumlog.Debugf("pipeline: %d top-level declaration(s)", len(prog.Declarations))

	typechecker.RegisterBuiltins(prog)

	table := resolver.CollectGlobals(prog, reporter)
	if reporter.HadError() {
		galliumlog.Warnf("pipeline: stopped at %s", StageGlobals)

		return Result{Reached: StageGlobals, HadError: true}, nil
	}

	resolver.NewResolverWithConfig(table, reporter, cfg.StrictShadowing).Resolve(prog)
	if reporter.HadError() {
		galliumlog.Warnf("pipeline: stopped at %s", StageResolve)

		return Result{Reached: StageResolve, HadError: true}, nil
	}

	typechecker.NewCheckerWithConfig(table, reporter, cfg.EnforceMainSignature, cfg.TargetTriple).Check(prog)
	if reporter.HadError() {
		galliumlog.Warnf("pipeline: stopped at %s", StageCheck)

		return Result{Reached: StageCheck, HadError: true}, nil
	}

	if err := mangler.MangleProgram(prog); err != nil {
		galliumlog.Errorf("pipeline: mangle failed: %v", err)

		return Result{Reached: StageMangle}, err
	}

	violations := backend.Verify(prog)
	if len(violations) != 0 {
		galliumlog.Warnf("pipeline: %d boundary-contract violation(s)", len(violations))
	} else {
		galliumlog.Infof("pipeline: reached %s cleanly", StageContract)
	}

	return Result{Reached: StageContract, Violations: violations}, nil
}
