// Package backend defines the boundary (§4.6) between a finished,
// type-checked, mangled Program and the (absent, out of scope for this
// repository) machine-code generator that would consume it. It ships no
// emitter: only the narrow Target interface such a generator would
// implement, and Verify, which confirms a Program actually upholds every
// invariant a generator is entitled to assume before anything is handed
// to it.
package backend

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/galliumerr"
)

// Target is the narrow interface a real code generator would implement
// to consume a verified Program one top-level declaration at a time.
// Kept deliberately small — three methods, one per declaration kind
// Emit ever dispatches — so tests exercise it with a hand-written fake
// rather than a mocking library (§4.6; no generator ships here, so
// Target's only caller in this repository is Emit itself and its
// tests).
type Target interface {
	EmitFunction(fn *ast.FunctionDeclaration) error
	EmitConstant(c *ast.ConstantDeclaration) error
	EmitExternal(fn *ast.ExternalFnDeclaration) error
}

// Emit confirms prog satisfies the back-end boundary contract and, if
// so, drives target over its top-level declarations in order. It
// refuses to call target at all once a single violation is found,
// returning a *galliumerr.Error describing the first one instead — a
// generator should never have to defend against a malformed Program.
func Emit(prog *ast.Program, target Target) error {
	if violations := Verify(prog); len(violations) > 0 {
		return galliumerr.ContractViolation(violations[0].String())
	}

	for _, decl := range prog.Declarations {
		if err := emitDecl(decl, target); err != nil {
			return err
		}
	}

	return nil
}

func emitDecl(decl ast.Declaration, target Target) error {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		return target.EmitFunction(d)
	case *ast.ConstantDeclaration:
		return target.EmitConstant(d)
	case *ast.ExternalFnDeclaration:
		return target.EmitExternal(d)
	case *ast.ExternalBlockDeclaration:
		for _, fn := range d.Decls {
			if err := target.EmitExternal(fn); err != nil {
				return err
			}
		}
	}

	return nil
}
