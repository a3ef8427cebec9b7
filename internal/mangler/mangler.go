// Package mangler implements §4.5's deterministic, injective encoding
// from fully qualified declarations to linker symbols, and its inverse.
// Grounded on original_source/compiler/src/core/mangler.cc's Mangler
// visitor (the encode side) and its Demangler (the decode side,
// demangle.go), adapted from a const-visitor-returning-std::string shape
// to a bytes.Buffer-accumulating one — the same restructuring the
// google-gapid ia64 mangler in the retrieval pack uses for the same
// reason: a substitution rewrite needs to truncate and rewrite a
// already-written span, which strings.Builder cannot do but
// bytes.Buffer's Truncate can.
package mangler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/galliumerr"
)

// RootModule is the canonical root module path. §3.5's declaration set
// has no nested-module construct, so every FQID this phase builds today
// is qualified against the root — mirroring internal/resolver's own
// rootModule and its comment explaining why: a surface parser that adds
// nested modules later only has to populate more than the root node.
var RootModule = ast.ModuleID{FromRoot: true}

var voidType ast.Type = &ast.VoidType{}

// mainSymbol is the encoding spec.md's "main exception" fires against,
// before the fixed-name rewrite: `fn ::main() -> void`.
const mainSymbol = "_GF4mainNEv"

// mangledMain is what mainSymbol always maps to, so the linker never
// sees a user symbol named `main` clashing with the runtime's own entry
// point.
const mangledMain = "__gallium_user_main"

// Mangle computes decl's linker symbol, given the fully qualified id of
// the module it lives in. External declarations are never mangled
// (§4.5): their prototype name is their linker symbol directly, for FFI
// visibility.
func Mangle(fqid ast.FullyQualifiedID, decl ast.Declaration) (string, error) {
	switch d := decl.(type) {
	case *ast.ExternalFnDeclaration:
		return d.Proto.Name, nil
	case *ast.FunctionDeclaration:
		return mangleFunction(fqid, d.Proto)
	case *ast.ConstantDeclaration:
		return mangleConstant(fqid, d)
	default:
		return "", galliumerr.Internal(fmt.Sprintf("cannot mangle declaration kind %T", decl))
	}
}

func mangleFunction(fqid ast.FullyQualifiedID, proto *ast.Prototype) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("_G")
	writeModulePrefix(&buf, fqid)
	fmt.Fprintf(&buf, "F%d%s", len(proto.Name), proto.Name)

	if proto.Throws() {
		buf.WriteByte('T')
	} else {
		buf.WriteByte('N')
	}

	tm := newTypeMangler(&buf)
	for _, p := range proto.ParamTypes() {
		if err := tm.mangle(p); err != nil {
			return "", err
		}
	}
	buf.WriteByte('E')

	if err := tm.mangle(returnTypeOf(proto.ReturnType)); err != nil {
		return "", err
	}

	if buf.String() == mainSymbol {
		return mangledMain, nil
	}

	return buf.String(), nil
}

func mangleConstant(fqid ast.FullyQualifiedID, decl *ast.ConstantDeclaration) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("_G")
	writeModulePrefix(&buf, fqid)
	fmt.Fprintf(&buf, "C%d%s", len(decl.Name), decl.Name)

	tm := newTypeMangler(&buf)
	if err := tm.mangle(decl.TypeHint); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func returnTypeOf(t ast.Type) ast.Type {
	if t == nil {
		return voidType
	}

	return t
}

// writeModulePrefix writes the segment_len/segment pairs for fqid's
// module path. The root module's canonical prefix is the bare "::",
// which splits into no non-empty segments — exactly the empty
// module_prefix the grammar allows.
func writeModulePrefix(buf *bytes.Buffer, fqid ast.FullyQualifiedID) {
	for _, part := range strings.Split(fqid.ModuleString, "::") {
		if part == "" {
			continue
		}

		fmt.Fprintf(buf, "%d%s", len(part), part)
	}
}

// MangleProgram stamps every mangleable top-level declaration in prog
// with its FQID and symbol, mirroring mangler.cc's mangle_program: free
// functions, constants, and external functions (including those nested
// in an extern block) are mangled; structs, classes, type aliases,
// imports, and methods are left alone — the original's own
// mangle_program skips exactly this set, method mangling being an
// unimplemented case there too (§9 defers it the same way).
func MangleProgram(prog *ast.Program) error {
	for _, decl := range prog.Declarations {
		if err := mangleTopLevel(decl); err != nil {
			return err
		}
	}

	return nil
}

func mangleTopLevel(decl ast.Declaration) error {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		return stamp(&d.DeclBase, d.Proto.Name, d)
	case *ast.ConstantDeclaration:
		return stamp(&d.DeclBase, d.Name, d)
	case *ast.ExternalFnDeclaration:
		return stamp(&d.DeclBase, d.Proto.Name, d)
	case *ast.ExternalBlockDeclaration:
		for _, fn := range d.Decls {
			if err := stamp(&fn.DeclBase, fn.Proto.Name, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

func stamp(base *ast.DeclBase, name string, decl ast.Declaration) error {
	fqid := ast.NewFullyQualifiedID(RootModule, name)

	symbol, err := Mangle(fqid, decl)
	if err != nil {
		return err
	}

	base.Mangled = &ast.MangleInfo{FQID: fqid, Symbol: symbol}

	return nil
}
