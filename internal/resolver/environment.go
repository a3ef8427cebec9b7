// Package resolver implements the two-phase name resolver (§4.3): a global
// symbol table pass over every module-scope declaration, followed by a
// lexical-scope pass that qualifies every identifier and user-defined type
// reference against it.
package resolver

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
)

// rootModule is the canonical root module path. The declaration set this
// front-end accepts (§3.5) has no "declare a nested module" construct — an
// already-parsed Program is always a single flat list of declarations, so
// every declaration lives in the root module. Environment and GlobalTable
// keep the general tree-of-modules shape §4.3 describes so a surface
// parser that does add nested modules later only has to populate more
// than the root node; today only the root is ever built.
var rootModule = ast.ModuleID{FromRoot: true}

// OverloadSet is every function-kind declaration sharing one unmangled
// name in one environment (§4.3) — ordinary functions and externs mixed
// together, since externs participate in overload resolution exactly
// like ordinary functions (§4.4).
type OverloadSet struct {
	Name  string
	Decls []ast.CallableDecl
}

// GlobalEntity is a unique, non-overloaded module-scope declaration:
// struct, class, type-alias, or constant (§4.3). Type is the synthesized
// user-defined type this entity stands for when it's referenced from a
// type position — a self-pointing UserDefinedType for struct/class, a
// clone of the aliased type for a type-alias, and nil for a constant
// (constants never name a type).
type GlobalEntity struct {
	Decl ast.Declaration
	Type ast.Type
}

// Environment is one module's global symbol table: its overload sets, its
// unique entities, and the methods declared against each receiver type.
// Environments form a tree mirroring the module hierarchy (§4.3); Children
// is keyed by the immediate path segment.
type Environment struct {
	Path     ast.ModuleID
	Parent   *Environment
	Children map[string]*Environment

	Functions map[string]*OverloadSet
	Entities  map[string]*GlobalEntity
	Methods   map[string][]*ast.MethodDeclaration // keyed by ReceiverType.String()
}

func newEnvironment(path ast.ModuleID, parent *Environment) *Environment {
	return &Environment{
		Path:      path,
		Parent:    parent,
		Children:  make(map[string]*Environment),
		Functions: make(map[string]*OverloadSet),
		Entities:  make(map[string]*GlobalEntity),
		Methods:   make(map[string][]*ast.MethodDeclaration),
	}
}

// GlobalTable is the full Phase 1 result: the environment tree plus a flat
// lookup from canonical module path to environment, for O(1) qualification
// of an explicit `::a::b::name` reference (§4.3).
type GlobalTable struct {
	Root   *Environment
	ByPath map[string]*Environment
}

// NewGlobalTable builds an empty table with just the root environment.
func NewGlobalTable() *GlobalTable {
	root := newEnvironment(rootModule, nil)

	return &GlobalTable{
		Root:   root,
		ByPath: map[string]*Environment{rootModule.CanonicalPrefix(): root},
	}
}

// insertFunction adds decl to name's overload set in env, reporting code 9
// against both declarations when an existing overload already has the
// exact same ordered parameter types.
func insertFunction(env *Environment, name string, decl ast.CallableDecl, paramTypes []ast.Type, reporter diagnostic.Reporter) {
	set, ok := env.Functions[name]
	if !ok {
		set = &OverloadSet{Name: name}
		env.Functions[name] = set
	}

	for _, existing := range set.Decls {
		if ast.EqualTypeSlice(existing.Prototype().ParamTypes(), paramTypes) {
			reporter.Report(diagnostic.New(9, diagnostic.PointOutList(
				diagnostic.PointOutPart(existing.Span(), diagnostic.SeverityError, "first overload declared here"),
				diagnostic.PointOutPart(decl.Span(), diagnostic.SeverityError, "conflicting overload declared here"),
			)))

			return
		}
	}

	set.Decls = append(set.Decls, decl)
}

// insertEntity adds decl (and its synthesized type, if any) as name's
// unique global entity in env, reporting code 6 against both declarations
// on a name collision.
func insertEntity(env *Environment, name string, decl ast.Declaration, synthesized ast.Type, reporter diagnostic.Reporter) {
	if existing, ok := env.Entities[name]; ok {
		reporter.Report(diagnostic.New(6, diagnostic.PointOutList(
			diagnostic.PointOutPart(existing.Decl.Span(), diagnostic.SeverityError, "first declared here"),
			diagnostic.PointOutPart(decl.Span(), diagnostic.SeverityError, "redeclared here"),
		)))

		return
	}

	env.Entities[name] = &GlobalEntity{Decl: decl, Type: synthesized}
}

// CollectGlobals runs Phase 1 (§4.3) over prog, walking every module-scope
// declaration into a fresh GlobalTable. It replaces any ClassDeclaration it
// finds with an error declaration (Open Question decision 1, DESIGN.md):
// classes are an intentionally unimplemented placeholder, and every pass
// that would otherwise act on one reports code 99 instead of guessing at
// semantics.
func CollectGlobals(prog *ast.Program, reporter diagnostic.Reporter) *GlobalTable {
	table := NewGlobalTable()
	env := table.Root

	for i, decl := range prog.Declarations {
		prog.Declarations[i] = collectDeclaration(env, decl, reporter)
	}

	return table
}

func collectDeclaration(env *Environment, decl ast.Declaration, reporter diagnostic.Reporter) ast.Declaration {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		insertFunction(env, d.Proto.Name, d, d.Proto.ParamTypes(), reporter)
	case *ast.ExternalFnDeclaration:
		insertExternalFn(env, d, reporter)
	case *ast.ExternalBlockDeclaration:
		for _, fn := range d.Decls {
			insertExternalFn(env, fn, reporter)
		}
	case *ast.MethodDeclaration:
		key := d.ReceiverType.String()
		env.Methods[key] = append(env.Methods[key], d)
	case *ast.StructDeclaration:
		synth := &ast.UserDefinedType{
			TypeBase: ast.TypeBase{NodeSpan: d.Span()},
			FQID:     ast.NewFullyQualifiedID(env.Path, d.Name),
			Decl:     d,
		}
		d.SynthesizedType = synth
		insertEntity(env, d.Name, d, synth, reporter)
	case *ast.ClassDeclaration:
		reporter.Report(diagnostic.New(99, diagnostic.PointOut(d.Span(), diagnostic.SeverityError, "class declarations are not implemented by any pass")))
		return &ast.ErrorDeclaration{DeclBase: ast.DeclBase{NodeSpan: d.Span()}}
	case *ast.TypeAliasDeclaration:
		insertEntity(env, d.Name, d, ast.CloneType(d.Aliased), reporter)
	case *ast.ConstantDeclaration:
		insertEntity(env, d.Name, d, nil, reporter)
	case *ast.ImportDeclaration, *ast.ImportFromDeclaration, *ast.ErrorDeclaration:
		// Imports bring no new entity into this module's own environment;
		// there is no multi-module Program construct in this front-end for
		// them to import from (see rootModule above), so they're otherwise
		// inert at this phase.
	}

	return decl
}

func insertExternalFn(env *Environment, d *ast.ExternalFnDeclaration, reporter diagnostic.Reporter) {
	insertFunction(env, d.Proto.Name, d, d.Proto.ParamTypes(), reporter)
}
