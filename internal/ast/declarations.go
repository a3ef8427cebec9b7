package ast

import (
	"fmt"
	"strings"
)

// ErrorDeclaration is the declaration sort's error variant.
type ErrorDeclaration struct{ DeclBase }

func (*ErrorDeclaration) Kind() NodeKind                   { return KindErrorDeclaration }
func (*ErrorDeclaration) String() string                   { return "<error-decl>" }
func (d *ErrorDeclaration) AcceptDeclaration(v DeclarationVisitor) { v.VisitErrorDeclaration(d) }

// ImportDeclaration is `import a::b::c;`.
type ImportDeclaration struct {
	DeclBase
	Module ModuleID
}

func (*ImportDeclaration) Kind() NodeKind   { return KindImportDeclaration }
func (d *ImportDeclaration) String() string { return "import " + d.Module.String() }
func (d *ImportDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitImportDeclaration(d)
}

// ImportFromDeclaration is `import {a, b} from c::d;`.
type ImportFromDeclaration struct {
	DeclBase
	Module ModuleID
	Names  []string
}

func (*ImportFromDeclaration) Kind() NodeKind { return KindImportFromDeclaration }
func (d *ImportFromDeclaration) String() string {
	return fmt.Sprintf("import {%s} from %s", strings.Join(d.Names, ", "), d.Module)
}
func (d *ImportFromDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitImportFromDeclaration(d)
}

// FunctionDeclaration is a free function: prototype plus body. The
// parser always produces a body even for declarations that will turn out
// to be the unmangled `main` (§4.4); externs use ExternalFnDeclaration
// instead, which has no body.
type FunctionDeclaration struct {
	DeclBase
	Proto *Prototype
	Body  *BlockExpr
}

func (*FunctionDeclaration) Kind() NodeKind { return KindFunctionDeclaration }
func (d *FunctionDeclaration) String() string {
	return d.Proto.String() + " " + d.Body.String()
}
func (d *FunctionDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitFunctionDeclaration(d)
}

// MethodDeclaration is a function attached to a receiver type via
// Proto.Self.
type MethodDeclaration struct {
	DeclBase
	ReceiverType Type
	Proto        *Prototype
	Body         *BlockExpr
}

func (*MethodDeclaration) Kind() NodeKind { return KindMethodDeclaration }
func (d *MethodDeclaration) String() string {
	return fmt.Sprintf("impl %s { %s %s }", d.ReceiverType, d.Proto, d.Body)
}
func (d *MethodDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitMethodDeclaration(d)
}

// FieldDef is one field of a struct declaration.
type FieldDef struct {
	Name string
	Type Type
}

// StructDeclaration declares a product type. The resolver synthesizes a
// UserDefinedType pointing back at the declaration and attaches it via
// SynthesizedType (§4.3).
type StructDeclaration struct {
	DeclBase
	Name            string
	Fields          []FieldDef
	SynthesizedType *UserDefinedType
}

func (*StructDeclaration) Kind() NodeKind { return KindStructDeclaration }
func (d *StructDeclaration) String() string {
	parts := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
	}

	return fmt.Sprintf("struct %s { %s }", d.Name, strings.Join(parts, ", "))
}
func (d *StructDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitStructDeclaration(d)
}

// ClassDeclaration is an intentionally unimplemented placeholder (open
// question in spec.md §9: the original's ClassDeclaration asserts on
// clone/equality and classes are not otherwise specified here). Any pass
// that encounters one reports diagnostic code 99
// ("unimplemented: class declarations") and substitutes an error node,
// rather than guessing field/method semantics.
type ClassDeclaration struct {
	DeclBase
	Name string
}

func (*ClassDeclaration) Kind() NodeKind               { return KindClassDeclaration }
func (d *ClassDeclaration) String() string             { return "class " + d.Name + " { /* unimplemented */ }" }
func (d *ClassDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitClassDeclaration(d)
}

// TypeAliasDeclaration is `type Name = Aliased;`.
type TypeAliasDeclaration struct {
	DeclBase
	Name    string
	Aliased Type
}

func (*TypeAliasDeclaration) Kind() NodeKind { return KindTypeAliasDeclaration }
func (d *TypeAliasDeclaration) String() string {
	return fmt.Sprintf("type %s = %s", d.Name, d.Aliased)
}
func (d *TypeAliasDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitTypeAliasDeclaration(d)
}

// ExternalFnDeclaration declares an FFI function. It is never mangled —
// Proto.Name is its linker symbol directly, for FFI visibility (§4.5).
type ExternalFnDeclaration struct {
	DeclBase
	Proto *Prototype
}

func (*ExternalFnDeclaration) Kind() NodeKind { return KindExternalFnDeclaration }
func (d *ExternalFnDeclaration) String() string {
	return "extern fn " + d.Proto.String()
}
func (d *ExternalFnDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitExternalFnDeclaration(d)
}

// ExternalBlockDeclaration groups a set of external-fn declarations under
// one ABI/linkage block, e.g. `extern "C" { ... }`.
type ExternalBlockDeclaration struct {
	DeclBase
	ABI   string
	Decls []*ExternalFnDeclaration
}

func (*ExternalBlockDeclaration) Kind() NodeKind { return KindExternalBlockDeclaration }
func (d *ExternalBlockDeclaration) String() string {
	parts := make([]string, len(d.Decls))
	for i, fn := range d.Decls {
		parts[i] = fn.String()
	}

	return fmt.Sprintf("extern %q { %s }", d.ABI, strings.Join(parts, "; "))
}
func (d *ExternalBlockDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitExternalBlockDeclaration(d)
}

// ConstantDeclaration is `const Name: Type = Value;`.
type ConstantDeclaration struct {
	DeclBase
	Name     string
	TypeHint Type
	Value    Expression
}

func (*ConstantDeclaration) Kind() NodeKind { return KindConstantDeclaration }
func (d *ConstantDeclaration) String() string {
	return fmt.Sprintf("const %s: %s = %s", d.Name, d.TypeHint, d.Value)
}
func (d *ConstantDeclaration) AcceptDeclaration(v DeclarationVisitor) {
	v.VisitConstantDeclaration(d)
}
