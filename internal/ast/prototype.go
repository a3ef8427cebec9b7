package ast

import (
	"fmt"
	"strings"

	"github.com/gallium-lang/gallium/internal/position"
)

// AttributeKind is the closed set of function attributes §3.6 allows.
type AttributeKind int

const (
	AttrPure AttributeKind = iota
	AttrThrows
	AttrAlwaysInline
	AttrNoInline
	AttrHintInline
	AttrMalloc
	AttrHot
	AttrCold
	AttrArch
	AttrNoreturn
	AttrStdlib
	AttrVarargs
)

func (k AttributeKind) String() string {
	switch k {
	case AttrPure:
		return "pure"
	case AttrThrows:
		return "throws"
	case AttrAlwaysInline:
		return "always_inline"
	case AttrNoInline:
		return "no_inline"
	case AttrHintInline:
		return "hint_inline"
	case AttrMalloc:
		return "malloc"
	case AttrHot:
		return "hot"
	case AttrCold:
		return "cold"
	case AttrArch:
		return "arch"
	case AttrNoreturn:
		return "noreturn"
	case AttrStdlib:
		return "stdlib"
	case AttrVarargs:
		return "varargs"
	default:
		return "?"
	}
}

// Attribute is the fifth polymorphic AST sort (a "prototype-part"): a
// single function attribute, e.g. `hot` or `arch("x86_64")`.
type Attribute struct {
	NodeSpan position.Span
	Kind     AttributeKind
	Triple   string // only meaningful when Kind == AttrArch.
}

func (a *Attribute) Span() position.Span { return a.NodeSpan }

func (a *Attribute) String() string {
	if a.Kind == AttrArch {
		return fmt.Sprintf("arch(%q)", a.Triple)
	}

	return a.Kind.String()
}

func (a *Attribute) Accept(v AttributeVisitor) { v.VisitAttribute(a) }

// SelfKind is the closed set of receiver forms a method prototype may use.
type SelfKind int

const (
	SelfNone SelfKind = iota
	SelfRef
	SelfRefMut
	SelfValue
	SelfValueMut
)

func (k SelfKind) String() string {
	switch k {
	case SelfRef:
		return "&self"
	case SelfRefMut:
		return "&mut self"
	case SelfValue:
		return "self"
	case SelfValueMut:
		return "mut self"
	default:
		return ""
	}
}

// Parameter is a single ordered argument of a function prototype.
type Parameter struct {
	Span position.Span
	Name string
	Type Type
}

func (p *Parameter) String() string { return p.Name + ": " + p.Type.String() }

// Prototype is a function's name, optional receiver, ordered parameters,
// attributes, and return type (§3.6). It is shared by FunctionDeclaration,
// MethodDeclaration, and ExternalFnDeclaration.
type Prototype struct {
	Span       position.Span
	Name       string
	Self       SelfKind
	Params     []*Parameter
	Attributes []*Attribute
	ReturnType Type // nil means void.
}

// ParamTypes returns the ordered parameter types, used by overload
// conflict detection (§4.3) and overload resolution (§4.4).
func (p *Prototype) ParamTypes() []Type {
	types := make([]Type, len(p.Params))
	for i, param := range p.Params {
		types[i] = param.Type
	}

	return types
}

// HasAttribute reports whether the prototype carries the given attribute.
func (p *Prototype) HasAttribute(kind AttributeKind) bool {
	for _, a := range p.Attributes {
		if a.Kind == kind {
			return true
		}
	}

	return false
}

// Throws reports whether calling this prototype may throw, per the
// `throws` attribute — used by the mangler's `throws` grammar production.
func (p *Prototype) Throws() bool { return p.HasAttribute(AttrThrows) }

func (p *Prototype) String() string {
	params := make([]string, len(p.Params))
	for i, param := range p.Params {
		params[i] = param.String()
	}

	self := ""
	if p.Self != SelfNone {
		self = p.Self.String()
		if len(params) > 0 {
			self += ", "
		}
	}

	ret := ""
	if p.ReturnType != nil {
		ret = " -> " + p.ReturnType.String()
	}

	throws := ""
	if p.Throws() {
		throws = " throws"
	}

	return fmt.Sprintf("fn %s(%s%s)%s%s", p.Name, self, strings.Join(params, ", "), throws, ret)
}
