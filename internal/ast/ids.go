// Package ast defines the abstract syntax tree for Gallium: the typed tree
// of declarations, statements, expressions, and types that the resolver and
// type checker pass through a handful of resolution/annotation phases on
// their way to a back-end code generator.
//
// A Program is a tree, not a DAG: declarations own their bodies, statements
// own their expressions, expressions own their subexpressions, and types
// own their subtypes. Resolution back-pointers (a user-defined type's
// pointer to the struct it names, a static-global expression's pointer to
// the constant it reads) are non-owning — the Program they point into
// outlives every reference to it.
package ast

import "strings"

// ModuleID names a module path, e.g. `::core::mem` or `a::b`.
type ModuleID struct {
	Parts    []string
	FromRoot bool
}

// String renders the canonical `::a::b::c` (FromRoot) or `a::b::c` form.
func (m ModuleID) String() string {
	prefix := ""
	if m.FromRoot {
		prefix = "::"
	}

	return prefix + strings.Join(m.Parts, "::")
}

// CanonicalPrefix renders the module path the way FullyQualifiedID stores
// it: always rooted, always with a trailing "::" (including for the root
// module itself, where it is just "::").
func (m ModuleID) CanonicalPrefix() string {
	if len(m.Parts) == 0 {
		return "::"
	}

	return "::" + strings.Join(m.Parts, "::") + "::"
}

// Equal compares two module IDs structurally.
func (m ModuleID) Equal(other ModuleID) bool {
	if m.FromRoot != other.FromRoot || len(m.Parts) != len(other.Parts) {
		return false
	}

	for i := range m.Parts {
		if m.Parts[i] != other.Parts[i] {
			return false
		}
	}

	return true
}

// UnqualifiedID is produced by the parser before the module containing a
// reference has been resolved: an optional module-path prefix plus a
// trailing segment name.
type UnqualifiedID struct {
	Prefix *ModuleID
	Name   string
}

// String renders `prefix::name` (or bare `name` with no prefix).
func (u UnqualifiedID) String() string {
	if u.Prefix == nil {
		return u.Name
	}

	return u.Prefix.String() + "::" + u.Name
}

// FullyQualifiedID is a resolved `(module_string, name)` pair uniquely
// identifying a module-scope entity. ModuleString is always the canonical
// `::a::b::` form (CanonicalPrefix), interned so the string and structural
// views stay cheap to compare — in Go that interning is simply string
// equality over Go's own interned string backing, so no separate interning
// table is needed the way the C++ original requires one.
type FullyQualifiedID struct {
	ModuleString string
	Name         string
}

// NewFullyQualifiedID builds an FQ id from a module path and a name.
func NewFullyQualifiedID(module ModuleID, name string) FullyQualifiedID {
	return FullyQualifiedID{ModuleString: module.CanonicalPrefix(), Name: name}
}

// String renders `::a::b::name`.
func (f FullyQualifiedID) String() string {
	return f.ModuleString + f.Name
}

// Equal compares two FQ ids structurally.
func (f FullyQualifiedID) Equal(other FullyQualifiedID) bool {
	return f.ModuleString == other.ModuleString && f.Name == other.Name
}
