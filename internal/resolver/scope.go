package resolver

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
)

// LocalScope is one lexical block's bindings: function parameters, a
// receiver's implicit self, let/mut statements, and a for-loop's variable
// all declare into whichever LocalScope is innermost when they run.
type LocalScope struct {
	bindings map[string]*ast.LocalBinding
}

func newLocalScope() *LocalScope {
	return &LocalScope{bindings: make(map[string]*ast.LocalBinding)}
}

// ScopeStack is the resolver's innermost-first lexical lookup chain (§4.3).
// Every function/method body, block, and for-loop body pushes its own
// scope and pops it on the way back out.
type ScopeStack struct {
	scopes []*LocalScope
	strict bool
}

// NewScopeStack returns an empty stack that only rejects same-scope
// redeclaration — shadowing an outer scope's binding is allowed.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{}
}

// NewScopeStackStrict returns an empty stack that additionally rejects a
// binding that shadows any enclosing scope's binding of the same name,
// for callers running with Config.StrictShadowing set.
func NewScopeStackStrict() *ScopeStack {
	return &ScopeStack{strict: true}
}

// Push opens a fresh innermost scope.
func (s *ScopeStack) Push() {
	s.scopes = append(s.scopes, newLocalScope())
}

// Pop closes the innermost scope.
func (s *ScopeStack) Pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Declare adds binding to the innermost scope, reporting code 8 against
// both declarations when that scope already has a binding of the same
// name (shadowing an outer scope's binding is allowed; shadowing within
// the same scope is not).
func (s *ScopeStack) Declare(binding *ast.LocalBinding, reporter diagnostic.Reporter) {
	top := s.scopes[len(s.scopes)-1]

	if existing, ok := top.bindings[binding.Name]; ok {
		reporter.Report(diagnostic.New(8, diagnostic.PointOutList(
			diagnostic.PointOutPart(existing.DeclSpan, diagnostic.SeverityError, "first declared here"),
			diagnostic.PointOutPart(binding.DeclSpan, diagnostic.SeverityError, "redeclared here"),
		)))

		return
	}

	if s.strict {
		if existing, ok := s.Lookup(binding.Name); ok {
			reporter.Report(diagnostic.New(60, diagnostic.PointOutList(
				diagnostic.PointOutPart(existing.DeclSpan, diagnostic.SeverityError, "enclosing declaration here"),
				diagnostic.PointOutPart(binding.DeclSpan, diagnostic.SeverityError, "shadows it here"),
			)))
		}
	}

	top.bindings[binding.Name] = binding
}

// Lookup searches from the innermost scope outward and returns the first
// binding with the given name.
func (s *ScopeStack) Lookup(name string) (*ast.LocalBinding, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if b, ok := s.scopes[i].bindings[name]; ok {
			return b, true
		}
	}

	return nil, false
}
