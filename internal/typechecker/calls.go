package typechecker

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/types"
)

// rootFQID builds a bare name's fully-qualified id in the root module —
// every StaticCallExpr/StaticMethodCallExpr this checker produces lives
// in the implicit root module (see internal/resolver's rootModule), so
// there is no need to import that unexported value just to call
// CanonicalPrefix on it.
func rootFQID(name string) ast.FullyQualifiedID {
	return ast.FullyQualifiedID{ModuleString: "::", Name: name}
}

func (c *Checker) checkCall(ex *ast.CallExpr) ast.Expression {
	if overload, ok := ex.Callee.(*ast.OverloadRefExpr); ok {
		return c.checkOverloadCall(ex, overload)
	}

	ex.Callee = c.checkExpr(ex.Callee)

	fp, ok := ex.Callee.ResultType().(*ast.FunctionPointerType)
	if !ok {
		code := diagnostic.Code(30)

		switch ex.Callee.(type) {
		case *ast.LocalIdentifierExpr, *ast.StaticGlobalExpr:
			code = 29
		}

		if !types.IsError(ex.Callee.ResultType()) {
			c.reporter.Report(diagnostic.New(code, diagnostic.PointOut(ex.Callee.Span(), diagnostic.SeverityError, "cannot call this expression")))
		}

		ex.SetResultType(errorOf(ex))

		return ex
	}

	if len(ex.Args) > len(fp.Params) {
		c.reporter.Report(diagnostic.New(24, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "too many arguments")))
	} else if len(ex.Args) < len(fp.Params) {
		c.reporter.Report(diagnostic.New(25, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "too few arguments")))
	}

	n := len(ex.Args)
	if len(fp.Params) < n {
		n = len(fp.Params)
	}

	for i := 0; i < n; i++ {
		argType := c.checkExprType(&ex.Args[i])

		if lit, ok := ex.Args[i].(*ast.IntegerLiteralExpr); ok {
			c.checkIntegerLiteralRange(lit, fp.Params[i])
		}

		if !types.CanImplicitlyConvert(argType, fp.Params[i]) {
			c.reporter.Report(diagnostic.New(23, diagnostic.PointOut(ex.Args[i].Span(), diagnostic.SeverityError, "argument type does not match the parameter type")))
		} else {
			ex.Args[i] = c.wrapImplicit(ex.Args[i], argType, fp.Params[i])
		}
	}

	ret := fp.Return
	if ret == nil {
		ret = voidOf(ex)
	}

	ex.SetResultType(ret)

	return ex
}

// checkOverloadCall implements §4.4's call-checking rule: find the unique
// candidate in overload.Candidates whose parameter types equal the
// argument types after implicit conversion. An integer-literal argument
// first narrows the candidate set to the overloads its value actually
// fits (spec.md §8: `f(1_000_000_000_000)` only fits `f(i64)`, not
// `f(i32)`), then — if more than one candidate still fits — breaks the
// tie by picking the narrowest integral parameter type, the same way
// `f(1)` against `f(i32)`/`f(i64)` resolves to `f(i32)` rather than
// reporting code 28.
func (c *Checker) checkOverloadCall(ex *ast.CallExpr, overload *ast.OverloadRefExpr) ast.Expression {
	argTypes := make([]ast.Type, len(ex.Args))

	for i := range ex.Args {
		argTypes[i] = c.checkExprType(&ex.Args[i])
	}

	matches := matchOverloads(ex.Args, argTypes, overload.Candidates)
	matches = narrowOverloadMatches(ex.Args, matches)

	if len(matches) == 0 {
		c.reporter.Report(diagnostic.New(51, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "no overload of `"+overload.FQID.Name+"` matches this call")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	if len(matches) > 1 {
		c.reporter.Report(diagnostic.New(28, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "call to `"+overload.FQID.Name+"` is ambiguous between "+diagnostic.Plural(len(matches), "overloads"))))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	chosen := matches[0]
	proto := chosen.Prototype()

	for i, p := range proto.Params {
		if lit, ok := ex.Args[i].(*ast.IntegerLiteralExpr); ok {
			c.checkIntegerLiteralRange(lit, p.Type)
		}

		ex.Args[i] = c.wrapImplicit(ex.Args[i], argTypes[i], p.Type)
	}

	ret := proto.ReturnType
	if ret == nil {
		ret = voidOf(ex)
	}

	result := &ast.StaticCallExpr{
		ExprBase: ast.ExprBase{NodeSpan: ex.Span()},
		FQID:     overload.FQID,
		Overload: chosen,
		Args:     ex.Args,
	}
	result.SetResultType(ret)

	return result
}

// checkMethodCall resolves a method call against the receiver's
// underlying type's method set (§4.4). Method lookup key is the
// resolver's Environment.Methods indexing: the deref'd receiver type's
// String() form.
func (c *Checker) checkMethodCall(ex *ast.MethodCallExpr) ast.Expression {
	receiverType := c.checkExprType(&ex.Receiver)

	deref, _ := types.Deref(receiverType)
	if deref == nil {
		deref = receiverType
	}

	candidates := c.table.Root.Methods[deref.String()]

	var named []*ast.MethodDeclaration

	for _, m := range candidates {
		if m.Proto.Name == ex.Method {
			named = append(named, m)
		}
	}

	if len(named) == 0 {
		c.reporter.Report(diagnostic.New(62, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "no method `"+ex.Method+"` on this type")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	argTypes := make([]ast.Type, len(ex.Args))
	for i := range ex.Args {
		argTypes[i] = c.checkExprType(&ex.Args[i])
	}

	matches := matchMethodOverloads(ex.Args, argTypes, named)
	matches = narrowMethodOverloadMatches(ex.Args, matches)

	if len(matches) == 0 {
		c.reporter.Report(diagnostic.New(51, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "no overload of method `"+ex.Method+"` matches this call")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	if len(matches) > 1 {
		c.reporter.Report(diagnostic.New(28, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "call to method `"+ex.Method+"` is ambiguous")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	chosen := matches[0]

	for i, p := range chosen.Proto.Params {
		if lit, ok := ex.Args[i].(*ast.IntegerLiteralExpr); ok {
			c.checkIntegerLiteralRange(lit, p.Type)
		}

		ex.Args[i] = c.wrapImplicit(ex.Args[i], argTypes[i], p.Type)
	}

	ret := chosen.Proto.ReturnType
	if ret == nil {
		ret = voidOf(ex)
	}

	result := &ast.StaticMethodCallExpr{
		ExprBase: ast.ExprBase{NodeSpan: ex.Span()},
		Receiver: ex.Receiver,
		FQID:     rootFQID(ex.Method),
		Method:   chosen,
		Args:     ex.Args,
	}
	result.SetResultType(ret)

	return result
}

// matchOverloads filters candidates to those whose arity and parameter
// types accept args, after implicit conversion — and, for an
// integer-literal argument, after checking the literal's value actually
// fits the candidate's parameter type (spec.md §8), so a literal that
// only fits one width of an overload set doesn't make every width look
// like a match.
func matchOverloads(args []ast.Expression, argTypes []ast.Type, candidates []ast.CallableDecl) []ast.CallableDecl {
	var matches []ast.CallableDecl

	for _, cand := range candidates {
		proto := cand.Prototype()
		if len(proto.Params) == len(args) && paramsMatch(args, argTypes, proto.Params) {
			matches = append(matches, cand)
		}
	}

	return matches
}

func paramsMatch(args []ast.Expression, argTypes []ast.Type, params []*ast.Parameter) bool {
	for i, p := range params {
		if !types.CanImplicitlyConvert(argTypes[i], p.Type) {
			return false
		}

		if lit, ok := args[i].(*ast.IntegerLiteralExpr); ok && !types.FitsInIntegral(lit.Value, p.Type) {
			return false
		}
	}

	return true
}

// narrowOverloadMatches implements spec.md §8's literal-narrowing
// tie-break: `f(1)` against `f(i32)`/`f(i64)` resolves to `f(i32)`
// because the literal narrows to the smallest signed type it fits. This
// only applies when every match already agrees on every non-literal
// argument's parameter type and differs solely in the integral type bound
// to an integer-literal argument — anything else is left an ambiguity
// (code 28), not resolved by guessing.
func narrowOverloadMatches(args []ast.Expression, matches []ast.CallableDecl) []ast.CallableDecl {
	if len(matches) < 2 || !agreeOnNonLiteralParams(args, paramsOf(matches)) {
		return matches
	}

	best, unique := narrowestByLiteralRank(args, paramsOf(matches))
	if best < 0 || !unique {
		return matches
	}

	return matches[best : best+1]
}

func paramsOf(matches []ast.CallableDecl) [][]*ast.Parameter {
	params := make([][]*ast.Parameter, len(matches))
	for i, m := range matches {
		params[i] = m.Prototype().Params
	}

	return params
}

// agreeOnNonLiteralParams reports whether every candidate's parameter
// type agrees with the first candidate's at every argument position that
// isn't bound to an integer literal.
func agreeOnNonLiteralParams(args []ast.Expression, candidateParams [][]*ast.Parameter) bool {
	first := candidateParams[0]

	for i := range args {
		if _, isLit := args[i].(*ast.IntegerLiteralExpr); isLit {
			continue
		}

		for _, params := range candidateParams[1:] {
			if !ast.EqualType(params[i].Type, first[i].Type) {
				return false
			}
		}
	}

	return true
}

// narrowestByLiteralRank returns the index of the candidate with the
// smallest sum of types.RankIntegralNarrowing over its integer-literal
// parameter positions, and whether that minimum is unique.
func narrowestByLiteralRank(args []ast.Expression, candidateParams [][]*ast.Parameter) (best int, unique bool) {
	best, bestRank := -1, 0

	for idx, params := range candidateParams {
		rank := 0

		for i, p := range params {
			if _, isLit := args[i].(*ast.IntegerLiteralExpr); !isLit {
				continue
			}

			r, ok := types.RankIntegralNarrowing(p.Type)
			if !ok {
				return -1, false
			}

			rank += r
		}

		switch {
		case best == -1 || rank < bestRank:
			best, bestRank, unique = idx, rank, true
		case rank == bestRank:
			unique = false
		}
	}

	return best, unique
}

// matchMethodOverloads/narrowMethodOverloadMatches mirror
// matchOverloads/narrowOverloadMatches for *ast.MethodDeclaration, which
// doesn't implement ast.CallableDecl (it has no Prototype() method, see
// ast.CallableDecl's doc comment) and so can't share the
// []ast.CallableDecl-typed helpers above directly.
func matchMethodOverloads(args []ast.Expression, argTypes []ast.Type, named []*ast.MethodDeclaration) []*ast.MethodDeclaration {
	var matches []*ast.MethodDeclaration

	for _, m := range named {
		if len(m.Proto.Params) == len(args) && paramsMatch(args, argTypes, m.Proto.Params) {
			matches = append(matches, m)
		}
	}

	return matches
}

func narrowMethodOverloadMatches(args []ast.Expression, matches []*ast.MethodDeclaration) []*ast.MethodDeclaration {
	if len(matches) < 2 {
		return matches
	}

	params := make([][]*ast.Parameter, len(matches))
	for i, m := range matches {
		params[i] = m.Proto.Params
	}

	if !agreeOnNonLiteralParams(args, params) {
		return matches
	}

	best, unique := narrowestByLiteralRank(args, params)
	if best < 0 || !unique {
		return matches
	}

	return matches[best : best+1]
}
