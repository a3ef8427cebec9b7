package typechecker

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/types"
)

// checkExpr is the main dispatch: it computes e's result type, stores it
// via SetResultType, and returns the (possibly rewritten) expression that
// should replace e in its parent.
func (c *Checker) checkExpr(e ast.Expression) ast.Expression {
	switch ex := e.(type) {
	case *ast.ErrorExpr:
		ex.SetResultType(errorOf(ex))
		return ex

	case *ast.StringLiteralExpr:
		ex.SetResultType(&ast.SliceType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Elem: &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Width: ast.Int8, Signed: false}})
		return ex

	case *ast.IntegerLiteralExpr:
		ex.SetResultType(&ast.UnsizedIntegerType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}})
		return ex

	case *ast.FloatLiteralExpr:
		ex.SetResultType(&ast.FloatType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Width: ast.Float64})
		return ex

	case *ast.BoolLiteralExpr:
		ex.SetResultType(&ast.BoolType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}})
		return ex

	case *ast.CharLiteralExpr:
		ex.SetResultType(&ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Width: ast.Int8, Signed: false})
		return ex

	case *ast.NilLiteralExpr:
		ex.SetResultType(&ast.NilPointerType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}})
		return ex

	case *ast.ArrayLiteralExpr:
		return c.checkArrayLiteral(ex)

	case *ast.LocalIdentifierExpr:
		ex.SetResultType(ex.Binding.Type)
		return ex

	case *ast.OverloadRefExpr:
		// An overload set has no single type of its own; it's only ever
		// meaningful as a CallExpr callee, which special-cases it before
		// recursing here. If one reaches this point directly (e.g. `let f
		// = overloaded_name;`) it names something code 22 already rules
		// out for any other declaration kind, so treat it the same way.
		ex.SetResultType(errorOf(ex))
		return ex

	case *ast.StaticGlobalExpr:
		constDecl, ok := ex.Decl.(*ast.ConstantDeclaration)
		if !ok {
			ex.SetResultType(errorOf(ex))
			return ex
		}

		ex.SetResultType(constDecl.TypeHint)

		return ex

	case *ast.CallExpr:
		return c.checkCall(ex)

	case *ast.MethodCallExpr:
		return c.checkMethodCall(ex)

	case *ast.IndexExpr:
		return c.checkIndex(ex)

	case *ast.FieldAccessExpr:
		return c.checkFieldAccess(ex)

	case *ast.GroupExpr:
		ex.Inner = c.checkExpr(ex.Inner)
		ex.SetResultType(ex.Inner.ResultType())

		return ex

	case *ast.UnaryExpr:
		return c.checkUnary(ex)

	case *ast.BinaryExpr:
		return c.checkBinary(ex)

	case *ast.CastExpr:
		return c.checkCast(ex)

	case *ast.BlockExpr:
		t := c.checkBlock(ex)
		ex.SetResultType(t)

		return ex

	case *ast.IfThenExpr:
		c.checkCondition(&ex.Cond)
		c.checkBlock(ex.Then)
		ex.SetResultType(voidOf(ex))

		return ex

	case *ast.IfElseExpr:
		return c.checkIfElse(ex)

	case *ast.LoopExpr:
		return c.checkLoop(ex)

	case *ast.WhileExpr:
		c.checkCondition(&ex.Cond)
		c.loops = append(c.loops, &loopContext{kind: loopWhileOrFor})
		c.checkBlock(ex.Body)
		c.loops = c.loops[:len(c.loops)-1]
		ex.SetResultType(voidOf(ex))

		return ex

	case *ast.ForExpr:
		return c.checkFor(ex)

	case *ast.ReturnExpr:
		return c.checkReturn(ex)

	case *ast.BreakExpr:
		return c.checkBreak(ex)

	case *ast.ContinueExpr:
		if c.currentLoop() == nil {
			c.reporter.Report(diagnostic.New(27, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`continue` outside of a loop")))
		}

		ex.SetResultType(voidOf(ex))

		return ex

	case *ast.StructInitExpr:
		return c.checkStructInit(ex)

	case *ast.AddressOfExpr:
		return c.checkAddressOf(ex)

	case *ast.RangeExpr:
		ex.Start = c.checkExpr(ex.Start)
		ex.End = c.checkExpr(ex.End)
		ex.SetResultType(ex.Start.ResultType())

		return ex

	case *ast.SizeofExpr:
		ex.SetResultType(&ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Width: ast.IntNative, Signed: false})
		return ex

	case *ast.SliceOfExpr:
		ex.Operand = c.checkExpr(ex.Operand)

		if _, ok := ex.Operand.ResultType().(*ast.PointerType); !ok {
			c.reporter.Report(diagnostic.New(56, diagnostic.PointOut(ex.Operand.Span(), diagnostic.SeverityError, "slice-of requires a pointer operand")))
			ex.SetResultType(errorOf(ex))

			return ex
		}

		ptr := ex.Operand.ResultType().(*ast.PointerType)
		ex.SetResultType(&ast.SliceType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Elem: ptr.Elem, Mut: ptr.Mut})

		return ex

	default:
		// StaticCallExpr, StaticMethodCallExpr, ImplicitConversionExpr, and
		// LoadExpr are all post-check forms; they only appear here if this
		// pass runs twice over the same tree, in which case their stored
		// ResultType is already correct.
		return e
	}
}

func (c *Checker) checkArrayLiteral(ex *ast.ArrayLiteralExpr) ast.Expression {
	elemTypes := make([]ast.Type, len(ex.Elements))

	for i, el := range ex.Elements {
		ex.Elements[i] = c.checkExpr(el)
		elemTypes[i] = ex.Elements[i].ResultType()
	}

	common, ok := types.Unify(elemTypes)
	if !ok {
		c.reporter.Report(diagnostic.New(34, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "array elements must all be the same type")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	for i, el := range ex.Elements {
		if lit, ok := el.(*ast.IntegerLiteralExpr); ok {
			c.checkIntegerLiteralRange(lit, common)
		}

		ex.Elements[i] = c.wrapImplicit(el, el.ResultType(), common)
	}

	if common == nil {
		common = voidOf(ex)
	}

	ex.SetResultType(&ast.ArrayType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Elem: common, Size: int64(len(ex.Elements))})

	return ex
}

// checkCondition checks *cond in place and reports code 15 if it isn't
// bool.
func (c *Checker) checkCondition(cond *ast.Expression) {
	t := c.checkExprType(cond)

	if !types.IsBool(t) && !types.IsError(t) {
		c.reporter.Report(diagnostic.New(15, diagnostic.PointOut((*cond).Span(), diagnostic.SeverityError, "condition must be of type `bool`")))
	}
}

func (c *Checker) checkIfElse(ex *ast.IfElseExpr) ast.Expression {
	c.checkCondition(&ex.Cond)
	thenType := c.checkBlock(ex.Then)

	branchTypes := []ast.Type{thenType}

	for i := range ex.ElseIfs {
		c.checkCondition(&ex.ElseIfs[i].Cond)
		branchTypes = append(branchTypes, c.checkBlock(ex.ElseIfs[i].Then))
	}

	if !ex.IsEvaluable() {
		ex.SetResultType(voidOf(ex))
		return ex
	}

	branchTypes = append(branchTypes, c.checkBlock(ex.Else))

	common, ok := types.Unify(branchTypes)
	if !ok {
		c.reporter.Report(diagnostic.New(16, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "every branch of an evaluable if-expr must agree on one type")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	ex.SetResultType(common)

	return ex
}

func (c *Checker) checkLoop(ex *ast.LoopExpr) ast.Expression {
	c.loops = append(c.loops, &loopContext{kind: loopPlain})
	c.checkBlock(ex.Body)
	lc := c.loops[len(c.loops)-1]
	c.loops = c.loops[:len(c.loops)-1]

	if len(lc.breakTypes) == 0 {
		ex.SetResultType(voidOf(ex))
		return ex
	}

	common, ok := types.Unify(lc.breakTypes)
	if !ok {
		c.reporter.Report(diagnostic.New(37, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "every `break value` in this loop must agree on one type")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	ex.SetResultType(common)

	return ex
}

func (c *Checker) checkFor(ex *ast.ForExpr) ast.Expression {
	initType := c.checkExprType(&ex.Init)
	lastType := c.checkExprType(&ex.Last)

	if !types.IsIntegral(initType) && !types.IsUnsizedInteger(initType) && !types.IsError(initType) {
		c.reporter.Report(diagnostic.New(54, diagnostic.PointOut(ex.Init.Span(), diagnostic.SeverityError, "`for` range endpoints must be integral")))
	}

	if !types.IsIntegral(lastType) && !types.IsUnsizedInteger(lastType) && !types.IsError(lastType) {
		c.reporter.Report(diagnostic.New(54, diagnostic.PointOut(ex.Last.Span(), diagnostic.SeverityError, "`for` range endpoints must be integral")))
	}

	loopVarType := initType

	if !ast.EqualType(initType, lastType) && !types.IsUnsizedInteger(initType) && !types.IsUnsizedInteger(lastType) {
		c.reporter.Report(diagnostic.New(55, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`for` init and last must be the same type")))
	} else if types.IsUnsizedInteger(initType) {
		loopVarType = lastType
	}

	c.loops = append(c.loops, &loopContext{kind: loopWhileOrFor})
	c.forVarType(ex.Body, loopVarType)
	c.checkBlock(ex.Body)
	c.loops = c.loops[:len(c.loops)-1]

	ex.SetResultType(voidOf(ex))

	return ex
}

// forVarType back-fills the loop variable's binding type, which the
// resolver left nil (§4.4: its type is only known once Init/Last are
// checked, one phase later).
func (c *Checker) forVarType(body *ast.BlockExpr, t ast.Type) {
	var visit func(ast.Expression)

	visit = func(e ast.Expression) {
		switch v := e.(type) {
		case *ast.LocalIdentifierExpr:
			if v.Binding != nil && v.Binding.Type == nil {
				v.Binding.Type = t
			}
		}
	}

	for _, s := range body.Statements {
		if es, ok := s.(*ast.ExpressionStatement); ok {
			visit(es.Expr)
		}
	}

	if body.Tail != nil {
		visit(body.Tail)
	}
}

func (c *Checker) checkReturn(ex *ast.ReturnExpr) ast.Expression {
	fc := c.currentFunc()
	if fc == nil {
		c.reporter.Report(diagnostic.New(26, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`return` outside of a function")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	expected := fc.returnType
	if expected == nil {
		expected = voidOf(ex)
	}

	var valueType ast.Type = voidOf(ex)

	if ex.Value != nil {
		valueType = c.checkExprType(&ex.Value)

		if lit, ok := ex.Value.(*ast.IntegerLiteralExpr); ok {
			c.checkIntegerLiteralRange(lit, expected)
		}
	}

	if !types.CanImplicitlyConvert(valueType, expected) {
		c.reporter.Report(diagnostic.New(20, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "return type does not match the enclosing function's declared return type")))
	} else if ex.Value != nil {
		ex.Value = c.wrapImplicit(ex.Value, valueType, expected)
	}

	ex.SetResultType(voidOf(ex))

	return ex
}

func (c *Checker) checkBreak(ex *ast.BreakExpr) ast.Expression {
	lc := c.currentLoop()
	if lc == nil {
		c.reporter.Report(diagnostic.New(27, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`break` outside of a loop")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	if ex.Value != nil {
		valueType := c.checkExprType(&ex.Value)

		if lc.kind == loopWhileOrFor {
			c.reporter.Report(diagnostic.New(36, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`break value` is only valid inside a `loop` expression")))
		} else {
			lc.breakTypes = append(lc.breakTypes, valueType)
		}
	}

	ex.SetResultType(voidOf(ex))

	return ex
}

func (c *Checker) checkAddressOf(ex *ast.AddressOfExpr) ast.Expression {
	ex.Operand = c.checkExpr(ex.Operand)

	if !isLvalue(ex.Operand) {
		c.reporter.Report(diagnostic.New(43, diagnostic.PointOut(ex.Operand.Span(), diagnostic.SeverityError, "`&`/`&mut` require an lvalue operand")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	if ex.Mutable && !isMutableLvalue(ex.Operand) {
		c.reporter.Report(diagnostic.New(44, diagnostic.PointOut(ex.Operand.Span(), diagnostic.SeverityError, "`&mut` requires a `mut` operand")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	ex.SetResultType(&ast.ReferenceType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}, Elem: ex.Operand.ResultType(), Mut: ex.Mutable})

	return ex
}

// checkBlock checks every statement and the tail of b, returning the
// block's result type: the tail's type, or void with no tail.
func (c *Checker) checkBlock(b *ast.BlockExpr) ast.Type {
	for i, s := range b.Statements {
		b.Statements[i] = c.checkStatement(s)
	}

	if b.Tail == nil {
		return voidOf(b)
	}

	b.Tail = c.checkExpr(b.Tail)

	return b.Tail.ResultType()
}

func (c *Checker) checkStatement(s ast.Statement) ast.Statement {
	switch st := s.(type) {
	case *ast.BindingStatement:
		initType := c.checkExprType(&st.Init)

		if lit, ok := st.Init.(*ast.IntegerLiteralExpr); ok && st.TypeHint != nil {
			c.checkIntegerLiteralRange(lit, st.TypeHint)
		}

		if st.TypeHint == nil {
			if types.IsNilPointer(initType) {
				c.reporter.Report(diagnostic.New(21, diagnostic.PointOut(st.Span(), diagnostic.SeverityError, "a binding without a type hint cannot be initialized with `nil`")))
			}

			st.Binding.Type = initType

			return st
		}

		if !types.CanImplicitlyConvert(initType, st.TypeHint) {
			c.reporter.Report(diagnostic.New(7, diagnostic.PointOut(st.Init.Span(), diagnostic.SeverityError, "initializer type does not match the binding's type hint")))
		} else {
			st.Init = c.wrapImplicit(st.Init, initType, st.TypeHint)
		}

		st.Binding.Type = st.TypeHint

		return st

	case *ast.AssertionStatement:
		c.checkCondition(&st.Cond)
		return st

	case *ast.ExpressionStatement:
		st.Expr = c.checkExpr(st.Expr)
		return st

	default:
		return s
	}
}
