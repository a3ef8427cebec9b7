package typechecker

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/types"
)

// isLvalue reports whether e names a location rather than a transient
// value: an identifier, a field access, an index, or a dereference
// (§4.4, code 43).
func isLvalue(e ast.Expression) bool {
	switch ex := e.(type) {
	case *ast.LocalIdentifierExpr, *ast.FieldAccessExpr, *ast.IndexExpr:
		return true
	case *ast.UnaryExpr:
		return ex.Op == ast.UnaryDeref
	default:
		return false
	}
}

// isMutableLvalue reports whether e is an lvalue whose underlying storage
// is declared `mut` (a mut binding, a field/index through a mut
// reference or slice, or a dereferenced `mut` pointer/reference),
// per §4.4, code 44/49.
func isMutableLvalue(e ast.Expression) bool {
	if !isLvalue(e) {
		return false
	}

	switch ex := e.(type) {
	case *ast.LocalIdentifierExpr:
		return ex.Binding.IsMutable
	case *ast.FieldAccessExpr:
		return isMutableLvalue(ex.Object) || types.IsMutable(ex.Object.ResultType())
	case *ast.IndexExpr:
		return isMutableLvalue(ex.Object) || types.IsMutable(ex.Object.ResultType())
	case *ast.UnaryExpr:
		return types.IsMutable(ex.Operand.ResultType())
	default:
		return false
	}
}

func (c *Checker) checkUnary(ex *ast.UnaryExpr) ast.Expression {
	ex.Operand = c.checkExpr(ex.Operand)
	operandType := ex.Operand.ResultType()

	switch ex.Op {
	case ast.UnaryNeg:
		if !types.IsArithmetic(operandType) {
			if !types.IsError(operandType) {
				c.reporter.Report(diagnostic.New(39, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`-` requires an arithmetic operand")))
			}

			ex.SetResultType(errorOf(ex))

			return ex
		}

		if types.IsIntegral(operandType) && !types.IsSigned(operandType) {
			c.reporter.Report(diagnostic.New(53, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "cannot negate an unsigned type")))
			ex.SetResultType(errorOf(ex))

			return ex
		}

		ex.SetResultType(operandType)
	case ast.UnaryNot:
		if !types.IsBool(operandType) {
			if !types.IsError(operandType) {
				c.reporter.Report(diagnostic.New(38, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`!` requires a `bool` operand")))
			}

			ex.SetResultType(errorOf(ex))

			return ex
		}

		ex.SetResultType(operandType)
	case ast.UnaryDeref:
		deref, ok := types.Deref(operandType)
		if !ok {
			if !types.IsError(operandType) {
				c.reporter.Report(diagnostic.New(45, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`*` requires a pointer or reference operand")))
			}

			ex.SetResultType(errorOf(ex))

			return ex
		}

		ex.SetResultType(deref)
	default:
		// UnaryAddr/UnaryAddrMut are expressed as AddressOfExpr by the
		// parser; this branch exists only so the switch covers UnaryOp's
		// full closed set.
		ex.SetResultType(errorOf(ex))
	}

	return ex
}

func (c *Checker) checkBinary(ex *ast.BinaryExpr) ast.Expression {
	if ex.Op == ast.BinAssign {
		return c.checkAssign(ex)
	}

	leftType := c.checkExprType(&ex.Left)
	rightType := c.checkExprType(&ex.Right)

	if lit, ok := ex.Right.(*ast.IntegerLiteralExpr); ok && types.IsIntegral(leftType) {
		c.checkIntegerLiteralRange(lit, leftType)
		ex.Right = c.wrapImplicit(ex.Right, rightType, leftType)
		rightType = leftType
	} else if lit, ok := ex.Left.(*ast.IntegerLiteralExpr); ok && types.IsIntegral(rightType) {
		c.checkIntegerLiteralRange(lit, rightType)
		ex.Left = c.wrapImplicit(ex.Left, leftType, rightType)
		leftType = rightType
	}

	switch {
	case ex.Op.IsLogical():
		if !types.IsBool(leftType) || !types.IsBool(rightType) {
			if !types.IsError(leftType) && !types.IsError(rightType) {
				c.reporter.Report(diagnostic.New(38, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`"+ex.Op.String()+"` requires `bool` operands")))
			}

			ex.SetResultType(errorOf(ex))

			return ex
		}

		ex.SetResultType(&ast.BoolType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}})
	case ex.Op.IsArithmetic():
		if !types.IsArithmetic(leftType) || !types.IsArithmetic(rightType) {
			if !types.IsError(leftType) && !types.IsError(rightType) {
				c.reporter.Report(diagnostic.New(39, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`"+ex.Op.String()+"` requires arithmetic operands")))
			}

			ex.SetResultType(errorOf(ex))

			return ex
		}

		if !ast.EqualType(leftType, rightType) {
			c.reporter.Report(diagnostic.New(40, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "both operands of `"+ex.Op.String()+"` must be the same type")))
			ex.SetResultType(errorOf(ex))

			return ex
		}

		ex.SetResultType(leftType)
	case ex.Op.IsBitwise():
		if !types.IsIntegral(leftType) || !types.IsIntegral(rightType) {
			if !types.IsError(leftType) && !types.IsError(rightType) {
				c.reporter.Report(diagnostic.New(41, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`"+ex.Op.String()+"` requires integral operands")))
			}

			ex.SetResultType(errorOf(ex))

			return ex
		}

		shift := ex.Op == ast.BinShl || ex.Op == ast.BinShr
		if !shift && !ast.EqualType(leftType, rightType) {
			c.reporter.Report(diagnostic.New(40, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "both operands of `"+ex.Op.String()+"` must be the same type")))
			ex.SetResultType(errorOf(ex))

			return ex
		}

		ex.SetResultType(leftType)
	case ex.Op.IsComparison():
		if !types.IsError(leftType) && !types.IsError(rightType) && !ast.EqualType(leftType, rightType) {
			c.reporter.Report(diagnostic.New(40, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "both operands of `"+ex.Op.String()+"` must be the same type")))
		}

		ex.SetResultType(&ast.BoolType{TypeBase: ast.TypeBase{NodeSpan: ex.Span()}})
	default:
		ex.SetResultType(errorOf(ex))
	}

	return ex
}

// checkAssign implements §4.4's assignment rule: the left-hand side must
// be a mutable lvalue (42, 49) and the right-hand side must be
// implicitly convertible to it (50).
func (c *Checker) checkAssign(ex *ast.BinaryExpr) ast.Expression {
	ex.Left = c.checkExpr(ex.Left)
	leftType := ex.Left.ResultType()

	if !isLvalue(ex.Left) {
		c.reporter.Report(diagnostic.New(42, diagnostic.PointOut(ex.Left.Span(), diagnostic.SeverityError, "assignment requires an lvalue on the left-hand side")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	if !isMutableLvalue(ex.Left) {
		c.reporter.Report(diagnostic.New(49, diagnostic.PointOut(ex.Left.Span(), diagnostic.SeverityError, "cannot assign to an immutable binding")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	rightType := c.checkExprType(&ex.Right)

	if lit, ok := ex.Right.(*ast.IntegerLiteralExpr); ok {
		c.checkIntegerLiteralRange(lit, leftType)
	}

	if !types.CanImplicitlyConvert(rightType, leftType) {
		c.reporter.Report(diagnostic.New(50, diagnostic.PointOut(ex.Right.Span(), diagnostic.SeverityError, "assigned value's type is incompatible with the target")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	ex.Right = c.wrapImplicit(ex.Right, rightType, leftType)
	ex.SetResultType(voidOf(ex))

	return ex
}
