package typechecker

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/types"
)

// checkCast implements §4.4's cast rule: `as!` always succeeds (the
// caller takes responsibility for the bitcast's validity); a plain `as`
// must be one of the safe conversions types.IsSafeCast recognizes, or
// it's code 17.
func (c *Checker) checkCast(ex *ast.CastExpr) ast.Expression {
	operandType := c.checkExprType(&ex.Operand)

	if lit, ok := ex.Operand.(*ast.IntegerLiteralExpr); ok {
		c.checkIntegerLiteralRange(lit, ex.Target)
	}

	if !ex.Unsafe && !types.IsSafeCast(operandType, ex.Target) {
		c.reporter.Report(diagnostic.New(17, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "no safe cast exists from `"+operandType.String()+"` to `"+ex.Target.String()+"`")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	ex.SetResultType(ex.Target)

	return ex
}
