package typechecker

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
	"github.com/gallium-lang/gallium/internal/types"
)

func (c *Checker) checkFieldAccess(ex *ast.FieldAccessExpr) ast.Expression {
	objType := c.checkExprType(&ex.Object)

	deref, _ := types.Deref(objType)
	if deref == nil {
		deref = objType
	}

	ud, ok := deref.(*ast.UserDefinedType)
	if !ok {
		if !types.IsError(deref) {
			c.reporter.Report(diagnostic.New(35, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`"+ex.Field+"` is not a field on this type")))
		}

		ex.SetResultType(errorOf(ex))

		return ex
	}

	structDecl, ok := ud.Decl.(*ast.StructDeclaration)
	if !ok {
		c.reporter.Report(diagnostic.New(35, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`"+ex.Field+"` is not a field on this type")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	for _, f := range structDecl.Fields {
		if f.Name == ex.Field {
			ex.SetResultType(f.Type)
			return ex
		}
	}

	c.reporter.Report(diagnostic.New(35, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "`"+ex.Field+"` is not a field on `"+structDecl.Name+"`")))
	ex.SetResultType(errorOf(ex))

	return ex
}

func (c *Checker) checkIndex(ex *ast.IndexExpr) ast.Expression {
	objType := c.checkExprType(&ex.Object)

	if !types.IsIndexable(objType) {
		if !types.IsError(objType) {
			c.reporter.Report(diagnostic.New(46, diagnostic.PointOut(ex.Object.Span(), diagnostic.SeverityError, "this expression cannot be indexed")))
		}

		ex.SetResultType(errorOf(ex))

		return ex
	}

	idxType := c.checkExprType(&ex.Index)

	if !types.IsIntegral(idxType) && !types.IsUnsizedInteger(idxType) {
		if !types.IsError(idxType) {
			c.reporter.Report(diagnostic.New(48, diagnostic.PointOut(ex.Index.Span(), diagnostic.SeverityError, "index must be an integer")))
		}
	} else if w, _, ok := types.Width(idxType); ok && w != ast.IntNative && !types.IsUnsizedInteger(idxType) {
		c.reporter.Report(diagnostic.New(48, diagnostic.PointOut(ex.Index.Span(), diagnostic.SeverityError, "index must be of type `isize`; cast explicitly first")))
	} else {
		ex.Index = c.wrapImplicit(ex.Index, idxType, &ast.IntegralType{TypeBase: ast.TypeBase{NodeSpan: ex.Index.Span()}, Width: ast.IntNative, Signed: true})
	}

	switch obj := objType.(type) {
	case *ast.SliceType:
		ex.SetResultType(obj.Elem)
	case *ast.ArrayType:
		ex.SetResultType(obj.Elem)
	default:
		ex.SetResultType(errorOf(ex))
	}

	return ex
}

func (c *Checker) checkStructInit(ex *ast.StructInitExpr) ast.Expression {
	ud, ok := ex.Target.(*ast.UserDefinedType)
	if !ok {
		if !types.IsError(ex.Target) {
			c.reporter.Report(diagnostic.New(10, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "struct-init target must be a user-defined type")))
		}

		ex.SetResultType(errorOf(ex))

		return ex
	}

	structDecl, ok := ud.Decl.(*ast.StructDeclaration)
	if !ok {
		c.reporter.Report(diagnostic.New(10, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "struct-init target must name a struct")))
		ex.SetResultType(errorOf(ex))

		return ex
	}

	given := make(map[string]bool, len(ex.Fields))

	for i := range ex.Fields {
		ex.Fields[i].Value = c.checkExpr(ex.Fields[i].Value)
		given[ex.Fields[i].Name] = true
	}

	for _, fd := range structDecl.Fields {
		if !given[fd.Name] {
			c.reporter.Report(diagnostic.New(12, diagnostic.PointOut(ex.Span(), diagnostic.SeverityError, "missing initializer for field `"+fd.Name+"`")))
		}
	}

	for i := range ex.Fields {
		field := &ex.Fields[i]

		var fieldType ast.Type

		for _, fd := range structDecl.Fields {
			if fd.Name == field.Name {
				fieldType = fd.Type
				break
			}
		}

		if fieldType == nil {
			c.reporter.Report(diagnostic.New(35, diagnostic.PointOut(field.Value.Span(), diagnostic.SeverityError, "`"+field.Name+"` is not a field on `"+structDecl.Name+"`")))
			continue
		}

		if lit, ok := field.Value.(*ast.IntegerLiteralExpr); ok {
			c.checkIntegerLiteralRange(lit, fieldType)
		}

		if !types.CanImplicitlyConvert(field.Value.ResultType(), fieldType) {
			c.reporter.Report(diagnostic.New(13, diagnostic.PointOut(field.Value.Span(), diagnostic.SeverityError, "initializer type does not match field `"+field.Name+"`")))
		} else {
			field.Value = c.wrapImplicit(field.Value, field.Value.ResultType(), fieldType)
		}
	}

	ex.SetResultType(ud)

	return ex
}
