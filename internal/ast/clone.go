package ast

// CloneType produces a deep, independent copy of a type subtree. The
// clone compares equal to the original via EqualType but shares no
// mutable state with it — source locations are copied along (unlike
// resolution back-pointers elsewhere, a type's Span is not considered
// part of its identity, but callers rely on a usable span existing on
// every node, so it is carried over verbatim rather than reset).
func CloneType(t Type) Type {
	if t == nil {
		return nil
	}

	switch v := t.(type) {
	case *ErrorType:
		c := *v
		return &c
	case *ReferenceType:
		return &ReferenceType{TypeBase: v.TypeBase, Elem: CloneType(v.Elem), Mut: v.Mut}
	case *SliceType:
		return &SliceType{TypeBase: v.TypeBase, Elem: CloneType(v.Elem), Mut: v.Mut}
	case *PointerType:
		return &PointerType{TypeBase: v.TypeBase, Elem: CloneType(v.Elem), Mut: v.Mut}
	case *ArrayType:
		return &ArrayType{TypeBase: v.TypeBase, Elem: CloneType(v.Elem), Size: v.Size}
	case *IntegralType:
		c := *v
		return &c
	case *FloatType:
		c := *v
		return &c
	case *BoolType:
		c := *v
		return &c
	case *ByteType:
		c := *v
		return &c
	case *CharType:
		c := *v
		return &c
	case *VoidType:
		c := *v
		return &c
	case *NilPointerType:
		c := *v
		return &c
	case *UnsizedIntegerType:
		c := *v
		return &c
	case *IndirectionType:
		return &IndirectionType{TypeBase: v.TypeBase, Elem: CloneType(v.Elem)}
	case *UnqualifiedUserDefinedType:
		c := *v
		return &c
	case *UserDefinedType:
		args := make([]Type, len(v.GenericArgs))
		for i, a := range v.GenericArgs {
			args[i] = CloneType(a)
		}

		return &UserDefinedType{TypeBase: v.TypeBase, FQID: v.FQID, Decl: v.Decl, GenericArgs: args}
	case *UnqualifiedDynInterfaceType:
		c := *v
		return &c
	case *DynInterfaceType:
		c := *v
		return &c
	case *FunctionPointerType:
		params := make([]Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = CloneType(p)
		}

		return &FunctionPointerType{
			TypeBase: v.TypeBase, Params: params, Return: CloneType(v.Return), Throws: v.Throws,
		}
	default:
		return t
	}
}

// CloneExpression produces a deep, independent copy of an expression
// subtree, including its already-annotated result type (if any).
func CloneExpression(e Expression) Expression {
	if e == nil {
		return nil
	}

	switch v := e.(type) {
	case *ErrorExpr:
		c := *v
		return &c
	case *StringLiteralExpr:
		c := *v
		return &c
	case *IntegerLiteralExpr:
		c := *v
		return &c
	case *FloatLiteralExpr:
		c := *v
		return &c
	case *BoolLiteralExpr:
		c := *v
		return &c
	case *CharLiteralExpr:
		c := *v
		return &c
	case *NilLiteralExpr:
		c := *v
		return &c
	case *ArrayLiteralExpr:
		els := make([]Expression, len(v.Elements))
		for i, el := range v.Elements {
			els[i] = CloneExpression(el)
		}

		c := *v
		c.Elements = els

		return &c
	case *IdentifierExpr:
		c := *v
		return &c
	case *LocalIdentifierExpr:
		c := *v
		return &c
	case *OverloadRefExpr:
		c := *v
		return &c
	case *StaticGlobalExpr:
		c := *v
		return &c
	case *CallExpr:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = CloneExpression(a)
		}

		genArgs := make([]Type, len(v.GenericArgs))
		for i, g := range v.GenericArgs {
			genArgs[i] = CloneType(g)
		}

		c := *v
		c.Callee, c.Args, c.GenericArgs = CloneExpression(v.Callee), args, genArgs

		return &c
	case *StaticCallExpr:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = CloneExpression(a)
		}

		c := *v
		c.Args = args

		return &c
	case *MethodCallExpr:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = CloneExpression(a)
		}

		c := *v
		c.Receiver, c.Args = CloneExpression(v.Receiver), args

		return &c
	case *StaticMethodCallExpr:
		args := make([]Expression, len(v.Args))
		for i, a := range v.Args {
			args[i] = CloneExpression(a)
		}

		c := *v
		c.Receiver, c.Args = CloneExpression(v.Receiver), args

		return &c
	case *IndexExpr:
		c := *v
		c.Object, c.Index = CloneExpression(v.Object), CloneExpression(v.Index)

		return &c
	case *FieldAccessExpr:
		c := *v
		c.Object = CloneExpression(v.Object)

		return &c
	case *GroupExpr:
		c := *v
		c.Inner = CloneExpression(v.Inner)

		return &c
	case *UnaryExpr:
		c := *v
		c.Operand = CloneExpression(v.Operand)

		return &c
	case *BinaryExpr:
		c := *v
		c.Left, c.Right = CloneExpression(v.Left), CloneExpression(v.Right)

		return &c
	case *CastExpr:
		c := *v
		c.Operand, c.Target = CloneExpression(v.Operand), CloneType(v.Target)

		return &c
	case *IfThenExpr:
		c := *v
		c.Cond, c.Then = CloneExpression(v.Cond), CloneExpression(v.Then).(*BlockExpr)

		return &c
	case *IfElseExpr:
		elseIfs := make([]ElseIfClause, len(v.ElseIfs))
		for i, ei := range v.ElseIfs {
			elseIfs[i] = ElseIfClause{Cond: CloneExpression(ei.Cond), Then: CloneExpression(ei.Then).(*BlockExpr)}
		}

		c := *v
		c.Cond, c.Then, c.ElseIfs = CloneExpression(v.Cond), CloneExpression(v.Then).(*BlockExpr), elseIfs

		if v.Else != nil {
			c.Else = CloneExpression(v.Else).(*BlockExpr)
		}

		return &c
	case *BlockExpr:
		stmts := make([]Statement, len(v.Statements))
		for i, s := range v.Statements {
			stmts[i] = CloneStatement(s)
		}

		c := *v
		c.Statements, c.Tail = stmts, CloneExpression(v.Tail)

		return &c
	case *LoopExpr:
		c := *v
		c.Body = CloneExpression(v.Body).(*BlockExpr)

		return &c
	case *WhileExpr:
		c := *v
		c.Cond, c.Body = CloneExpression(v.Cond), CloneExpression(v.Body).(*BlockExpr)

		return &c
	case *ForExpr:
		c := *v
		c.Init, c.Last, c.Body = CloneExpression(v.Init), CloneExpression(v.Last), CloneExpression(v.Body).(*BlockExpr)

		return &c
	case *ReturnExpr:
		c := *v
		c.Value = CloneExpression(v.Value)

		return &c
	case *BreakExpr:
		c := *v
		c.Value = CloneExpression(v.Value)

		return &c
	case *ContinueExpr:
		c := *v
		return &c
	case *StructInitExpr:
		fields := make([]StructFieldInit, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = StructFieldInit{Name: f.Name, Value: CloneExpression(f.Value), Span: f.Span}
		}

		c := *v
		c.Target, c.Fields = CloneType(v.Target), fields

		return &c
	case *ImplicitConversionExpr:
		c := *v
		c.Inner, c.Target = CloneExpression(v.Inner), CloneType(v.Target)

		return &c
	case *LoadExpr:
		c := *v
		c.Inner = CloneExpression(v.Inner)

		return &c
	case *AddressOfExpr:
		c := *v
		c.Operand = CloneExpression(v.Operand)

		return &c
	case *SliceOfExpr:
		c := *v
		c.Operand = CloneExpression(v.Operand)

		return &c
	case *RangeExpr:
		c := *v
		c.Start, c.End = CloneExpression(v.Start), CloneExpression(v.End)

		return &c
	case *SizeofExpr:
		c := *v
		c.Target = CloneType(v.Target)

		return &c
	default:
		return e
	}
}

// CloneStatement produces a deep, independent copy of a statement.
func CloneStatement(s Statement) Statement {
	if s == nil {
		return nil
	}

	switch v := s.(type) {
	case *ErrorStatement:
		c := *v
		return &c
	case *BindingStatement:
		c := *v
		c.TypeHint, c.Init = CloneType(v.TypeHint), CloneExpression(v.Init)

		return &c
	case *AssertionStatement:
		c := *v
		c.Cond = CloneExpression(v.Cond)

		return &c
	case *ExpressionStatement:
		c := *v
		c.Expr = CloneExpression(v.Expr)

		return &c
	default:
		return s
	}
}

// CloneDeclaration copies a declaration, deep-copying its body, its struct
// fields, its aliased or receiver type, and an extern block's member
// declarations. The *Prototype of a
// function, method or extern declaration is not copied: the clone points
// at the same Prototype as the original.
func CloneDeclaration(d Declaration) Declaration {
	if d == nil {
		return nil
	}

	switch v := d.(type) {
	case *ErrorDeclaration:
		c := *v
		return &c
	case *ImportDeclaration:
		c := *v
		return &c
	case *ImportFromDeclaration:
		c := *v
		c.Names = append([]string(nil), v.Names...)

		return &c
	case *FunctionDeclaration:
		c := *v
		c.Body = CloneExpression(v.Body).(*BlockExpr)

		return &c
	case *MethodDeclaration:
		c := *v
		c.ReceiverType, c.Body = CloneType(v.ReceiverType), CloneExpression(v.Body).(*BlockExpr)

		return &c
	case *StructDeclaration:
		fields := make([]FieldDef, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = FieldDef{Name: f.Name, Type: CloneType(f.Type)}
		}

		c := *v
		c.Fields = fields

		return &c
	case *ClassDeclaration:
		c := *v
		return &c
	case *TypeAliasDeclaration:
		c := *v
		c.Aliased = CloneType(v.Aliased)

		return &c
	case *ExternalFnDeclaration:
		c := *v
		return &c
	case *ExternalBlockDeclaration:
		decls := make([]*ExternalFnDeclaration, len(v.Decls))
		for i, fn := range v.Decls {
			decls[i] = CloneDeclaration(fn).(*ExternalFnDeclaration)
		}

		c := *v
		c.Decls = decls

		return &c
	case *ConstantDeclaration:
		c := *v
		c.TypeHint, c.Value = CloneType(v.TypeHint), CloneExpression(v.Value)

		return &c
	default:
		return d
	}
}
