package ast

// EqualType compares two types structurally (§4.1, §4.4). The error type
// compares equal to any other type — once a diagnostic has been emitted
// for a malformed type, every later comparison against it is suppressed
// rather than cascading into further, spurious diagnostics.
func EqualType(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind() == KindErrorType || b.Kind() == KindErrorType {
		return true
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch at := a.(type) {
	case *ReferenceType:
		bt := b.(*ReferenceType)
		return at.Mut == bt.Mut && EqualType(at.Elem, bt.Elem)
	case *SliceType:
		bt := b.(*SliceType)
		return at.Mut == bt.Mut && EqualType(at.Elem, bt.Elem)
	case *PointerType:
		bt := b.(*PointerType)
		return at.Mut == bt.Mut && EqualType(at.Elem, bt.Elem)
	case *ArrayType:
		bt := b.(*ArrayType)
		return at.Size == bt.Size && EqualType(at.Elem, bt.Elem)
	case *IntegralType:
		bt := b.(*IntegralType)
		return at.Width == bt.Width && at.Signed == bt.Signed
	case *FloatType:
		bt := b.(*FloatType)
		return at.Width == bt.Width
	case *BoolType, *ByteType, *CharType, *VoidType, *NilPointerType, *UnsizedIntegerType:
		return true
	case *IndirectionType:
		bt := b.(*IndirectionType)
		return EqualType(at.Elem, bt.Elem)
	case *UnqualifiedUserDefinedType:
		bt := b.(*UnqualifiedUserDefinedType)
		return at.ID.String() == bt.ID.String()
	case *UserDefinedType:
		bt := b.(*UserDefinedType)
		if !at.FQID.Equal(bt.FQID) || len(at.GenericArgs) != len(bt.GenericArgs) {
			return false
		}

		for i := range at.GenericArgs {
			if !EqualType(at.GenericArgs[i], bt.GenericArgs[i]) {
				return false
			}
		}

		return true
	case *UnqualifiedDynInterfaceType:
		bt := b.(*UnqualifiedDynInterfaceType)
		return at.ID.String() == bt.ID.String()
	case *DynInterfaceType:
		bt := b.(*DynInterfaceType)
		return at.FQID.Equal(bt.FQID)
	case *FunctionPointerType:
		bt := b.(*FunctionPointerType)
		if at.Throws != bt.Throws || len(at.Params) != len(bt.Params) {
			return false
		}

		for i := range at.Params {
			if !EqualType(at.Params[i], bt.Params[i]) {
				return false
			}
		}

		return EqualType(at.Return, bt.Return)
	default:
		return false
	}
}

// EqualTypeSlice compares two parameter-type lists for exact structural
// equality, used by overload-conflict detection (§4.3) and overload
// resolution (§4.4).
func EqualTypeSlice(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !EqualType(a[i], b[i]) {
			return false
		}
	}

	return true
}

// EqualExpr compares two expressions structurally, with the same
// error-variant short-circuit as EqualType: an ErrorExpr compares equal to
// any expression so a tree containing one already-reported failure does
// not cascade into spurious mismatches elsewhere in the comparison.
func EqualExpr(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind() == KindErrorExpr || b.Kind() == KindErrorExpr {
		return true
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch at := a.(type) {
	case *StringLiteralExpr:
		return at.Value == b.(*StringLiteralExpr).Value
	case *IntegerLiteralExpr:
		bt := b.(*IntegerLiteralExpr)
		return at.Value == bt.Value && at.Negative == bt.Negative
	case *FloatLiteralExpr:
		return at.Value == b.(*FloatLiteralExpr).Value
	case *BoolLiteralExpr:
		return at.Value == b.(*BoolLiteralExpr).Value
	case *CharLiteralExpr:
		return at.Value == b.(*CharLiteralExpr).Value
	case *NilLiteralExpr:
		return true
	case *ArrayLiteralExpr:
		return equalExprSlice(at.Elements, b.(*ArrayLiteralExpr).Elements)
	case *IdentifierExpr:
		return at.ID.String() == b.(*IdentifierExpr).ID.String()
	case *LocalIdentifierExpr:
		return at.Name == b.(*LocalIdentifierExpr).Name
	case *OverloadRefExpr:
		return at.FQID.Equal(b.(*OverloadRefExpr).FQID)
	case *StaticGlobalExpr:
		return at.FQID.Equal(b.(*StaticGlobalExpr).FQID)
	case *CallExpr:
		bt := b.(*CallExpr)
		return EqualExpr(at.Callee, bt.Callee) && equalExprSlice(at.Args, bt.Args) &&
			EqualTypeSlice(at.GenericArgs, bt.GenericArgs)
	case *StaticCallExpr:
		bt := b.(*StaticCallExpr)
		return at.FQID.Equal(bt.FQID) && equalExprSlice(at.Args, bt.Args)
	case *MethodCallExpr:
		bt := b.(*MethodCallExpr)
		return at.Method == bt.Method && EqualExpr(at.Receiver, bt.Receiver) && equalExprSlice(at.Args, bt.Args)
	case *StaticMethodCallExpr:
		bt := b.(*StaticMethodCallExpr)
		return at.FQID.Equal(bt.FQID) && EqualExpr(at.Receiver, bt.Receiver) && equalExprSlice(at.Args, bt.Args)
	case *IndexExpr:
		bt := b.(*IndexExpr)
		return EqualExpr(at.Object, bt.Object) && EqualExpr(at.Index, bt.Index)
	case *FieldAccessExpr:
		bt := b.(*FieldAccessExpr)
		return at.Field == bt.Field && EqualExpr(at.Object, bt.Object)
	case *GroupExpr:
		return EqualExpr(at.Inner, b.(*GroupExpr).Inner)
	case *UnaryExpr:
		bt := b.(*UnaryExpr)
		return at.Op == bt.Op && EqualExpr(at.Operand, bt.Operand)
	case *BinaryExpr:
		bt := b.(*BinaryExpr)
		return at.Op == bt.Op && EqualExpr(at.Left, bt.Left) && EqualExpr(at.Right, bt.Right)
	case *CastExpr:
		bt := b.(*CastExpr)
		return at.Unsafe == bt.Unsafe && EqualExpr(at.Operand, bt.Operand) && EqualType(at.Target, bt.Target)
	case *BlockExpr:
		bt := b.(*BlockExpr)
		if len(at.Statements) != len(bt.Statements) {
			return false
		}

		for i := range at.Statements {
			if !EqualStmt(at.Statements[i], bt.Statements[i]) {
				return false
			}
		}

		return EqualExpr(at.Tail, bt.Tail)
	case *IfThenExpr:
		bt := b.(*IfThenExpr)
		return EqualExpr(at.Cond, bt.Cond) && EqualExpr(at.Then, bt.Then)
	case *IfElseExpr:
		bt := b.(*IfElseExpr)
		if !EqualExpr(at.Cond, bt.Cond) || !EqualExpr(at.Then, bt.Then) || len(at.ElseIfs) != len(bt.ElseIfs) {
			return false
		}

		for i := range at.ElseIfs {
			if !EqualExpr(at.ElseIfs[i].Cond, bt.ElseIfs[i].Cond) || !EqualExpr(at.ElseIfs[i].Then, bt.ElseIfs[i].Then) {
				return false
			}
		}

		return EqualExpr(at.Else, bt.Else)
	case *LoopExpr:
		return EqualExpr(at.Body, b.(*LoopExpr).Body)
	case *WhileExpr:
		bt := b.(*WhileExpr)
		return EqualExpr(at.Cond, bt.Cond) && EqualExpr(at.Body, bt.Body)
	case *ForExpr:
		bt := b.(*ForExpr)
		return at.Direction == bt.Direction && EqualExpr(at.Init, bt.Init) &&
			EqualExpr(at.Last, bt.Last) && EqualExpr(at.Body, bt.Body)
	case *ReturnExpr:
		return EqualExpr(at.Value, b.(*ReturnExpr).Value)
	case *BreakExpr:
		return EqualExpr(at.Value, b.(*BreakExpr).Value)
	case *ContinueExpr:
		return true
	case *StructInitExpr:
		bt := b.(*StructInitExpr)
		if !EqualType(at.Target, bt.Target) || len(at.Fields) != len(bt.Fields) {
			return false
		}

		for i := range at.Fields {
			if at.Fields[i].Name != bt.Fields[i].Name || !EqualExpr(at.Fields[i].Value, bt.Fields[i].Value) {
				return false
			}
		}

		return true
	case *ImplicitConversionExpr:
		bt := b.(*ImplicitConversionExpr)
		return EqualType(at.Target, bt.Target) && EqualExpr(at.Inner, bt.Inner)
	case *LoadExpr:
		return EqualExpr(at.Inner, b.(*LoadExpr).Inner)
	case *AddressOfExpr:
		bt := b.(*AddressOfExpr)
		return at.Mutable == bt.Mutable && EqualExpr(at.Operand, bt.Operand)
	case *SliceOfExpr:
		return EqualExpr(at.Operand, b.(*SliceOfExpr).Operand)
	case *RangeExpr:
		bt := b.(*RangeExpr)
		return EqualExpr(at.Start, bt.Start) && EqualExpr(at.End, bt.End)
	case *SizeofExpr:
		return EqualType(at.Target, b.(*SizeofExpr).Target)
	default:
		return false
	}
}

func equalExprSlice(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !EqualExpr(a[i], b[i]) {
			return false
		}
	}

	return true
}

// EqualStmt compares two statements structurally, with the same
// error-variant short-circuit as EqualType/EqualExpr.
func EqualStmt(a, b Statement) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind() == KindErrorStatement || b.Kind() == KindErrorStatement {
		return true
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch at := a.(type) {
	case *BindingStatement:
		bt := b.(*BindingStatement)
		return at.Name == bt.Name && at.Mutable == bt.Mutable &&
			EqualType(at.TypeHint, bt.TypeHint) && EqualExpr(at.Init, bt.Init)
	case *AssertionStatement:
		bt := b.(*AssertionStatement)
		return at.Message == bt.Message && EqualExpr(at.Cond, bt.Cond)
	case *ExpressionStatement:
		return EqualExpr(at.Expr, b.(*ExpressionStatement).Expr)
	default:
		return false
	}
}

// EqualDecl compares two declarations structurally, with the same
// error-variant short-circuit as the other three sorts.
func EqualDecl(a, b Declaration) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind() == KindErrorDeclaration || b.Kind() == KindErrorDeclaration {
		return true
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch at := a.(type) {
	case *ImportDeclaration:
		return at.Module.Equal(b.(*ImportDeclaration).Module)
	case *ImportFromDeclaration:
		bt := b.(*ImportFromDeclaration)
		if !at.Module.Equal(bt.Module) || len(at.Names) != len(bt.Names) {
			return false
		}

		for i := range at.Names {
			if at.Names[i] != bt.Names[i] {
				return false
			}
		}

		return true
	case *FunctionDeclaration:
		bt := b.(*FunctionDeclaration)
		return at.Proto.Name == bt.Proto.Name && EqualExpr(at.Body, bt.Body)
	case *MethodDeclaration:
		bt := b.(*MethodDeclaration)
		return at.Proto.Name == bt.Proto.Name && EqualType(at.ReceiverType, bt.ReceiverType) && EqualExpr(at.Body, bt.Body)
	case *StructDeclaration:
		bt := b.(*StructDeclaration)
		if at.Name != bt.Name || len(at.Fields) != len(bt.Fields) {
			return false
		}

		for i := range at.Fields {
			if at.Fields[i].Name != bt.Fields[i].Name || !EqualType(at.Fields[i].Type, bt.Fields[i].Type) {
				return false
			}
		}

		return true
	case *ClassDeclaration:
		return at.Name == b.(*ClassDeclaration).Name
	case *TypeAliasDeclaration:
		bt := b.(*TypeAliasDeclaration)
		return at.Name == bt.Name && EqualType(at.Aliased, bt.Aliased)
	case *ExternalFnDeclaration:
		return at.Proto.Name == b.(*ExternalFnDeclaration).Proto.Name
	case *ExternalBlockDeclaration:
		bt := b.(*ExternalBlockDeclaration)
		if at.ABI != bt.ABI || len(at.Decls) != len(bt.Decls) {
			return false
		}

		for i := range at.Decls {
			if !EqualDecl(at.Decls[i], bt.Decls[i]) {
				return false
			}
		}

		return true
	case *ConstantDeclaration:
		bt := b.(*ConstantDeclaration)
		return at.Name == bt.Name && EqualType(at.TypeHint, bt.TypeHint) && EqualExpr(at.Value, bt.Value)
	default:
		return false
	}
}
