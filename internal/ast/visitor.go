// Visitor pattern implementation for AST traversal (§4.1). Each of the
// five polymorphic sorts gets its own visitor interface with one method
// per concrete variant; a node dispatches to the matching method through
// its AcceptX method. These are the read-only flavor: a visitor that
// needs to produce a value stages it into itself (an ordinary struct
// field) and the caller retrieves it after Accept returns, rather than
// threading a generic return type through the interface.
//
// The mutating flavor the spec also calls for (§4.1 "Replacement
// discipline") is not a second parallel interface hierarchy here: per the
// design note in spec.md §9, Go's ownership model makes direct field
// reassignment by the owning pass (resolver, type checker) the idiomatic
// translation of the original's owner-accessor triplets, so resolver and
// typechecker recurse with ordinary switch-based methods and assign
// straight into a parent's field when they replace a child. The
// Base*Visitor no-op embeddings and WalkDeclarations below exist for
// read-only consumers (a pretty printer, a reference counter, a debug
// dumper).
package ast

// DeclarationVisitor visits every concrete Declaration variant.
type DeclarationVisitor interface {
	VisitErrorDeclaration(d *ErrorDeclaration)
	VisitImportDeclaration(d *ImportDeclaration)
	VisitImportFromDeclaration(d *ImportFromDeclaration)
	VisitFunctionDeclaration(d *FunctionDeclaration)
	VisitMethodDeclaration(d *MethodDeclaration)
	VisitStructDeclaration(d *StructDeclaration)
	VisitClassDeclaration(d *ClassDeclaration)
	VisitTypeAliasDeclaration(d *TypeAliasDeclaration)
	VisitExternalFnDeclaration(d *ExternalFnDeclaration)
	VisitExternalBlockDeclaration(d *ExternalBlockDeclaration)
	VisitConstantDeclaration(d *ConstantDeclaration)
}

// StatementVisitor visits every concrete Statement variant.
type StatementVisitor interface {
	VisitErrorStatement(s *ErrorStatement)
	VisitBindingStatement(s *BindingStatement)
	VisitAssertionStatement(s *AssertionStatement)
	VisitExpressionStatement(s *ExpressionStatement)
}

// ExpressionVisitor visits every concrete Expression variant.
type ExpressionVisitor interface {
	VisitErrorExpr(e *ErrorExpr)
	VisitStringLiteralExpr(e *StringLiteralExpr)
	VisitIntegerLiteralExpr(e *IntegerLiteralExpr)
	VisitFloatLiteralExpr(e *FloatLiteralExpr)
	VisitBoolLiteralExpr(e *BoolLiteralExpr)
	VisitCharLiteralExpr(e *CharLiteralExpr)
	VisitNilLiteralExpr(e *NilLiteralExpr)
	VisitArrayLiteralExpr(e *ArrayLiteralExpr)
	VisitIdentifierExpr(e *IdentifierExpr)
	VisitLocalIdentifierExpr(e *LocalIdentifierExpr)
	VisitOverloadRefExpr(e *OverloadRefExpr)
	VisitStaticGlobalExpr(e *StaticGlobalExpr)
	VisitCallExpr(e *CallExpr)
	VisitStaticCallExpr(e *StaticCallExpr)
	VisitMethodCallExpr(e *MethodCallExpr)
	VisitStaticMethodCallExpr(e *StaticMethodCallExpr)
	VisitIndexExpr(e *IndexExpr)
	VisitFieldAccessExpr(e *FieldAccessExpr)
	VisitGroupExpr(e *GroupExpr)
	VisitUnaryExpr(e *UnaryExpr)
	VisitBinaryExpr(e *BinaryExpr)
	VisitCastExpr(e *CastExpr)
	VisitIfThenExpr(e *IfThenExpr)
	VisitIfElseExpr(e *IfElseExpr)
	VisitBlockExpr(e *BlockExpr)
	VisitLoopExpr(e *LoopExpr)
	VisitWhileExpr(e *WhileExpr)
	VisitForExpr(e *ForExpr)
	VisitReturnExpr(e *ReturnExpr)
	VisitBreakExpr(e *BreakExpr)
	VisitContinueExpr(e *ContinueExpr)
	VisitStructInitExpr(e *StructInitExpr)
	VisitImplicitConversionExpr(e *ImplicitConversionExpr)
	VisitLoadExpr(e *LoadExpr)
	VisitAddressOfExpr(e *AddressOfExpr)
	VisitSliceOfExpr(e *SliceOfExpr)
	VisitRangeExpr(e *RangeExpr)
	VisitSizeofExpr(e *SizeofExpr)
}

// TypeVisitor visits every concrete Type variant.
type TypeVisitor interface {
	VisitErrorType(t *ErrorType)
	VisitReferenceType(t *ReferenceType)
	VisitSliceType(t *SliceType)
	VisitPointerType(t *PointerType)
	VisitArrayType(t *ArrayType)
	VisitIntegralType(t *IntegralType)
	VisitFloatType(t *FloatType)
	VisitBoolType(t *BoolType)
	VisitByteType(t *ByteType)
	VisitCharType(t *CharType)
	VisitVoidType(t *VoidType)
	VisitNilPointerType(t *NilPointerType)
	VisitUnsizedIntegerType(t *UnsizedIntegerType)
	VisitIndirectionType(t *IndirectionType)
	VisitUnqualifiedUserDefinedType(t *UnqualifiedUserDefinedType)
	VisitUserDefinedType(t *UserDefinedType)
	VisitUnqualifiedDynInterfaceType(t *UnqualifiedDynInterfaceType)
	VisitDynInterfaceType(t *DynInterfaceType)
	VisitFunctionPointerType(t *FunctionPointerType)
}

// AttributeVisitor visits the fifth, narrower "prototype-part" sort.
type AttributeVisitor interface {
	VisitAttribute(a *Attribute)
}

// BaseTypeVisitor is embedded by type visitors that only care about a
// handful of variants; unhandled variants are no-ops.
type BaseTypeVisitor struct{}

func (BaseTypeVisitor) VisitErrorType(*ErrorType)                                     {}
func (BaseTypeVisitor) VisitReferenceType(*ReferenceType)                             {}
func (BaseTypeVisitor) VisitSliceType(*SliceType)                                     {}
func (BaseTypeVisitor) VisitPointerType(*PointerType)                                 {}
func (BaseTypeVisitor) VisitArrayType(*ArrayType)                                     {}
func (BaseTypeVisitor) VisitIntegralType(*IntegralType)                               {}
func (BaseTypeVisitor) VisitFloatType(*FloatType)                                     {}
func (BaseTypeVisitor) VisitBoolType(*BoolType)                                       {}
func (BaseTypeVisitor) VisitByteType(*ByteType)                                       {}
func (BaseTypeVisitor) VisitCharType(*CharType)                                       {}
func (BaseTypeVisitor) VisitVoidType(*VoidType)                                       {}
func (BaseTypeVisitor) VisitNilPointerType(*NilPointerType)                           {}
func (BaseTypeVisitor) VisitUnsizedIntegerType(*UnsizedIntegerType)                   {}
func (BaseTypeVisitor) VisitIndirectionType(*IndirectionType)                         {}
func (BaseTypeVisitor) VisitUnqualifiedUserDefinedType(*UnqualifiedUserDefinedType)   {}
func (BaseTypeVisitor) VisitUserDefinedType(*UserDefinedType)                         {}
func (BaseTypeVisitor) VisitUnqualifiedDynInterfaceType(*UnqualifiedDynInterfaceType) {}
func (BaseTypeVisitor) VisitDynInterfaceType(*DynInterfaceType)                       {}
func (BaseTypeVisitor) VisitFunctionPointerType(*FunctionPointerType)                 {}

// BaseExpressionVisitor is embedded by expression visitors that only care
// about a handful of variants.
type BaseExpressionVisitor struct{}

func (BaseExpressionVisitor) VisitErrorExpr(*ErrorExpr)                             {}
func (BaseExpressionVisitor) VisitStringLiteralExpr(*StringLiteralExpr)             {}
func (BaseExpressionVisitor) VisitIntegerLiteralExpr(*IntegerLiteralExpr)           {}
func (BaseExpressionVisitor) VisitFloatLiteralExpr(*FloatLiteralExpr)               {}
func (BaseExpressionVisitor) VisitBoolLiteralExpr(*BoolLiteralExpr)                 {}
func (BaseExpressionVisitor) VisitCharLiteralExpr(*CharLiteralExpr)                 {}
func (BaseExpressionVisitor) VisitNilLiteralExpr(*NilLiteralExpr)                   {}
func (BaseExpressionVisitor) VisitArrayLiteralExpr(*ArrayLiteralExpr)               {}
func (BaseExpressionVisitor) VisitIdentifierExpr(*IdentifierExpr)                   {}
func (BaseExpressionVisitor) VisitLocalIdentifierExpr(*LocalIdentifierExpr)         {}
func (BaseExpressionVisitor) VisitOverloadRefExpr(*OverloadRefExpr)                 {}
func (BaseExpressionVisitor) VisitStaticGlobalExpr(*StaticGlobalExpr)               {}
func (BaseExpressionVisitor) VisitCallExpr(*CallExpr)                               {}
func (BaseExpressionVisitor) VisitStaticCallExpr(*StaticCallExpr)                   {}
func (BaseExpressionVisitor) VisitMethodCallExpr(*MethodCallExpr)                   {}
func (BaseExpressionVisitor) VisitStaticMethodCallExpr(*StaticMethodCallExpr)       {}
func (BaseExpressionVisitor) VisitIndexExpr(*IndexExpr)                             {}
func (BaseExpressionVisitor) VisitFieldAccessExpr(*FieldAccessExpr)                 {}
func (BaseExpressionVisitor) VisitGroupExpr(*GroupExpr)                             {}
func (BaseExpressionVisitor) VisitUnaryExpr(*UnaryExpr)                             {}
func (BaseExpressionVisitor) VisitBinaryExpr(*BinaryExpr)                           {}
func (BaseExpressionVisitor) VisitCastExpr(*CastExpr)                               {}
func (BaseExpressionVisitor) VisitIfThenExpr(*IfThenExpr)                           {}
func (BaseExpressionVisitor) VisitIfElseExpr(*IfElseExpr)                           {}
func (BaseExpressionVisitor) VisitBlockExpr(*BlockExpr)                             {}
func (BaseExpressionVisitor) VisitLoopExpr(*LoopExpr)                               {}
func (BaseExpressionVisitor) VisitWhileExpr(*WhileExpr)                             {}
func (BaseExpressionVisitor) VisitForExpr(*ForExpr)                                 {}
func (BaseExpressionVisitor) VisitReturnExpr(*ReturnExpr)                           {}
func (BaseExpressionVisitor) VisitBreakExpr(*BreakExpr)                             {}
func (BaseExpressionVisitor) VisitContinueExpr(*ContinueExpr)                       {}
func (BaseExpressionVisitor) VisitStructInitExpr(*StructInitExpr)                   {}
func (BaseExpressionVisitor) VisitImplicitConversionExpr(*ImplicitConversionExpr)   {}
func (BaseExpressionVisitor) VisitLoadExpr(*LoadExpr)                               {}
func (BaseExpressionVisitor) VisitAddressOfExpr(*AddressOfExpr)                     {}
func (BaseExpressionVisitor) VisitSliceOfExpr(*SliceOfExpr)                         {}
func (BaseExpressionVisitor) VisitRangeExpr(*RangeExpr)                             {}
func (BaseExpressionVisitor) VisitSizeofExpr(*SizeofExpr)                           {}

// BaseStatementVisitor is embedded by statement visitors that only care
// about a handful of variants.
type BaseStatementVisitor struct{}

func (BaseStatementVisitor) VisitErrorStatement(*ErrorStatement)           {}
func (BaseStatementVisitor) VisitBindingStatement(*BindingStatement)       {}
func (BaseStatementVisitor) VisitAssertionStatement(*AssertionStatement)   {}
func (BaseStatementVisitor) VisitExpressionStatement(*ExpressionStatement) {}

// BaseDeclarationVisitor is embedded by declaration visitors that only
// care about a handful of variants.
type BaseDeclarationVisitor struct{}

func (BaseDeclarationVisitor) VisitErrorDeclaration(*ErrorDeclaration)                 {}
func (BaseDeclarationVisitor) VisitImportDeclaration(*ImportDeclaration)               {}
func (BaseDeclarationVisitor) VisitImportFromDeclaration(*ImportFromDeclaration)       {}
func (BaseDeclarationVisitor) VisitFunctionDeclaration(*FunctionDeclaration)           {}
func (BaseDeclarationVisitor) VisitMethodDeclaration(*MethodDeclaration)               {}
func (BaseDeclarationVisitor) VisitStructDeclaration(*StructDeclaration)               {}
func (BaseDeclarationVisitor) VisitClassDeclaration(*ClassDeclaration)                 {}
func (BaseDeclarationVisitor) VisitTypeAliasDeclaration(*TypeAliasDeclaration)         {}
func (BaseDeclarationVisitor) VisitExternalFnDeclaration(*ExternalFnDeclaration)       {}
func (BaseDeclarationVisitor) VisitExternalBlockDeclaration(*ExternalBlockDeclaration) {}
func (BaseDeclarationVisitor) VisitConstantDeclaration(*ConstantDeclaration)           {}

// WalkDeclarations calls fn for every declaration directly owned by the
// program. Passes that need to recurse into statements/expressions/types
// do so through their own logic (resolver, typechecker) or through a
// purpose-built read-only visitor embedding the Base*Visitor types above.
func WalkDeclarations(p *Program, fn func(Declaration)) {
	for _, d := range p.Declarations {
		fn(d)
	}
}
