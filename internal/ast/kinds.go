package ast

// The full enumeration of concrete node kinds, grouped by sort. A node's
// Kind() is used by the Equal* functions to short-circuit before doing any
// field-by-field comparison; it is not used for dispatch (Accept* methods
// dispatch directly to the matching visitor method).
const (
	KindErrorType NodeKind = iota
	KindReferenceType
	KindSliceType
	KindPointerType
	KindArrayType
	KindIntegralType
	KindFloatType
	KindBoolType
	KindByteType
	KindCharType
	KindVoidType
	KindNilPointerType
	KindUnsizedIntegerType
	KindIndirectionType
	KindUnqualifiedUserDefinedType
	KindUserDefinedType
	KindUnqualifiedDynInterfaceType
	KindDynInterfaceType
	KindFunctionPointerType

	KindErrorExpr
	KindStringLiteralExpr
	KindIntegerLiteralExpr
	KindFloatLiteralExpr
	KindBoolLiteralExpr
	KindCharLiteralExpr
	KindNilLiteralExpr
	KindArrayLiteralExpr
	KindIdentifierExpr
	KindLocalIdentifierExpr
	KindOverloadRefExpr
	KindStaticGlobalExpr
	KindCallExpr
	KindStaticCallExpr
	KindMethodCallExpr
	KindStaticMethodCallExpr
	KindIndexExpr
	KindFieldAccessExpr
	KindGroupExpr
	KindUnaryExpr
	KindBinaryExpr
	KindCastExpr
	KindIfThenExpr
	KindIfElseExpr
	KindBlockExpr
	KindLoopExpr
	KindWhileExpr
	KindForExpr
	KindReturnExpr
	KindBreakExpr
	KindContinueExpr
	KindStructInitExpr
	KindImplicitConversionExpr
	KindLoadExpr
	KindAddressOfExpr
	KindSliceOfExpr
	KindRangeExpr
	KindSizeofExpr

	KindBindingStatement
	KindAssertionStatement
	KindExpressionStatement
	KindErrorStatement

	KindErrorDeclaration
	KindImportDeclaration
	KindImportFromDeclaration
	KindFunctionDeclaration
	KindMethodDeclaration
	KindStructDeclaration
	KindClassDeclaration
	KindTypeAliasDeclaration
	KindExternalFnDeclaration
	KindExternalBlockDeclaration
	KindConstantDeclaration
)
