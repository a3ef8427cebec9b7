package ast

import (
	"fmt"
	"strings"

	"github.com/gallium-lang/gallium/internal/position"
)

// IntWidth is the bit width of a builtin integral type.
type IntWidth int

const (
	Int8 IntWidth = iota
	Int16
	Int32
	Int64
	Int128
	IntNative // usize/isize: pointer-width, resolved by the back end.
)

func (w IntWidth) String() string {
	switch w {
	case Int8:
		return "8"
	case Int16:
		return "16"
	case Int32:
		return "32"
	case Int64:
		return "64"
	case Int128:
		return "128"
	case IntNative:
		return "size"
	default:
		return "?"
	}
}

// FloatWidth is the bit width of a builtin floating-point type.
type FloatWidth int

const (
	Float32 FloatWidth = 32
	Float64 FloatWidth = 64
	Float128 FloatWidth = 128
)

// ErrorType is the distinguished type that compares equal to any other
// type of any kind — it suppresses cascading diagnostics once one has
// already been reported against the expression it annotates.
type ErrorType struct{ TypeBase }

func (*ErrorType) Kind() NodeKind             { return KindErrorType }
func (*ErrorType) String() string             { return "<error-type>" }
func (t *ErrorType) AcceptType(v TypeVisitor)  { v.VisitErrorType(t) }

// ReferenceType is `&T` or `&mut T`.
type ReferenceType struct {
	TypeBase
	Elem  Type
	Mut   bool
}

func (*ReferenceType) Kind() NodeKind { return KindReferenceType }
func (t *ReferenceType) String() string {
	if t.Mut {
		return "&mut " + t.Elem.String()
	}

	return "&" + t.Elem.String()
}
func (t *ReferenceType) AcceptType(v TypeVisitor) { v.VisitReferenceType(t) }

// SliceType is `[T]` or `[mut T]`.
type SliceType struct {
	TypeBase
	Elem Type
	Mut  bool
}

func (*SliceType) Kind() NodeKind { return KindSliceType }
func (t *SliceType) String() string {
	if t.Mut {
		return "[mut " + t.Elem.String() + "]"
	}

	return "[" + t.Elem.String() + "]"
}
func (t *SliceType) AcceptType(v TypeVisitor) { v.VisitSliceType(t) }

// PointerType is `*const T` or `*mut T`.
type PointerType struct {
	TypeBase
	Elem Type
	Mut  bool
}

func (*PointerType) Kind() NodeKind { return KindPointerType }
func (t *PointerType) String() string {
	if t.Mut {
		return "*mut " + t.Elem.String()
	}

	return "*const " + t.Elem.String()
}
func (t *PointerType) AcceptType(v TypeVisitor) { v.VisitPointerType(t) }

// ArrayType is `[T; N]`.
type ArrayType struct {
	TypeBase
	Elem Type
	Size int64
}

func (*ArrayType) Kind() NodeKind { return KindArrayType }
func (t *ArrayType) String() string {
	return fmt.Sprintf("[%s; %d]", t.Elem.String(), t.Size)
}
func (t *ArrayType) AcceptType(v TypeVisitor) { v.VisitArrayType(t) }

// IntegralType is a builtin signed or unsigned integer of a fixed width.
type IntegralType struct {
	TypeBase
	Width  IntWidth
	Signed bool
}

func (*IntegralType) Kind() NodeKind { return KindIntegralType }
func (t *IntegralType) String() string {
	if t.Signed {
		return "i" + t.Width.String()
	}

	return "u" + t.Width.String()
}
func (t *IntegralType) AcceptType(v TypeVisitor) { v.VisitIntegralType(t) }

// FloatType is a builtin IEEE floating-point type.
type FloatType struct {
	TypeBase
	Width FloatWidth
}

func (*FloatType) Kind() NodeKind       { return KindFloatType }
func (t *FloatType) String() string     { return fmt.Sprintf("f%d", t.Width) }
func (t *FloatType) AcceptType(v TypeVisitor) { v.VisitFloatType(t) }

// BoolType is the builtin boolean type.
type BoolType struct{ TypeBase }

func (*BoolType) Kind() NodeKind             { return KindBoolType }
func (*BoolType) String() string             { return "bool" }
func (t *BoolType) AcceptType(v TypeVisitor)  { v.VisitBoolType(t) }

// ByteType is the builtin byte type (distinct from u8 until an explicit
// conversion; see §4.4 implicit conversions).
type ByteType struct{ TypeBase }

func (*ByteType) Kind() NodeKind            { return KindByteType }
func (*ByteType) String() string            { return "byte" }
func (t *ByteType) AcceptType(v TypeVisitor) { v.VisitByteType(t) }

// CharType is the builtin character type (the type of a char literal).
type CharType struct{ TypeBase }

func (*CharType) Kind() NodeKind            { return KindCharType }
func (*CharType) String() string            { return "char" }
func (t *CharType) AcceptType(v TypeVisitor) { v.VisitCharType(t) }

// VoidType is the type of an expression or function with no value.
type VoidType struct{ TypeBase }

func (*VoidType) Kind() NodeKind            { return KindVoidType }
func (*VoidType) String() string            { return "void" }
func (t *VoidType) AcceptType(v TypeVisitor) { v.VisitVoidType(t) }

// NilPointerType is the inference placeholder type of a `nil` literal
// before the type checker fixes it to a concrete pointer type.
type NilPointerType struct{ TypeBase }

func (*NilPointerType) Kind() NodeKind            { return KindNilPointerType }
func (*NilPointerType) String() string            { return "<nil-type>" }
func (t *NilPointerType) AcceptType(v TypeVisitor) { v.VisitNilPointerType(t) }

// UnsizedIntegerType is the inference placeholder type of an integer
// literal before the type checker fixes it to a concrete integral type.
type UnsizedIntegerType struct{ TypeBase }

func (*UnsizedIntegerType) Kind() NodeKind            { return KindUnsizedIntegerType }
func (*UnsizedIntegerType) String() string            { return "<unsized-integer>" }
func (t *UnsizedIntegerType) AcceptType(v TypeVisitor) { v.VisitUnsizedIntegerType(t) }

// IndirectionType is a compiler-internal lvalue marker wrapping an
// object's real type. It is transparent to field-access and one level of
// dereference, but blocks a second, direct dereference-of-dereference.
type IndirectionType struct {
	TypeBase
	Elem Type
}

func (*IndirectionType) Kind() NodeKind            { return KindIndirectionType }
func (t *IndirectionType) String() string          { return "indirect(" + t.Elem.String() + ")" }
func (t *IndirectionType) AcceptType(v TypeVisitor) { v.VisitIndirectionType(t) }

// UnqualifiedUserDefinedType names a struct/class/alias by an
// UnqualifiedID, as produced by the parser. The resolver replaces every
// occurrence with a UserDefinedType carrying the resolved declaration.
type UnqualifiedUserDefinedType struct {
	TypeBase
	ID UnqualifiedID
}

func (*UnqualifiedUserDefinedType) Kind() NodeKind   { return KindUnqualifiedUserDefinedType }
func (t *UnqualifiedUserDefinedType) String() string { return t.ID.String() }
func (t *UnqualifiedUserDefinedType) AcceptType(v TypeVisitor) {
	v.VisitUnqualifiedUserDefinedType(t)
}

// UserDefinedType is the resolved form: an FQ id plus a non-owning
// back-pointer to the struct/class/alias declaration, plus any generic
// arguments supplied at the use site.
type UserDefinedType struct {
	TypeBase
	FQID         FullyQualifiedID
	Decl         Declaration
	GenericArgs  []Type
}

func (*UserDefinedType) Kind() NodeKind { return KindUserDefinedType }
func (t *UserDefinedType) String() string {
	if len(t.GenericArgs) == 0 {
		return t.FQID.String()
	}

	args := make([]string, len(t.GenericArgs))
	for i, a := range t.GenericArgs {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s<%s>", t.FQID.String(), strings.Join(args, ", "))
}
func (t *UserDefinedType) AcceptType(v TypeVisitor) { v.VisitUserDefinedType(t) }

// UnqualifiedDynInterfaceType names a `dyn Interface` by an UnqualifiedID
// before resolution.
type UnqualifiedDynInterfaceType struct {
	TypeBase
	ID UnqualifiedID
}

func (*UnqualifiedDynInterfaceType) Kind() NodeKind   { return KindUnqualifiedDynInterfaceType }
func (t *UnqualifiedDynInterfaceType) String() string { return "dyn " + t.ID.String() }
func (t *UnqualifiedDynInterfaceType) AcceptType(v TypeVisitor) {
	v.VisitUnqualifiedDynInterfaceType(t)
}

// DynInterfaceType is the resolved `dyn Interface` form.
type DynInterfaceType struct {
	TypeBase
	FQID FullyQualifiedID
	Decl Declaration
}

func (*DynInterfaceType) Kind() NodeKind            { return KindDynInterfaceType }
func (t *DynInterfaceType) String() string          { return "dyn " + t.FQID.String() }
func (t *DynInterfaceType) AcceptType(v TypeVisitor) { v.VisitDynInterfaceType(t) }

// FunctionPointerType is `fn(Args...) -> Return`.
type FunctionPointerType struct {
	TypeBase
	Params []Type
	Return Type
	Throws bool
}

func (*FunctionPointerType) Kind() NodeKind { return KindFunctionPointerType }
func (t *FunctionPointerType) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}

	throws := ""
	if t.Throws {
		throws = " throws"
	}

	ret := "void"
	if t.Return != nil {
		ret = t.Return.String()
	}

	return fmt.Sprintf("fn(%s)%s -> %s", strings.Join(params, ", "), throws, ret)
}
func (t *FunctionPointerType) AcceptType(v TypeVisitor) { v.VisitFunctionPointerType(t) }

// NewBuiltinType returns the canonical instance for one of the fixed
// builtin type names used throughout the table in §4.5 (e.g. mangling's
// one-letter builtin codes), or nil if name isn't a builtin.
func NewBuiltinType(name string, span position.Span) Type {
	base := TypeBase{NodeSpan: span}

	switch name {
	case "void":
		return &VoidType{TypeBase: base}
	case "byte":
		return &ByteType{TypeBase: base}
	case "bool":
		return &BoolType{TypeBase: base}
	case "char":
		return &CharType{TypeBase: base}
	case "f32":
		return &FloatType{TypeBase: base, Width: Float32}
	case "f64":
		return &FloatType{TypeBase: base, Width: Float64}
	case "f128":
		return &FloatType{TypeBase: base, Width: Float128}
	}

	if len(name) > 1 && (name[0] == 'i' || name[0] == 'u') {
		signed := name[0] == 'i'

		widths := map[string]IntWidth{
			"8": Int8, "16": Int16, "32": Int32, "64": Int64, "128": Int128, "size": IntNative,
		}
		if w, ok := widths[name[1:]]; ok {
			return &IntegralType{TypeBase: base, Width: w, Signed: signed}
		}
	}

	return nil
}
