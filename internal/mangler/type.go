package mangler

import (
	"bytes"
	"fmt"

	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/galliumerr"
)

// typeMangler accumulates one declaration's type encodings into buf,
// applying the substitution rule as it goes: the table is local to a
// single Mangle call (one per declaration), matching mangler.cc's
// Mangler instance lifetime.
type typeMangler struct {
	buf  *bytes.Buffer
	subs map[string]int
}

func newTypeMangler(buf *bytes.Buffer) *typeMangler {
	return &typeMangler{buf: buf, subs: map[string]int{}}
}

// mangle writes t's encoding, substituting it for a prior identical
// encoding if one was already recorded this declaration. Substitution
// only applies to user-defined and dyn-interface types (§4.5): every
// other type kind is small enough that re-encoding it is cheaper than a
// back-reference, and the grammar doesn't award it one.
func (m *typeMangler) mangle(t ast.Type) error {
	start := m.buf.Len()

	if err := m.encode(t); err != nil {
		return err
	}

	if !isSubstitutable(t) {
		return nil
	}

	fragment := m.buf.String()[start:]

	if idx, ok := m.subs[fragment]; ok {
		m.buf.Truncate(start)
		fmt.Fprintf(m.buf, "Z%d_", idx)

		return nil
	}

	m.subs[fragment] = len(m.subs)

	return nil
}

func isSubstitutable(t ast.Type) bool {
	switch t.(type) {
	case *ast.UserDefinedType, *ast.DynInterfaceType:
		return true
	default:
		return false
	}
}

func (m *typeMangler) encode(t ast.Type) error {
	switch v := t.(type) {
	case *ast.VoidType:
		m.buf.WriteByte('v')
	case *ast.ByteType:
		m.buf.WriteByte('a')
	case *ast.BoolType:
		m.buf.WriteByte('b')
	case *ast.CharType:
		m.buf.WriteByte('c')
	case *ast.IntegralType:
		letter, err := integralLetter(v)
		if err != nil {
			return err
		}

		m.buf.WriteByte(letter)
	case *ast.FloatType:
		letter, err := floatLetter(v)
		if err != nil {
			return err
		}

		m.buf.WriteByte(letter)
	case *ast.ReferenceType:
		if v.Mut {
			m.buf.WriteByte('S')
		} else {
			m.buf.WriteByte('R')
		}

		return m.mangle(v.Elem)
	case *ast.PointerType:
		if v.Mut {
			m.buf.WriteByte('Q')
		} else {
			m.buf.WriteByte('P')
		}

		return m.mangle(v.Elem)
	case *ast.SliceType:
		if v.Mut {
			m.buf.WriteByte('C')
		} else {
			m.buf.WriteByte('B')
		}

		return m.mangle(v.Elem)
	case *ast.ArrayType:
		m.buf.WriteByte('A')

		if err := m.mangle(v.Elem); err != nil {
			return err
		}

		fmt.Fprintf(m.buf, "%d_", v.Size)
	case *ast.FunctionPointerType:
		m.buf.WriteByte('F')

		if v.Throws {
			m.buf.WriteByte('T')
		} else {
			m.buf.WriteByte('N')
		}

		for _, p := range v.Params {
			if err := m.mangle(p); err != nil {
				return err
			}
		}

		m.buf.WriteByte('E')

		return m.mangle(returnTypeOf(v.Return))
	case *ast.UserDefinedType:
		writeModulePrefix(m.buf, v.FQID)
		fmt.Fprintf(m.buf, "U%d%s", len(v.FQID.Name), v.FQID.Name)
	case *ast.DynInterfaceType:
		writeModulePrefix(m.buf, v.FQID)
		fmt.Fprintf(m.buf, "D%d%s", len(v.FQID.Name), v.FQID.Name)
	default:
		return galliumerr.Internal(fmt.Sprintf("cannot mangle type kind %T (unresolved or unmangleable)", t))
	}

	return nil
}

func integralLetter(t *ast.IntegralType) (byte, error) {
	unsignedLetters := [...]byte{ast.Int8: 'd', ast.Int16: 'e', ast.Int32: 'f', ast.Int64: 'g', ast.Int128: 'h', ast.IntNative: 'i'}
	signedLetters := [...]byte{ast.Int8: 'j', ast.Int16: 'k', ast.Int32: 'l', ast.Int64: 'm', ast.Int128: 'n', ast.IntNative: 'o'}

	if t.Width < ast.Int8 || t.Width > ast.IntNative {
		return 0, galliumerr.Internal(fmt.Sprintf("integral type has unrecognized width %d", t.Width))
	}

	if t.Signed {
		return signedLetters[t.Width], nil
	}

	return unsignedLetters[t.Width], nil
}

func floatLetter(t *ast.FloatType) (byte, error) {
	switch t.Width {
	case ast.Float32:
		return 'p', nil
	case ast.Float64:
		return 'q', nil
	case ast.Float128:
		return 'r', nil
	default:
		return 0, galliumerr.Internal(fmt.Sprintf("float type has unrecognized width %d", t.Width))
	}
}
