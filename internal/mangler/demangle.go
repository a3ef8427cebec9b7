package mangler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gallium-lang/gallium/internal/galliumerr"
)

// mainProse is what mangledMain demangles back to, the mirror image of
// the main exception on the encoding side.
const mainProse = "fn ::main() -> void"

// Demangle reverses Mangle, producing human-readable prose (e.g.
// `fn ::core::mem::allocate(&::core::mem::Layout) -> void`). Any string
// without the `_G` prefix (and not the fixed main symbol) demangles to
// itself, per §4.5.
//
// Implemented as a recursive-descent parser over the mangling grammar,
// not a table lookup, grounded directly on mangler.cc's Demangler: it
// builds its own substitution list as it walks, mirroring the encode
// side's table one token at a time.
func Demangle(symbol string) (string, error) {
	if symbol == mangledMain {
		return mainProse, nil
	}

	if len(symbol) < 3 || symbol[:2] != "_G" {
		return symbol, nil
	}

	d := &demangler{s: symbol, pos: 2}

	return d.demangle()
}

type demangler struct {
	s    string
	pos  int
	out  strings.Builder
	subs []string
}

func (d *demangler) demangle() (string, error) {
	d.out.WriteString("::")

	for {
		if d.pos >= len(d.s) {
			return "", galliumerr.MalformedSymbol(d.s, "missing `F`/`C` kind marker")
		}

		switch d.s[d.pos] {
		case 'F':
			return d.function()
		case 'C':
			return d.constant()
		default:
			if !isDigit(d.s[d.pos]) {
				return "", galliumerr.MalformedSymbol(d.s, fmt.Sprintf("unexpected byte %q in module prefix", string(d.s[d.pos])))
			}

			segments, err := d.consumeModuleSegments()
			if err != nil {
				return "", err
			}

			d.out.WriteString(segments)
		}
	}
}

func (d *demangler) function() (string, error) {
	d.pos++ // eat 'F'

	name, err := d.partWithLen()
	if err != nil {
		return "", err
	}

	d.out.WriteString(name)

	if d.pos >= len(d.s) {
		return "", galliumerr.MalformedSymbol(d.s, "truncated after function name")
	}

	throws := d.s[d.pos] == 'T'
	d.pos++

	d.out.WriteString("(")

	first := true
	for {
		if d.pos >= len(d.s) {
			return "", galliumerr.MalformedSymbol(d.s, "unterminated parameter list")
		}

		if d.s[d.pos] == 'E' {
			break
		}

		if !first {
			d.out.WriteString(", ")
		}
		first = false

		if err := d.typeOf(); err != nil {
			return "", err
		}
	}
	d.pos++ // eat 'E'

	if throws {
		d.out.WriteString(") throws -> ")
	} else {
		d.out.WriteString(") -> ")
	}

	if err := d.typeOf(); err != nil {
		return "", err
	}

	return "fn " + d.out.String(), nil
}

func (d *demangler) constant() (string, error) {
	d.pos++ // eat 'C'

	name, err := d.partWithLen()
	if err != nil {
		return "", err
	}

	d.out.WriteString(name)
	d.out.WriteString(": ")

	if err := d.typeOf(); err != nil {
		return "", err
	}

	return "const " + d.out.String(), nil
}

// typeOf parses and renders one <type> production, advancing pos past it.
func (d *demangler) typeOf() error {
	if d.pos >= len(d.s) {
		return galliumerr.MalformedSymbol(d.s, "unexpected end of input while reading a type")
	}

	c := d.s[d.pos]
	d.pos++

	switch c {
	case 'v':
		d.out.WriteString("void")
	case 'a':
		d.out.WriteString("byte")
	case 'b':
		d.out.WriteString("bool")
	case 'c':
		d.out.WriteString("char")
	case 'd':
		d.out.WriteString("u8")
	case 'e':
		d.out.WriteString("u16")
	case 'f':
		d.out.WriteString("u32")
	case 'g':
		d.out.WriteString("u64")
	case 'h':
		d.out.WriteString("u128")
	case 'i':
		d.out.WriteString("usize")
	case 'j':
		d.out.WriteString("i8")
	case 'k':
		d.out.WriteString("i16")
	case 'l':
		d.out.WriteString("i32")
	case 'm':
		d.out.WriteString("i64")
	case 'n':
		d.out.WriteString("i128")
	case 'o':
		d.out.WriteString("isize")
	case 'p':
		d.out.WriteString("f32")
	case 'q':
		d.out.WriteString("f64")
	case 'r':
		d.out.WriteString("f128")
	case 'P':
		d.out.WriteString("*const ")
		return d.typeOf()
	case 'Q':
		d.out.WriteString("*mut ")
		return d.typeOf()
	case 'R':
		d.out.WriteString("&")
		return d.typeOf()
	case 'S':
		d.out.WriteString("&mut ")
		return d.typeOf()
	case 'A':
		d.out.WriteString("[")

		if err := d.typeOf(); err != nil {
			return err
		}

		n, err := d.digits()
		if err != nil {
			return err
		}

		fmt.Fprintf(&d.out, "; %d]", n)

		if d.pos >= len(d.s) || d.s[d.pos] != '_' {
			return galliumerr.MalformedSymbol(d.s, "array type missing trailing `_`")
		}
		d.pos++

	case 'B':
		d.out.WriteString("[")

		if err := d.typeOf(); err != nil {
			return err
		}

		d.out.WriteString("]")
	case 'C':
		d.out.WriteString("[mut ")

		if err := d.typeOf(); err != nil {
			return err
		}

		d.out.WriteString("]")
	case 'F':
		d.out.WriteString("fn(")

		if d.pos >= len(d.s) {
			return galliumerr.MalformedSymbol(d.s, "truncated function-pointer type")
		}

		throws := d.s[d.pos] == 'T'
		d.pos++

		first := true
		for {
			if d.pos >= len(d.s) {
				return galliumerr.MalformedSymbol(d.s, "unterminated function-pointer parameter list")
			}

			if d.s[d.pos] == 'E' {
				break
			}

			if !first {
				d.out.WriteString(", ")
			}
			first = false

			if err := d.typeOf(); err != nil {
				return err
			}
		}
		d.pos++ // eat 'E'

		if throws {
			d.out.WriteString(") throws -> ")
		} else {
			d.out.WriteString(") -> ")
		}

		return d.typeOf()
	case 'Z':
		idx, err := d.digits()
		if err != nil {
			return err
		}

		if d.pos >= len(d.s) || d.s[d.pos] != '_' {
			return galliumerr.MalformedSymbol(d.s, "substitution missing trailing `_`")
		}
		d.pos++

		if idx < 0 || idx >= len(d.subs) {
			return galliumerr.IndexOutOfRange(idx, len(d.subs), "demangle substitution lookup")
		}

		d.out.WriteString(d.subs[idx])
	default:
		d.pos-- // this byte is the length digit of a module/name segment, not a tag

		segments, err := d.consumeModuleSegments()
		if err != nil {
			return err
		}

		if d.pos >= len(d.s) {
			return galliumerr.MalformedSymbol(d.s, "truncated user-defined/dyn type")
		}

		tag := d.s[d.pos]
		d.pos++

		if tag != 'U' && tag != 'D' {
			return galliumerr.MalformedSymbol(d.s, fmt.Sprintf("expected `U` or `D`, found %q", string(tag)))
		}

		name, err := d.partWithLen()
		if err != nil {
			return err
		}

		qualified := "::" + segments + name

		text := qualified
		if tag == 'D' {
			text = "dyn " + qualified
		}

		d.out.WriteString(text)
		d.subs = append(d.subs, text)
	}

	return nil
}

// consumeModuleSegments reads zero or more <segment_len segment> pairs,
// returning them concatenated as "seg1::seg2::" (trailing "::" included,
// matching how module_prefix is always followed by either another
// segment or the name it qualifies).
func (d *demangler) consumeModuleSegments() (string, error) {
	var b strings.Builder

	for d.pos < len(d.s) && isDigit(d.s[d.pos]) {
		part, err := d.partWithLen()
		if err != nil {
			return "", err
		}

		b.WriteString(part)
		b.WriteString("::")
	}

	return b.String(), nil
}

func (d *demangler) partWithLen() (string, error) {
	n, err := d.digits()
	if err != nil {
		return "", err
	}

	if n < 0 || d.pos+n > len(d.s) {
		return "", galliumerr.MalformedSymbol(d.s, "length-prefixed segment runs past end of input")
	}

	part := d.s[d.pos : d.pos+n]
	d.pos += n

	return part, nil
}

func (d *demangler) digits() (int, error) {
	start := d.pos

	for d.pos < len(d.s) && isDigit(d.s[d.pos]) {
		d.pos++
	}

	if start == d.pos {
		return 0, galliumerr.MalformedSymbol(d.s, "expected a decimal length")
	}

	n, err := strconv.Atoi(d.s[start:d.pos])
	if err != nil {
		return 0, galliumerr.MalformedSymbol(d.s, "decimal length overflowed")
	}

	return n, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
