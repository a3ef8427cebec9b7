package position

import (
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// DisplayWidth returns the number of terminal columns occupied by the
// first uptoRune runes of line, counting
// fullwidth and wide East-Asian runes as two columns and a combining mark
// (nonzero canonical combining class, per x/text/unicode/norm) as zero —
// it merges into the preceding rune's cell rather than occupying one of
// its own. The diagnostic renderer uses this instead of a raw rune count
// so that underlines drawn beneath identifiers containing wide or
// combining runes land under the right glyph.
func DisplayWidth(line string, uptoRune int) int {
	col := 0
	i := 0

	for _, r := range line {
		if i >= uptoRune {
			break
		}

		switch {
		case norm.NFC.PropertiesString(string(r)).CCC() != 0:
			// Combining mark: contributes no column of its own.
		case width.LookupRune(r).Kind() == width.EastAsianWide, width.LookupRune(r).Kind() == width.EastAsianFullwidth:
			col += 2
		default:
			col++
		}

		i++
	}

	return col
}
