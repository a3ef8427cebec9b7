package diagnostic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/gallium-lang/gallium/internal/position"
)

func colorForSeverity(sev Severity) func(string, ...interface{}) string {
	switch sev {
	case SeverityError:
		return color.New(color.FgRed, color.Bold).SprintfFunc()
	case SeverityWarning:
		return color.New(color.FgYellow, color.Bold).SprintfFunc()
	default:
		return color.New(color.FgCyan, color.Bold).SprintfFunc()
	}
}

// lineNumberPadding returns the left-padding needed to right-align current
// against the widest line number this diagnostic will print (max), plus a
// same-width blank string for continuation rows that print no number.
func lineNumberPadding(current, max int) (string, string) {
	currentDigits := len(strconv.Itoa(current))
	maxDigits := len(strconv.Itoa(max))

	return strings.Repeat(" ", maxDigits-currentDigits), strings.Repeat(" ", maxDigits)
}

type lineParts struct {
	before, underlined, after string
}

// breakUpLine splits line into the text before the underlined span, the
// underlined text itself, and the text after, by column (1-based, runes).
func breakUpLine(line string, startCol, endCol int) lineParts {
	runes := []rune(line)

	clamp := func(c int) int {
		if c < 0 {
			return 0
		}

		if c > len(runes) {
			return len(runes)
		}

		return c
	}

	start := clamp(startCol - 1)
	end := clamp(endCol - 1)

	if end < start {
		end = start
	}

	return lineParts{
		before:     string(runes[:start]),
		underlined: string(runes[start:end]),
		after:      string(runes[end:]),
	}
}

func appendFileInfo(b *strings.Builder, padding string, loc position.Position) {
	fmt.Fprintf(b, "%s>>> %s (line %d, column %d)\n", padding, loc.Filename, loc.Line, loc.Column)
}

func buildUnderlineEntry(
	b *strings.Builder,
	sm *position.SourceMap,
	p PointedOut,
	padding string,
	maxLine int,
	previousLine *int,
	colored bool,
) {
	loc := p.Span.Start
	fullLine := sm.GetLine(loc)
	beforePad, blankPad := lineNumberPadding(loc.Line, maxLine)
	parts := breakUpLine(fullLine, loc.Column, p.Span.End.Column)

	colorize := func(s string) string {
		if !colored {
			return s
		}

		return colorForSeverity(p.Severity)(s)
	}

	underlineLen := position.DisplayWidth(parts.underlined, len([]rune(parts.underlined)))
	underline := strings.Repeat(" ", position.DisplayWidth(parts.before, len([]rune(parts.before)))) + colorize(p.Underline.render(underlineLen))

	if *previousLine >= 0 && *previousLine != loc.Line-1 && *previousLine != loc.Line {
		fmt.Fprintf(b, "\n%s%s...\n", padding, blankPad)
	} else if *previousLine >= 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "%s%s |\n", padding, blankPad)
	fmt.Fprintf(b, "%s%s%d | %s%s%s\n", padding, beforePad, loc.Line, parts.before, colorize(parts.underlined), parts.after)
	fmt.Fprintf(b, "%s%s | %s %s", padding, blankPad, underline, colorize(p.Message))

	*previousLine = loc.Line
}

// Plural returns text, given in plural form, unchanged unless count == 1,
// in which case a trailing "s" is stripped: Plural(1, "arguments") ==
// "argument". A word ending in "ies" is returned unchanged, since
// stripping its "s" would not give its singular.
func Plural(count int, text string) string {
	if count == 1 && strings.HasSuffix(text, "s") && !strings.HasSuffix(text, "ies") {
		return text[:len(text)-1]
	}

	return text
}
