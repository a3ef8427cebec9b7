package diagnostic

import (
	"fmt"
	"strings"

	"github.com/gallium-lang/gallium/internal/position"
)

// Part is one piece of a Diagnostic's body: either a single message line
// or a list of underlined source excerpts (§4.2).
type Part interface {
	// build renders the part, indenting every line it emits with padding.
	build(sm *position.SourceMap, padding string, colored bool) string
}

// SingleMessage is a plain severity-tagged line, optionally carrying the
// diagnostic's code (the main summary line always does; a trailing note
// usually doesn't).
type SingleMessage struct {
	Message  string
	Severity Severity
	Code     Code // zero means "no code shown" — only meaningful for code > 0.
	hasCode  bool
}

// Single builds a SingleMessage part with no code shown (used for notes).
func Single(message string, severity Severity) *SingleMessage {
	return &SingleMessage{Message: message, Severity: severity}
}

// SingleWithCode builds a SingleMessage part that also prints its code,
// used for a diagnostic's leading summary line.
func SingleWithCode(message string, severity Severity, code Code) *SingleMessage {
	return &SingleMessage{Message: message, Severity: severity, Code: code, hasCode: true}
}

func severityHeader(sev Severity, code Code, hasCode bool) string {
	if !hasCode {
		return "note "
	}

	switch sev {
	case SeverityError:
		return fmt.Sprintf("error [E#%04d] ", code)
	case SeverityWarning:
		return fmt.Sprintf("warning [E#%04d] ", code)
	default:
		return fmt.Sprintf("note [E#%04d] ", code)
	}
}

func (m *SingleMessage) build(_ *position.SourceMap, padding string, colored bool) string {
	header := severityHeader(m.Severity, m.Code, m.hasCode)
	if colored {
		header = colorForSeverity(m.Severity)(header)
	}

	return padding + header + m.Message
}

// UnderlineStyle is the closed set of underline glyphs a PointedOut may
// render with.
type UnderlineStyle int

const (
	UnderlineSquiggly UnderlineStyle = iota
	UnderlineStraight
	UnderlineCarets
	UnderlineStraightArrow
	UnderlineSquigglyArrow
)

func (u UnderlineStyle) render(length int) string {
	if length < 1 {
		length = 1
	}

	switch u {
	case UnderlineSquiggly:
		return strings.Repeat("~", length)
	case UnderlineSquigglyArrow:
		return "^" + strings.Repeat("~", length-1)
	case UnderlineStraight:
		return strings.Repeat("-", length)
	case UnderlineStraightArrow:
		return "^" + strings.Repeat("-", length)
	case UnderlineCarets:
		return strings.Repeat("^", length)
	default:
		return strings.Repeat("~", length)
	}
}

// PointedOut is one source location a diagnostic wants to underline, with
// an inline message, a severity, and an underline glyph.
type PointedOut struct {
	Span      position.Span
	Message   string
	Severity  Severity
	Underline UnderlineStyle
}

// PointOutPart builds a PointedOut for span, defaulting to a squiggly
// underline for errors/warnings and a straight one for notes, matching the
// convention every other diagnostic in this engine follows.
func PointOutPart(span position.Span, severity Severity, message string) PointedOut {
	style := UnderlineSquiggly
	if severity == SeverityNote {
		style = UnderlineStraight
	}

	return PointedOut{Span: span, Message: message, Severity: severity, Underline: style}
}

// PointOut wraps a single PointedOut in its own UnderlineList part — the
// common case of pointing at exactly one location.
func PointOut(span position.Span, severity Severity, message string) Part {
	return PointOutList(PointOutPart(span, severity, message))
}

// UnderlineList is a set of PointedOut locations, all within the same
// file, rendered together with merged/adjacent source lines and `...`
// separators where lines are non-adjacent (§4.2).
type UnderlineList struct {
	points      []PointedOut
	importantAt int // index into points of the "important" location.
}

// PointOutList builds an UnderlineList from one or more PointedOut spots.
// Nonexistent-span points are dropped (synthesized nodes carry no source
// location to underline); the remaining points are stable-sorted by line
// so messages read top to bottom regardless of caller order.
func PointOutList(points ...PointedOut) *UnderlineList {
	filtered := make([]PointedOut, 0, len(points))

	for _, p := range points {
		if !p.Span.IsNonexistent() {
			filtered = append(filtered, p)
		}
	}

	stableSortByLine(filtered)

	important := 0

	for i, p := range filtered {
		if p.Severity == SeverityError {
			important = i
			break
		}
	}

	if len(filtered) > 0 && filtered[important].Severity != SeverityError {
		for i, p := range filtered {
			if p.Severity == SeverityWarning {
				important = i
				break
			}
		}
	}

	return &UnderlineList{points: filtered, importantAt: important}
}

// stableSortByLine is a small insertion sort: the lists this renders are
// never more than a handful of entries, and insertion sort is stable
// without pulling in sort.SliceStable for such a short slice.
func stableSortByLine(points []PointedOut) {
	for i := 1; i < len(points); i++ {
		for j := i; j > 0 && points[j].Span.Start.Line < points[j-1].Span.Start.Line; j-- {
			points[j], points[j-1] = points[j-1], points[j]
		}
	}
}

func (u *UnderlineList) build(sm *position.SourceMap, padding string, colored bool) string {
	if len(u.points) == 0 {
		return padding + "(no source location available)"
	}

	maxLine := u.points[0].Span.Start.Line
	for _, p := range u.points {
		if p.Span.Start.Line > maxLine {
			maxLine = p.Span.Start.Line
		}
	}

	var b strings.Builder

	important := u.points[u.importantAt]
	appendFileInfo(&b, padding, important.Span.Start)

	previousLine := -1

	for _, p := range u.points {
		buildUnderlineEntry(&b, sm, p, padding, maxLine, &previousLine, colored)
	}

	_, emptyPad := lineNumberPadding(0, maxLine)
	fmt.Fprintf(&b, "\n%s%s |", padding, emptyPad)

	return b.String()
}
