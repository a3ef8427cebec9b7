package diagnostic

import (
	"fmt"
	"strings"

	"github.com/gallium-lang/gallium/internal/position"
)

// Diagnostic is a full, ready-to-print report: a code (which fixes its
// summary, explanation and severity) plus the parts describing where and
// why (§4.2).
type Diagnostic struct {
	Code  Code
	Parts []Part
}

// New builds a Diagnostic for code, appending the code's long-form
// explanation as a trailing note part — every diagnostic carries one,
// exactly as the engine's single entry point to the code table.
func New(code Code, parts ...Part) *Diagnostic {
	info, ok := LookupInfo(code)
	if !ok {
		panic(fmt.Sprintf("diagnostic: unknown code %d", code))
	}

	all := make([]Part, 0, len(parts)+1)
	all = append(all, parts...)
	all = append(all, Single(info.Explanation, SeverityNote))

	return &Diagnostic{Code: code, Parts: all}
}

// Severity returns the code's fixed severity.
func (d *Diagnostic) Severity() Severity {
	info, _ := LookupInfo(d.Code)
	return info.Severity
}

// Build renders the diagnostic: its summary line (with code and severity),
// then every part joined by blank lines. colored enables ANSI severity
// coloring for a TTY destination.
func (d *Diagnostic) Build(sm *position.SourceMap, colored bool) string {
	info, _ := LookupInfo(d.Code)

	summary := SingleWithCode(info.OneLiner, info.Severity, d.Code)

	var b strings.Builder

	b.WriteString(summary.build(sm, "", colored))

	for _, part := range d.Parts {
		b.WriteString("\n")
		b.WriteString(part.build(sm, " ", colored))
	}

	return b.String()
}
