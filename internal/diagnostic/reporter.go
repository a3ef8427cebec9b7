package diagnostic

import (
	"fmt"
	"io"
	"sync"

	"github.com/gallium-lang/gallium/internal/position"
)

// Reporter is the pass-facing surface every resolver/typechecker/mangler
// pass reports through (§4.2). Passes never abort on error: they report,
// substitute an error-variant node, and keep going; the driver checks
// HadError between phases.
type Reporter interface {
	Report(d *Diagnostic)
	ReportEmplace(code Code, parts ...Part)
	HadError() bool
	Count() int
}

// ConsoleReporter writes each diagnostic to an io.Writer as it is
// reported, and counts errors. Safe for concurrent use from multiple
// passes sharing one reporter.
type ConsoleReporter struct {
	mu       sync.Mutex
	out      io.Writer
	sm       *position.SourceMap
	colored  bool
	errors   int
	warnings int
}

// NewConsoleReporter builds a reporter that writes rendered diagnostics to
// out, resolving source excerpts from sm. colored enables ANSI severity
// coloring; callers typically gate this on whether out is a TTY.
func NewConsoleReporter(out io.Writer, sm *position.SourceMap, colored bool) *ConsoleReporter {
	return &ConsoleReporter{out: out, sm: sm, colored: colored}
}

func (r *ConsoleReporter) Report(d *Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch d.Severity() {
	case SeverityError:
		r.errors++
	case SeverityWarning:
		r.warnings++
	}

	fmt.Fprintln(r.out, d.Build(r.sm, r.colored))
	fmt.Fprintln(r.out)
}

func (r *ConsoleReporter) ReportEmplace(code Code, parts ...Part) {
	r.Report(New(code, parts...))
}

func (r *ConsoleReporter) HadError() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.errors > 0
}

func (r *ConsoleReporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.errors + r.warnings
}

// BufferReporter collects every reported diagnostic into a slice instead
// of writing it anywhere, for tests that want to assert on exactly which
// diagnostics a pass produced.
type BufferReporter struct {
	mu          sync.Mutex
	Diagnostics []*Diagnostic
}

// NewBufferReporter builds an empty BufferReporter.
func NewBufferReporter() *BufferReporter {
	return &BufferReporter{}
}

func (r *BufferReporter) Report(d *Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Diagnostics = append(r.Diagnostics, d)
}

func (r *BufferReporter) ReportEmplace(code Code, parts ...Part) {
	r.Report(New(code, parts...))
}

func (r *BufferReporter) HadError() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.Diagnostics {
		if d.Severity() == SeverityError {
			return true
		}
	}

	return false
}

func (r *BufferReporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.Diagnostics)
}

// Codes returns the codes of every collected diagnostic, in report order —
// convenient for test assertions like `assert.Equal(t, []Code{18, 51}, ...)`.
func (r *BufferReporter) Codes() []Code {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes := make([]Code, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		codes[i] = d.Code
	}

	return codes
}
