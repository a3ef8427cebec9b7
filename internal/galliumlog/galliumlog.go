// Package galliumlog provides the small leveled-logging wrapper the rest of
// this module uses instead of calling the standard library's log package
// directly. The teacher never factors a logger interface out of log.Logger
// either — cmd/orizon-compiler, cmd/orizon-smoke-test, and the other cmd/*
// entry points all call log.Fatalf/log.Printf straight against the package
// default — so this stays a thin wrapper, not a leveled-logging framework:
// four methods over one *log.Logger, with a package-level default a caller
// can substitute for a test sink.
package galliumlog

import (
	"io"
	"log"
	"os"
)

// Logger is the leveled logging surface internal/pipeline uses. A level is a prefix, not a filter — every call reaches the
// underlying *log.Logger unconditionally, matching log.Logger's own
// behavior; there is no verbosity threshold to configure.
type Logger struct {
	out *log.Logger
}

// New wraps w in a Logger, using log's standard date/time prefix the way
// the package-level default does.
func New(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags)}
}

// Default is the package-level Logger every pipeline.Run call uses unless a caller substitutes one — os.Stderr, matching log.Fatalf's
// own destination in the teacher's cmd/* entry points.
var Default = New(os.Stderr)

// SetOutput redirects Default's destination, for a test that wants to
// assert on log output instead of mixing it with os.Stderr.
func SetOutput(w io.Writer) {
	Default = New(w)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.out.Printf("DEBUG "+format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.out.Printf("INFO "+format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.out.Printf("WARN "+format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.out.Printf("ERROR "+format, args...)
}

func Debugf(format string, args ...interface{}) { Default.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { Default.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { Default.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { Default.Errorf(format, args...) }
