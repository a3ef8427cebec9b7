package galliumlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelsPrefixMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Infof("reached %s", "resolve")
	l.Errorf("stopped: %v", "boom")

	out := buf.String()
	if !strings.Contains(out, "INFO reached resolve") {
		t.Fatalf("output = %q, want it to contain the Info line", out)
	}

	if !strings.Contains(out, "ERROR stopped: boom") {
		t.Fatalf("output = %q, want it to contain the Error line", out)
	}
}

func TestSetOutputRedirectsDefault(t *testing.T) {
	var buf bytes.Buffer

	orig := Default
	defer func() { Default = orig }()

	SetOutput(&buf)
	Debugf("hello %d", 1)

	if !strings.Contains(buf.String(), "DEBUG hello 1") {
		t.Fatalf("buf = %q, want it to contain the Debug line", buf.String())
	}
}
