package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithLevel(t *testing.T) {
	if _, err := NewWithLevel("debug"); err != nil {
		t.Fatalf("unexpected error for debug level: %v", err)
	}
	if _, err := NewWithLevel("loud"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf)
	l.Debugf("switched to bank %d", 3)

	out := buf.String()
	if !strings.Contains(out, "switched to bank 3") {
		t.Errorf("expected message in output, got %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("expected no timestamp, got %q", out)
	}
}
