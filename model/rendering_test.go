package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	u := New(2, 2)
	u.SetCell(0, 1)

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, false)
	if err := r.Display(u); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got, want := buf.String(), "  ██\n    \n"; got != want {
		t.Fatalf("Display wrote %q, want %q", got, want)
	}
}

func TestTerminalRendererColors(t *testing.T) {
	u := New(1, 1)
	u.SetCell(0, 0)

	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf, true).Display(u); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[")) || !bytes.Contains(buf.Bytes(), []byte(gridPosBlock)) {
		t.Fatalf("colored output %q lacks escape codes or block glyph", buf.String())
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTerminalRenderer(&buf, false).Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if buf.String() != ansiClear {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
