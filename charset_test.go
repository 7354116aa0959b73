package vt100

import "testing"

func TestIdentityCharsetPassesThrough(t *testing.T) {
	for _, r := range []rune{'A', 'z', '0', ' '} {
		if got := identityCharset.translate(r); got != r {
			t.Errorf("identityCharset.translate(%q) = %q, want %q", r, got, r)
		}
	}
}

func TestVT100GraphicsCharsetLineDrawing(t *testing.T) {
	if got := vt100GraphicsCharset.translate('q'); got != '─' {
		t.Errorf("translate('q') = %q, want '─'", got)
	}
	if got := vt100GraphicsCharset.translate('x'); got != '│' {
		t.Errorf("translate('x') = %q, want '│'", got)
	}
	// Characters with no special mapping still pass through.
	if got := vt100GraphicsCharset.translate('Z'); got != 'Z' {
		t.Errorf("translate('Z') = %q, want 'Z'", got)
	}
}

func TestScreenSetCharsetSelectsG0(t *testing.T) {
	s := NewScreen(10, 2)
	feed(s, "\x1b(0") // designate DEC Special Graphics into G0
	feed(s, "q")

	if s.Cell(0, 0).Data != "─" {
		t.Errorf("cell(0,0) = %q, want line-drawing char after charset switch", s.Cell(0, 0).Data)
	}
}

func TestShiftOutSelectsG1(t *testing.T) {
	s := NewScreen(10, 2)
	feed(s, "\x1b)0") // designate DEC Special Graphics into G1
	feed(s, "\x0e")   // SO: invoke G1
	feed(s, "q")

	if s.Cell(0, 0).Data != "─" {
		t.Errorf("cell(0,0) = %q, want line-drawing char via G1", s.Cell(0, 0).Data)
	}
}
