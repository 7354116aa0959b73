package vt100

import "testing"

func TestNewCell(t *testing.T) {
	cell := NewCell()

	if cell.Data != " " {
		t.Errorf("expected space, got %q", cell.Data)
	}
	if cell.Fg != ColorDefault {
		t.Errorf("expected default foreground, got %q", cell.Fg)
	}
	if cell.Bg != ColorDefault {
		t.Errorf("expected default background, got %q", cell.Bg)
	}
	if cell.Bold || cell.Italics || cell.Underscore || cell.Strikethrough || cell.Reverse || cell.Blink {
		t.Error("expected no attributes set")
	}
}

func TestCellIsValueType(t *testing.T) {
	a := NewCell()
	b := a
	b.Data = "X"
	b.Bold = true

	if a.Data != " " || a.Bold {
		t.Error("mutating a copy should not affect the original Cell")
	}
}
