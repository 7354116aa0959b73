package vt100

import "testing"

func feed(s *Screen, text string) {
	st := NewStream(WithListener(s))
	st.FeedString(text)
}

func TestHelloWorld(t *testing.T) {
	s := NewScreen(80, 24)
	feed(s, "Hello World!")

	want := "Hello World!"
	display := s.Display()
	if got := display[0][:len(want)]; got != want {
		t.Errorf("row 0 = %q, want prefix %q", display[0], want)
	}
	if len(display[0]) != 80 {
		t.Fatalf("row 0 length = %d, want 80", len(display[0]))
	}
	for _, c := range display[0][len(want):] {
		if c != ' ' {
			t.Errorf("row 0 tail not blank: %q", display[0])
			break
		}
	}
	for i := 1; i < 24; i++ {
		for _, c := range display[i] {
			if c != ' ' {
				t.Errorf("row %d not blank: %q", i, display[i])
				break
			}
		}
	}
	cur := s.Cursor()
	if cur.X != 12 || cur.Y != 0 {
		t.Errorf("cursor = (%d,%d), want (12,0)", cur.X, cur.Y)
	}
}

func TestCursorUp5(t *testing.T) {
	s := NewScreen(80, 24)
	s.cursor.X, s.cursor.Y = 0, 10
	feed(s, "\x1b[5A")

	cur := s.Cursor()
	if cur.X != 0 || cur.Y != 5 {
		t.Errorf("cursor = (%d,%d), want (0,5)", cur.X, cur.Y)
	}
}

func TestWrapAtRightEdge(t *testing.T) {
	s := NewScreen(80, 24)
	for i := 0; i < 81; i++ {
		feed(s, "X")
	}

	display := s.Display()
	for c := 0; c < 80; c++ {
		if display[0][c] != 'X' {
			t.Fatalf("row 0 col %d = %q, want X", c, display[0][c])
		}
	}
	if display[1][0] != 'X' {
		t.Fatalf("row 1 col 0 = %q, want X", display[1][0])
	}
	cur := s.Cursor()
	if cur.X != 1 || cur.Y != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", cur.X, cur.Y)
	}
}

func TestScrollAtBottom(t *testing.T) {
	s := NewScreen(80, 24)
	for row := 0; row < 24; row++ {
		s.cursor.X, s.cursor.Y = 0, row
		feed(s, string(rune('A'+row)))
	}
	s.cursor.X, s.cursor.Y = 0, 23

	feed(s, "\n")

	display := s.Display()
	for row := 0; row < 23; row++ {
		want := byte('A' + row + 1)
		if display[row][0] != want {
			t.Errorf("row %d col 0 = %q, want %q", row, display[row][0], want)
		}
	}
	for _, c := range display[23] {
		if c != ' ' {
			t.Errorf("row 23 not blank: %q", display[23])
			break
		}
	}
	cur := s.Cursor()
	if cur.X != 0 || cur.Y != 23 {
		t.Errorf("cursor = (%d,%d), want (0,23)", cur.X, cur.Y)
	}
}

func TestSaveRestoreWithSGR(t *testing.T) {
	s := NewScreen(80, 24)
	feed(s, "\x1b[31m")
	feed(s, "\x1b7")
	feed(s, "\x1b[32m")
	feed(s, "A")

	a := s.Cell(0, 0)
	if a.Fg != ColorGreen {
		t.Errorf("cell A fg = %q, want green", a.Fg)
	}

	// Restore also returns the cursor to the saved position, so B is
	// drawn over A at column 0.
	feed(s, "\x1b8")
	feed(s, "B")

	b := s.Cell(0, 0)
	if b.Data != "B" || b.Fg != ColorRed {
		t.Errorf("cell (0,0) = %q fg %q, want \"B\" fg red", b.Data, b.Fg)
	}
	if s.Cursor().X != 1 {
		t.Errorf("cursor.X = %d, want 1", s.Cursor().X)
	}
}

func TestEraseInDisplayMode2(t *testing.T) {
	s := NewScreen(80, 24)
	feed(s, "Hello World!")
	s.cursor.X, s.cursor.Y = 5, 5

	feed(s, "\x1b[2J")

	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if s.Cell(y, x) != defaultCell {
				t.Fatalf("cell (%d,%d) not default after erase_in_display(2)", y, x)
			}
		}
	}
	if s.Cursor().X != 5 || s.Cursor().Y != 5 {
		t.Errorf("cursor moved: (%d,%d)", s.Cursor().X, s.Cursor().Y)
	}
}

func TestResetReturnsToConstructionState(t *testing.T) {
	s := NewScreen(80, 24)
	feed(s, "Hello")
	feed(s, "\x1b[31m")
	s.cursor.X, s.cursor.Y = 40, 10

	feed(s, "\x1bc")

	fresh := NewScreen(80, 24)
	if s.Cursor() != fresh.Cursor() {
		t.Errorf("cursor after reset = %+v, want %+v", s.Cursor(), fresh.Cursor())
	}
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if s.Cell(y, x) != defaultCell {
				t.Fatalf("cell (%d,%d) not default after reset", y, x)
			}
		}
	}
}

func TestSetModeResetModeRoundTrip(t *testing.T) {
	s := NewScreen(80, 24)
	before := s.hasMode(ModeIRM)

	s.SetMode([]int{ModeIRM}, false)
	if !s.hasMode(ModeIRM) {
		t.Fatal("expected IRM set")
	}
	s.ResetMode([]int{ModeIRM}, false)
	if s.hasMode(ModeIRM) != before {
		t.Errorf("mode set not restored to prior value")
	}
}

func TestMarginsInvariant(t *testing.T) {
	s := NewScreen(80, 24)
	s.SetMargins(5, 10)
	top, bottom := s.Margins()
	if top != 4 || bottom != 9 {
		t.Errorf("margins = (%d,%d), want (4,9)", top, bottom)
	}

	// Invalid margins (bottom <= top) are rejected, leaving prior margins.
	s.SetMargins(10, 10)
	top, bottom = s.Margins()
	if top != 4 || bottom != 9 {
		t.Errorf("invalid set_margins mutated state: (%d,%d)", top, bottom)
	}
}

func TestAlignmentDisplay(t *testing.T) {
	s := NewScreen(10, 3)
	feed(s, "\x1b#8")

	for _, row := range s.Display() {
		for _, c := range row {
			if c != 'E' {
				t.Fatalf("row = %q, want all E", row)
			}
		}
	}
}

func TestDECAWMDisabledOverwritesLastColumn(t *testing.T) {
	s := NewScreen(5, 2)
	s.ResetMode([]int{ModeDECAWM >> PrivateModeShift}, true)
	feed(s, "ABCDEF")

	display := s.Display()
	if display[0] != "ABCDF" {
		t.Errorf("row 0 = %q, want ABCDF (no wrap)", display[0])
	}
}
