package vt100

// Cursor is the mutable drawing position plus the style template applied
// to newly drawn cells.
type Cursor struct {
	X, Y   int
	Attrs  Cell
	Hidden bool
}

// NewCursor returns a cursor at (0, 0), visible, with default style.
func NewCursor() Cursor {
	return Cursor{Attrs: NewCell()}
}

// Savepoint is the snapshot pushed by save_cursor (DECSC) and popped by
// restore_cursor (DECRC): cursor (by value, including style), the two
// charset tables, which one is active, and the DECOM/DECAWM mode bits.
type Savepoint struct {
	Cursor   Cursor
	G0, G1   *CharsetTable
	Charset  int
	Origin   bool
	AutoWrap bool
}
