package vt100

// Screen owns the cell grid, cursor, scroll margins, mode flags, tab
// stops, character-set state, and save/restore stack. It implements the
// Listener capability interfaces so it can be attached directly to a
// Stream.
type Screen struct {
	lines, columns int
	grid           [][]Cell

	cursor Cursor

	marginTop    int
	marginBottom int

	modes map[int]bool

	tabStops []bool
	tabWidth int

	g0, g1  *CharsetTable
	charset int

	savepoints []Savepoint
}

// Option configures a Screen at construction time using the standard
// functional-options pattern.
type Option func(*Screen)

// WithTabWidth overrides the default tab-stop spacing of 8; some callers
// emulate terminals with a different default.
func WithTabWidth(n int) Option {
	return func(s *Screen) {
		if n > 0 {
			s.tabWidth = n
		}
	}
}

// WithModes marks the given (already-namespaced) modes active at
// construction time, e.g. `ModeIRM` or `privateMode(7)` (== ModeDECAWM).
// No mode side effects are applied.
func WithModes(modes ...int) Option {
	return func(s *Screen) {
		for _, m := range modes {
			s.modes[m] = true
		}
	}
}

// NewScreen constructs a Screen with the given dimensions. Dimensions
// below 1 are clamped to 1.
func NewScreen(columns, lines int, opts ...Option) *Screen {
	if columns < 1 {
		columns = 1
	}
	if lines < 1 {
		lines = 1
	}

	s := &Screen{
		lines:        lines,
		columns:      columns,
		marginTop:    0,
		marginBottom: lines - 1,
		modes:        make(map[int]bool),
		tabWidth:     defaultTabWidth,
		g0:           identityCharset,
		g1:           identityCharset,
	}
	s.modes[ModeDECAWM] = true
	s.modes[ModeDECTCEM] = true
	s.grid = newGrid(lines, columns)
	s.tabStops = newTabStops(columns, s.tabWidth)
	s.cursor = NewCursor()

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newGrid(lines, columns int) [][]Cell {
	grid := make([][]Cell, lines)
	for i := range grid {
		grid[i] = newBlankRow(columns)
	}
	return grid
}

func newBlankRow(columns int) []Cell {
	row := make([]Cell, columns)
	for i := range row {
		row[i] = defaultCell
	}
	return row
}

func newTabStops(columns, width int) []bool {
	stops := make([]bool, columns)
	for i := 0; i < columns; i += width {
		stops[i] = true
	}
	return stops
}

// Lines returns the grid height.
func (s *Screen) Lines() int { return s.lines }

// Columns returns the grid width.
func (s *Screen) Columns() int { return s.columns }

// Cursor returns the current cursor state.
func (s *Screen) Cursor() Cursor { return s.cursor }

// Margins returns the current scroll region, inclusive.
func (s *Screen) Margins() (top, bottom int) { return s.marginTop, s.marginBottom }

// Modes returns the set of currently active mode numbers (private modes
// already shifted into their namespace).
func (s *Screen) Modes() map[int]bool {
	out := make(map[int]bool, len(s.modes))
	for m, v := range s.modes {
		if v {
			out[m] = true
		}
	}
	return out
}

func (s *Screen) hasMode(m int) bool { return s.modes[m] }

// Display renders the grid as one string of length Columns per row, in
// visual top-to-bottom order.
func (s *Screen) Display() []string {
	rows := make([]string, s.lines)
	for i, row := range s.grid {
		var b []byte
		for _, c := range row {
			if c.Data == "" {
				b = append(b, ' ')
				continue
			}
			b = append(b, c.Data...)
		}
		rows[i] = string(b)
	}
	return rows
}

// Cell returns the cell at (row, col), or the default cell if out of
// bounds.
func (s *Screen) Cell(row, col int) Cell {
	if row < 0 || row >= s.lines || col < 0 || col >= s.columns {
		return defaultCell
	}
	return s.grid[row][col]
}

func (s *Screen) setCell(row, col int, c Cell) {
	if row < 0 || row >= s.lines || col < 0 || col >= s.columns {
		return
	}
	s.grid[row][col] = c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Resize grows or shrinks the grid. Margins reset to full screen and
// DECOM clears.
func (s *Screen) Resize(newLines, newColumns int) {
	if newLines < 1 {
		newLines = 1
	}
	if newColumns < 1 {
		newColumns = 1
	}

	newGridRows := make([][]Cell, newLines)
	for i := 0; i < newLines; i++ {
		row := newBlankRow(newColumns)
		if i < s.lines {
			copyRowInto(row, s.grid[i], newColumns, s.columns)
		}
		newGridRows[i] = row
	}

	s.grid = newGridRows
	s.lines = newLines
	s.columns = newColumns
	s.marginTop = 0
	s.marginBottom = newLines - 1
	s.modes[ModeDECOM] = false
	s.tabStops = newTabStops(newColumns, s.tabWidth)

	s.cursor.X = clamp(s.cursor.X, 0, newColumns-1)
	s.cursor.Y = clamp(s.cursor.Y, 0, newLines-1)
}

// copyRowInto copies from src into dst: shrinking columns keeps the
// rightmost newColumns columns of src; growing keeps src at the left
// and leaves the new right-hand columns blank.
func copyRowInto(dst, src []Cell, newColumns, oldColumns int) {
	if newColumns <= oldColumns {
		offset := oldColumns - newColumns
		copy(dst, src[offset:])
		return
	}
	copy(dst, src)
}

// --- Tab stops ---

func (s *Screen) nextTabStop(col int) int {
	for c := col + 1; c < s.columns; c++ {
		if s.tabStops[c] {
			return c
		}
	}
	return s.columns - 1
}

func (s *Screen) setTabStopAt(col int) {
	if col >= 0 && col < s.columns {
		s.tabStops[col] = true
	}
}

func (s *Screen) clearTabStopAt(col int) {
	if col >= 0 && col < s.columns {
		s.tabStops[col] = false
	}
}

func (s *Screen) clearAllTabStops() {
	for i := range s.tabStops {
		s.tabStops[i] = false
	}
}
