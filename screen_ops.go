package vt100

// Screen's operations, one method per dispatched event.

func (s *Screen) verticalBounds() (lo, hi int) {
	if s.hasMode(ModeDECOM) {
		return s.marginTop, s.marginBottom
	}
	return 0, s.lines - 1
}

func (s *Screen) homeCursor() {
	s.cursor.X = 0
	if s.hasMode(ModeDECOM) {
		s.cursor.Y = s.marginTop
	} else {
		s.cursor.Y = 0
	}
}

// --- Drawing ---

func (s *Screen) Draw(data string) {
	if rs := []rune(data); len(rs) == 1 {
		table := s.g0
		if s.charset == 1 {
			table = s.g1
		}
		data = string(table.translate(rs[0]))
	}

	if s.cursor.X == s.columns {
		if s.hasMode(ModeDECAWM) {
			// Wrapping always starts the new line at column 0; only the
			// named `linefeed` event honors LNM for carriage return.
			s.index()
			s.cursor.X = 0
		} else {
			s.cursor.X--
		}
	}
	if s.hasMode(ModeIRM) {
		s.InsertCharacters(1)
	}

	cell := s.cursor.Attrs
	cell.Data = data
	s.setCell(s.cursor.Y, s.cursor.X, cell)
	s.cursor.X++
}

// --- Basic controls ---

func (s *Screen) Backspace()      { s.CursorBack(1) }
func (s *Screen) Tab()            { s.cursor.X = s.nextTabStop(s.cursor.X) }
func (s *Screen) CarriageReturn() { s.cursor.X = 0 }
func (s *Screen) ShiftOut()       { s.charset = 1 }
func (s *Screen) ShiftIn()        { s.charset = 0 }

func (s *Screen) Linefeed() {
	s.index()
	if s.hasMode(ModeLNM) {
		s.cursor.X = 0
	}
}

// --- Escape sequences ---

func (s *Screen) Reset() {
	lines, columns, tabWidth := s.lines, s.columns, s.tabWidth
	s.grid = newGrid(lines, columns)
	s.cursor = NewCursor()
	s.marginTop, s.marginBottom = 0, lines-1
	s.modes = make(map[int]bool)
	s.modes[ModeDECAWM] = true
	s.modes[ModeDECTCEM] = true
	s.tabStops = newTabStops(columns, tabWidth)
	s.g0, s.g1 = identityCharset, identityCharset
	s.charset = 0
	s.savepoints = nil
}

func (s *Screen) Index()        { s.index() }
func (s *Screen) ReverseIndex() { s.reverseIndex() }
func (s *Screen) SetTabStop()   { s.setTabStopAt(s.cursor.X) }

func (s *Screen) SaveCursor() {
	s.savepoints = append(s.savepoints, Savepoint{
		Cursor:   s.cursor,
		G0:       s.g0,
		G1:       s.g1,
		Charset:  s.charset,
		Origin:   s.hasMode(ModeDECOM),
		AutoWrap: s.hasMode(ModeDECAWM),
	})
}

func (s *Screen) RestoreCursor() {
	if len(s.savepoints) == 0 {
		s.modes[ModeDECOM] = false
		s.cursor.X, s.cursor.Y = 0, 0
		return
	}
	sp := s.savepoints[len(s.savepoints)-1]
	s.savepoints = s.savepoints[:len(s.savepoints)-1]

	s.cursor = sp.Cursor
	s.g0, s.g1 = sp.G0, sp.G1
	s.charset = sp.Charset
	s.modes[ModeDECOM] = sp.Origin
	s.modes[ModeDECAWM] = sp.AutoWrap

	s.cursor.X = clamp(s.cursor.X, 0, s.columns-1)
	lo, hi := s.verticalBounds()
	s.cursor.Y = clamp(s.cursor.Y, lo, hi)
}

func (s *Screen) AlignmentDisplay() {
	cell := defaultCell
	cell.Data = "E"
	for y := range s.grid {
		for x := range s.grid[y] {
			s.grid[y][x] = cell
		}
	}
}

func (s *Screen) SetCharset(code, mode byte) {
	table, ok := charsetByDesignator[code]
	if !ok {
		return
	}
	switch mode {
	case '(':
		s.g0 = table
	case ')':
		s.g1 = table
	}
}

// --- Cursor motion ---

func (s *Screen) CursorUp(n int) {
	if n == 0 {
		n = 1
	}
	lo, hi := s.verticalBounds()
	s.cursor.Y = clamp(s.cursor.Y-n, lo, hi)
}

func (s *Screen) CursorDown(n int) {
	if n == 0 {
		n = 1
	}
	lo, hi := s.verticalBounds()
	s.cursor.Y = clamp(s.cursor.Y+n, lo, hi)
}

func (s *Screen) CursorForward(n int) {
	if n == 0 {
		n = 1
	}
	s.cursor.X = clamp(s.cursor.X+n, 0, s.columns-1)
}

func (s *Screen) CursorBack(n int) {
	if n == 0 {
		n = 1
	}
	s.cursor.X = clamp(s.cursor.X-n, 0, s.columns-1)
}

func (s *Screen) CursorUp1(n int) {
	s.CursorUp(n)
	s.cursor.X = 0
}

func (s *Screen) CursorDown1(n int) {
	s.CursorDown(n)
	s.cursor.X = 0
}

func (s *Screen) CursorToColumn(n int) {
	if n == 0 {
		n = 1
	}
	s.cursor.X = clamp(n-1, 0, s.columns-1)
}

func (s *Screen) CursorToLine(n int) {
	if n == 0 {
		n = 1
	}
	lo, hi := s.verticalBounds()
	y := n - 1
	if s.hasMode(ModeDECOM) {
		y += s.marginTop
	}
	s.cursor.Y = clamp(y, lo, hi)
}

func (s *Screen) CursorPosition(line, col int) {
	if line == 0 {
		line = 1
	}
	if col == 0 {
		col = 1
	}
	y := line - 1
	if s.hasMode(ModeDECOM) {
		y += s.marginTop
		if y < s.marginTop || y > s.marginBottom {
			return
		}
	} else {
		y = clamp(y, 0, s.lines-1)
	}
	s.cursor.X = clamp(col-1, 0, s.columns-1)
	s.cursor.Y = y
}

// --- Insertion and deletion ---

func blankRowWithStyle(columns int, style Cell) []Cell {
	cell := style
	cell.Data = " "
	row := make([]Cell, columns)
	for i := range row {
		row[i] = cell
	}
	return row
}

func (s *Screen) InsertCharacters(n int) {
	if n == 0 {
		n = 1
	}
	if max := s.columns - s.cursor.X; n > max {
		n = max
	}
	if n <= 0 {
		return
	}
	row := s.grid[s.cursor.Y]
	for c := s.columns - 1; c >= s.cursor.X+n; c-- {
		row[c] = row[c-n]
	}
	style := s.cursor.Attrs
	style.Data = " "
	for c := s.cursor.X; c < s.cursor.X+n && c < s.columns; c++ {
		row[c] = style
	}
}

func (s *Screen) DeleteCharacters(n int) {
	if n == 0 {
		n = 1
	}
	if max := s.columns - s.cursor.X; n > max {
		n = max
	}
	if n <= 0 {
		return
	}
	row := s.grid[s.cursor.Y]
	for c := s.cursor.X; c < s.columns-n; c++ {
		row[c] = row[c+n]
	}
	style := s.cursor.Attrs
	style.Data = " "
	for c := s.columns - n; c < s.columns; c++ {
		if c < 0 {
			continue
		}
		row[c] = style
	}
}

func (s *Screen) EraseCharacters(n int) {
	if n == 0 {
		n = 1
	}
	style := s.cursor.Attrs
	style.Data = " "
	for c := s.cursor.X; c < s.cursor.X+n && c < s.columns; c++ {
		s.grid[s.cursor.Y][c] = style
	}
}

func (s *Screen) InsertLines(n int) {
	if n == 0 {
		n = 1
	}
	top, bottom, y := s.marginTop, s.marginBottom, s.cursor.Y
	if y < top || y > bottom {
		return
	}
	if max := bottom - y + 1; n > max {
		n = max
	}
	for row := bottom; row >= y+n; row-- {
		s.grid[row] = s.grid[row-n]
	}
	for row := y; row < y+n; row++ {
		s.grid[row] = blankRowWithStyle(s.columns, s.cursor.Attrs)
	}
	s.cursor.X = 0
}

func (s *Screen) DeleteLines(n int) {
	if n == 0 {
		n = 1
	}
	top, bottom, y := s.marginTop, s.marginBottom, s.cursor.Y
	if y < top || y > bottom {
		return
	}
	if max := bottom - y + 1; n > max {
		n = max
	}
	for row := y; row <= bottom-n; row++ {
		s.grid[row] = s.grid[row+n]
	}
	for row := bottom - n + 1; row <= bottom; row++ {
		s.grid[row] = blankRowWithStyle(s.columns, s.cursor.Attrs)
	}
	s.cursor.X = 0
}

// --- Erasing ---

func (s *Screen) EraseInLine(mode int) {
	row := s.grid[s.cursor.Y]
	style := s.cursor.Attrs
	style.Data = " "
	switch mode {
	case 1:
		for c := 0; c <= s.cursor.X && c < s.columns; c++ {
			row[c] = style
		}
	case 2:
		for c := range row {
			row[c] = style
		}
	default:
		for c := s.cursor.X; c < s.columns; c++ {
			row[c] = style
		}
	}
}

func (s *Screen) EraseInDisplay(mode int) {
	switch mode {
	case 1:
		for row := 0; row < s.cursor.Y; row++ {
			s.grid[row] = newBlankRow(s.columns)
		}
		s.EraseInLine(1)
	case 2:
		for row := range s.grid {
			s.grid[row] = newBlankRow(s.columns)
		}
	default:
		for row := s.cursor.Y + 1; row < s.lines; row++ {
			s.grid[row] = newBlankRow(s.columns)
		}
		s.EraseInLine(0)
	}
}

// --- Tabs ---

func (s *Screen) ClearTabStop(mode int) {
	if mode == 3 {
		s.clearAllTabStops()
		return
	}
	s.clearTabStopAt(s.cursor.X)
}

// --- Scrolling ---

func (s *Screen) index() {
	if s.cursor.Y == s.marginBottom {
		s.scrollRegionUp(1)
		return
	}
	if s.cursor.Y < s.lines-1 {
		s.cursor.Y++
	}
}

func (s *Screen) reverseIndex() {
	if s.cursor.Y == s.marginTop {
		s.scrollRegionDown(1)
		return
	}
	if s.cursor.Y > 0 {
		s.cursor.Y--
	}
}

func (s *Screen) scrollRegionUp(n int) {
	top, bottom := s.marginTop, s.marginBottom
	if n <= 0 || top >= bottom {
		return
	}
	if max := bottom - top + 1; n > max {
		n = max
	}
	for row := top; row <= bottom-n; row++ {
		s.grid[row] = s.grid[row+n]
	}
	for row := bottom - n + 1; row <= bottom; row++ {
		s.grid[row] = newBlankRow(s.columns)
	}
}

func (s *Screen) scrollRegionDown(n int) {
	top, bottom := s.marginTop, s.marginBottom
	if n <= 0 || top >= bottom {
		return
	}
	if max := bottom - top + 1; n > max {
		n = max
	}
	for row := bottom; row >= top+n; row-- {
		s.grid[row] = s.grid[row-n]
	}
	for row := top; row < top+n; row++ {
		s.grid[row] = newBlankRow(s.columns)
	}
}

// --- Margins ---

func (s *Screen) SetMargins(top, bottom int) {
	if top == 0 {
		top = 1
	}
	if bottom == 0 {
		bottom = s.lines
	}
	t := clamp(top-1, 0, s.lines-1)
	b := clamp(bottom-1, 0, s.lines-1)
	if b-t < 1 {
		return
	}
	s.marginTop, s.marginBottom = t, b
	s.homeCursor()
}

// --- Modes ---

func (s *Screen) SetMode(modes []int, private bool)   { s.applyModes(modes, private, true) }
func (s *Screen) ResetMode(modes []int, private bool) { s.applyModes(modes, private, false) }

func (s *Screen) applyModes(modes []int, private, enable bool) {
	for _, m := range modes {
		if private {
			m = privateMode(m)
		}
		s.modes[m] = enable
		s.modeSideEffect(m, enable)
	}
}

func (s *Screen) modeSideEffect(m int, enable bool) {
	switch m {
	case ModeDECCOLM:
		if enable {
			s.Resize(s.lines, cols132)
		} else {
			s.Resize(s.lines, cols80)
		}
		s.EraseInDisplay(2)
		s.homeCursor()
	case ModeDECOM:
		s.homeCursor()
	case ModeDECSCNM:
		for y := range s.grid {
			for x := range s.grid[y] {
				s.grid[y][x].Reverse = !s.grid[y][x].Reverse
			}
		}
		s.cursor.Attrs.Reverse = !s.cursor.Attrs.Reverse
	case ModeDECTCEM:
		s.cursor.Hidden = !enable
	}
}

// --- SGR ---

func (s *Screen) SelectGraphicRendition(params []int) {
	applySGR(&s.cursor.Attrs, params)
}
