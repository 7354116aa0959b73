package vt100

// arg returns params[i], or 0 if the parameter was not present. A
// missing parameter is 0; the operation itself reinterprets 0 as its own
// default (usually 1).
func arg(params []int, i int) int {
	if i < 0 || i >= len(params) {
		return 0
	}
	return params[i]
}

// dispatch delivers a no-argument / basic event to every listener,
// wrapped in before/after hooks.
func (s *Stream) dispatch(name string, params []int, b byte) {
	s.before(name)
	for _, l := range s.listeners {
		switch name {
		case "bell":
			if h, ok := l.(BellListener); ok {
				h.Bell()
			}
		case "backspace":
			if h, ok := l.(BackspaceListener); ok {
				h.Backspace()
			}
		case "tab":
			if h, ok := l.(TabListener); ok {
				h.Tab()
			}
		case "linefeed":
			if h, ok := l.(LinefeedListener); ok {
				h.Linefeed()
			}
		case "carriage_return":
			if h, ok := l.(CarriageReturnListener); ok {
				h.CarriageReturn()
			}
		case "shift_out":
			if h, ok := l.(ShiftOutListener); ok {
				h.ShiftOut()
			}
		case "shift_in":
			if h, ok := l.(ShiftInListener); ok {
				h.ShiftIn()
			}
		case "reset":
			if h, ok := l.(ResetListener); ok {
				h.Reset()
			}
		case "index":
			if h, ok := l.(IndexListener); ok {
				h.Index()
			}
		case "set_tab_stop":
			if h, ok := l.(SetTabStopListener); ok {
				h.SetTabStop()
			}
		case "reverse_index":
			if h, ok := l.(ReverseIndexListener); ok {
				h.ReverseIndex()
			}
		case "save_cursor":
			if h, ok := l.(SaveCursorListener); ok {
				h.SaveCursor()
			}
		case "restore_cursor":
			if h, ok := l.(RestoreCursorListener); ok {
				h.RestoreCursor()
			}
		case "alignment_display":
			if h, ok := l.(AlignmentDisplayListener); ok {
				h.AlignmentDisplay()
			}
		}
	}
	s.after(name)
}

func (s *Stream) dispatchDraw(tok string) {
	s.before("draw")
	for _, l := range s.listeners {
		if h, ok := l.(DrawListener); ok {
			h.Draw(tok)
		}
	}
	s.after("draw")
}

func (s *Stream) dispatchSetCharset(code, mode byte) {
	s.before("set_charset")
	for _, l := range s.listeners {
		if h, ok := l.(SetCharsetListener); ok {
			h.SetCharset(code, mode)
		}
	}
	s.after("set_charset")
}

// dispatchCSI converts the raw parameter list into the typed arguments
// each CSI event's listener capability expects.
func (s *Stream) dispatchCSI(name string, params []int, private bool) {
	s.before(name)
	for _, l := range s.listeners {
		switch name {
		case "insert_characters":
			if h, ok := l.(InsertCharactersListener); ok {
				h.InsertCharacters(arg(params, 0))
			}
		case "cursor_up":
			if h, ok := l.(CursorUpListener); ok {
				h.CursorUp(arg(params, 0))
			}
		case "cursor_down":
			if h, ok := l.(CursorDownListener); ok {
				h.CursorDown(arg(params, 0))
			}
		case "cursor_forward":
			if h, ok := l.(CursorForwardListener); ok {
				h.CursorForward(arg(params, 0))
			}
		case "cursor_back":
			if h, ok := l.(CursorBackListener); ok {
				h.CursorBack(arg(params, 0))
			}
		case "cursor_down1":
			if h, ok := l.(CursorDown1Listener); ok {
				h.CursorDown1(arg(params, 0))
			}
		case "cursor_up1":
			if h, ok := l.(CursorUp1Listener); ok {
				h.CursorUp1(arg(params, 0))
			}
		case "cursor_to_column":
			if h, ok := l.(CursorToColumnListener); ok {
				h.CursorToColumn(arg(params, 0))
			}
		case "cursor_position":
			if h, ok := l.(CursorPositionListener); ok {
				h.CursorPosition(arg(params, 0), arg(params, 1))
			}
		case "erase_in_display":
			if h, ok := l.(EraseInDisplayListener); ok {
				h.EraseInDisplay(arg(params, 0))
			}
		case "erase_in_line":
			if h, ok := l.(EraseInLineListener); ok {
				h.EraseInLine(arg(params, 0))
			}
		case "insert_lines":
			if h, ok := l.(InsertLinesListener); ok {
				h.InsertLines(arg(params, 0))
			}
		case "delete_lines":
			if h, ok := l.(DeleteLinesListener); ok {
				h.DeleteLines(arg(params, 0))
			}
		case "delete_characters":
			if h, ok := l.(DeleteCharactersListener); ok {
				h.DeleteCharacters(arg(params, 0))
			}
		case "erase_characters":
			if h, ok := l.(EraseCharactersListener); ok {
				h.EraseCharacters(arg(params, 0))
			}
		case "cursor_to_line":
			if h, ok := l.(CursorToLineListener); ok {
				h.CursorToLine(arg(params, 0))
			}
		case "clear_tab_stop":
			if h, ok := l.(ClearTabStopListener); ok {
				h.ClearTabStop(arg(params, 0))
			}
		case "set_mode":
			if h, ok := l.(SetModeListener); ok {
				h.SetMode(params, private)
			}
		case "reset_mode":
			if h, ok := l.(ResetModeListener); ok {
				h.ResetMode(params, private)
			}
		case "select_graphic_rendition":
			if h, ok := l.(SelectGraphicRenditionListener); ok {
				h.SelectGraphicRendition(params)
			}
		case "set_margins":
			if h, ok := l.(SetMarginsListener); ok {
				h.SetMargins(arg(params, 0), arg(params, 1))
			}
		}
	}
	s.after(name)
}

// debug fires when a final byte has no mapping in its state's table:
// the only diagnostic channel the parser exposes.
func (s *Stream) debug(state string, params []int, b byte) {
	for _, l := range s.listeners {
		if h, ok := l.(DebugListener); ok {
			h.Debug(state, params, b)
		}
	}
}

func (s *Stream) before(event string) {
	for _, l := range s.listeners {
		if h, ok := l.(BeforeListener); ok {
			h.Before(event)
		}
	}
}

func (s *Stream) after(event string) {
	for _, l := range s.listeners {
		if h, ok := l.(AfterListener); ok {
			h.After(event)
		}
	}
}
