package vt100

// Listener event capabilities. A Stream dispatches each event to every
// attached listener in attach order; a listener that does not implement
// the capability for a given event simply does not receive it. This
// generalizes a single before/after hook pair into an optional interface
// capability per event.
//
// Screen implements all of these; a caller may also attach a narrower,
// purpose-built listener (e.g. something that only wants Bell).

// Draw receives one user-perceived character at a time: usually a
// single rune, but possibly a base rune plus combining marks folded
// together by the byte adapter (decode.go) into one grapheme cluster.
type DrawListener interface{ Draw(ch string) }

type BellListener interface{ Bell() }
type BackspaceListener interface{ Backspace() }
type TabListener interface{ Tab() }
type LinefeedListener interface{ Linefeed() }
type CarriageReturnListener interface{ CarriageReturn() }
type ShiftOutListener interface{ ShiftOut() }
type ShiftInListener interface{ ShiftIn() }

type ResetListener interface{ Reset() }
type IndexListener interface{ Index() }
type SetTabStopListener interface{ SetTabStop() }
type ReverseIndexListener interface{ ReverseIndex() }
type SaveCursorListener interface{ SaveCursor() }
type RestoreCursorListener interface{ RestoreCursor() }

type AlignmentDisplayListener interface{ AlignmentDisplay() }

type SetCharsetListener interface{ SetCharset(code byte, mode byte) }

type InsertCharactersListener interface{ InsertCharacters(n int) }
type CursorUpListener interface{ CursorUp(n int) }
type CursorDownListener interface{ CursorDown(n int) }
type CursorForwardListener interface{ CursorForward(n int) }
type CursorBackListener interface{ CursorBack(n int) }
type CursorDown1Listener interface{ CursorDown1(n int) }
type CursorUp1Listener interface{ CursorUp1(n int) }
type CursorToColumnListener interface{ CursorToColumn(n int) }
type CursorPositionListener interface{ CursorPosition(line, col int) }
type EraseInDisplayListener interface{ EraseInDisplay(mode int) }
type EraseInLineListener interface{ EraseInLine(mode int) }
type InsertLinesListener interface{ InsertLines(n int) }
type DeleteLinesListener interface{ DeleteLines(n int) }
type DeleteCharactersListener interface{ DeleteCharacters(n int) }
type EraseCharactersListener interface{ EraseCharacters(n int) }
type CursorToLineListener interface{ CursorToLine(n int) }
type ClearTabStopListener interface{ ClearTabStop(mode int) }
type SetModeListener interface{ SetMode(modes []int, private bool) }
type ResetModeListener interface{ ResetMode(modes []int, private bool) }
type SelectGraphicRenditionListener interface {
	SelectGraphicRendition(params []int)
}
type SetMarginsListener interface{ SetMargins(top, bottom int) }

// DebugListener receives events the parser could not map to a known
// operation: an unrecognized escape/sharp/CSI final byte.
type DebugListener interface {
	Debug(name string, params []int, b byte)
}

// BeforeListener/AfterListener wrap every dispatched event, whether or
// not any listener handles it. Debug events are not wrapped.
type BeforeListener interface{ Before(event string) }
type AfterListener interface{ After(event string) }
