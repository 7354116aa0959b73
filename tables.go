package vt100

// Control character codes recognized by the stream parser (C0 set plus the
// single-byte CSI introducer used by 8-bit terminals).
const (
	NUL byte = 0x00
	BEL byte = 0x07
	BS  byte = 0x08
	HT  byte = 0x09
	LF  byte = 0x0A
	VT  byte = 0x0B
	FF  byte = 0x0C
	CR  byte = 0x0D
	SO  byte = 0x0E
	SI  byte = 0x0F
	CAN byte = 0x18
	SUB byte = 0x1A
	ESC byte = 0x1B
	DEL byte = 0x7F
	CSI byte = 0x9B
)

// basicEvents maps C0 control characters dispatched directly from the
// ground state to their event name. Embedded occurrences inside a CSI
// sequence reuse this table.
var basicEvents = map[byte]string{
	BEL: "bell",
	BS:  "backspace",
	HT:  "tab",
	LF:  "linefeed",
	VT:  "linefeed",
	FF:  "linefeed",
	CR:  "carriage_return",
	SO:  "shift_out",
	SI:  "shift_in",
}

// escapeEvents maps the final byte of a two-character ESC sequence
// (ESC x) to its event name.
var escapeEvents = map[byte]string{
	'c': "reset",
	'D': "index",
	'E': "linefeed",
	'H': "set_tab_stop",
	'M': "reverse_index",
	'7': "save_cursor",
	'8': "restore_cursor",
}

// sharpEvents maps the final byte of an ESC # sequence to its event name.
var sharpEvents = map[byte]string{
	'8': "alignment_display",
}

// csiEvents maps the final byte of a CSI sequence to its event name.
var csiEvents = map[byte]string{
	'@':  "insert_characters",
	'A':  "cursor_up",
	'B':  "cursor_down",
	'C':  "cursor_forward",
	'D':  "cursor_back",
	'E':  "cursor_down1",
	'F':  "cursor_up1",
	'G':  "cursor_to_column",
	'H':  "cursor_position",
	'f':  "cursor_position",
	'J':  "erase_in_display",
	'K':  "erase_in_line",
	'L':  "insert_lines",
	'M':  "delete_lines",
	'P':  "delete_characters",
	'X':  "erase_characters",
	'a':  "cursor_forward",
	'd':  "cursor_to_line",
	'e':  "cursor_down",
	'g':  "clear_tab_stop",
	'h':  "set_mode",
	'l':  "reset_mode",
	'm':  "select_graphic_rendition",
	'r':  "set_margins",
	'\'': "cursor_to_column",
}

// Mode numbers. Standard (non-private) ECMA-48 modes live in the low
// range; DEC private modes (introduced by CSI ? ... h/l) are shifted left
// by PrivateModeShift before being stored so the two namespaces never
// collide.
const PrivateModeShift = 5

const (
	ModeLNM = 20 // Line feed / new line

	ModeIRM = 4 // Insert / replace
)

// DEC private modes, pre-shifted into the private namespace.
const (
	ModeDECTCEM = 25 << PrivateModeShift // cursor visible
	ModeDECAWM  = 7 << PrivateModeShift  // auto-wrap
	ModeDECOM   = 6 << PrivateModeShift  // origin mode
	ModeDECCOLM = 3 << PrivateModeShift  // 132-column mode
	ModeDECSCNM = 5 << PrivateModeShift  // screen-wide reverse video
)

// privateMode shifts a raw CSI parameter into the private namespace.
func privateMode(n int) int {
	return n << PrivateModeShift
}

// Parameter bounds.
const (
	maxParamValue = 9999
	maxParams     = 16
)

// Column counts toggled by DECCOLM.
const (
	cols80  = 80
	cols132 = 132
)

// defaultTabWidth is the spacing of initial tab stops.
const defaultTabWidth = 8
