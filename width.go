package vt100

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK,
// emoji), 1 for normal, 0 for zero-width (combining marks, control
// chars). Used by the byte adapter (decode.go) to fold combining marks
// into the preceding grapheme cluster rather than giving them their
// own Cell.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the total display width of a string.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
