package vt100

// CharsetTable is a 256-entry character translation table, indexed by a
// drawn character's low byte; entries for code points without a special
// mapping pass through unchanged.
type CharsetTable [256]rune

// identityCharset leaves every byte unchanged; it backs the default G0
// slot (US-ASCII / Latin-1 passthrough).
var identityCharset = newIdentityCharset()

func newIdentityCharset() *CharsetTable {
	var t CharsetTable
	for i := range t {
		t[i] = rune(i)
	}
	return &t
}

// vt100GraphicsCharset is the DEC Special Graphics set (line drawing),
// selected by `ESC ( 0` / `ESC ) 0` and conventionally loaded into G1.
var vt100GraphicsCharset = newVT100GraphicsCharset()

func newVT100GraphicsCharset() *CharsetTable {
	t := *identityCharset
	mapping := map[byte]rune{
		'j': '┘',
		'k': '┐',
		'l': '┌',
		'm': '└',
		'n': '┼',
		'q': '─',
		't': '├',
		'u': '┤',
		'v': '┴',
		'w': '┬',
		'x': '│',
		'a': '▒',
		'f': '°',
		'g': '±',
		'~': '·',
		'_': ' ',
		'`': '◆',
		'0': '█',
	}
	for b, r := range mapping {
		t[b] = r
	}
	return &t
}

// charsetByDesignator maps the final byte of `ESC ( x` / `ESC ) x` to the
// table it selects. Unknown designators are ignored.
var charsetByDesignator = map[byte]*CharsetTable{
	'B': identityCharset,         // US-ASCII
	'A': identityCharset,         // UK (approximated as ASCII)
	'0': vt100GraphicsCharset,    // DEC Special Graphics
	'1': vt100GraphicsCharset,    // alternate character ROM
	'2': vt100GraphicsCharset,    // alternate character ROM, graphics
}

// translate looks up ch in the table, falling back to ch itself for any
// code point outside the table's range (runes above U+00FF).
func (t *CharsetTable) translate(ch rune) rune {
	if t == nil || ch < 0 || ch > 0xFF {
		return ch
	}
	return t[ch]
}
