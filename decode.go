package vt100

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// FallbackCodec pairs an encoding with a descriptive name; the Decoder
// itself does not read Name. A nil Encoding means "try UTF-8", which is
// not itself a golang.org/x/text encoding.
type FallbackCodec struct {
	Name     string
	Encoding encoding.Encoding
}

// DefaultFallbacks decodes UTF-8 first and falls back to ISO-8859-1,
// which maps every byte value and therefore never fails — a stream
// that briefly emits Latin-1 bytes still produces something rather
// than stalling the parser.
func DefaultFallbacks() []FallbackCodec {
	return []FallbackCodec{
		{Name: "utf-8"},
		{Name: "iso-8859-1", Encoding: charmap.ISO8859_1},
	}
}

// Decoder is the byte-to-character adapter that sits in front of a
// Stream, kept deliberately thin and outside the parser's core. Built on
// the golang.org/x/text encoding/transform idiom commonly used for
// charset decoding in Go terminal tooling.
type Decoder struct {
	fallbacks []FallbackCodec
}

// NewDecoder builds a Decoder trying each fallback in order. With no
// arguments, it uses DefaultFallbacks.
func NewDecoder(fallbacks ...FallbackCodec) *Decoder {
	if len(fallbacks) == 0 {
		fallbacks = DefaultFallbacks()
	}
	return &Decoder{fallbacks: fallbacks}
}

// Decode converts raw bytes into the token sequence Stream.Feed
// expects: one entry per user-perceived character, with zero-width
// combining runes folded into the preceding entry so a Cell can hold a
// full grapheme cluster.
func (d *Decoder) Decode(b []byte) []string {
	return clusterGraphemes(d.decodeRunes(b))
}

func (d *Decoder) decodeRunes(b []byte) []rune {
	for _, fb := range d.fallbacks {
		if fb.Encoding == nil {
			if utf8.Valid(b) {
				return []rune(string(b))
			}
			continue
		}
		out, _, err := transform.Bytes(fb.Encoding.NewDecoder(), b)
		if err == nil {
			return []rune(string(out))
		}
	}
	// Every configured fallback failed (DefaultFallbacks never does,
	// since ISO-8859-1 accepts all byte values): decode lossily so the
	// parser still makes progress rather than dropping the input.
	return []rune(string(b))
}

// clusterGraphemes groups zero-width runes (combining marks) with the
// base rune before them into a single token.
func clusterGraphemes(runes []rune) []string {
	tokens := make([]string, 0, len(runes))
	for _, r := range runes {
		if len(tokens) > 0 && runeWidth(r) == 0 && !isControlRune(r) {
			tokens[len(tokens)-1] += string(r)
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}

// isControlRune reports whether r is a C0/C1 control code, which must
// never be folded into a preceding grapheme cluster even though some
// have zero display width.
func isControlRune(r rune) bool {
	return r < 0x20 || r == rune(DEL) || (r >= 0x80 && r <= 0x9F)
}
