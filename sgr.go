package vt100

// applySGR applies select_graphic_rendition parameters, in order, to
// attrs in place; Screen passes its cursor's style directly.
//
// 38/48 extended-color forms are parsed so the parameter cursor stays
// in sync with whatever follows in the same sequence, but indexed and
// truecolor forms are not resolved to a palette name — fg/bg are left
// untouched for them.
func applySGR(attrs *Cell, params []int) {
	if len(params) == 0 {
		params = []int{0}
	}

	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			style := NewCell()
			attrs.Fg, attrs.Bg = style.Fg, style.Bg
			attrs.Bold, attrs.Italics, attrs.Underscore = false, false, false
			attrs.Strikethrough, attrs.Reverse, attrs.Blink = false, false, false
		case p == 1:
			attrs.Bold = true
		case p == 22:
			attrs.Bold = false
		case p == 3:
			attrs.Italics = true
		case p == 23:
			attrs.Italics = false
		case p == 4:
			attrs.Underscore = true
		case p == 24:
			attrs.Underscore = false
		case p == 5:
			attrs.Blink = true
		case p == 25:
			attrs.Blink = false
		case p == 7:
			attrs.Reverse = true
		case p == 27:
			attrs.Reverse = false
		case p == 9:
			attrs.Strikethrough = true
		case p == 29:
			attrs.Strikethrough = false
		case p >= 30 && p <= 37:
			attrs.Fg = sgrColorNames[p-30]
		case p == 38:
			i += skipExtendedColor(params[i+1:])
		case p == 39:
			attrs.Fg = ColorDefault
		case p >= 40 && p <= 47:
			attrs.Bg = sgrColorNames[p-40]
		case p == 48:
			i += skipExtendedColor(params[i+1:])
		case p == 49:
			attrs.Bg = ColorDefault
		case p >= 90 && p <= 97:
			attrs.Fg = brightName(sgrColorNames[p-90])
		case p >= 100 && p <= 107:
			attrs.Bg = brightName(sgrColorNames[p-100])
		}
	}
}

// skipExtendedColor consumes the sub-parameters of a 38/48 introducer
// and returns how many entries of rest to skip: `5;n` (indexed, 256
// colors) or `2;r;g;b` (truecolor).
func skipExtendedColor(rest []int) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			return 2
		}
		return 1
	case 2:
		if len(rest) >= 4 {
			return 4
		}
		return len(rest)
	default:
		return 1
	}
}
