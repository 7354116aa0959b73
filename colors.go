package vt100

import "image/color"

// brightPrefix marks the bright variant of a base color name. SGR
// 90-97/100-107 select the bright variant, named by prefixing the base
// color name.
const (
	brightPrefix = "bright_"
)

func brightName(name string) string {
	if name == ColorDefault {
		return ColorDefault
	}
	return brightPrefix + name
}

// sgrColorNames maps the SGR 30-37/40-47 parameter offset (param - 30 or
// param - 40) to a palette name, per ECMA-48 §8.3.117/118.
var sgrColorNames = [8]string{
	ColorBlack,
	ColorRed,
	ColorGreen,
	ColorBrown,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorWhite,
}

// colorRGBA is the reference RGB value for each palette name, used only
// by consumers that want to render a Screen (via ResolveRGBA); the core
// state machine never looks at this table.
var colorRGBA = map[string]color.RGBA{
	ColorBlack:   {0, 0, 0, 255},
	ColorRed:     {205, 49, 49, 255},
	ColorGreen:   {13, 188, 121, 255},
	ColorBrown:   {229, 229, 16, 255},
	ColorBlue:    {36, 114, 200, 255},
	ColorMagenta: {188, 63, 188, 255},
	ColorCyan:    {17, 168, 205, 255},
	ColorWhite:   {229, 229, 229, 255},

	brightPrefix + ColorBlack:   {102, 102, 102, 255},
	brightPrefix + ColorRed:     {241, 76, 76, 255},
	brightPrefix + ColorGreen:   {35, 209, 139, 255},
	brightPrefix + ColorBrown:   {245, 245, 67, 255},
	brightPrefix + ColorBlue:    {59, 142, 234, 255},
	brightPrefix + ColorMagenta: {214, 112, 214, 255},
	brightPrefix + ColorCyan:    {41, 184, 219, 255},
	brightPrefix + ColorWhite:   {255, 255, 255, 255},
}

// DefaultForeground/DefaultBackground are the RGB values a renderer
// should use for the "default" palette name.
var (
	DefaultForeground = color.RGBA{229, 229, 229, 255}
	DefaultBackground = color.RGBA{0, 0, 0, 255}
)

// ResolveRGBA resolves a Cell color name to an RGB value, for consumers
// that render a Screen rather than inspect it. fg selects which default
// applies when name is "default" or unrecognized (e.g. an unresolved
// 38/48 extended form).
func ResolveRGBA(name string, fg bool) color.RGBA {
	if c, ok := colorRGBA[name]; ok {
		return c
	}
	if fg {
		return DefaultForeground
	}
	return DefaultBackground
}
