package sketch

import "image/color"

// Pen colors travel as names so the wire format and saved boards stay
// readable. Unknown names fall back to black.
var palette = map[string]color.NRGBA{
	"black":  {A: 255},
	"red":    {R: 255, A: 255},
	"green":  {G: 255, A: 255},
	"blue":   {B: 255, A: 255},
	"yellow": {R: 255, G: 255, A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
}

// NamedColor resolves a pen color name to its NRGBA value.
func NamedColor(name string) color.NRGBA {
	if c, ok := palette[name]; ok {
		return c
	}
	return palette["black"]
}

// ColorName maps an NRGBA value back to its palette name, for storing
// a swatch selection. Colors outside the palette report "black".
func ColorName(c color.NRGBA) string {
	for name, v := range palette {
		if v == c {
			return name
		}
	}
	return "black"
}
