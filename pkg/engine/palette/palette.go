// Package palette holds scene colour palettes and the contrast rules used to pick
// legible dialog box colours from them.
package palette

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is one palette entry. It implements color.Color so hosts can hand it
// straight to their drawing primitives.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// RGBA implements color.Color. Palette entries are always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.Red)
	r |= r << 8
	g = uint32(c.Green)
	g |= g << 8
	b = uint32(c.Blue)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// colorful converts to the normalized representation used for colour math.
func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red) / 255,
		G: float64(c.Green) / 255,
		B: float64(c.Blue) / 255,
	}
}

// FromColorful clamps a go-colorful colour back into a palette entry.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{Red: r, Green: g, Blue: b}
}

// Palette is an ordered list of colours belonging to a cartridge. Index 0 is
// the scene background, index 1 the foreground (tiles), index 2 sprites.
type Palette struct {
	ID     string
	Name   string
	Colors []RGB
}

// Color returns the colour at idx, or false when idx is out of range.
func (p Palette) Color(idx int) (RGB, bool) {
	if idx < 0 || idx >= len(p.Colors) {
		return RGB{}, false
	}
	return p.Colors[idx], true
}
