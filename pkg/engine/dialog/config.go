package dialog

import (
	"image"

	"bitsycart/pkg/engine/palette"
)

// Metrics describes the fixed-width font cell.
type Metrics struct {
	CharWidth  int
	CharHeight int
}

// Config holds the layout and timing tunables of the dialog engine.
type Config struct {
	// Box is the dialog box in screen pixels.
	Box image.Rectangle
	// MarginX and MarginY inset the text area inside Box.
	MarginX int
	MarginY int

	// LinesPerPage caps lines per page when positive; otherwise the text area
	// height is the budget.
	LinesPerPage int
	// WordSpacing is the gap after each word, in character cells.
	WordSpacing int
	// IconWidth is the placeholder width of inline icons, in pixels.
	IconWidth int

	// RevealEvery reveals one word on frames divisible by it.
	RevealEvery uint
	// EffectEvery redraws moving effects on frames divisible by it.
	EffectEvery uint
	// RainbowEvery advances the rainbow hue every RainbowEvery frames.
	RainbowEvery uint

	// ContrastThreshold decides whether scene colours are reused for the box.
	ContrastThreshold float64

	// Indicator is the top-left corner of the "more pages" triangle.
	Indicator     image.Point
	IndicatorSize int
}

// DefaultConfig matches the 240x160 cartridge screen with a box across the
// bottom 32 pixels.
func DefaultConfig() Config {
	return Config{
		Box:               image.Rect(0, 128, 240, 160),
		MarginX:           2,
		MarginY:           4,
		WordSpacing:       1,
		IconWidth:         8,
		RevealEvery:       3,
		EffectEvery:       6,
		RainbowEvery:      6,
		ContrastThreshold: palette.DefaultContrastThreshold,
		Indicator:         image.Pt(229, 153),
		IndicatorSize:     8,
	}
}

// TextOrigin is the screen position of a page's (0, 0).
func (c Config) TextOrigin() image.Point {
	return c.Box.Min.Add(image.Pt(c.MarginX, c.MarginY))
}

// TextSize is the pixel budget for a page of text.
func (c Config) TextSize() image.Point {
	return image.Pt(c.Box.Dx()-2*c.MarginX, c.Box.Dy()-2*c.MarginY)
}
