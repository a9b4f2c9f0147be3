// Package dialog turns dialog markup into paginated, word-wrapped pages and
// reveals them a word at a time with per-word text effects.
package dialog

import "fmt"

// EffectKind is the family of a text effect.
type EffectKind uint8

const (
	EffectNone    EffectKind = iota // Plain text
	EffectWavy                      // {wvy} letters wave up and down
	EffectShaky                     // {shk} the word jitters in place
	EffectRainbow                   // {rbw} the colour cycles through hues
	EffectColor                     // {clrN} a palette colour
)

// TextEffect is the visual effect attached to a word. Color is only meaningful
// for EffectColor and holds the palette index.
type TextEffect struct {
	Kind  EffectKind
	Color uint8
}

// Convenience values for the effects that carry no argument.
var (
	None    = TextEffect{Kind: EffectNone}
	Wavy    = TextEffect{Kind: EffectWavy}
	Shaky   = TextEffect{Kind: EffectShaky}
	Rainbow = TextEffect{Kind: EffectRainbow}
)

// Color returns the effect that draws text with palette colour idx.
func Color(idx uint8) TextEffect {
	return TextEffect{Kind: EffectColor, Color: idx}
}

// Stable reports whether a word with this effect looks the same on every frame
// and so only needs to be drawn once.
func (e TextEffect) Stable() bool {
	return e.Kind == EffectNone || e.Kind == EffectColor
}

// Moves reports whether the effect changes where glyphs are drawn, which means
// the previous footprint has to be erased before each redraw.
func (e TextEffect) Moves() bool {
	return e.Kind == EffectWavy || e.Kind == EffectShaky
}

// String returns the markup tag name of the effect.
func (e TextEffect) String() string {
	switch e.Kind {
	case EffectNone:
		return "none"
	case EffectWavy:
		return "wvy"
	case EffectShaky:
		return "shk"
	case EffectRainbow:
		return "rbw"
	case EffectColor:
		return fmt.Sprintf("clr%d", e.Color)
	default:
		return "unknown"
	}
}
