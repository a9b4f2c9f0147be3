package palette

// DefaultContrastThreshold is the minimum ratio for reusing a scene's own colours
// in the dialog box. WCAG AA asks for 4.5; small pixel fonts need far more.
const DefaultContrastThreshold = 10.0

// Fallback dialog colours used when the scene palette is not legible enough.
var (
	FallbackBox  = RGB{Red: 0x1a, Green: 0x1c, Blue: 0x2c}
	FallbackText = RGB{Red: 0xf4, Green: 0xf4, Blue: 0xf4}
)

// Luminance returns the relative luminance of c in [0, 1].
func Luminance(c RGB) float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio of a and b, in [1, 21].
// The result does not depend on argument order.
func Contrast(a, b RGB) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// BoxStyle is the pair of colours a dialog box is drawn with.
type BoxStyle struct {
	Box  RGB
	Text RGB
}

// DialogStyle picks dialog box colours for p. The scene background and
// foreground are reused when their contrast reaches threshold, otherwise the
// fixed fallback pair is returned.
func DialogStyle(p Palette, threshold float64) BoxStyle {
	if len(p.Colors) < 2 {
		return BoxStyle{Box: FallbackBox, Text: FallbackText}
	}
	bg, fg := p.Colors[0], p.Colors[1]
	if Contrast(bg, fg) >= threshold {
		return BoxStyle{Box: bg, Text: fg}
	}
	return BoxStyle{Box: FallbackBox, Text: FallbackText}
}
