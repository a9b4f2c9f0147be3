package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"bitsycart/pkg/engine/dialog"
)

// newFace returns the fixed-width face dialog text is drawn with.
func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// faceMetrics returns the character cell of a fixed-width face.
func faceMetrics(f text.Face) dialog.Metrics {
	w, _ := text.Measure("M", f, 0)
	m := f.Metrics()
	return dialog.Metrics{
		CharWidth:  int(math.Ceil(w)),
		CharHeight: int(math.Ceil(m.HAscent + m.HDescent)),
	}
}
