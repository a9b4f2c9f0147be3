package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bitsycart/pkg/engine/dialog"
)

// imageCanvas draws dialog primitives onto an ebiten image. It implements
// dialog.Canvas and dialog.IconCanvas.
type imageCanvas struct {
	img      *ebiten.Image
	face     text.Face
	iconSize int
	// lineHeight centres icons on the text line.
	lineHeight int
	icons      func(kind dialog.WordKind, id string) color.Color
}

func (c *imageCanvas) FillRect(r image.Rectangle, col color.Color) {
	vector.DrawFilledRect(c.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col, false)
}

func (c *imageCanvas) DrawText(s string, at image.Point, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.img, s, c.face, op)
}

func (c *imageCanvas) FillTriangle(a, b, p image.Point, col color.Color) {
	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(p.X), float32(p.Y))
	path.Close()
	drawOpts := &vector.DrawPathOptions{}
	drawOpts.ColorScale.ScaleWithColor(col)
	vector.FillPath(c.img, &path, nil, drawOpts)
}

func (c *imageCanvas) DrawIcon(kind dialog.WordKind, id string, at image.Point) {
	if c.icons == nil {
		return
	}
	top := at.Add(image.Pt(0, (c.lineHeight-c.iconSize)/2))
	c.FillRect(image.Rectangle{Min: top, Max: top.Add(image.Pt(c.iconSize, c.iconSize))}, c.icons(kind, id))
}
