package tui

import (
	"image"
	"image/color"
	"io"
	"strings"

	gcolor "github.com/gookit/color"

	"bitsycart/pkg/engine/dialog"
	"bitsycart/pkg/engine/palette"
)

// IndicatorGlyph marks the "more pages" triangle.
const IndicatorGlyph = '▼'

type cell struct {
	ch rune
	fg palette.RGB
	bg palette.RGB
}

// Grid is a character-cell canvas. One pixel of the dialog engine is one
// cell. It implements dialog.Canvas and dialog.IconCanvas.
type Grid struct {
	w, h  int
	cells []cell
	// Icons resolves the colour of inline icons. Nil draws them in the text
	// colour of the cell underneath.
	Icons func(kind dialog.WordKind, id string) color.Color
}

// NewGrid returns a w x h grid of blank cells.
func NewGrid(w, h int) *Grid {
	g := &Grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', fg: palette.FallbackText, bg: palette.FallbackBox}
	}
	return g
}

// Bounds returns the grid rectangle.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.w, g.h)
}

func (g *Grid) at(p image.Point) *cell {
	if !p.In(g.Bounds()) {
		return nil
	}
	return &g.cells[p.Y*g.w+p.X]
}

func toRGB(c color.Color) palette.RGB {
	if rgb, ok := c.(palette.RGB); ok {
		return rgb
	}
	r, gr, b, _ := c.RGBA()
	return palette.RGB{Red: uint8(r >> 8), Green: uint8(gr >> 8), Blue: uint8(b >> 8)}
}

// FillRect blanks the cells in r with background c.
func (g *Grid) FillRect(r image.Rectangle, c color.Color) {
	bg := toRGB(c)
	r = r.Intersect(g.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			g.cells[y*g.w+x] = cell{ch: ' ', fg: bg, bg: bg}
		}
	}
}

// DrawText writes s from at, keeping each cell's background.
func (g *Grid) DrawText(s string, at image.Point, c color.Color) {
	fg := toRGB(c)
	for i, ch := range []rune(s) {
		if cl := g.at(at.Add(image.Pt(i, 0))); cl != nil {
			cl.ch = ch
			cl.fg = fg
		}
	}
}

// FillTriangle marks the centre cell of the triangle's bounding box.
func (g *Grid) FillTriangle(a, b, c image.Point, col color.Color) {
	box := image.Rectangle{Min: a, Max: a}.Union(image.Rectangle{Min: b, Max: b}).Union(image.Rectangle{Min: c, Max: c})
	centre := box.Min.Add(box.Max).Div(2)
	if cl := g.at(centre); cl != nil {
		cl.ch = IndicatorGlyph
		cl.fg = toRGB(col)
	}
}

// DrawIcon paints a solid icon cell.
func (g *Grid) DrawIcon(kind dialog.WordKind, id string, at image.Point) {
	cl := g.at(at)
	if cl == nil {
		return
	}
	col := color.Color(cl.fg)
	if g.Icons != nil {
		col = g.Icons(kind, id)
	}
	rgb := toRGB(col)
	*cl = cell{ch: ' ', fg: rgb, bg: rgb}
}

// Rune returns the character at (x, y).
func (g *Grid) Rune(x, y int) rune {
	if cl := g.at(image.Pt(x, y)); cl != nil {
		return cl.ch
	}
	return 0
}

// Row returns the characters of row y.
func (g *Grid) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < g.w; x++ {
		sb.WriteRune(g.Rune(x, y))
	}
	return sb.String()
}

// Flush writes the grid to w from the cursor home position, coloured with
// 24-bit escape codes. Runs of cells with the same colours share one code.
func (g *Grid) Flush(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("\x1b[H")
	for y := 0; y < g.h; y++ {
		var run []rune
		var cur cell
		flush := func() {
			if len(run) == 0 {
				return
			}
			style := gcolor.NewRGBStyle(rgbOf(cur.fg, false), rgbOf(cur.bg, true))
			sb.WriteString(style.Sprint(string(run)))
			run = run[:0]
		}
		for x := 0; x < g.w; x++ {
			cl := g.cells[y*g.w+x]
			if len(run) > 0 && (cl.fg != cur.fg || cl.bg != cur.bg) {
				flush()
			}
			cur = cl
			run = append(run, cl.ch)
		}
		flush()
		sb.WriteString("\r\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func rgbOf(c palette.RGB, bg bool) gcolor.RGBColor {
	return gcolor.RGB(c.Red, c.Green, c.Blue, bg)
}
