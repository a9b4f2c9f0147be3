package dialog

import (
	"image"
	"image/color"
	"math/rand"
	"unicode/utf8"

	colorful "github.com/lucasb-eyer/go-colorful"

	"bitsycart/pkg/engine/palette"
)

// Canvas is the set of write-only drawing primitives the host provides.
type Canvas interface {
	// FillRect fills r with a solid colour. Clearing a region is a fill with
	// the clear colour.
	FillRect(r image.Rectangle, c color.Color)
	// DrawText draws a run of text with its cell's top-left corner at at.
	DrawText(s string, at image.Point, c color.Color)
	// FillTriangle draws a filled triangle.
	FillTriangle(a, b, c image.Point, col color.Color)
}

// IconCanvas is implemented by canvases that can draw inline icons. Icons on
// other canvases are left blank.
type IconCanvas interface {
	DrawIcon(kind WordKind, id string, at image.Point)
}

// rainbowTable is the hue cycle used by {rbw}.
var rainbowTable = buildRainbow(10)

func buildRainbow(n int) []palette.RGB {
	table := make([]palette.RGB, n)
	for i := range table {
		hue := float64(i) * 360 / float64(n)
		table[i] = palette.FromColorful(colorful.Hsv(hue, 0.6, 1))
	}
	return table
}

// RainbowColor returns the rainbow colour shown on frame.
func RainbowColor(frame, every uint) palette.RGB {
	if every == 0 {
		every = 1
	}
	return rainbowTable[(frame/every)%uint(len(rainbowTable))]
}

// Renderer draws the current page of a dialog a little more on each frame.
type Renderer struct {
	cfg     Config
	metrics Metrics
	scene   palette.Palette
	style   palette.BoxStyle
	rng     *rand.Rand
}

// NewRenderer returns a renderer using the fallback box colours until a
// palette is set.
func NewRenderer(m Metrics, cfg Config) *Renderer {
	return &Renderer{
		cfg:     cfg,
		metrics: m,
		style:   palette.BoxStyle{Box: palette.FallbackBox, Text: palette.FallbackText},
		rng:     rand.New(rand.NewSource(1)),
	}
}

// SetPalette switches the scene palette and re-derives the box colours.
func (r *Renderer) SetPalette(p palette.Palette) {
	r.scene = p
	r.style = palette.DialogStyle(p, r.cfg.ContrastThreshold)
}

// Style returns the colours the box is drawn with.
func (r *Renderer) Style() palette.BoxStyle {
	return r.style
}

// Draw advances the reveal of d's current page by one frame and issues the
// draw calls needed to bring the box up to date.
func (r *Renderer) Draw(c Canvas, d *Dialog, frame uint) {
	page := d.CurrentPage()
	if page == nil {
		return
	}
	if !page.Started {
		page.Started = true
		c.FillRect(r.cfg.Box, r.style.Box)
		if d.NPages() > 1 {
			r.drawIndicator(c)
		}
	}

	fresh := -1
	switch {
	case page.Fast:
		fresh = page.revealAll()
	case every(frame, r.cfg.RevealEvery):
		fresh = page.revealNext()
	}

	draw := make([]bool, len(page.Words))
	for i := range page.Words {
		w := &page.Words[i]
		if !w.Rendered {
			continue
		}
		isFresh := fresh >= 0 && i >= fresh && (page.Fast || i == fresh)
		draw[i] = isFresh || r.redraw(w.Effect, frame)
	}
	r.eraseMoving(c, page.Words, draw)
	for i := range page.Words {
		if draw[i] {
			r.drawWord(c, &page.Words[i], frame)
		}
	}
}

// eraseMoving clears the footprint of every moving word about to be drawn
// and schedules the rendered words it overlaps for a redraw. All erases
// happen before any word is drawn.
func (r *Renderer) eraseMoving(c Canvas, words []Word, draw []bool) {
	erased := make([]bool, len(words))
	for again := true; again; {
		again = false
		for i := range words {
			w := &words[i]
			if !draw[i] || erased[i] || w.IsIcon() || !w.Effect.Moves() {
				continue
			}
			erased[i] = true
			again = true
			fp := r.footprint(w)
			c.FillRect(fp, r.style.Box)
			for j := range words {
				if !draw[j] && words[j].Rendered && r.cell(&words[j]).Overlaps(fp) {
					draw[j] = true
				}
			}
		}
	}
}

func every(frame, n uint) bool {
	return n <= 1 || frame%n == 0
}

// redraw reports whether an already rendered word must be drawn again.
func (r *Renderer) redraw(e TextEffect, frame uint) bool {
	switch {
	case e.Moves():
		return every(frame, r.cfg.EffectEvery)
	case e.Kind == EffectRainbow:
		return every(frame, r.cfg.RainbowEvery)
	default:
		return false
	}
}

// cell is the area a word occupies when drawn in place.
func (r *Renderer) cell(w *Word) image.Rectangle {
	at := r.cfg.TextOrigin().Add(w.Point)
	width := utf8.RuneCountInString(w.Text) * r.metrics.CharWidth
	if w.IsIcon() {
		width = r.cfg.IconWidth
	}
	return image.Rect(at.X, at.Y, at.X+width, at.Y+r.metrics.CharHeight)
}

// lift is how far moving text may leave its line vertically. Cells too short
// to give up a row keep moving words on their own line.
func (r *Renderer) lift() int {
	if r.metrics.CharHeight <= 2 {
		return 0
	}
	return 1
}

// footprint is the area a moving word can touch: its cell plus one pixel of
// horizontal jitter and the vertical lift.
func (r *Renderer) footprint(w *Word) image.Rectangle {
	rect := r.cell(w)
	lift := r.lift()
	rect.Min = rect.Min.Sub(image.Pt(1, lift))
	rect.Max = rect.Max.Add(image.Pt(1, lift))
	return rect.Intersect(r.cfg.Box)
}

func (r *Renderer) drawWord(c Canvas, w *Word, frame uint) {
	at := r.cfg.TextOrigin().Add(w.Point)
	if w.IsIcon() {
		if ic, ok := c.(IconCanvas); ok {
			ic.DrawIcon(w.Kind, w.Text, at)
		}
		return
	}
	col := r.textColor(w.Effect, frame)
	lift := r.lift()
	switch w.Effect.Kind {
	case EffectWavy:
		coarse := frame
		if r.cfg.EffectEvery > 0 {
			coarse = frame / r.cfg.EffectEvery
		}
		i := 0
		for _, ch := range w.Text {
			dy := int((coarse+uint(i))%2) * lift
			c.DrawText(string(ch), at.Add(image.Pt(i*r.metrics.CharWidth, dy)), col)
			i++
		}
	case EffectShaky:
		jitter := image.Pt(r.rng.Intn(3)-1, r.rng.Intn(2*lift+1)-lift)
		c.DrawText(w.Text, at.Add(jitter), col)
	default:
		c.DrawText(w.Text, at, col)
	}
}

// textColor resolves the colour of a word. {clrN} uses palette entry N-1;
// a missing entry falls back to the box text colour.
func (r *Renderer) textColor(e TextEffect, frame uint) color.Color {
	switch e.Kind {
	case EffectRainbow:
		return RainbowColor(frame, r.cfg.RainbowEvery)
	case EffectColor:
		if e.Color > 0 {
			if rgb, ok := r.scene.Color(int(e.Color) - 1); ok {
				return rgb
			}
		}
	}
	return r.style.Text
}

func (r *Renderer) drawIndicator(c Canvas) {
	p := r.cfg.Indicator
	size := r.cfg.IndicatorSize
	c.FillTriangle(p, p.Add(image.Pt(size, 0)), p.Add(image.Pt(size/2, size/2)), r.style.Text)
}
