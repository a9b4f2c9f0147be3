package dialog

import (
	"image"
	"image/color"
	"testing"

	"bitsycart/pkg/engine/palette"
)

type drawOp struct {
	kind string
	text string
	at   image.Point
	rect image.Rectangle
	col  color.Color
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []drawOp
}

func (r *recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "fill", rect: rect, col: c})
}

func (r *recorder) DrawText(s string, at image.Point, c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "text", text: s, at: at, col: c})
}

func (r *recorder) FillTriangle(a, b, c image.Point, col color.Color) {
	r.ops = append(r.ops, drawOp{kind: "triangle", at: a, col: col})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == "text" {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) reset() { r.ops = nil }

// iconRecorder also draws icons.
type iconRecorder struct {
	recorder
	icons []string
}

func (r *iconRecorder) DrawIcon(kind WordKind, id string, at image.Point) {
	r.icons = append(r.icons, id)
}

func TestRenderer_BackdropDrawnOnce(t *testing.T) {
	cfg := DefaultConfig()
	d := New("one two three", nil, testMetrics, cfg)
	r := NewRenderer(testMetrics, cfg)
	c := &recorder{}
	for frame := uint(0); frame < 30; frame++ {
		r.Draw(c, d, frame)
	}
	boxFills := 0
	for _, op := range c.ops {
		if op.kind == "fill" && op.rect == cfg.Box {
			boxFills++
		}
	}
	if boxFills != 1 {
		t.Errorf("box filled %d times, want 1", boxFills)
	}
	if !d.CurrentPage().Started {
		t.Error("Started = false after drawing")
	}
}

func TestRenderer_RevealPacing(t *testing.T) {
	d := New("one two three", nil, testMetrics, DefaultConfig())
	r := NewRenderer(testMetrics, DefaultConfig())
	c := &recorder{}
	page := d.CurrentPage()

	rendered := func() int {
		n := 0
		for _, w := range page.Words {
			if w.Rendered {
				n++
			}
		}
		return n
	}
	want := []int{1, 1, 1, 2, 2, 2, 3, 3, 3}
	for frame, n := range want {
		r.Draw(c, d, uint(frame))
		if got := rendered(); got != n {
			t.Errorf("frame %d: %d words rendered, want %d", frame, got, n)
		}
	}
	if got := len(c.texts()); got != 3 {
		t.Errorf("%d text draws for plain words, want 3 (each drawn once)", got)
	}
}

func TestRenderer_FastForwardRevealsEverything(t *testing.T) {
	d := New("one two three four", nil, testMetrics, DefaultConfig())
	r := NewRenderer(testMetrics, DefaultConfig())
	c := &recorder{}
	r.Draw(c, d, 0)
	d.NextPage()
	if d.NPages() != 1 {
		t.Fatal("first advance popped a page that was still revealing")
	}
	r.Draw(c, d, 1)
	if !d.CurrentPage().Revealed() {
		t.Fatal("page not revealed after a fast-forward frame")
	}
	if got := len(c.texts()); got != 4 {
		t.Errorf("%d text draws, want 4", got)
	}
	d.NextPage()
	if d.NPages() != 0 {
		t.Errorf("NPages() = %d after second advance, want 0", d.NPages())
	}
}

func TestRenderer_RenderedIsMonotonic(t *testing.T) {
	d := New("a b c{pg}d e f{pg}g", nil, testMetrics, DefaultConfig())
	r := NewRenderer(testMetrics, DefaultConfig())
	c := &recorder{}
	var current *Page
	var seen []bool
	for frame := uint(0); frame < 60 && d.Active(); frame++ {
		if frame%7 == 6 {
			d.NextPage()
		}
		r.Draw(c, d, frame)
		page := d.CurrentPage()
		if page != current {
			current = page
			seen = nil
			if page == nil {
				break
			}
		}
		for i, w := range page.Words {
			if i < len(seen) && seen[i] && !w.Rendered {
				t.Fatalf("frame %d: word %q went from rendered to unrendered", frame, w.Text)
			}
		}
		seen = seen[:0]
		for _, w := range page.Words {
			seen = append(seen, w.Rendered)
		}
	}
}

func TestRenderer_IndicatorWhenMorePages(t *testing.T) {
	tests := []struct {
		markup string
		want   int
	}{
		{"one", 0},
		{"one{pg}two", 1},
	}
	for _, tt := range tests {
		d := New(tt.markup, nil, testMetrics, DefaultConfig())
		r := NewRenderer(testMetrics, DefaultConfig())
		c := &recorder{}
		r.Draw(c, d, 0)
		r.Draw(c, d, 1)
		if got := c.count("triangle"); got != tt.want {
			t.Errorf("%q: %d indicators, want %d", tt.markup, got, tt.want)
		}
	}
}

func TestRenderer_WavyOffsetsEachLetter(t *testing.T) {
	cfg := DefaultConfig()
	d := New("{wvy}ab", nil, testMetrics, cfg)
	r := NewRenderer(testMetrics, cfg)
	c := &recorder{}
	r.Draw(c, d, 0)

	origin := cfg.TextOrigin()
	texts := c.texts()
	if len(texts) != 2 {
		t.Fatalf("text draws = %+v, want one per letter", texts)
	}
	if texts[0].text != "a" || texts[0].at != origin {
		t.Errorf("first letter = %+v, want a at %v", texts[0], origin)
	}
	if want := origin.Add(image.Pt(6, 1)); texts[1].text != "b" || texts[1].at != want {
		t.Errorf("second letter = %+v, want b at %v", texts[1], want)
	}

	// Next effect tick flips the wave and erases first.
	c.reset()
	r.Draw(c, d, cfg.EffectEvery)
	if len(c.ops) == 0 || c.ops[0].kind != "fill" {
		t.Fatalf("redraw ops = %+v, want an erase first", c.ops)
	}
	texts = c.texts()
	if len(texts) != 2 || texts[0].at != origin.Add(image.Pt(0, 1)) || texts[1].at != origin.Add(image.Pt(6, 0)) {
		t.Errorf("wave after one tick = %+v", texts)
	}
}

func TestRenderer_MovingWordsRedrawOnlyOnEffectTicks(t *testing.T) {
	cfg := DefaultConfig()
	d := New("{shk}go", nil, testMetrics, cfg)
	r := NewRenderer(testMetrics, cfg)
	c := &recorder{}
	r.Draw(c, d, 0)
	c.reset()
	for frame := uint(1); frame < cfg.EffectEvery; frame++ {
		r.Draw(c, d, frame)
	}
	if len(c.ops) != 0 {
		t.Errorf("ops between effect ticks = %+v, want none", c.ops)
	}
	r.Draw(c, d, cfg.EffectEvery)
	if c.count("fill") != 1 || c.count("text") != 1 {
		t.Errorf("effect tick ops = %+v, want one erase and one draw", c.ops)
	}
}

func TestRenderer_ShakyStaysWithinOnePixel(t *testing.T) {
	cfg := DefaultConfig()
	d := New("{shk}go", nil, testMetrics, cfg)
	r := NewRenderer(testMetrics, cfg)
	c := &recorder{}
	for frame := uint(0); frame < 600; frame++ {
		r.Draw(c, d, frame)
	}
	origin := cfg.TextOrigin()
	for _, op := range c.texts() {
		d := op.at.Sub(origin)
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			t.Fatalf("shaky word drawn at offset %v", d)
		}
	}
}

func TestRenderer_MovingWordRedrawsOverlappedNeighbours(t *testing.T) {
	cfg := DefaultConfig()
	d := New("Hello{br}{shk}world{/shk}{br}Bye", nil, testMetrics, cfg)
	r := NewRenderer(testMetrics, cfg)
	d.NextPage()
	c := &recorder{}
	r.Draw(c, d, 1)
	c.reset()

	r.Draw(c, d, cfg.EffectEvery)
	lastFill, firstText := -1, len(c.ops)
	for i, op := range c.ops {
		switch op.kind {
		case "fill":
			lastFill = i
		case "text":
			if i < firstText {
				firstText = i
			}
		}
	}
	if lastFill < 0 || lastFill > firstText {
		t.Fatalf("ops = %+v, want every erase before any text", c.ops)
	}
	drawn := map[string]bool{}
	for _, op := range c.texts() {
		drawn[op.text] = true
	}
	for _, word := range []string{"Hello", "world", "Bye"} {
		if !drawn[word] {
			t.Errorf("%q not redrawn on the effect tick; texts = %+v", word, c.texts())
		}
	}
}

func TestRenderer_ShortCellsKeepMovingTextOnItsLine(t *testing.T) {
	m := Metrics{CharWidth: 1, CharHeight: 1}
	cfg := DefaultConfig()
	cfg.Box = image.Rect(0, 0, 32, 6)
	cfg.MarginX, cfg.MarginY = 1, 1
	d := New("Hello{br}{shk}world{/shk} {wvy}sea{/wvy}{br}Bye", nil, m, cfg)
	r := NewRenderer(m, cfg)
	d.NextPage()
	c := &recorder{}
	for frame := uint(1); frame < 60; frame++ {
		r.Draw(c, d, frame)
	}

	row := cfg.TextOrigin().Y + 1
	for _, op := range c.ops[1:] {
		switch op.kind {
		case "fill":
			if op.rect.Min.Y != row || op.rect.Max.Y != row+1 {
				t.Fatalf("erase %v leaves row %d", op.rect, row)
			}
		case "text":
			if op.text == "Hello" || op.text == "Bye" {
				continue
			}
			if op.at.Y != row {
				t.Fatalf("%q drawn at %v, off row %d", op.text, op.at, row)
			}
		}
	}
}

func TestRenderer_StableWordsAreNotRedrawn(t *testing.T) {
	d := New("{clr2}still", nil, testMetrics, DefaultConfig())
	r := NewRenderer(testMetrics, DefaultConfig())
	c := &recorder{}
	for frame := uint(0); frame < 100; frame++ {
		r.Draw(c, d, frame)
	}
	if got := len(c.texts()); got != 1 {
		t.Errorf("stable word drawn %d times, want 1", got)
	}
}

func TestRenderer_Colors(t *testing.T) {
	pal := palette.Palette{Colors: []palette.RGB{{Red: 0, Green: 0, Blue: 0}, {Red: 255, Green: 255, Blue: 255}, {Red: 255, Green: 0, Blue: 77}}}
	d := New("plain {clr3}red{/clr3} {clr 2}white", nil, testMetrics, DefaultConfig())
	r := NewRenderer(testMetrics, DefaultConfig())
	r.SetPalette(pal)
	if got := r.Style(); got.Box != pal.Colors[0] || got.Text != pal.Colors[1] {
		t.Errorf("Style() = %+v, want scene colours", got)
	}
	d.NextPage()
	c := &recorder{}
	r.Draw(c, d, 1)
	want := map[string]color.Color{"plain": pal.Colors[1], "red": pal.Colors[2], "white": pal.Colors[1]}
	for _, op := range c.texts() {
		if op.col != want[op.text] {
			t.Errorf("%s drawn with %v, want %v", op.text, op.col, want[op.text])
		}
	}
}

func TestRenderer_RainbowFollowsFrame(t *testing.T) {
	cfg := DefaultConfig()
	if RainbowColor(0, cfg.RainbowEvery) != RainbowColor(cfg.RainbowEvery-1, cfg.RainbowEvery) {
		t.Error("rainbow hue changed within one step")
	}
	if RainbowColor(0, cfg.RainbowEvery) == RainbowColor(cfg.RainbowEvery, cfg.RainbowEvery) {
		t.Error("rainbow hue did not change after one step")
	}

	d := New("{rbw}wow", nil, testMetrics, cfg)
	r := NewRenderer(testMetrics, cfg)
	c := &recorder{}
	r.Draw(c, d, 0)
	c.reset()
	r.Draw(c, d, cfg.RainbowEvery)
	texts := c.texts()
	if len(texts) != 1 {
		t.Fatalf("rainbow redraw = %+v, want one draw", texts)
	}
	if texts[0].col != RainbowColor(cfg.RainbowEvery, cfg.RainbowEvery) {
		t.Errorf("rainbow colour = %v, want %v", texts[0].col, RainbowColor(cfg.RainbowEvery, cfg.RainbowEvery))
	}
	if c.count("fill") != 0 {
		t.Error("rainbow redraw erased its footprint, want in-place redraw")
	}
}

func TestRenderer_Icons(t *testing.T) {
	src := NewSliceSource(SpriteWord("cat"), TextWord("meow", None))
	d := FromWords(src, testMetrics, DefaultConfig())
	r := NewRenderer(testMetrics, DefaultConfig())

	c := &iconRecorder{}
	d.NextPage()
	r.Draw(c, d, 1)
	if len(c.icons) != 1 || c.icons[0] != "cat" {
		t.Errorf("icons = %v, want [cat]", c.icons)
	}

	// A plain canvas leaves icons blank.
	d = FromWords(NewSliceSource(SpriteWord("cat")), testMetrics, DefaultConfig())
	plain := &recorder{}
	d.NextPage()
	r.Draw(plain, d, 1)
	if plain.count("text") != 0 {
		t.Error("icon drawn as text on a plain canvas")
	}
}

func TestRenderer_IdleDialogDrawsNothing(t *testing.T) {
	r := NewRenderer(testMetrics, DefaultConfig())
	c := &recorder{}
	r.Draw(c, New("", nil, testMetrics, DefaultConfig()), 0)
	r.Draw(c, nil, 0)
	if len(c.ops) != 0 {
		t.Errorf("ops = %+v, want none", c.ops)
	}
}
