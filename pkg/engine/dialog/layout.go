package dialog

import (
	"image"
	"unicode/utf8"
)

// layoutBuilder packs a word stream into pages with greedy word-wrap.
type layoutBuilder struct {
	width        int
	height       int
	linesPerPage int
	charWidth    int
	charHeight   int
	spacing      int
	iconWidth    int

	x, y  int
	lines int
	line  []Word
	page  []Word
	pages []*Page
}

func newLayoutBuilder(m Metrics, cfg Config) *layoutBuilder {
	size := cfg.TextSize()
	return &layoutBuilder{
		width:        size.X,
		height:       size.Y,
		linesPerPage: cfg.LinesPerPage,
		charWidth:    m.CharWidth,
		charHeight:   m.CharHeight,
		spacing:      cfg.WordSpacing * m.CharWidth,
		iconWidth:    cfg.IconWidth,
	}
}

// Paginate consumes src once and partitions it into pages.
func Paginate(src WordSource, m Metrics, cfg Config) []*Page {
	b := newLayoutBuilder(m, cfg)
	for {
		w, ok := src.NextWord()
		if !ok {
			break
		}
		switch w.Kind {
		case WordLineBreak:
			b.lineBreak()
		case WordPageBreak:
			b.pageBreak()
		default:
			b.place(w)
		}
	}
	b.flushPage()
	return b.pages
}

// wordWidth is the pixel width a word occupies, excluding spacing.
func (b *layoutBuilder) wordWidth(w Word) int {
	if w.IsIcon() {
		return b.iconWidth
	}
	return utf8.RuneCountInString(w.Text) * b.charWidth
}

func (b *layoutBuilder) place(w Word) {
	width := b.wordWidth(w)
	if b.x+width > b.width && len(b.line) > 0 {
		b.lineBreak()
	}
	w.Point = image.Pt(b.x, b.y)
	w.Rendered = false
	b.line = append(b.line, w)
	b.x += width + b.spacing
}

// full reports whether the current page has used its budget.
func (b *layoutBuilder) full() bool {
	if b.linesPerPage > 0 {
		return b.lines >= b.linesPerPage
	}
	return b.y >= b.height
}

// lineBreak ends a non-empty line and starts a new page when the budget is
// reached. Breaking an empty line does nothing.
func (b *layoutBuilder) lineBreak() {
	if len(b.line) == 0 {
		return
	}
	b.page = append(b.page, b.line...)
	b.line = nil
	b.x = 0
	b.y += b.charHeight
	b.lines++
	if b.full() {
		b.flushPage()
	}
}

func (b *layoutBuilder) pageBreak() {
	b.lineBreak()
	b.flushPage()
}

// flushPage emits the pending words as a page, if there are any.
func (b *layoutBuilder) flushPage() {
	words := append(b.page, b.line...)
	if len(words) > 0 {
		b.pages = append(b.pages, &Page{Words: words})
	}
	b.page = nil
	b.line = nil
	b.x, b.y = 0, 0
	b.lines = 0
}
