package dialog

// Page is one screenful of positioned words.
type Page struct {
	Words []Word
	// Started is set once the box backdrop has been drawn for this page.
	Started bool
	// Fast skips the reveal pacing and shows every remaining word at once.
	Fast bool
}

// Revealed reports whether every word of the page has been rendered.
func (p *Page) Revealed() bool {
	for i := range p.Words {
		if !p.Words[i].Rendered {
			return false
		}
	}
	return true
}

// revealNext marks the first unrendered word as rendered and returns its
// index, or -1 when the page is exhausted.
func (p *Page) revealNext() int {
	for i := range p.Words {
		if !p.Words[i].Rendered {
			p.Words[i].Rendered = true
			return i
		}
	}
	return -1
}

// revealAll renders every remaining word and returns the index of the first
// one it changed, or -1 if nothing was left.
func (p *Page) revealAll() int {
	first := -1
	for i := range p.Words {
		if p.Words[i].Rendered {
			continue
		}
		if first < 0 {
			first = i
		}
		p.Words[i].Rendered = true
	}
	return first
}

// Dialog is the queue of pages shown for one "show text" event. The first
// page is the one on screen.
type Dialog struct {
	pages []*Page
}

// New evaluates markup with ev and lays it out into pages. A nil evaluator
// uses the plain markup grammar.
func New(markup string, ev Evaluator, m Metrics, cfg Config) *Dialog {
	if ev == nil {
		ev = MarkupEvaluator{}
	}
	return FromWords(ev.Words(markup), m, cfg)
}

// FromWords lays out an already evaluated word stream.
func FromWords(src WordSource, m Metrics, cfg Config) *Dialog {
	return &Dialog{pages: Paginate(src, m, cfg)}
}

// NPages returns the number of pages left. Zero means the dialog is idle.
func (d *Dialog) NPages() int {
	if d == nil {
		return 0
	}
	return len(d.pages)
}

// Active reports whether there is a page to show.
func (d *Dialog) Active() bool {
	return d.NPages() > 0
}

// Pages returns the pages left, the current one first.
func (d *Dialog) Pages() []*Page {
	if d == nil {
		return nil
	}
	return d.pages
}

// CurrentPage returns the page on screen, or nil when idle.
func (d *Dialog) CurrentPage() *Page {
	if d.NPages() == 0 {
		return nil
	}
	return d.pages[0]
}

// NextPage handles one advance signal. A page that is still being revealed
// switches to fast-forward; a revealed or fast-forwarded page is removed.
func (d *Dialog) NextPage() {
	page := d.CurrentPage()
	if page == nil {
		return
	}
	if !page.Fast && !page.Revealed() {
		page.Fast = true
		return
	}
	d.pages[0] = nil
	d.pages = d.pages[1:]
}
