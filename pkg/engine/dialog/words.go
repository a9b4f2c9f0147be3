package dialog

import "image"

// WordKind is the payload type of a Word.
type WordKind uint8

const (
	WordText      WordKind = iota // Plain text with an effect
	WordSprite                    // Inline sprite icon
	WordTile                      // Inline tile icon
	WordItem                      // Inline item icon
	WordLineBreak                 // Forced line break
	WordPageBreak                 // Forced page break
)

// Word is one item of the word stream. Producers fill Kind, Text and Effect;
// the layout builder sets Point and the reveal machine owns Rendered.
type Word struct {
	Kind WordKind
	// Text is the literal for WordText and the icon id for icon kinds.
	Text   string
	Effect TextEffect
	// Point is relative to the page's text origin.
	Point    image.Point
	Rendered bool
}

// TextWord builds a plain text word.
func TextWord(text string, effect TextEffect) Word {
	return Word{Kind: WordText, Text: text, Effect: effect}
}

// SpriteWord builds an inline sprite icon.
func SpriteWord(id string) Word { return Word{Kind: WordSprite, Text: id} }

// TileWord builds an inline tile icon.
func TileWord(id string) Word { return Word{Kind: WordTile, Text: id} }

// ItemWord builds an inline item icon.
func ItemWord(id string) Word { return Word{Kind: WordItem, Text: id} }

// LineBreakWord builds a forced line break.
func LineBreakWord() Word { return Word{Kind: WordLineBreak} }

// PageBreakWord builds a forced page break.
func PageBreakWord() Word { return Word{Kind: WordPageBreak} }

// IsIcon reports whether w is drawn as an inline glyph rather than text.
func (w Word) IsIcon() bool {
	return w.Kind == WordSprite || w.Kind == WordTile || w.Kind == WordItem
}

// WordSource is a single-pass word stream.
type WordSource interface {
	// NextWord returns the next word, or false when the stream has ended.
	NextWord() (Word, bool)
}

// Evaluator turns dialog markup into a word stream. Script evaluators expand
// variables and icons on top of the markup grammar.
type Evaluator interface {
	Words(markup string) WordSource
}

// TagExpander resolves a tag the markup grammar does not know. It receives the
// tag body and the current effect and returns the words to insert, if any.
type TagExpander func(tag string, effect TextEffect) []Word

// MarkupSource is the word stream produced directly from markup. Effect tags
// are folded into the words that follow them.
type MarkupSource struct {
	tokens  *Tokenizer
	effect  TextEffect
	expand  TagExpander
	pending []Word
}

// NewMarkupSource returns a word stream over markup. expand may be nil, in
// which case unknown tags are dropped.
func NewMarkupSource(markup string, expand TagExpander) *MarkupSource {
	return &MarkupSource{
		tokens: NewTokenizer(StripMarkupQuotes(markup)),
		expand: expand,
	}
}

// NextWord implements WordSource.
func (s *MarkupSource) NextWord() (Word, bool) {
	for {
		if len(s.pending) > 0 {
			w := s.pending[0]
			s.pending = s.pending[1:]
			return w, true
		}
		tok, ok := s.tokens.Next()
		if !ok {
			return Word{}, false
		}
		switch tok.Kind {
		case TokenWord:
			return TextWord(tok.Text, s.effect), true
		case TokenLineBreak:
			return LineBreakWord(), true
		case TokenPageBreak:
			return PageBreakWord(), true
		case TokenEffect:
			s.effect = tok.Effect
		case TokenClose:
			s.effect = None
		case TokenUnknown:
			if s.expand != nil {
				s.pending = append(s.pending, s.expand(tok.Text, s.effect)...)
			}
		}
	}
}

// MarkupEvaluator evaluates plain markup without any scripting.
type MarkupEvaluator struct{}

// Words implements Evaluator.
func (MarkupEvaluator) Words(markup string) WordSource {
	return NewMarkupSource(markup, nil)
}

// SliceSource replays a fixed list of words.
type SliceSource struct {
	words []Word
}

// NewSliceSource returns a stream over words.
func NewSliceSource(words ...Word) *SliceSource {
	return &SliceSource{words: words}
}

// NextWord implements WordSource.
func (s *SliceSource) NextWord() (Word, bool) {
	if len(s.words) == 0 {
		return Word{}, false
	}
	w := s.words[0]
	s.words = s.words[1:]
	return w, true
}

// Collect drains src into a slice.
func Collect(src WordSource) []Word {
	var words []Word
	for {
		w, ok := src.NextWord()
		if !ok {
			return words
		}
		words = append(words, w)
	}
}
