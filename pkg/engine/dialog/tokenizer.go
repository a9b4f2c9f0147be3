package dialog

import (
	"strings"
	"unicode/utf8"
)

// TokenKind identifies what a markup token represents.
type TokenKind uint8

const (
	TokenWord      TokenKind = iota // A run of non-space characters
	TokenLineBreak                  // "\n" or {br}
	TokenPageBreak                  // {pg}
	TokenEffect                     // An effect opening tag
	TokenClose                      // Any {/...} tag
	TokenUnknown                    // A tag the tokenizer does not understand
)

// Token is one item produced by the Tokenizer. Text holds the word for
// TokenWord and the tag body (without braces) for TokenUnknown.
type Token struct {
	Kind   TokenKind
	Text   string
	Effect TextEffect
}

// tripleQuote wraps dialog text that uses markup.
const tripleQuote = `"""`

// knownTags maps literal tags to the token they produce.
var knownTags = map[string]Token{
	"{br}":    {Kind: TokenLineBreak},
	"{pg}":    {Kind: TokenPageBreak},
	"{clr1}":  {Kind: TokenEffect, Effect: Color(1)},
	"{clr 1}": {Kind: TokenEffect, Effect: Color(1)},
	"{clr2}":  {Kind: TokenEffect, Effect: Color(2)},
	"{clr 2}": {Kind: TokenEffect, Effect: Color(2)},
	"{clr3}":  {Kind: TokenEffect, Effect: Color(3)},
	"{clr 3}": {Kind: TokenEffect, Effect: Color(3)},
	"{wvy}":   {Kind: TokenEffect, Effect: Wavy},
	"{shk}":   {Kind: TokenEffect, Effect: Shaky},
	"{rbw}":   {Kind: TokenEffect, Effect: Rainbow},
}

// StripMarkupQuotes removes a """ pair wrapping the whole text. Text with an
// opening marker but no closing one is returned unchanged.
func StripMarkupQuotes(text string) string {
	rest, ok := strings.CutPrefix(text, tripleQuote)
	if !ok {
		return text
	}
	inner, ok := strings.CutSuffix(rest, tripleQuote)
	if !ok {
		return text
	}
	return inner
}

// Tokenizer splits dialog markup into tokens in a single pass. It holds at most
// one pushed-back rune, so a word always ends before an opening brace or a
// newline that follows it without a space.
type Tokenizer struct {
	src        string
	pos        int
	pending    rune
	hasPending bool
}

// NewTokenizer returns a tokenizer over text. The caller is responsible for
// stripping the markup quotes first.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{src: text}
}

func (t *Tokenizer) read() (rune, bool) {
	if t.hasPending {
		t.hasPending = false
		return t.pending, true
	}
	if t.pos >= len(t.src) {
		return 0, false
	}
	ch, size := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += size
	return ch, true
}

func (t *Tokenizer) unread(ch rune) {
	t.pending = ch
	t.hasPending = true
}

// isSpace matches space, tab, CR and form feed. The newline is a break.
func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f'
}

// Next returns the next token. The second result is false once the input is
// exhausted; an empty buffer at the end of input yields no token.
func (t *Tokenizer) Next() (Token, bool) {
	var buf strings.Builder
	inTag := false
	for {
		ch, ok := t.read()
		if !ok {
			break
		}
		switch {
		case ch == '\n':
			// A partial word is kept and the break follows it.
			if buf.Len() > 0 {
				t.unread(ch)
				return Token{Kind: TokenWord, Text: buf.String()}, true
			}
			return Token{Kind: TokenLineBreak}, true
		case inTag && ch == '}':
			buf.WriteRune(ch)
			return tagToken(buf.String()), true
		case inTag:
			buf.WriteRune(ch)
		case ch == '{':
			if buf.Len() > 0 {
				t.unread(ch)
				return Token{Kind: TokenWord, Text: buf.String()}, true
			}
			inTag = true
			buf.WriteRune(ch)
		case isSpace(ch):
			if buf.Len() > 0 {
				return Token{Kind: TokenWord, Text: buf.String()}, true
			}
		default:
			buf.WriteRune(ch)
		}
	}
	if buf.Len() == 0 {
		return Token{}, false
	}
	return Token{Kind: TokenWord, Text: buf.String()}, true
}

// tagToken classifies a complete tag including its braces.
func tagToken(tag string) Token {
	if strings.HasPrefix(tag, "{/") {
		return Token{Kind: TokenClose}
	}
	if tok, ok := knownTags[tag]; ok {
		return tok
	}
	body := strings.TrimSpace(tag[1 : len(tag)-1])
	return Token{Kind: TokenUnknown, Text: body}
}

// Tokenize collects every token of text, after stripping markup quotes.
func Tokenize(text string) []Token {
	t := NewTokenizer(StripMarkupQuotes(text))
	var tokens []Token
	for {
		tok, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
