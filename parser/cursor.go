package parser

import (
	"strconv"
	"strings"

	"github.com/uliwitness/nimue/token"
)

// cursor is a single integer index into the token buffer. Backtracking
// is always "save index / restore index"; no primitive here ever
// panics on a failed match — callers get an ok/Option-style result and
// decide whether to restore.
type cursor struct {
	toks []token.Token
	pos  int
}

func newCursor(toks []token.Token) *cursor {
	return &cursor{toks: toks}
}

func (c *cursor) save() int { return c.pos }

func (c *cursor) restore(mark int) { c.pos = mark }

func (c *cursor) isAtEnd() bool {
	return c.current().Kind == token.Eof
}

func (c *cursor) current() token.Token {
	if c.pos >= len(c.toks) {
		return token.Token{Kind: token.Eof}
	}
	return c.toks[c.pos]
}

func (c *cursor) advance() token.Token {
	t := c.current()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return t
}

func identEqual(a, b string) bool { return strings.EqualFold(a, b) }

// hasIdentifier matches an UnquotedString token against word,
// case-insensitively, advancing iff advance is set and it matched.
func (c *cursor) hasIdentifier(word string, advance bool) bool {
	t := c.current()
	if t.Kind != token.UnquotedString || !identEqual(t.Val, word) {
		return false
	}
	if advance {
		c.advance()
	}
	return true
}

// hasAnyIdentifier matches any UnquotedString token, returning its
// text, advancing iff advance is set.
func (c *cursor) hasAnyIdentifier(advance bool) (string, bool) {
	t := c.current()
	if t.Kind != token.UnquotedString {
		return "", false
	}
	if advance {
		c.advance()
	}
	return t.Val, true
}

// hasIdentifiers matches a sequence of consecutive identifier tokens
// atomically: either all of them match in order, or none are consumed.
func (c *cursor) hasIdentifiers(words []string, advance bool) bool {
	mark := c.save()
	for _, w := range words {
		if !c.hasIdentifier(w, true) {
			c.restore(mark)
			return false
		}
	}
	if !advance {
		c.restore(mark)
	}
	return true
}

func (c *cursor) expectIdentifiers(words []string) error {
	if !c.hasIdentifiers(words, true) {
		return &ParseError{Kind: ExpectedIdentifier, Expected: strings.Join(words, " "), Got: c.current()}
	}
	return nil
}

// hasSymbol matches a Symbol token's literal text, advancing iff
// advance is set and it matched.
func (c *cursor) hasSymbol(sym string, advance bool) bool {
	t := c.current()
	if t.Kind != token.Symbol || t.Val != sym {
		return false
	}
	if advance {
		c.advance()
	}
	return true
}

func (c *cursor) expectSymbol(sym string) error {
	if !c.hasSymbol(sym, true) {
		return &ParseError{Kind: ExpectedOperator, Expected: sym, Got: c.current()}
	}
	return nil
}

func (c *cursor) expectIdentifier() (string, error) {
	t := c.current()
	if t.Kind != token.UnquotedString {
		return "", &ParseError{Kind: ExpectedIdentifier, Got: t}
	}
	c.advance()
	return t.Val, nil
}

func (c *cursor) expectQuotedString() (string, error) {
	t := c.current()
	if t.Kind != token.QuotedString {
		return "", &ParseError{Kind: ExpectedString, Got: t}
	}
	c.advance()
	return t.Val, nil
}

func (c *cursor) expectInteger() (int64, error) {
	t := c.current()
	if t.Kind != token.Integer {
		return 0, &ParseError{Kind: ExpectedInteger, Got: t}
	}
	c.advance()
	n, _ := strconv.ParseInt(t.Val, 10, 64)
	return n, nil
}

func (c *cursor) expectDouble() (float64, error) {
	t := c.current()
	if t.Kind != token.Double {
		return 0, &ParseError{Kind: ExpectedNumber, Got: t}
	}
	c.advance()
	f, _ := strconv.ParseFloat(t.Val, 64)
	return f, nil
}

// skipNewlines consumes every consecutive newline symbol token.
func (c *cursor) skipNewlines() {
	for c.hasSymbol(token.Newline, true) {
	}
}

// skipLine discards tokens up to and including the next newline (or
// EOF), used by the top-level loop to ignore a line it can't parse.
func (c *cursor) skipLine() {
	for {
		t := c.current()
		if t.Kind == token.Eof {
			return
		}
		if t.Kind == token.Symbol && t.Val == token.Newline {
			c.advance()
			return
		}
		c.advance()
	}
}
