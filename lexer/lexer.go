// Package lexer turns source text into a random-access token buffer.
// Unlike a channel-fed scanner, the whole buffer exists before parsing
// starts: the parser's cursor needs to save and restore an integer
// index into it for backtracking, which a one-shot stream can't give.
package lexer

import (
	"unicode/utf8"

	"github.com/uliwitness/nimue/pkg/stringsx"
	"github.com/uliwitness/nimue/token"
)

const eof rune = -1

// Tokenizer accumulates tokens across one or more calls to AddTokens,
// each against its own named source. This lets a host load a library
// file and a main script into one token buffer.
type Tokenizer struct {
	toks []token.Token
}

func New() *Tokenizer {
	return &Tokenizer{toks: make([]token.Token, 0, 256)}
}

// Tokens returns the buffer built so far, terminated by an Eof token
// if AddTokens has been called at least once.
func (z *Tokenizer) Tokens() []token.Token { return z.toks }

type scanner struct {
	input string
	file  string
	start int
	pos   int
	width int
	out   *[]token.Token
}

// AddTokens scans source (attributed to filePath in diagnostics) and
// appends its tokens to the buffer, followed by a trailing Eof.
func (z *Tokenizer) AddTokens(source, filePath string) {
	// Drop the previous call's trailing Eof so the buffer ends in one.
	if n := len(z.toks); n > 0 && z.toks[n-1].Kind == token.Eof {
		z.toks = z.toks[:n-1]
	}
	s := &scanner{input: source, file: filePath, out: &z.toks}
	for state := lexDefault; state != nil; {
		state = state(s)
	}
	s.emit(token.Eof)
}

type lexFn func(*scanner) lexFn

func (s *scanner) next() rune {
	if s.pos >= len(s.input) {
		s.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.width = w
	s.pos += w
	return r
}

func (s *scanner) peek() rune {
	r := s.next()
	s.backup()
	return r
}

func (s *scanner) backup() {
	s.pos -= s.width
}

func (s *scanner) emit(kind token.Kind) {
	*s.out = append(*s.out, token.Token{
		Kind: kind,
		Val:  s.input[s.start:s.pos],
		Loc:  token.Location{File: s.file, Offset: s.start},
	})
	s.start = s.pos
}

// emitVal is like emit but overrides the text (used where the stored
// value differs from the raw source slice, e.g. a quoted string with
// its delimiters stripped).
func (s *scanner) emitVal(kind token.Kind, val string) {
	*s.out = append(*s.out, token.Token{
		Kind: kind,
		Val:  val,
		Loc:  token.Location{File: s.file, Offset: s.start},
	})
	s.start = s.pos
}

func (s *scanner) ignore() {
	s.start = s.pos
}

func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// notEqualRune is the one non-ASCII rune the language treats as
// punctuation rather than an identifier character, since ≠ is a
// comparison operator like < or >=.
const notEqualRune = '≠'

func isIdentStart(r rune) bool {
	return r != notEqualRune && (r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= utf8.RuneSelf)
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// lexDefault dispatches on the next rune per the scanning rules in
// order: quoted strings, `--` comments, symbol runs, numbers,
// identifiers, newlines.
func lexDefault(s *scanner) lexFn {
	for isHorizontalSpace(s.peek()) {
		s.next()
	}
	s.ignore()

	r := s.peek()
	switch {
	case r == eof:
		return nil
	case r == '"':
		return lexQuotedString
	case r == '-' && startsComment(s):
		return lexComment
	case r == '\n':
		s.next()
		s.emitVal(token.Symbol, token.Newline)
		return lexDefault
	case isDigit(r):
		return lexNumber
	case isIdentStart(r):
		return lexIdentifier
	default:
		return lexSymbolRun
	}
}

func startsComment(s *scanner) bool {
	return len(s.input) >= s.pos+2 && s.input[s.pos:s.pos+2] == "--"
}

func lexComment(s *scanner) lexFn {
	for {
		r := s.peek()
		if r == eof || r == '\n' {
			break
		}
		s.next()
	}
	s.ignore()
	return lexDefault
}

// lexQuotedString consumes to the next `"` with no escape processing:
// a backslash before a quote does not prevent the string from ending.
func lexQuotedString(s *scanner) lexFn {
	s.next() // opening quote
	contentStart := s.pos
	for {
		r := s.next()
		if r == eof {
			break
		}
		if r == '"' {
			s.emitVal(token.QuotedString, s.input[contentStart:s.pos-1])
			return lexDefault
		}
	}
	s.emitVal(token.Error, "unterminated quoted string")
	return nil
}

func lexNumber(s *scanner) lexFn {
	sawDot := false
	for {
		r := s.peek()
		switch {
		case isDigit(r):
			s.next()
		case r == '.' && !sawDot:
			sawDot = true
			s.next()
		default:
			if sawDot {
				s.emit(token.Double)
			} else {
				s.emit(token.Integer)
			}
			return lexDefault
		}
	}
}

func lexIdentifier(s *scanner) lexFn {
	for isIdentChar(s.peek()) {
		s.next()
	}
	s.emit(token.UnquotedString)
	return lexDefault
}

// lexSymbolRun consumes a maximal run of punctuation and splits it
// into the fixed multi-character operators (longest match first) and
// single-character symbols.
func lexSymbolRun(s *scanner) lexFn {
	for {
		r := s.peek()
		if r == eof || r == '\n' || isHorizontalSpace(r) || r == '"' ||
			isDigit(r) || isIdentStart(r) || (r == '-' && startsComment(s)) {
			break
		}
		s.next()
	}
	run := s.input[s.start:s.pos]
	loc := token.Location{File: s.file, Offset: s.start}
	for _, part := range stringsx.SplitSymbolRun(run, token.MultiCharOperators) {
		*s.out = append(*s.out, token.Token{Kind: token.Symbol, Val: part, Loc: loc})
		loc.Offset += len(part)
	}
	s.start = s.pos
	return lexDefault
}
