// Package token defines the lexical tokens produced by the lexer and
// consumed by the parser's backtracking cursor.
package token

import "fmt"

// Kind identifies what a Token holds.
type Kind int

const (
	// Error is emitted when the scanner cannot make progress and
	// terminates scanning.
	Error Kind = iota
	Eof

	QuotedString   // a "-delimited run, quotes stripped
	UnquotedString // an identifier: letters, digits, underscore
	Integer        // decimal digits, no dot
	Double         // decimal digits with exactly one dot
	Symbol         // one punctuation rune, or a known multi-rune operator
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Eof:
		return "end of file"
	case QuotedString:
		return "quoted string"
	case UnquotedString:
		return "identifier"
	case Integer:
		return "integer"
	case Double:
		return "number"
	case Symbol:
		return "symbol"
	default:
		return "unknown token"
	}
}

// Location is a byte offset into a named source, for diagnostics.
type Location struct {
	File   string
	Offset int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("offset %d", l.Offset)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Offset)
}

// Token is one lexical unit together with its source location.  Val
// holds the token's text with any delimiting quotes already removed.
type Token struct {
	Kind Kind
	Val  string
	Loc  Location
}

const maxPrintLen = 24

// String renders the token the way diagnostics want to show it:
// truncated if long, and with its own notion of what a symbol token
// is called.
func (t Token) String() string {
	switch t.Kind {
	case Error:
		return "error: " + t.Val
	case Eof:
		return "end of file"
	case Symbol:
		if t.Val == "\n" {
			return "newline"
		}
		return t.Val
	default:
		if len(t.Val) > maxPrintLen {
			return fmt.Sprintf("%.*s…", maxPrintLen, t.Val)
		}
		return t.Val
	}
}

// Newline is the distinguished symbol token text for a line break.
const Newline = "\n"

// MultiCharOperators is the fixed set of multi-rune operators the
// tokenizer recognizes; greedy matching takes the longest one that
// fits, so their order here does not matter.
var MultiCharOperators = []string{"&&", "<=", ">="}
