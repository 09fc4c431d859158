// Package parser turns a token buffer into a compiled script.Script:
// recursive-descent over handler headers and statements, with a
// precedence-splicing expression parser and a backtracking matcher
// for English multi-word command syntax.
package parser

import (
	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/token"
)

// Parser holds the parse state for one token buffer: the backtracking
// cursor, the script being assembled, and the registered English
// syntax templates (built-ins plus anything a host adds).
type Parser struct {
	c        *cursor
	script   *script.Script
	syntaxes []Syntax
}

func New(toks []token.Token) *Parser {
	p := &Parser{c: newCursor(toks), script: script.New()}
	p.registerBuiltinSyntaxes()
	return p
}

// Parse runs the top-level loop: skip blank lines, and on a leading
// "on" or "function" parse a handler; any other leading identifier's
// line is skipped. EOF ends parsing successfully.
func (p *Parser) Parse() (*script.Script, error) {
	for {
		p.c.skipNewlines()
		if p.c.isAtEnd() {
			return p.script, nil
		}
		if p.c.hasIdentifier("on", true) {
			if err := p.parseHandler(true); err != nil {
				return nil, err
			}
			continue
		}
		if p.c.hasIdentifier("function", true) {
			if err := p.parseHandler(false); err != nil {
				return nil, err
			}
			continue
		}
		p.c.skipLine()
	}
}
