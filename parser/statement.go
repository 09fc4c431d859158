package parser

import (
	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/token"
)

// parseStatement dispatches in a fixed order: the two block
// constructs, then a try at every registered English template, then
// the two bare keyword statements, and only then the generic-call
// fallback that matches anything.
func (p *Parser) parseStatement(fs *frameState) ([]script.Instruction, error) {
	if p.c.hasIdentifier("repeat", true) {
		return p.parseRepeat(fs)
	}
	if p.c.hasIdentifier("if", true) {
		return p.parseIf(fs)
	}
	if instrs, ok := p.tryMatchSyntax(fs); ok {
		return instrs, nil
	}
	if p.c.hasIdentifier("local", true) {
		return p.parseLocal(fs)
	}
	if p.c.hasIdentifier("return", true) {
		return p.parseReturn(fs)
	}
	return p.parseStatementGenericCall(fs)
}

// parseLocal parses one value in writable mode purely for its
// registration side effect; a variable that already exists just
// resolves to its existing binding instead of shadowing it.
func (p *Parser) parseLocal(fs *frameState) ([]script.Instruction, error) {
	_, ok, err := p.parseValue(fs, true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{Kind: ExpectedIdentifier, Got: p.c.current()}
	}
	return nil, nil
}

func (p *Parser) parseReturn(fs *frameState) ([]script.Instruction, error) {
	var out []script.Instruction
	if p.c.hasSymbol(token.Newline, false) || p.c.isAtEnd() {
		out = append(out, script.Instruction{Op: script.PushUnset})
	} else {
		expr, err := p.parseRequiredExpr(fs, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, expr...)
	}
	out = append(out, script.Instruction{Op: script.Return, IsCommand: fs.isCommand})
	return out, nil
}

// parseBody parses statements, skipping blank lines between them,
// until it sees a bare "end" ahead (without consuming it): used for
// handler bodies and repeat bodies, whose closing keyword is always
// "end ...".
func (p *Parser) parseBody(fs *frameState) ([]script.Instruction, error) {
	var out []script.Instruction
	for {
		p.c.skipNewlines()
		if p.c.hasIdentifier("end", false) {
			return out, nil
		}
		if p.c.isAtEnd() {
			return nil, &ParseError{Kind: ExpectedIdentifier, Expected: "end", Got: p.c.current()}
		}
		stmt, err := p.parseStatement(fs)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt...)
	}
}

// parseBodyUntilEndOrElse is parseBody's sibling for if's multi-line
// true branch, which can be closed by either "end" or "else".
func (p *Parser) parseBodyUntilEndOrElse(fs *frameState) ([]script.Instruction, string, error) {
	var out []script.Instruction
	for {
		p.c.skipNewlines()
		if p.c.hasIdentifier("end", false) {
			return out, "end", nil
		}
		if p.c.hasIdentifier("else", false) {
			return out, "else", nil
		}
		if p.c.isAtEnd() {
			return nil, "", &ParseError{Kind: ExpectedIdentifier, Expected: "end or else", Got: p.c.current()}
		}
		stmt, err := p.parseStatement(fs)
		if err != nil {
			return nil, "", err
		}
		out = append(out, stmt...)
	}
}
