package parser

import (
	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/token"
)

// assembleIf emits [condition, JumpByIfFalse(true_len+skip+1),
// true_instrs, (JumpBy(false_len+1), false_instrs)?] where skip is 1
// iff a false branch is present. JumpByIfFalse's offset is computed
// to land past the whole construct when the condition is false.
func assembleIf(cond, trueInstrs, falseInstrs []script.Instruction, hasFalse bool) []script.Instruction {
	skip := 0
	if hasFalse {
		skip = 1
	}
	var out []script.Instruction
	out = append(out, cond...)
	out = append(out, script.Instruction{Op: script.JumpByIfFalse, Int: len(trueInstrs) + skip + 1})
	out = append(out, trueInstrs...)
	if hasFalse {
		out = append(out, script.Instruction{Op: script.JumpBy, Int: len(falseInstrs) + 1})
		out = append(out, falseInstrs...)
	}
	return out
}

// parseIf parses an `if cond then stmt [else stmt]` conditional. The
// leading "if" keyword has already been consumed by the caller.
func (p *Parser) parseIf(fs *frameState) ([]script.Instruction, error) {
	cond, err := p.parseRequiredExpr(fs, nil)
	if err != nil {
		return nil, err
	}
	p.c.skipNewlines()
	if err := p.c.expectIdentifiers([]string{"then"}); err != nil {
		return nil, err
	}

	if !p.c.hasSymbol(token.Newline, false) {
		return p.parseIfSingleLine(fs, cond)
	}
	return p.parseIfMultiLine(fs, cond)
}

func (p *Parser) parseIfSingleLine(fs *frameState, cond []script.Instruction) ([]script.Instruction, error) {
	trueInstrs, err := p.parseStatement(fs)
	if err != nil {
		return nil, err
	}

	mark := p.c.save()
	p.c.skipNewlines()
	if !p.c.hasIdentifier("else", true) {
		p.c.restore(mark)
		return assembleIf(cond, trueInstrs, nil, false), nil
	}

	if !p.c.hasSymbol(token.Newline, false) {
		falseInstrs, err := p.parseStatement(fs)
		if err != nil {
			return nil, err
		}
		return assembleIf(cond, trueInstrs, falseInstrs, true), nil
	}

	falseInstrs, err := p.parseBody(fs)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectIdentifiers([]string{"end", "if"}); err != nil {
		return nil, err
	}
	return assembleIf(cond, trueInstrs, falseInstrs, true), nil
}

func (p *Parser) parseIfMultiLine(fs *frameState, cond []script.Instruction) ([]script.Instruction, error) {
	trueInstrs, term, err := p.parseBodyUntilEndOrElse(fs)
	if err != nil {
		return nil, err
	}
	if term == "end" {
		p.c.hasIdentifier("end", true)
		if err := p.c.expectIdentifiers([]string{"if"}); err != nil {
			return nil, err
		}
		return assembleIf(cond, trueInstrs, nil, false), nil
	}

	p.c.hasIdentifier("else", true)
	if p.c.hasIdentifier("if", true) {
		nested, err := p.parseIf(fs) // nested parseIf consumes its own "end if"
		if err != nil {
			return nil, err
		}
		return assembleIf(cond, trueInstrs, nested, true), nil
	}

	falseInstrs, err := p.parseBody(fs)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectIdentifiers([]string{"end", "if"}); err != nil {
		return nil, err
	}
	return assembleIf(cond, trueInstrs, falseInstrs, true), nil
}
