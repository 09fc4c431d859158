package parser

import (
	"strings"

	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/token"
)

// assembleWhile emits [condition, JumpByIfFalse(body_len+2), body,
// JumpBy(-(body_len+condition_len+1))], the standard test-at-top loop:
// the back jump lands on the condition's first instruction.
func assembleWhile(cond, body []script.Instruction) []script.Instruction {
	var out []script.Instruction
	out = append(out, cond...)
	out = append(out, script.Instruction{Op: script.JumpByIfFalse, Int: len(body) + 2})
	out = append(out, body...)
	out = append(out, script.Instruction{Op: script.JumpBy, Int: -(len(body) + len(cond) + 1)})
	return out
}

// parseRepeat parses the three repeat forms (while, with...from...to,
// and a bare count). The leading "repeat" keyword has already been
// consumed.
func (p *Parser) parseRepeat(fs *frameState) ([]script.Instruction, error) {
	if p.c.hasIdentifier("while", true) {
		return p.parseRepeatWhile(fs)
	}
	if p.c.hasIdentifier("with", true) {
		return p.parseRepeatWithFromTo(fs)
	}
	return p.parseRepeatCount(fs)
}

func (p *Parser) parseRepeatWhile(fs *frameState) ([]script.Instruction, error) {
	cond, err := p.parseRequiredExpr(fs, nil)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectSymbol(token.Newline); err != nil {
		return nil, err
	}
	body, err := p.parseBody(fs)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectIdentifiers([]string{"end", "repeat"}); err != nil {
		return nil, err
	}
	return assembleWhile(cond, body), nil
}

// parseRepeatWithFromTo desugars `with name from start [down] to end`
// into: put start into name; while name <= end { body; add/subtract 1
// to/from name }. The comparison is always <=, even counting down:
// that's a faithful preservation of the source behavior that a
// descending loop whose start is above its end never runs.
func (p *Parser) parseRepeatWithFromTo(fs *frameState) ([]script.Instruction, error) {
	name, err := p.c.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.c.expectIdentifiers([]string{"from"}); err != nil {
		return nil, err
	}
	start, err := p.parseRequiredExpr(fs, nil)
	if err != nil {
		return nil, err
	}
	down := p.c.hasIdentifier("down", true)
	if err := p.c.expectIdentifiers([]string{"to"}); err != nil {
		return nil, err
	}
	end, err := p.parseRequiredExpr(fs, nil)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectSymbol(token.Newline); err != nil {
		return nil, err
	}

	lower := strings.ToLower(name)
	binding, ok := fs.lookup(lower)
	if !ok {
		binding = fs.newLocal(lower)
	}
	varRef := []script.Instruction{bindingInstr(binding)}

	body, err := p.parseBody(fs)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectIdentifiers([]string{"end", "repeat"}); err != nil {
		return nil, err
	}

	var out []script.Instruction
	out = append(out, emitCall("put", true, [][]script.Instruction{start, varRef})...)

	cond := emitCall("<=", false, [][]script.Instruction{varRef, end})

	step := 1
	if down {
		step = -1
	}
	stepInstr := []script.Instruction{{Op: script.PushInteger, Int: step}}
	var loopBody []script.Instruction
	loopBody = append(loopBody, body...)
	loopBody = append(loopBody, emitCall("add", true, [][]script.Instruction{stepInstr, varRef})...)

	out = append(out, assembleWhile(cond, loopBody)...)
	return out, nil
}

// parseRepeatCount desugars `[for] count [times]` into: put count into
// a synthetic counter; while counter > 0 { body; subtract 1 from
// counter }. Faithful to the source: the loop counts down rather than
// up, so it runs max(0, count) times regardless of how count is
// phrased.
func (p *Parser) parseRepeatCount(fs *frameState) ([]script.Instruction, error) {
	p.c.hasIdentifier("for", true)
	count, err := p.parseRequiredExpr(fs, nil)
	if err != nil {
		return nil, err
	}
	p.c.hasIdentifier("times", true)
	if err := p.c.expectSymbol(token.Newline); err != nil {
		return nil, err
	}
	body, err := p.parseBody(fs)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectIdentifiers([]string{"end", "repeat"}); err != nil {
		return nil, err
	}

	counter := []script.Instruction{bindingInstr(fs.newSyntheticCounter())}

	var out []script.Instruction
	out = append(out, emitCall("put", true, [][]script.Instruction{count, counter})...)

	zero := []script.Instruction{{Op: script.PushInteger, Int: 0}}
	cond := emitCall(">", false, [][]script.Instruction{counter, zero})

	one := []script.Instruction{{Op: script.PushInteger, Int: 1}}
	var loopBody []script.Instruction
	loopBody = append(loopBody, body...)
	loopBody = append(loopBody, emitCall("subtract", true, [][]script.Instruction{one, counter})...)

	out = append(out, assembleWhile(cond, loopBody)...)
	return out, nil
}
