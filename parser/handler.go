package parser

import (
	"strings"

	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/token"
)

// parseParamList parses zero or more comma-separated parameter names
// terminating the handler header. An empty list (header immediately
// followed by a newline) is valid: a handler can take no parameters.
func (p *Parser) parseParamList() ([]string, error) {
	var params []string
	if p.c.hasSymbol(token.Newline, false) {
		return params, nil
	}
	for {
		name, err := p.c.expectIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, name)
		if !p.c.hasSymbol(",", true) {
			break
		}
	}
	return params, nil
}

// parseHandler parses one `on name ... end name` or `function name ...
// end name` block. The leading "on"/"function" keyword has already
// been consumed.
func (p *Parser) parseHandler(isCommand bool) error {
	name, err := p.c.expectIdentifier()
	if err != nil {
		return err
	}

	fs := newFrameState(isCommand)
	params, err := p.parseParamList()
	if err != nil {
		return err
	}
	for i, pname := range params {
		fs.vars[strings.ToLower(pname)] = script.VariableBinding{Kind: script.BindParameter, Index: i + 1}
	}
	if err := p.c.expectSymbol(token.Newline); err != nil {
		return err
	}

	body, err := p.parseBody(fs)
	if err != nil {
		return err
	}
	body = append(body,
		script.Instruction{Op: script.PushUnset},
		script.Instruction{Op: script.Return, IsCommand: isCommand},
	)
	if err := p.c.expectIdentifiers([]string{"end", name}); err != nil {
		return err
	}

	full := make([]script.Instruction, 0, len(body)+1)
	full = append(full, script.Instruction{Op: script.Reserve, Int: fs.numLocals})
	full = append(full, body...)

	frame := &script.Frame{
		FirstInstruction: len(p.script.Instructions),
		NumLocals:        fs.numLocals,
		Variables:        fs.vars,
	}
	p.script.Instructions = append(p.script.Instructions, full...)

	lower := strings.ToLower(name)
	if isCommand {
		p.script.Commands[lower] = frame
	} else {
		p.script.Functions[lower] = frame
	}
	return nil
}
