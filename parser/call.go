package parser

import "github.com/uliwitness/nimue/script"

// emitCall assembles the generic calling-convention codegen shared by
// every call site in the parser (operators, generic calls, English
// syntax templates): each argument's instructions in reverse of
// source order (so the first source argument ends up the topmost,
// i.e. Parameter(1)), then PushParameterCount, then Call.
func emitCall(name string, isCommand bool, args [][]script.Instruction) []script.Instruction {
	var out []script.Instruction
	for i := len(args) - 1; i >= 0; i-- {
		out = append(out, args[i]...)
	}
	out = append(out, script.Instruction{Op: script.PushParameterCount, Int: len(args)})
	out = append(out, script.Instruction{Op: script.Call, Str: name, IsCommand: isCommand})
	return out
}

// parseArgList parses a comma-separated list of expressions, each
// forbidden from consuming a bare `,` or `)` as an operator so the
// list's own delimiters aren't swallowed. An empty list (no value at
// the current position) is not an error: that's how `foo()` and a
// bare zero-argument statement call both parse.
func (p *Parser) parseArgList(fs *frameState) ([][]script.Instruction, error) {
	forbidden := map[string]bool{",": true, ")": true}
	var args [][]script.Instruction

	first, ok, err := p.tryParseExpr(fs, forbidden, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return args, nil
	}
	args = append(args, first)

	for p.c.hasSymbol(",", true) {
		next, ok, err := p.tryParseExpr(fs, forbidden, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ParseError{Kind: ExpectedExpression, Got: p.c.current()}
		}
		args = append(args, next)
	}
	return args, nil
}

// parseCallExpr parses the argument list and closing paren of a
// `name(...)` function-position call; the opening paren has already
// been consumed.
func (p *Parser) parseCallExpr(fs *frameState, name string) ([]script.Instruction, error) {
	args, err := p.parseArgList(fs)
	if err != nil {
		return nil, err
	}
	if err := p.c.expectSymbol(")"); err != nil {
		return nil, err
	}
	return emitCall(name, false, args), nil
}

// parseStatementGenericCall parses a bare `name arg1, arg2, ...`
// statement: the fallback when no English syntax template and none of
// the reserved statement keywords matched.
func (p *Parser) parseStatementGenericCall(fs *frameState) ([]script.Instruction, error) {
	name, err := p.c.expectIdentifier()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgList(fs)
	if err != nil {
		return nil, err
	}
	return emitCall(name, true, args), nil
}
