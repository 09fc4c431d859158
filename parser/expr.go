package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/token"
)

// exprNode is a partially-built expression tree: either a leaf operand
// (already-linearized instructions for one value) or a binary
// operation combining two exprNodes.
type exprNode interface {
	instrs() []script.Instruction
}

type operand struct {
	code []script.Instruction
}

func (o operand) instrs() []script.Instruction { return o.code }

type operation struct {
	op       string
	lhs, rhs exprNode
}

// instrs linearizes post-order: rhs, then lhs, then the 2-arg call.
// This is the same shape a generic two-argument call emits, since an
// operator is just a function looked up by its symbol.
func (o *operation) instrs() []script.Instruction {
	var out []script.Instruction
	out = append(out, o.rhs.instrs()...)
	out = append(out, o.lhs.instrs()...)
	out = append(out, script.Instruction{Op: script.PushParameterCount, Int: 2})
	out = append(out, script.Instruction{Op: script.Call, Str: o.op, IsCommand: false})
	return out
}

// precedenceTable ranks the operators that bind tighter than a bare
// left-to-right chain: smaller number binds tighter. Comparison
// operators (and any other symbol not listed here, such as a
// function-position symbol) aren't in the table and are always
// treated as the loosest-binding, outermost combinator.
var precedenceTable = map[string]int{
	"*":  0,
	"/":  1,
	"-":  2,
	"+":  3,
	"&":  4,
	"&&": 5,
}

const looseBinding = 1 << 30

func precedenceOf(op string) int {
	if p, ok := precedenceTable[op]; ok {
		return p
	}
	return looseBinding
}

// insertOperand splices a freshly-parsed operand into root using the
// new operator op, per the descend-to-rightmost-operation algorithm:
// walk down the rightmost spine of operation nodes; if that node's
// operator binds looser than op, op takes over its rhs; otherwise op
// wraps the whole tree as the new root.
func insertOperand(root exprNode, op string, newOperand exprNode) exprNode {
	rootOp, ok := root.(*operation)
	if !ok {
		return &operation{op: op, lhs: root, rhs: newOperand}
	}
	node := rootOp
	for {
		childOp, ok := node.rhs.(*operation)
		if !ok {
			break
		}
		node = childOp
	}
	if precedenceOf(node.op) > precedenceOf(op) {
		node.rhs = &operation{op: op, lhs: node.rhs, rhs: newOperand}
		return root
	}
	return &operation{op: op, lhs: root, rhs: newOperand}
}

func isBracketSymbol(s string) bool {
	switch s {
	case "(", ")", "[", "]", "{", "}":
		return true
	}
	return false
}

// tryParseExpr parses a full expression (a leading value, then zero or
// more operator/value pairs), stopping before a newline, a bracket
// character, or any symbol in forbidden. writable is passed through
// to the leading value only: that's the one spot a bare identifier
// can autovivify a new local (a Container element, or a `local`
// statement).
func (p *Parser) tryParseExpr(fs *frameState, forbidden map[string]bool, writable bool) ([]script.Instruction, bool, error) {
	first, ok, err := p.parseValue(fs, writable)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	root := exprNode(operand{code: first})
	for {
		t := p.c.current()
		if t.Kind != token.Symbol {
			break
		}
		if t.Val == token.Newline || isBracketSymbol(t.Val) || forbidden[t.Val] {
			break
		}
		mark := p.c.save()
		op := t.Val
		p.c.advance()
		rhs, ok, err := p.parseValue(fs, false)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			p.c.restore(mark)
			break
		}
		root = insertOperand(root, op, operand{code: rhs})
	}
	return root.instrs(), true, nil
}

// parseRequiredExpr is tryParseExpr with "no expression here" promoted
// to a ParseError, for the positions where one is mandatory (if/repeat
// conditions, return's value, the start/end of a from/to loop).
func (p *Parser) parseRequiredExpr(fs *frameState, forbidden map[string]bool) ([]script.Instruction, error) {
	instrs, ok, err := p.tryParseExpr(fs, forbidden, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{Kind: ExpectedExpression, Got: p.c.current()}
	}
	return instrs, nil
}

var constantValues = map[string]script.Instruction{
	"quote":    {Op: script.PushString, Str: "\""},
	"return":   {Op: script.PushString, Str: "\r"},
	"linefeed": {Op: script.PushString, Str: "\n"},
	"newline":  {Op: script.PushString, Str: "\n"},
	"tab":      {Op: script.PushString, Str: "\t"},
	"pi":       {Op: script.PushDouble, Dbl: math.Pi},
	"empty":    {Op: script.PushString, Str: ""},
}

// parseValue parses one value: a literal, or an identifier that
// resolves (in order) to a named constant, a
// function call, a property access, a bound variable, a newly
// autovivified local (only if writable), or finally a bare string
// literal of its own spelling. Returns ok=false with no error when the
// current token can't start a value at all; the cursor is untouched
// in that case.
func (p *Parser) parseValue(fs *frameState, writable bool) ([]script.Instruction, bool, error) {
	t := p.c.current()
	switch t.Kind {
	case token.QuotedString:
		p.c.advance()
		return []script.Instruction{{Op: script.PushString, Str: t.Val}}, true, nil
	case token.Integer:
		p.c.advance()
		n, _ := strconv.ParseInt(t.Val, 10, 64)
		return []script.Instruction{{Op: script.PushInteger, Int: int(n)}}, true, nil
	case token.Double:
		p.c.advance()
		f, _ := strconv.ParseFloat(t.Val, 64)
		return []script.Instruction{{Op: script.PushDouble, Dbl: f}}, true, nil
	case token.UnquotedString:
		return p.parseIdentifierValue(fs, writable)
	default:
		return nil, false, nil
	}
}

func (p *Parser) parseIdentifierValue(fs *frameState, writable bool) ([]script.Instruction, bool, error) {
	t := p.c.current()
	name := t.Val
	lower := strings.ToLower(name)

	if instr, ok := constantValues[lower]; ok {
		p.c.advance()
		return []script.Instruction{instr}, true, nil
	}

	p.c.advance()

	if p.c.hasSymbol("(", true) {
		instrs, err := p.parseCallExpr(fs, name)
		if err != nil {
			return nil, false, err
		}
		return instrs, true, nil
	}

	if p.c.hasIdentifier("of", true) {
		target, ok, err := p.parseValue(fs, writable)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, &ParseError{Kind: ExpectedValue, Got: p.c.current()}
		}
		out := append(target, script.Instruction{Op: script.PushProperty, Str: name})
		return out, true, nil
	}

	if b, ok := fs.lookup(lower); ok {
		return []script.Instruction{bindingInstr(b)}, true, nil
	}

	if writable {
		b := fs.newLocal(lower)
		return []script.Instruction{bindingInstr(b)}, true, nil
	}

	return []script.Instruction{{Op: script.PushString, Str: name}}, true, nil
}
