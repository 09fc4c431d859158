package parser

import (
	"strings"

	"github.com/uliwitness/nimue/script"
)

// ElementKind says what value (if any) a SyntaxElement contributes.
type ElementKind int

const (
	ElemExpression ElementKind = iota
	ElemContainer
	ElemIdentifier
	ElemAnyIdentifier
	ElemNone
)

// SyntaxElement is one slot of an English command template: an
// optional literal keyword consumed before it (e.g. "into", "to"),
// then a value of the given kind. Optional elements that fail to
// match are simply skipped rather than failing the whole template.
type SyntaxElement struct {
	Literal  string
	Kind     ElementKind
	Expected []string // ElemIdentifier: the words one of which must match
	Optional bool
}

// Syntax is one registered command template: its introductory
// identifier word(s) (which double as the command's Call name once
// concatenated) followed by its elements in order.
type Syntax struct {
	Name     []string
	Elements []SyntaxElement
}

// RegisterSyntax lets a host add its own English command templates on
// top of the built-in put/add/subtract/create, the way a HyperCard-like
// host would add "go to", "answer", and friends.
func (p *Parser) RegisterSyntax(s Syntax) {
	p.syntaxes = append(p.syntaxes, s)
}

func (p *Parser) registerBuiltinSyntaxes() {
	p.syntaxes = append(p.syntaxes,
		Syntax{
			Name: []string{"put"},
			Elements: []SyntaxElement{
				{Kind: ElemExpression},
				{Literal: "into", Kind: ElemContainer},
			},
		},
		Syntax{
			Name: []string{"add"},
			Elements: []SyntaxElement{
				{Kind: ElemExpression},
				{Literal: "to", Kind: ElemContainer},
			},
		},
		Syntax{
			Name: []string{"subtract"},
			Elements: []SyntaxElement{
				{Kind: ElemExpression},
				{Literal: "from", Kind: ElemContainer},
			},
		},
		Syntax{
			Name: []string{"create"},
			Elements: []SyntaxElement{
				{Kind: ElemAnyIdentifier},
				{Kind: ElemExpression, Optional: true},
			},
		},
	)
}

// tryMatchSyntax attempts every registered template in registration
// order, restoring the cursor after each failed attempt, and returns
// the first one that matches in full.
func (p *Parser) tryMatchSyntax(fs *frameState) ([]script.Instruction, bool) {
	for _, syn := range p.syntaxes {
		mark := p.c.save()
		if instrs, ok := p.matchSyntax(fs, syn); ok {
			return instrs, true
		}
		p.c.restore(mark)
	}
	return nil, false
}

func (p *Parser) matchSyntax(fs *frameState, syn Syntax) ([]script.Instruction, bool) {
	if !p.c.hasIdentifiers(syn.Name, true) {
		return nil, false
	}
	var args [][]script.Instruction
	for _, elem := range syn.Elements {
		if elem.Literal != "" && !p.c.hasIdentifier(elem.Literal, true) {
			if elem.Optional {
				continue
			}
			return nil, false
		}
		if elem.Kind == ElemNone {
			continue
		}
		instrs, ok := p.matchElement(fs, elem)
		if !ok {
			if elem.Optional {
				continue
			}
			return nil, false
		}
		args = append(args, instrs)
	}
	name := strings.Join(syn.Name, "")
	return emitCall(name, true, args), true
}

func (p *Parser) matchElement(fs *frameState, elem SyntaxElement) ([]script.Instruction, bool) {
	switch elem.Kind {
	case ElemExpression:
		instrs, ok, err := p.tryParseExpr(fs, nil, false)
		if err != nil || !ok {
			return nil, false
		}
		return instrs, true
	case ElemContainer:
		instrs, ok, err := p.tryParseExpr(fs, nil, true)
		if err != nil || !ok {
			return nil, false
		}
		return instrs, true
	case ElemIdentifier:
		for _, w := range elem.Expected {
			if p.c.hasIdentifier(w, true) {
				return []script.Instruction{{Op: script.PushString, Str: w}}, true
			}
		}
		return nil, false
	case ElemAnyIdentifier:
		name, ok := p.c.hasAnyIdentifier(true)
		if !ok {
			return nil, false
		}
		return []script.Instruction{{Op: script.PushString, Str: name}}, true
	}
	return nil, false
}
