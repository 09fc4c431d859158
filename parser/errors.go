package parser

import (
	"fmt"

	"github.com/uliwitness/nimue/token"
)

// ErrorKind discriminates the ways a ParseError can occur. Location
// comes along for free on the offending token.
type ErrorKind int

const (
	ExpectedIdentifier ErrorKind = iota
	ExpectedOperator
	ExpectedOperandAfterOperator
	ExpectedInteger
	ExpectedNumber
	ExpectedString
	ExpectedValue
	ExpectedExpression
	ExpectedEndOfLine
	ExpectedFunctionName
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedIdentifier:
		return "expected identifier"
	case ExpectedOperator:
		return "expected operator"
	case ExpectedOperandAfterOperator:
		return "expected operand after operator"
	case ExpectedInteger:
		return "expected integer"
	case ExpectedNumber:
		return "expected number"
	case ExpectedString:
		return "expected string"
	case ExpectedValue:
		return "expected value"
	case ExpectedExpression:
		return "expected expression"
	case ExpectedEndOfLine:
		return "expected end of line"
	case ExpectedFunctionName:
		return "expected function name"
	}
	return "parse error"
}

// ParseError carries the offending token (file + offset) where
// available. No error is caught inside the parser: the first failure
// aborts parsing and is returned to the host.
type ParseError struct {
	Kind     ErrorKind
	Expected string // optional: the specific word/symbol that was wanted
	Got      token.Token
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: %s %q but found %q", e.Got.Loc, e.Kind, e.Expected, e.Got)
	}
	return fmt.Sprintf("%s: %s but found %q", e.Got.Loc, e.Kind, e.Got)
}
