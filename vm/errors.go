package vm

import "fmt"

// RuntimeError tags the VM's own discriminated error variants: small
// error structs with pointer receivers rather than fmt.Errorf-only errors.
// Coercion failures from the value package
// surface through Run too, but as plain errors — they're not retagged
// here since they already carry their own discriminated types.
type RuntimeError interface {
	error
	isRuntimeError()
}

// StackIndexOutOfRangeError fires when a Reference or a BP-relative
// access names a slot outside the current stack.
type StackIndexOutOfRangeError struct {
	Index int
}

func (e *StackIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("stack index %d is out of range", e.Index)
}
func (*StackIndexOutOfRangeError) isRuntimeError() {}

// TooFewOperandsError and TooManyOperandsError fire when a native
// builtin of fixed arity is called with the wrong argument count.
type TooFewOperandsError struct {
	Want, Got int
}

func (e *TooFewOperandsError) Error() string {
	return fmt.Sprintf("expected %d argument(s), got %d", e.Want, e.Got)
}
func (*TooFewOperandsError) isRuntimeError() {}

type TooManyOperandsError struct {
	Want, Got int
}

func (e *TooManyOperandsError) Error() string {
	return fmt.Sprintf("expected %d argument(s), got %d", e.Want, e.Got)
}
func (*TooManyOperandsError) isRuntimeError() {}

// ZeroDivisionError fires when `/` is asked to divide by zero.
type ZeroDivisionError struct{}

func (e *ZeroDivisionError) Error() string { return "division by zero" }
func (*ZeroDivisionError) isRuntimeError()  {}

// UnknownMessageError fires when Call names neither a compiled Frame
// nor a registered native builtin in the selected namespace.
type UnknownMessageError struct {
	Name      string
	IsCommand bool
}

func (e *UnknownMessageError) Error() string {
	kind := "function"
	if e.IsCommand {
		kind = "command"
	}
	return fmt.Sprintf("no such %s %q", kind, e.Name)
}
func (*UnknownMessageError) isRuntimeError() {}

// UnknownInstructionError fires on a malformed Script: an Op value
// outside the closed opcode set. The parser never emits one; this
// only guards against a hand-built or corrupted Script.
type UnknownInstructionError struct {
	Op int
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction opcode %d", e.Op)
}
func (*UnknownInstructionError) isRuntimeError() {}

// InvalidPutDestinationError fires when put/add/subtract's container
// argument doesn't resolve to a stack Reference.
type InvalidPutDestinationError struct{}

func (e *InvalidPutDestinationError) Error() string {
	return "destination is not a container"
}
func (*InvalidPutDestinationError) isRuntimeError() {}

// StackNotCleanedUpAtEndOfCallError fires when a callee leaves
// operands on the stack beyond its own declared locals at Return: a
// bug in a native builtin or a hand-built Script, never in parser
// output.
type StackNotCleanedUpAtEndOfCallError struct {
	Excess int
}

func (e *StackNotCleanedUpAtEndOfCallError) Error() string {
	return fmt.Sprintf("%d value(s) left on the stack at the end of a call", e.Excess)
}
func (*StackNotCleanedUpAtEndOfCallError) isRuntimeError() {}
