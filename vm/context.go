// Package vm is the stack-machine runtime: it fetches and dispatches
// script.Instruction values against an operand stack of value.Value,
// following the BP/PC calling convention a Script's handlers (and a
// host's native builtins) share.
package vm

import (
	"strings"

	"github.com/uliwitness/nimue/pkg/stack"
	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/value"
)

// NativeFunc is a host-provided command or function: it receives its
// arguments exactly as the calling convention delivers them (still
// possibly Reference values, for the put/add/subtract container
// idiom) and reports its result via ctx.SetResult before returning.
type NativeFunc func(args []value.Value, ctx *RunContext) error

// sentinelBP marks the synthetic caller frame Run() sets up below the
// outermost handler call: Return reaching it means the whole call is
// finished rather than unwinding to a real caller.
const sentinelBP = -1

// RunContext is one execution of a Script: its operand stack, the
// current frame pointers, and the native builtin tables a host
// registers into. A host typically builds one RunContext per script
// and calls Run on it once per top-level message.
type RunContext struct {
	scr   *script.Script
	stack stack.Stack[value.Value]
	bp    int
	pc    int
	result value.Value

	// frameLocals mirrors the compiled-frame call stack with each
	// active frame's NumLocals, purely so Return can check the
	// StackNotCleanedUpAtEndOfCall invariant; it isn't part of the
	// calling convention itself.
	frameLocals []int

	Commands  map[string]NativeFunc
	Functions map[string]NativeFunc
}

// NewRunContext builds a fresh runtime over scr with empty native
// builtin tables; a host fills them in with builtin.Register or its
// own RegisterCommand/RegisterFunction calls before calling Run.
func NewRunContext(scr *script.Script) *RunContext {
	return &RunContext{
		scr:       scr,
		stack:     stack.New[value.Value](64),
		Commands:  make(map[string]NativeFunc),
		Functions: make(map[string]NativeFunc),
	}
}

func (ctx *RunContext) RegisterCommand(name string, f NativeFunc) {
	ctx.Commands[strings.ToLower(name)] = f
}

func (ctx *RunContext) RegisterFunction(name string, f NativeFunc) {
	ctx.Functions[strings.ToLower(name)] = f
}

// SetResult records the value a native builtin wants Call to treat as
// its return value. A builtin that never calls it returns Unset.
func (ctx *RunContext) SetResult(v value.Value) { ctx.result = v }

// At implements value.Stack so coercions and property access can walk
// Reference chains into this runtime's operand stack.
func (ctx *RunContext) At(i int) value.Value { return ctx.stack.At(i) }

// SetAt overwrites the stack cell at absolute index i, the mechanism
// put/add/subtract use to mutate a container once they've resolved its
// Reference to a concrete slot.
func (ctx *RunContext) SetAt(i int, v value.Value) { ctx.stack.Set(i, v) }

func (ctx *RunContext) pop() (value.Value, bool) {
	n := ctx.stack.Len()
	if n == 0 {
		return value.Value{}, false
	}
	v := ctx.stack.At(n - 1)
	ctx.stack.Truncate(n - 1)
	return v, true
}

func (ctx *RunContext) popBool() (bool, error) {
	v, ok := ctx.pop()
	if !ok {
		return false, &StackIndexOutOfRangeError{Index: ctx.stack.Len()}
	}
	return v.AsBoolean(ctx)
}

func (ctx *RunContext) paramCount() (int, error) {
	v := ctx.stack.At(ctx.bp - 1)
	if v.Kind() != value.ParameterCount {
		return 0, &StackIndexOutOfRangeError{Index: ctx.bp - 1}
	}
	return int(v.IntegerValue()), nil
}

// enterFrame pushes the InstructionIndex/StackIndex bookkeeping pair
// for a compiled handler and repoints bp/pc at its code, recording its
// NumLocals for the Return-time cleanliness check.
func (ctx *RunContext) enterFrame(frame *script.Frame, returnPC, callerBP int) {
	ctx.stack.Push(value.NewInstructionIndex(returnPC))
	ctx.stack.Push(value.NewStackIndex(callerBP))
	ctx.bp = ctx.stack.Len() - 2
	ctx.pc = frame.FirstInstruction
	ctx.frameLocals = append(ctx.frameLocals, frame.NumLocals)
}

func (ctx *RunContext) invokeNative(nf NativeFunc, args []value.Value) (value.Value, error) {
	ctx.result = value.NewUnset()
	if err := nf(args, ctx); err != nil {
		return value.Value{}, err
	}
	return ctx.result, nil
}
