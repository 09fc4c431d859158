package vm

import (
	"strings"

	"github.com/uliwitness/nimue/script"
	"github.com/uliwitness/nimue/value"
)

// Run invokes handler name (command namespace if isCommand, else
// function namespace) with args and runs the fetch-dispatch loop until
// it returns, delivering its result. name may name either a compiled
// handler or a native builtin; a native handler runs synchronously
// with no frame pushed at all.
func (ctx *RunContext) Run(name string, isCommand bool, args []value.Value) (value.Value, error) {
	lower := strings.ToLower(name)
	if ctx.scr != nil {
		if frame, ok := ctx.scr.Frame(lower, isCommand); ok {
			for i := len(args) - 1; i >= 0; i-- {
				ctx.stack.Push(args[i])
			}
			ctx.stack.Push(value.NewParameterCount(len(args)))
			ctx.enterFrame(frame, -1, sentinelBP)
			return ctx.loop()
		}
	}
	table := ctx.Functions
	if isCommand {
		table = ctx.Commands
	}
	nf, ok := table[lower]
	if !ok {
		return value.Value{}, &UnknownMessageError{Name: name, IsCommand: isCommand}
	}
	return ctx.invokeNative(nf, args)
}

// loop runs step until a Return unwinds all the way back to the
// synthetic frame Run set up, at which point it carries that Return's
// value out as the overall result.
func (ctx *RunContext) loop() (value.Value, error) {
	for {
		result, done, err := ctx.step()
		if err != nil {
			return value.Value{}, err
		}
		if done {
			return result, nil
		}
	}
}

// step executes the single instruction at ctx.pc. done reports that
// the outermost call Run set up has fully returned, in which case
// result is its value.
func (ctx *RunContext) step() (result value.Value, done bool, err error) {
	instr := ctx.scr.Instructions[ctx.pc]
	switch instr.Op {
	case script.PushUnset:
		ctx.stack.Push(value.NewUnset())
		ctx.pc++
	case script.PushString:
		ctx.stack.Push(value.NewString(instr.Str))
		ctx.pc++
	case script.PushInteger:
		ctx.stack.Push(value.NewInteger(int64(instr.Int)))
		ctx.pc++
	case script.PushDouble:
		ctx.stack.Push(value.NewDouble(instr.Dbl))
		ctx.pc++
	case script.PushParameterCount:
		ctx.stack.Push(value.NewParameterCount(instr.Int))
		ctx.pc++
	case script.Reserve:
		for i := 0; i < instr.Int; i++ {
			ctx.stack.Push(value.NewUnset())
		}
		ctx.pc++
	case script.StackValueBPRelative:
		ctx.stack.Push(value.NewReference(ctx.bp + instr.Int))
		ctx.pc++
	case script.Parameter:
		n, perr := ctx.paramCount()
		if perr != nil {
			return value.Value{}, false, perr
		}
		if instr.Int <= n {
			ctx.stack.Push(value.NewReference(ctx.bp - 1 - instr.Int))
		} else {
			ctx.stack.Push(value.NewUnset())
		}
		ctx.pc++
	case script.JumpBy:
		ctx.pc += instr.Int
	case script.JumpByIfFalse:
		b, berr := ctx.popBool()
		if berr != nil {
			return value.Value{}, false, berr
		}
		if !b {
			ctx.pc += instr.Int
		} else {
			ctx.pc++
		}
	case script.JumpByIfTrue:
		b, berr := ctx.popBool()
		if berr != nil {
			return value.Value{}, false, berr
		}
		if b {
			ctx.pc += instr.Int
		} else {
			ctx.pc++
		}
	case script.PushProperty:
		target, ok := ctx.pop()
		if !ok {
			return value.Value{}, false, &StackIndexOutOfRangeError{Index: ctx.stack.Len()}
		}
		v, perr := target.PropertyValue(instr.Str, ctx)
		if perr != nil {
			return value.Value{}, false, perr
		}
		ctx.stack.Push(v)
		ctx.pc++
	case script.Call:
		return ctx.execCall(instr)
	case script.Return:
		return ctx.execReturn(instr)
	default:
		return value.Value{}, false, &UnknownInstructionError{Op: int(instr.Op)}
	}
	return value.Value{}, false, nil
}

// execCall implements the Call opcode: either enter a compiled
// handler's frame, leaving the ParameterCount cell and its arguments
// in place below it, or pop them and invoke a native builtin
// synchronously and deliver its result per IsCommand.
func (ctx *RunContext) execCall(instr script.Instruction) (value.Value, bool, error) {
	pcVal, ok := ctx.pop()
	if !ok || pcVal.Kind() != value.ParameterCount {
		return value.Value{}, false, &StackIndexOutOfRangeError{Index: ctx.stack.Len()}
	}
	n := int(pcVal.IntegerValue())
	if n > ctx.stack.Len() {
		return value.Value{}, false, &StackIndexOutOfRangeError{Index: ctx.stack.Len() - n}
	}

	lower := strings.ToLower(instr.Str)
	if frame, ok := ctx.scr.Frame(lower, instr.IsCommand); ok {
		ctx.stack.Push(pcVal)
		ctx.enterFrame(frame, ctx.pc+1, ctx.bp)
		return value.Value{}, false, nil
	}

	top := ctx.stack.Len() - 1
	args := make([]value.Value, n)
	for k := 0; k < n; k++ {
		args[k] = ctx.stack.At(top - k)
	}
	ctx.stack.Truncate(ctx.stack.Len() - n)

	table := ctx.Functions
	if instr.IsCommand {
		table = ctx.Commands
	}
	nf, ok := table[lower]
	if !ok {
		return value.Value{}, false, &UnknownMessageError{Name: instr.Str, IsCommand: instr.IsCommand}
	}
	res, err := ctx.invokeNative(nf, args)
	if err != nil {
		return value.Value{}, false, err
	}
	if instr.IsCommand {
		ctx.stack.Set(ctx.bp+2, res)
	} else {
		ctx.stack.Push(res)
	}
	ctx.pc++
	return value.Value{}, false, nil
}

// execReturn implements the Return opcode: pop the return value,
// validate the callee left no excess operands behind, unwind BP/PC to
// the caller, and deliver the value per IsCommand — or, if the
// restored caller is Run's synthetic sentinel frame, report the whole
// call as done.
func (ctx *RunContext) execReturn(instr script.Instruction) (value.Value, bool, error) {
	raw, ok := ctx.pop()
	if !ok {
		return value.Value{}, false, &StackIndexOutOfRangeError{Index: ctx.stack.Len()}
	}
	resultVal, err := raw.Resolve(ctx)
	if err != nil {
		return value.Value{}, false, err
	}

	bp := ctx.bp
	savedPCVal := ctx.stack.At(bp)
	savedBPVal := ctx.stack.At(bp + 1)
	if savedPCVal.Kind() != value.InstructionIndex || savedBPVal.Kind() != value.StackIndex {
		return value.Value{}, false, &StackIndexOutOfRangeError{Index: bp}
	}
	savedPC := int(savedPCVal.IntegerValue())
	savedBP := int(savedBPVal.IntegerValue())

	numLocals := ctx.frameLocals[len(ctx.frameLocals)-1]
	ctx.frameLocals = ctx.frameLocals[:len(ctx.frameLocals)-1]
	if excess := ctx.stack.Len() - (bp + 2 + numLocals); excess > 0 {
		return value.Value{}, false, &StackNotCleanedUpAtEndOfCallError{Excess: excess}
	}

	pcCountVal := ctx.stack.At(bp - 1)
	n := int(pcCountVal.IntegerValue())
	ctx.stack.Truncate(bp - 1 - n)
	ctx.bp = savedBP
	ctx.pc = savedPC

	if savedBP == sentinelBP {
		return resultVal, true, nil
	}
	if instr.IsCommand {
		ctx.stack.Set(ctx.bp+2, resultVal)
	} else {
		ctx.stack.Push(resultVal)
	}
	return value.Value{}, false, nil
}
