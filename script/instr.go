// Package script holds the compiled artifact the parser produces and
// the runtime executes: a flat instruction vector plus per-handler
// frame descriptors. The instruction set is a closed, small set of
// opcodes with immediate operands.
package script

// Op identifies an instruction's opcode.
type Op int

const (
	// PushUnset pushes the Unset value.
	PushUnset Op = iota
	// PushString pushes Str as a String value (or Empty if "").
	PushString
	// PushInteger pushes Int as an Integer value.
	PushInteger
	// PushDouble pushes Dbl as a Double value.
	PushDouble
	// PushParameterCount pushes ParameterCount(Int).
	PushParameterCount
	// Reserve pushes Int copies of Unset: a handler's locals.
	Reserve
	// StackValueBPRelative pushes Reference(BP + Int).
	StackValueBPRelative
	// Parameter pushes Reference(BP-1-Int) if the caller supplied at
	// least Int arguments, else Unset.
	Parameter
	// Call dispatches to the command or function named Str, per
	// IsCommand, using the calling convention in vm.
	Call
	// Return unwinds the current frame. IsCommand selects whether the
	// return value is written into the caller's result local or
	// pushed for an expression to consume.
	Return
	// JumpBy adds Int to PC unconditionally (no implicit +1).
	JumpBy
	// JumpByIfFalse pops a boolean; if false, adds Int to PC, else PC+=1.
	JumpByIfFalse
	// JumpByIfTrue pops a boolean; if true, adds Int to PC, else PC+=1.
	JumpByIfTrue
	// PushProperty pops a target and pushes its Str property.
	PushProperty
)

func (op Op) String() string {
	switch op {
	case PushUnset:
		return "PushUnset"
	case PushString:
		return "PushString"
	case PushInteger:
		return "PushInteger"
	case PushDouble:
		return "PushDouble"
	case PushParameterCount:
		return "PushParameterCount"
	case Reserve:
		return "Reserve"
	case StackValueBPRelative:
		return "StackValueBPRelative"
	case Parameter:
		return "Parameter"
	case Call:
		return "Call"
	case Return:
		return "Return"
	case JumpBy:
		return "JumpBy"
	case JumpByIfFalse:
		return "JumpByIfFalse"
	case JumpByIfTrue:
		return "JumpByIfTrue"
	case PushProperty:
		return "PushProperty"
	}
	return "Unknown"
}

// Instruction is a small immutable record: an opcode plus whichever
// immediate operand it needs. Only the fields relevant to Op are
// meaningful; the rest are zero.
type Instruction struct {
	Op        Op
	Str       string  // PushString, Call, PushProperty
	Int       int     // PushInteger, PushParameterCount, Reserve, StackValueBPRelative, Parameter, JumpBy*
	Dbl       float64 // PushDouble
	IsCommand bool    // Call, Return
}
