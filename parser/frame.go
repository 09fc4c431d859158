package parser

import (
	"fmt"
	"strings"

	"github.com/uliwitness/nimue/script"
)

// frameState tracks the variable bindings and local count accumulated
// while parsing a single handler body. The "result" local is
// pre-registered at BP+2, ahead of any parameters or user locals.
type frameState struct {
	isCommand   bool
	vars        map[string]script.VariableBinding
	numLocals   int
	synthCount  int
}

func newFrameState(isCommand bool) *frameState {
	fs := &frameState{
		isCommand: isCommand,
		vars:      make(map[string]script.VariableBinding),
	}
	fs.vars["result"] = script.VariableBinding{Kind: script.BindLocal, Index: 2}
	fs.numLocals = 1
	return fs
}

// newLocal allocates a fresh StackValueBPRelative binding for name
// (already lower-cased by the caller) and registers it.
func (fs *frameState) newLocal(name string) script.VariableBinding {
	b := script.VariableBinding{Kind: script.BindLocal, Index: 2 + fs.numLocals}
	fs.vars[name] = b
	fs.numLocals++
	return b
}

// newSyntheticCounter allocates a local under a name no script
// identifier can ever spell (identifiers can't start with '%'), for
// the synthesized counters of `repeat ... times`.
func (fs *frameState) newSyntheticCounter() script.VariableBinding {
	fs.synthCount++
	return fs.newLocal(fmt.Sprintf("%%repeat-counter-%d", fs.synthCount))
}

func (fs *frameState) lookup(name string) (script.VariableBinding, bool) {
	b, ok := fs.vars[strings.ToLower(name)]
	return b, ok
}

// bindingInstr turns a VariableBinding into the instruction that
// pushes it: Parameter(i) for a caller argument, StackValueBPRelative(i)
// for a local.
func bindingInstr(b script.VariableBinding) script.Instruction {
	if b.Kind == script.BindParameter {
		return script.Instruction{Op: script.Parameter, Int: b.Index}
	}
	return script.Instruction{Op: script.StackValueBPRelative, Int: b.Index}
}
