package parser_test

import (
	"testing"

	"github.com/uliwitness/nimue/lexer"
	"github.com/uliwitness/nimue/parser"
	"github.com/uliwitness/nimue/script"
)

func parse(t *testing.T, source string) *script.Script {
	t.Helper()
	z := lexer.New()
	z.AddTokens(source, "test")
	scr, err := parser.New(z.Tokens()).Parse()
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	return scr
}

func TestOnRegistersCommandNotFunction(t *testing.T) {
	scr := parse(t, "on main\nend main")
	if _, ok := scr.Commands["main"]; !ok {
		t.Fatal("expected main registered as a command")
	}
	if _, ok := scr.Functions["main"]; ok {
		t.Fatal("did not expect main registered as a function")
	}
}

func TestFunctionRegistersFunctionNotCommand(t *testing.T) {
	scr := parse(t, "function double x\nreturn x\nend double")
	if _, ok := scr.Functions["double"]; !ok {
		t.Fatal("expected double registered as a function")
	}
	if _, ok := scr.Commands["double"]; ok {
		t.Fatal("did not expect double registered as a command")
	}
}

func TestCommandsAndFunctionsAreDisjointNamespaces(t *testing.T) {
	scr := parse(t, "on go\nend go\nfunction go\nreturn 1\nend go")
	if _, ok := scr.Commands["go"]; !ok {
		t.Fatal("expected command go")
	}
	if _, ok := scr.Functions["go"]; !ok {
		t.Fatal("expected function go")
	}
}

func TestParameterBindingsAreOneIndexed(t *testing.T) {
	scr := parse(t, "on greet a, b\nend greet")
	frame := scr.Commands["greet"]
	if frame.Variables["a"].Kind != script.BindParameter || frame.Variables["a"].Index != 1 {
		t.Fatalf("expected a bound to Parameter(1), got %+v", frame.Variables["a"])
	}
	if frame.Variables["b"].Kind != script.BindParameter || frame.Variables["b"].Index != 2 {
		t.Fatalf("expected b bound to Parameter(2), got %+v", frame.Variables["b"])
	}
}

func TestHandlerNameLookupIsCaseInsensitive(t *testing.T) {
	scr := parse(t, "on Main\nend Main")
	if _, ok := scr.Commands["main"]; !ok {
		t.Fatal("expected handler name folded to lowercase")
	}
}

func TestPutIntoNewNameAutovivifiesLocal(t *testing.T) {
	scr := parse(t, "on main\nput 1 into x\nend main")
	frame := scr.Commands["main"]
	if frame.NumLocals < 2 {
		t.Fatalf("expected a local reserved for x beside result, got %d", frame.NumLocals)
	}
	if _, ok := frame.Variables["x"]; !ok {
		t.Fatal("expected x to be a known local binding")
	}
}

func TestEmptyHandlerEndsInPushUnsetReturn(t *testing.T) {
	scr := parse(t, "on main\nend main")
	frame := scr.Commands["main"]
	n := len(scr.Instructions)
	last := scr.Instructions[n-1]
	secondToLast := scr.Instructions[n-2]
	if last.Op != script.Return || !last.IsCommand {
		t.Fatalf("expected trailing command Return, got %+v", last)
	}
	if secondToLast.Op != script.PushUnset {
		t.Fatalf("expected PushUnset before Return, got %+v", secondToLast)
	}
	if scr.Instructions[frame.FirstInstruction].Op != script.Reserve {
		t.Fatalf("expected frame to begin with Reserve, got %+v", scr.Instructions[frame.FirstInstruction])
	}
}

func TestBinaryOperatorEmitsArgumentsInReverseSourceOrder(t *testing.T) {
	scr := parse(t, "on main\nput 1 + 2 into x\nend main")
	frame := scr.Commands["main"]
	var pushes []int
	for i := frame.FirstInstruction; i < len(scr.Instructions); i++ {
		instr := scr.Instructions[i]
		if instr.Op == script.PushInteger {
			pushes = append(pushes, instr.Int)
		}
		if instr.Op == script.Call {
			break
		}
	}
	if len(pushes) != 2 || pushes[0] != 2 || pushes[1] != 1 {
		t.Fatalf("expected operands pushed as [2, 1] (reverse source order), got %v", pushes)
	}
}

func TestFunctionCallCompilesToNonCommandCall(t *testing.T) {
	scr := parse(t, "on main\nput quoted(1) into x\nend main")
	frame := scr.Commands["main"]
	found := false
	for i := frame.FirstInstruction; i < len(scr.Instructions); i++ {
		instr := scr.Instructions[i]
		if instr.Op == script.Call && instr.Str == "quoted" {
			found = true
			if instr.IsCommand {
				t.Fatal("expected a function call, got IsCommand true")
			}
		}
	}
	if !found {
		t.Fatal("expected a Call instruction targeting quoted")
	}
}
