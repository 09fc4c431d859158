package builtin

import (
	"strings"
	"testing"

	"github.com/uliwitness/nimue/value"
	"github.com/uliwitness/nimue/vm"
)

func TestOutputWritesStringPlusNewline(t *testing.T) {
	var buf strings.Builder
	ctx := vm.NewRunContext(nil)
	ctx.RegisterCommand("output", NewOutput(&buf))
	if _, err := ctx.Run("output", true, []value.Value{value.NewString("hello")}); err != nil {
		t.Fatalf("output failed: %s", err)
	}
	if buf.String() != "hello\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestOutputCoercesNonStringArgument(t *testing.T) {
	var buf strings.Builder
	ctx := vm.NewRunContext(nil)
	ctx.RegisterCommand("output", NewOutput(&buf))
	if _, err := ctx.Run("output", true, []value.Value{value.NewInteger(7)}); err != nil {
		t.Fatalf("output failed: %s", err)
	}
	if buf.String() != "7\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestOutputRejectsWrongArity(t *testing.T) {
	var buf strings.Builder
	ctx := vm.NewRunContext(nil)
	ctx.RegisterCommand("output", NewOutput(&buf))
	if _, err := ctx.Run("output", true, nil); err == nil {
		t.Fatal("expected arity error with no arguments")
	}
}
