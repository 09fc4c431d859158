package builtin_test

import (
	"strings"
	"testing"

	"github.com/uliwitness/nimue/builtin"
	"github.com/uliwitness/nimue/lexer"
	"github.com/uliwitness/nimue/object"
	"github.com/uliwitness/nimue/parser"
	"github.com/uliwitness/nimue/vm"
)

func runScript(t *testing.T, source string) string {
	t.Helper()
	z := lexer.New()
	z.AddTokens(source, "test")
	scr, err := parser.New(z.Tokens()).Parse()
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	var buf strings.Builder
	ctx := vm.NewRunContext(scr)
	builtin.Register(ctx, &buf, object.NewRegistry())
	if _, err := ctx.Run("main", true, nil); err != nil {
		t.Fatalf("run error: %s", err)
	}
	return buf.String()
}

func TestPutIntoVariable(t *testing.T) {
	src := "on main\n" +
		"put 42 into x\n" +
		"output x\n" +
		"end main"
	if got := runScript(t, src); got != "42\n" {
		t.Fatalf("got %q", got)
	}
}

func TestAddToVariable(t *testing.T) {
	src := "on main\n" +
		"put 1 into x\n" +
		"add 4 to x\n" +
		"output x\n" +
		"end main"
	if got := runScript(t, src); got != "5\n" {
		t.Fatalf("got %q", got)
	}
}

func TestSubtractFromVariable(t *testing.T) {
	src := "on main\n" +
		"put 10 into x\n" +
		"subtract 3 from x\n" +
		"output x\n" +
		"end main"
	if got := runScript(t, src); got != "7\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPutIntoFreshLocalAutovivifies(t *testing.T) {
	src := "on main\n" +
		"put \"hi\" into newVar\n" +
		"output newVar\n" +
		"end main"
	if got := runScript(t, src); got != "hi\n" {
		t.Fatalf("got %q", got)
	}
}
