package builtin

import (
	"github.com/uliwitness/nimue/value"
	"github.com/uliwitness/nimue/vm"
)

func concat(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	a, err := args[0].AsString(ctx)
	if err != nil {
		return err
	}
	b, err := args[1].AsString(ctx)
	if err != nil {
		return err
	}
	ctx.SetResult(value.NewString(a + b))
	return nil
}

func concatWithSpace(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	a, err := args[0].AsString(ctx)
	if err != nil {
		return err
	}
	b, err := args[1].AsString(ctx)
	if err != nil {
		return err
	}
	ctx.SetResult(value.NewString(a + " " + b))
	return nil
}
