package builtin

import (
	"github.com/uliwitness/nimue/value"
	"github.com/uliwitness/nimue/vm"
)

// destinationIndex resolves a put/add/subtract container argument to
// the stack slot it names, failing InvalidPutDestination for anything
// that isn't a Reference (the only container shape the codegen ever
// produces for a bound variable or a newly autovivified local).
func destinationIndex(dest value.Value, ctx *vm.RunContext) (int, error) {
	idx, ok, err := dest.ReferenceIndex(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &vm.InvalidPutDestinationError{}
	}
	return idx, nil
}

func put(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	idx, err := destinationIndex(args[1], ctx)
	if err != nil {
		return err
	}
	v, err := args[0].Resolve(ctx)
	if err != nil {
		return err
	}
	ctx.SetAt(idx, v)
	return nil
}

func addTo(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	idx, err := destinationIndex(args[1], ctx)
	if err != nil {
		return err
	}
	ai, bi, af, bf, isInt, err := numericPair(args[0], ctx.At(idx), ctx)
	if err != nil {
		return err
	}
	if isInt {
		ctx.SetAt(idx, value.NewInteger(bi+ai))
	} else {
		ctx.SetAt(idx, value.NewDouble(bf+af))
	}
	return nil
}

func subtractFrom(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	idx, err := destinationIndex(args[1], ctx)
	if err != nil {
		return err
	}
	ai, bi, af, bf, isInt, err := numericPair(args[0], ctx.At(idx), ctx)
	if err != nil {
		return err
	}
	if isInt {
		ctx.SetAt(idx, value.NewInteger(bi-ai))
	} else {
		ctx.SetAt(idx, value.NewDouble(bf-af))
	}
	return nil
}
