// Package builtin is the host's library of concrete command and
// function handlers: arithmetic, comparison, and concatenation
// operators, plus the illustrative output/put/add/subtract/create
// commands. Nothing here is part of the language core; a host is free
// to register its own set instead, or alongside these.
package builtin

import (
	"github.com/uliwitness/nimue/value"
	"github.com/uliwitness/nimue/vm"
)

func checkArity(args []value.Value, n int) error {
	if len(args) < n {
		return &vm.TooFewOperandsError{Want: n, Got: len(args)}
	}
	if len(args) > n {
		return &vm.TooManyOperandsError{Want: n, Got: len(args)}
	}
	return nil
}

// numericPair coerces both operands the same way arithmetic does
// throughout: integer if both round-trip as integers, else double.
func numericPair(a, b value.Value, ctx *vm.RunContext) (ai, bi int64, af, bf float64, isInt bool, err error) {
	ai, aerr := a.AsInteger(ctx)
	bi, berr := b.AsInteger(ctx)
	if aerr == nil && berr == nil {
		return ai, bi, 0, 0, true, nil
	}
	af, aerr = a.AsDouble(ctx)
	bf, berr = b.AsDouble(ctx)
	if aerr != nil {
		return 0, 0, 0, 0, false, aerr
	}
	if berr != nil {
		return 0, 0, 0, 0, false, berr
	}
	return 0, 0, af, bf, false, nil
}

func add(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	ai, bi, af, bf, isInt, err := numericPair(args[0], args[1], ctx)
	if err != nil {
		return err
	}
	if isInt {
		ctx.SetResult(value.NewInteger(ai + bi))
	} else {
		ctx.SetResult(value.NewDouble(af + bf))
	}
	return nil
}

func subtract(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	ai, bi, af, bf, isInt, err := numericPair(args[0], args[1], ctx)
	if err != nil {
		return err
	}
	if isInt {
		ctx.SetResult(value.NewInteger(ai - bi))
	} else {
		ctx.SetResult(value.NewDouble(af - bf))
	}
	return nil
}

func multiply(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	ai, bi, af, bf, isInt, err := numericPair(args[0], args[1], ctx)
	if err != nil {
		return err
	}
	if isInt {
		ctx.SetResult(value.NewInteger(ai * bi))
	} else {
		ctx.SetResult(value.NewDouble(af * bf))
	}
	return nil
}

func divide(args []value.Value, ctx *vm.RunContext) error {
	if err := checkArity(args, 2); err != nil {
		return err
	}
	ai, bi, af, bf, isInt, err := numericPair(args[0], args[1], ctx)
	if err != nil {
		return err
	}
	if isInt {
		if bi == 0 {
			return &vm.ZeroDivisionError{}
		}
		if ai%bi == 0 {
			ctx.SetResult(value.NewInteger(ai / bi))
		} else {
			ctx.SetResult(value.NewDouble(float64(ai) / float64(bi)))
		}
		return nil
	}
	if bf == 0 {
		return &vm.ZeroDivisionError{}
	}
	ctx.SetResult(value.NewDouble(af / bf))
	return nil
}
