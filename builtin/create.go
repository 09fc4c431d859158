package builtin

import (
	"fmt"

	"github.com/uliwitness/nimue/object"
	"github.com/uliwitness/nimue/value"
	"github.com/uliwitness/nimue/vm"
)

// UnknownObjectKindError fires when `create` is asked for a kind this
// host's registry doesn't know how to make.
type UnknownObjectKindError struct {
	Kind string
}

func (e *UnknownObjectKindError) Error() string {
	return fmt.Sprintf("don't know how to create a %q", e.Kind)
}

// NewCreate builds the `create` command over registry: `create point`
// makes one at the origin, `create point 3` makes one at x=3, y=0. It
// exists to exercise value.NativeObject through the language, not as a
// real object model.
func NewCreate(registry *object.Registry) vm.NativeFunc {
	return func(args []value.Value, ctx *vm.RunContext) error {
		if len(args) < 1 {
			return &vm.TooFewOperandsError{Want: 1, Got: len(args)}
		}
		if len(args) > 2 {
			return &vm.TooManyOperandsError{Want: 2, Got: len(args)}
		}
		kind, err := args[0].AsString(ctx)
		if err != nil {
			return err
		}
		if kind != "point" {
			return &UnknownObjectKindError{Kind: kind}
		}
		var x float64
		if len(args) == 2 {
			x, err = args[1].AsDouble(ctx)
			if err != nil {
				return err
			}
		}
		p := registry.NewPoint(x, 0)
		ctx.SetResult(value.NewNativeObject(p))
		return nil
	}
}
