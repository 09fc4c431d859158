package builtin

import (
	"io"

	"github.com/uliwitness/nimue/object"
	"github.com/uliwitness/nimue/vm"
)

// Register wires this package's whole illustrative library into ctx:
// arithmetic, comparison and concatenation operators in the function
// namespace, output/put/add/subtract/create in the command namespace.
// output writes to w; create allocates through registry.
func Register(ctx *vm.RunContext, w io.Writer, registry *object.Registry) {
	ctx.RegisterFunction("+", add)
	ctx.RegisterFunction("-", subtract)
	ctx.RegisterFunction("*", multiply)
	ctx.RegisterFunction("/", divide)
	ctx.RegisterFunction("<", lessThan)
	ctx.RegisterFunction(">", greaterThan)
	ctx.RegisterFunction("<=", lessOrEqual)
	ctx.RegisterFunction(">=", greaterOrEqual)
	ctx.RegisterFunction("=", equal)
	ctx.RegisterFunction("≠", notEqual)
	ctx.RegisterFunction("&", concat)
	ctx.RegisterFunction("&&", concatWithSpace)

	ctx.RegisterCommand("output", NewOutput(w))
	ctx.RegisterCommand("put", put)
	ctx.RegisterCommand("add", addTo)
	ctx.RegisterCommand("subtract", subtractFrom)
	ctx.RegisterCommand("create", NewCreate(registry))
}
