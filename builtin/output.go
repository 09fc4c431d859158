package builtin

import (
	"fmt"
	"io"

	"github.com/uliwitness/nimue/value"
	"github.com/uliwitness/nimue/vm"
)

// NewOutput builds the `output` command: it writes its one argument's
// string form plus a trailing newline to w. A host wanting a captured
// buffer for tests passes a *bytes.Buffer or strings.Builder here.
func NewOutput(w io.Writer) vm.NativeFunc {
	return func(args []value.Value, ctx *vm.RunContext) error {
		if err := checkArity(args, 1); err != nil {
			return err
		}
		s, err := args[0].AsString(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", s)
		return err
	}
}
