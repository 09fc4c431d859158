package builtin

import (
	"math"
	"strconv"
	"strings"

	"github.com/uliwitness/nimue/value"
	"github.com/uliwitness/nimue/vm"
)

const equalityTolerance = 1e-5

// compare orders two values the way the comparison operators share:
// integer if both round-trip as integers, else double within
// equalityTolerance, else lexicographic string comparison.
func compare(a, b value.Value, ctx *vm.RunContext) (int, error) {
	// AsInteger and AsDouble read a malformed string as 0, so a string
	// operand takes a numeric path only if it parses as that kind.
	parses := func(v value.Value, parse func(string) error) bool {
		r, _ := v.Resolve(ctx)
		s, _ := r.AsString(ctx)
		return r.Kind() != value.String || parse(strings.TrimSpace(s)) == nil
	}
	isInt := func(s string) error { _, err := strconv.ParseInt(s, 10, 64); return err }
	isNum := func(s string) error { _, err := strconv.ParseFloat(s, 64); return err }
	if ai, aerr := a.AsInteger(ctx); aerr == nil && parses(a, isInt) {
		if bi, berr := b.AsInteger(ctx); berr == nil && parses(b, isInt) {
			switch {
			case ai < bi:
				return -1, nil
			case ai > bi:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if af, aerr := a.AsDouble(ctx); aerr == nil && parses(a, isNum) {
		if bf, berr := b.AsDouble(ctx); berr == nil && parses(b, isNum) {
			if math.Abs(af-bf) < equalityTolerance {
				return 0, nil
			}
			if af < bf {
				return -1, nil
			}
			return 1, nil
		}
	}
	as, err := a.AsString(ctx)
	if err != nil {
		return 0, err
	}
	bs, err := b.AsString(ctx)
	if err != nil {
		return 0, err
	}
	return strings.Compare(as, bs), nil
}

func comparisonOp(cmp func(int) bool) vm.NativeFunc {
	return func(args []value.Value, ctx *vm.RunContext) error {
		if err := checkArity(args, 2); err != nil {
			return err
		}
		c, err := compare(args[0], args[1], ctx)
		if err != nil {
			return err
		}
		ctx.SetResult(value.NewBoolean(cmp(c)))
		return nil
	}
}

var (
	lessThan       = comparisonOp(func(c int) bool { return c < 0 })
	greaterThan    = comparisonOp(func(c int) bool { return c > 0 })
	lessOrEqual    = comparisonOp(func(c int) bool { return c <= 0 })
	greaterOrEqual = comparisonOp(func(c int) bool { return c >= 0 })
	equal          = comparisonOp(func(c int) bool { return c == 0 })
	notEqual       = comparisonOp(func(c int) bool { return c != 0 })
)
