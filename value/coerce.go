package value

import (
	"math"
	"strconv"
	"strings"
)

// maxReferenceWalk bounds reference-chain resolution. The parser never
// produces a cycle; this guards only against native-object misuse.
const maxReferenceWalk = 1000

// resolve follows a Reference chain to the Value it ultimately names,
// or returns v itself if it isn't a Reference.
func (v Value) resolve(stack Stack) (Value, error) {
	cur := v
	for i := 0; i < maxReferenceWalk; i++ {
		if cur.kind != Reference {
			return cur, nil
		}
		cur = stack.At(int(cur.i))
	}
	return Value{}, &ReferenceCycleError{}
}

// Resolve follows a Reference chain (if any) and returns the concrete
// value it ultimately names, preserving its Kind. Unlike AsString/
// AsInteger/AsDouble/AsBoolean, this never coerces between variants —
// it's what Call, Return, and put/add/subtract use to copy a value
// into a new slot without losing its type.
func (v Value) Resolve(stack Stack) (Value, error) {
	return v.resolve(stack)
}

// ReferenceIndex reports the ultimate stack index a Reference chain
// points at, resolving through any intermediate References. ok is
// false if v is not a Reference at all.
func (v Value) ReferenceIndex(stack Stack) (index int, ok bool, err error) {
	if v.kind != Reference {
		return 0, false, nil
	}
	cur := v
	for i := 0; i < maxReferenceWalk; i++ {
		next := stack.At(int(cur.i))
		if next.kind != Reference {
			return int(cur.i), true, nil
		}
		cur = next
	}
	return 0, false, &ReferenceCycleError{}
}

// AsString implements the as_string coercion: Unset/Empty become "";
// Integer becomes its decimal form; Double becomes its decimal form,
// trimmed to integer form when exactly integral; Boolean becomes
// "true"/"false"; References resolve recursively. Bookkeeping and
// native variants fail.
func (v Value) AsString(stack Stack) (string, error) {
	r, err := v.resolve(stack)
	if err != nil {
		return "", err
	}
	switch r.kind {
	case Unset, Empty:
		return "", nil
	case String:
		return r.str, nil
	case Integer:
		return strconv.FormatInt(r.i, 10), nil
	case Double:
		return trimIntegralDouble(r.f), nil
	case Boolean:
		return strconv.FormatBool(r.b), nil
	default:
		return "", &BookkeepingAccessError{Coercion: "string", Kind: r.kind}
	}
}

// AsInteger implements as_integer: Unset/Empty fail; String parses or
// yields 0 on malformed input; Double round-trips only if exactly
// integral; Boolean fails; References resolve recursively.
func (v Value) AsInteger(stack Stack) (int64, error) {
	r, err := v.resolve(stack)
	if err != nil {
		return 0, err
	}
	switch r.kind {
	case Unset, Empty:
		return 0, &CoercionError{Coercion: "integer", Kind: r.kind}
	case Integer:
		return r.i, nil
	case String:
		n, err := strconv.ParseInt(strings.TrimSpace(r.str), 10, 64)
		if err != nil {
			return 0, nil
		}
		return n, nil
	case Double:
		if r.f != math.Trunc(r.f) || math.IsInf(r.f, 0) {
			return 0, &CoercionError{Coercion: "integer", Kind: r.kind}
		}
		return int64(r.f), nil
	case Boolean:
		return 0, &CoercionError{Coercion: "integer", Kind: r.kind}
	default:
		return 0, &BookkeepingAccessError{Coercion: "integer", Kind: r.kind}
	}
}

// AsDouble implements as_double: Unset fails; Empty is 0.0; String
// parses or yields 0.0; Boolean fails; References resolve recursively.
func (v Value) AsDouble(stack Stack) (float64, error) {
	r, err := v.resolve(stack)
	if err != nil {
		return 0, err
	}
	switch r.kind {
	case Unset:
		return 0, &CoercionError{Coercion: "number", Kind: r.kind}
	case Empty:
		return 0, nil
	case Integer:
		return float64(r.i), nil
	case Double:
		return r.f, nil
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.str), 64)
		if err != nil {
			return 0, nil
		}
		return f, nil
	case Boolean:
		return 0, &CoercionError{Coercion: "number", Kind: r.kind}
	default:
		return 0, &BookkeepingAccessError{Coercion: "number", Kind: r.kind}
	}
}

// AsBoolean implements as_boolean: only an actual Boolean, a
// case-insensitive "true"/"false" string, or a resolved Reference to
// one of those, succeeds.
func (v Value) AsBoolean(stack Stack) (bool, error) {
	r, err := v.resolve(stack)
	if err != nil {
		return false, err
	}
	switch r.kind {
	case Boolean:
		return r.b, nil
	case String:
		switch strings.ToLower(r.str) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, &CoercionError{Coercion: "boolean", Kind: r.kind}
	case InstructionIndex, StackIndex, ParameterCount, Native, WeakNative:
		return false, &BookkeepingAccessError{Coercion: "boolean", Kind: r.kind}
	default:
		return false, &CoercionError{Coercion: "boolean", Kind: r.kind}
	}
}
