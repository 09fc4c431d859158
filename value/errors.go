package value

import "fmt"

// CoercionError is returned by AsInteger, AsDouble and AsBoolean when a
// Value cannot be coerced to the requested primitive.
type CoercionError struct {
	Coercion string // "integer", "number" or "boolean"
	Kind     Kind   // the variant that refused to coerce
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("expected a %s here, found %s", e.Coercion, e.Kind)
}

// BookkeepingAccessError fires when script-level coercion reaches a VM
// frame-bookkeeping cell (InstructionIndex, StackIndex, ParameterCount)
// or a native object where a plain value was expected. The data model
// requires each coercion to fail this way rather than silently produce
// garbage.
type BookkeepingAccessError struct {
	Coercion string
	Kind     Kind
}

func (e *BookkeepingAccessError) Error() string {
	return fmt.Sprintf("internal: attempted to read %s as a %s", e.Kind, e.Coercion)
}

// UnknownPropertyError is returned by PropertyValue/SetProperty for any
// name besides the built-in `length` and whatever a NativeObject knows
// about.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown property %q", e.Name)
}

// ReadOnlyPropertyError is returned by SetProperty for `length`.
type ReadOnlyPropertyError struct {
	Name string
}

func (e *ReadOnlyPropertyError) Error() string {
	return fmt.Sprintf("property %q is read-only", e.Name)
}

// ObjectDoesNotExistError is returned when a WeakNativeObject's target
// has gone away.
type ObjectDoesNotExistError struct{}

func (e *ObjectDoesNotExistError) Error() string {
	return "the native object no longer exists"
}

// ReferenceCycleError guards reference-chain resolution against
// native-object misuse; the parser itself never produces a cycle.
type ReferenceCycleError struct{}

func (e *ReferenceCycleError) Error() string {
	return "reference chain exceeded the maximum walk depth"
}
