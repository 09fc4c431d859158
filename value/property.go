package value

// PropertyValue implements property_value: a NativeObject delegates to
// its own GetProperty; otherwise the only recognized property is the
// read-only `length` of the Value's string form; anything else fails
// with UnknownPropertyError.
func (v Value) PropertyValue(name string, stack Stack) (Value, error) {
	if obj, err, handled := v.nativeFor(stack); handled {
		if err != nil {
			return Value{}, err
		}
		return obj.GetProperty(name)
	}
	if name == "length" {
		s, err := v.AsString(stack)
		if err != nil {
			return Value{}, err
		}
		return NewInteger(int64(len([]rune(s)))), nil
	}
	return Value{}, &UnknownPropertyError{Name: name}
}

// SetProperty implements set_property: a NativeObject delegates to its
// own SetProperty; `length` is read-only; anything else fails with
// UnknownPropertyError.
func (v Value) SetProperty(name string, newValue Value, stack Stack) error {
	if obj, err, handled := v.nativeFor(stack); handled {
		if err != nil {
			return err
		}
		return obj.SetProperty(name, newValue)
	}
	if name == "length" {
		return &ReadOnlyPropertyError{Name: name}
	}
	return &UnknownPropertyError{Name: name}
}

// nativeFor resolves v (through any Reference chain) to a NativeObject
// if it names one. handled is true when v is Native or WeakNative, in
// which case err carries ObjectDoesNotExistError for a dead weak ref.
func (v Value) nativeFor(stack Stack) (obj NativeObject, err error, handled bool) {
	r, rerr := v.resolve(stack)
	if rerr != nil {
		return nil, rerr, true
	}
	switch r.kind {
	case Native:
		return r.obj, nil, true
	case WeakNative:
		o, ok := r.weak.Resolve()
		if !ok {
			return nil, &ObjectDoesNotExistError{}, true
		}
		return o, nil, true
	default:
		return nil, nil, false
	}
}
