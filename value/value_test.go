package value

import "testing"

type fakeStack []Value

func (s fakeStack) At(i int) Value { return s[i] }

func TestNewStringEmptyIsDistinctVariant(t *testing.T) {
	v := NewString("")
	if v.Kind() != Empty {
		t.Fatalf("expected Empty, got %s", v.Kind())
	}
	if NewString("x").Kind() != String {
		t.Fatalf("expected String")
	}
}

func TestAsStringCoercions(t *testing.T) {
	s := fakeStack{}
	cases := []struct {
		v    Value
		want string
	}{
		{NewUnset(), ""},
		{NewString(""), ""},
		{NewString("hi"), "hi"},
		{NewInteger(42), "42"},
		{NewDouble(3.0), "3"},
		{NewDouble(3.5), "3.5"},
		{NewBoolean(true), "true"},
		{NewBoolean(false), "false"},
	}
	for _, c := range cases {
		got, err := c.v.AsString(s)
		if err != nil {
			t.Fatalf("AsString(%v): %v", c.v, err)
		}
		if got != c.want {
			t.Fatalf("AsString(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestAsStringFailsOnBookkeeping(t *testing.T) {
	s := fakeStack{}
	for _, v := range []Value{NewInstructionIndex(1), NewStackIndex(1), NewParameterCount(1)} {
		if _, err := v.AsString(s); err == nil {
			t.Fatalf("expected AsString(%v) to fail", v)
		}
	}
}

func TestAsIntegerMalformedStringIsZero(t *testing.T) {
	s := fakeStack{}
	n, err := NewString("not a number").AsInteger(s)
	if err != nil || n != 0 {
		t.Fatalf("expected (0, nil), got (%d, %v)", n, err)
	}
}

func TestAsIntegerNonIntegralDoubleFails(t *testing.T) {
	s := fakeStack{}
	if _, err := NewDouble(3.5).AsInteger(s); err == nil {
		t.Fatal("expected non-integral double to fail as_integer")
	}
	n, err := NewDouble(3.0).AsInteger(s)
	if err != nil || n != 3 {
		t.Fatalf("expected (3, nil), got (%d, %v)", n, err)
	}
}

func TestAsDoubleEmptyIsZero(t *testing.T) {
	s := fakeStack{}
	f, err := NewString("").AsDouble(s)
	if err != nil || f != 0.0 {
		t.Fatalf("expected (0.0, nil), got (%v, %v)", f, err)
	}
	if _, err := NewUnset().AsDouble(s); err == nil {
		t.Fatal("expected Unset to fail as_double")
	}
}

func TestAsBooleanCaseInsensitive(t *testing.T) {
	s := fakeStack{}
	b, err := NewString("TRUE").AsBoolean(s)
	if err != nil || !b {
		t.Fatalf("expected (true, nil), got (%v, %v)", b, err)
	}
	if _, err := NewInteger(1).AsBoolean(s); err == nil {
		t.Fatal("expected Integer to fail as_boolean")
	}
}

func TestReferenceChainResolves(t *testing.T) {
	s := fakeStack{NewReference(1), NewReference(2), NewString("leaf")}
	got, err := s[0].AsString(s)
	if err != nil || got != "leaf" {
		t.Fatalf("expected (\"leaf\", nil), got (%q, %v)", got, err)
	}
}

func TestLengthProperty(t *testing.T) {
	s := fakeStack{}
	v := NewString("Four")
	got, err := v.PropertyValue("length", s)
	if err != nil {
		t.Fatalf("PropertyValue(length): %v", err)
	}
	if got.Kind() != Integer || got.IntegerValue() != 4 {
		t.Fatalf("expected Integer(4), got %v", got)
	}
}

func TestLengthIsReadOnly(t *testing.T) {
	s := fakeStack{}
	if err := NewString("x").SetProperty("length", NewInteger(1), s); err == nil {
		t.Fatal("expected SetProperty(length) to fail")
	}
}

func TestUnknownProperty(t *testing.T) {
	s := fakeStack{}
	if _, err := NewString("x").PropertyValue("color", s); err == nil {
		t.Fatal("expected unknown property to fail")
	}
}

func TestEqualIsStructuralAndCaseSensitive(t *testing.T) {
	if !NewString("a").Equal(NewString("a")) {
		t.Fatal("expected equal strings to be Equal")
	}
	if NewString("a").Equal(NewString("A")) {
		t.Fatal("expected case-sensitive inequality")
	}
	if NewInteger(1).Equal(NewDouble(1)) {
		t.Fatal("expected different kinds to be unequal")
	}
}
