package builtin

import (
	"testing"

	"github.com/uliwitness/nimue/value"
)

func TestConcatJoinsWithNoSeparator(t *testing.T) {
	got := runFunc(t, concat, value.NewString("foo"), value.NewString("bar"))
	if got.Kind() != value.String || got.Equal(value.NewString("foobar")) == false {
		t.Fatalf("expected foobar, got %v", got)
	}
}

func TestConcatWithSpaceInsertsOneSpace(t *testing.T) {
	got := runFunc(t, concatWithSpace, value.NewString("foo"), value.NewString("bar"))
	if !got.Equal(value.NewString("foo bar")) {
		t.Fatalf("expected %q, got %v", "foo bar", got)
	}
}

func TestConcatCoercesIntegers(t *testing.T) {
	got := runFunc(t, concat, value.NewInteger(1), value.NewInteger(2))
	if !got.Equal(value.NewString("12")) {
		t.Fatalf("expected \"12\", got %v", got)
	}
}
