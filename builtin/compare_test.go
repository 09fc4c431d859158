package builtin

import (
	"testing"

	"github.com/uliwitness/nimue/value"
)

func TestCompareIntegersOrderNumerically(t *testing.T) {
	got := runFunc(t, lessThan, value.NewInteger(2), value.NewInteger(10))
	if got.Kind() != value.Boolean || !got.BooleanValue() {
		t.Fatalf("expected 2 < 10, got %v", got)
	}
}

func TestCompareStringsFallBackToLexicographic(t *testing.T) {
	got := runFunc(t, lessThan, value.NewString("apple"), value.NewString("banana"))
	if got.Kind() != value.Boolean || !got.BooleanValue() {
		t.Fatalf("expected apple < banana, got %v", got)
	}
}

func TestCompareDoublesWithinToleranceAreEqual(t *testing.T) {
	got := runFunc(t, equal, value.NewDouble(1.0), value.NewDouble(1.0+equalityTolerance/2))
	if got.Kind() != value.Boolean || !got.BooleanValue() {
		t.Fatalf("expected near-equal doubles to compare equal, got %v", got)
	}
}

func TestNotEqual(t *testing.T) {
	got := runFunc(t, notEqual, value.NewInteger(1), value.NewInteger(2))
	if got.Kind() != value.Boolean || !got.BooleanValue() {
		t.Fatalf("expected 1 != 2, got %v", got)
	}
}

func TestLessOrEqualAndGreaterOrEqualAtBoundary(t *testing.T) {
	le := runFunc(t, lessOrEqual, value.NewInteger(5), value.NewInteger(5))
	if !le.BooleanValue() {
		t.Fatalf("expected 5 <= 5, got %v", le)
	}
	ge := runFunc(t, greaterOrEqual, value.NewInteger(5), value.NewInteger(5))
	if !ge.BooleanValue() {
		t.Fatalf("expected 5 >= 5, got %v", ge)
	}
}

func TestGreaterThan(t *testing.T) {
	got := runFunc(t, greaterThan, value.NewInteger(10), value.NewInteger(2))
	if !got.BooleanValue() {
		t.Fatalf("expected 10 > 2, got %v", got)
	}
}
