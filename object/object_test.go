package object

import (
	"testing"

	"github.com/uliwitness/nimue/value"
)

func TestPointPropertyRoundTrip(t *testing.T) {
	r := NewRegistry()
	p := r.NewPoint(1, 2)
	x, err := p.GetProperty("x")
	if err != nil || x.DoubleValue() != 1 {
		t.Fatalf("expected x == 1, got %v, %v", x, err)
	}
	if err := p.SetProperty("y", value.NewDouble(5)); err != nil {
		t.Fatalf("set y failed: %s", err)
	}
	y, err := p.GetProperty("y")
	if err != nil || y.DoubleValue() != 5 {
		t.Fatalf("expected y == 5, got %v, %v", y, err)
	}
}

func TestPointIDIsReadOnly(t *testing.T) {
	r := NewRegistry()
	p := r.NewPoint(0, 0)
	if err := p.SetProperty("id", value.NewInteger(99)); err == nil {
		t.Fatal("expected id to be read-only")
	}
}

func TestPointUnknownPropertyFails(t *testing.T) {
	r := NewRegistry()
	p := r.NewPoint(0, 0)
	if _, err := p.GetProperty("z"); err == nil {
		t.Fatal("expected unknown property error")
	}
}

func TestWeakRefFailsAfterForget(t *testing.T) {
	r := NewRegistry()
	p := r.NewPoint(0, 0)
	w := r.Weaken(p)
	if _, ok := w.Resolve(); !ok {
		t.Fatal("expected live weak ref to resolve")
	}
	r.Forget(p.ID())
	if _, ok := w.Resolve(); ok {
		t.Fatal("expected weak ref to fail after Forget")
	}
}
