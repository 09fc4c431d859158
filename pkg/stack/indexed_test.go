package stack

import "testing"

func TestLenAtSet(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Len() != 3 {
		t.Fatalf("expected len 3, got %d", s.Len())
	}
	if s.At(1) != 2 {
		t.Fatalf("expected At(1) == 2, got %d", s.At(1))
	}
	if s.At(99) != 0 {
		t.Fatalf("expected out-of-range At to be zero value, got %d", s.At(99))
	}
	s.Set(1, 20)
	if s.At(1) != 20 {
		t.Fatalf("expected At(1) == 20 after Set, got %d", s.At(1))
	}
	s.Set(99, 1) // no-op
}

func TestTruncate(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	s.Truncate(1)
	if s.Len() != 1 || s.At(0) != 1 {
		t.Fatalf("expected [1] after truncate, got len %d", s.Len())
	}
	s.Truncate(50) // no-op, n >= Len()
	if s.Len() != 1 {
		t.Fatalf("expected truncate past end to be a no-op")
	}
}
