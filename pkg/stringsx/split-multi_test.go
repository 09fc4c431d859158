package stringsx

import (
	"reflect"
	"testing"
)

func TestSplitSymbolRunSingleChars(t *testing.T) {
	got := SplitSymbolRun("(),", nil)
	want := []string{"(", ")", ","}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitSymbolRunLongestMatch(t *testing.T) {
	got := SplitSymbolRun("<==", []string{"&&", "<=", ">="})
	want := []string{"<=", "="}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitSymbolRunPrefersLongerEvenWhenListedLast(t *testing.T) {
	got := SplitSymbolRun("&&", []string{"&", "&&"})
	want := []string{"&&"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitSymbolRunEveryRunePreserved(t *testing.T) {
	in := "&&<=>=!"
	got := SplitSymbolRun(in, []string{"&&", "<=", ">="})
	joined := ""
	for _, tok := range got {
		joined += tok
	}
	if joined != in {
		t.Fatalf("expected reassembly to equal input, got %q from %q", joined, in)
	}
}
