package relation

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTransitiveClosureChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.relation")
	defer teardown()
	//
	r := New(Pair[string]{"a", "b"}, Pair[string]{"b", "c"}, Pair[string]{"c", "d"})
	tc := r.TransitiveClosure()
	if !tc.Has("a", "d") {
		t.Fatalf("expected transitive closure to relate a to d")
	}
	if !tc.Has("a", "c") || !tc.Has("b", "d") {
		t.Fatalf("transitive closure missing intermediate pairs")
	}
}

func TestReflexiveClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.relation")
	defer teardown()
	//
	r := New(Pair[int]{1, 2}).ReflexiveClosure()
	if !r.Has(1, 1) || !r.Has(2, 2) {
		t.Fatalf("reflexive closure missing self-pairs")
	}
}

func TestSymmetricClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.relation")
	defer teardown()
	//
	r := New(Pair[int]{1, 2}).SymmetricClosure()
	if !r.Has(2, 1) {
		t.Fatalf("symmetric closure missing mirrored pair")
	}
}
