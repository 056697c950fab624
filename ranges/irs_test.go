package ranges

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var ascii = Range{0, 127}

func TestUnionCommutative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.ranges")
	defer teardown()
	//
	a := NewSet(ascii, Range{10, 20})
	b := NewSet(ascii, Range{15, 30})
	if !a.Union(b).Equal(b.Union(a)) {
		t.Fatalf("union is not commutative")
	}
}

func TestComplementOfComplement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.ranges")
	defer teardown()
	//
	a := NewSet(ascii, Range{10, 20}, Range{40, 45})
	if !a.Complement().Complement().Equal(a) {
		t.Fatalf("double complement changed the set")
	}
}

func TestIntersectWithComplementIsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.ranges")
	defer teardown()
	//
	a := NewSet(ascii, Range{10, 20})
	if !a.Intersection(a.Complement()).IsEmpty() {
		t.Fatalf("A ∩ ¬A should be empty")
	}
}

func TestDifferenceIsIntersectionWithComplement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.ranges")
	defer teardown()
	//
	a := NewSet(ascii, Range{0, 30})
	b := NewSet(ascii, Range{10, 20})
	if !a.Difference(b).Equal(a.Intersection(b.Complement())) {
		t.Fatalf("A \\ B != A ∩ ¬B")
	}
}

func TestCanonicalFormCoalescesAdjacentRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.ranges")
	defer teardown()
	//
	a := NewSet(ascii, Range{0, 9}, Range{10, 20})
	if len(a.Ranges()) != 1 {
		t.Fatalf("expected adjacent ranges to coalesce, got %v", a.Ranges())
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.ranges")
	defer teardown()
	//
	a := NewSet(ascii, Range{10, 20}, Range{40, 45})
	if !a.Contains(15) || a.Contains(25) || !a.Contains(40) {
		t.Fatalf("Contains gave wrong answer for %v", a)
	}
}
