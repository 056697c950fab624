package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// G: S -> 'a' S | 'b' | 'a'   (scenario S1 from the parsing-core test suite)
func leftRecursiveGrammar() *Grammar {
	g := NewBuilder("S").
		LHS("S").
		Alt().T("a").N("S").End().
		Alt().T("b").End().
		Alt().T("a").End().
		Grammar()
	return g
}

func TestValidateAcceptsWellFormedGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	g := leftRecursiveGrammar()
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateRejectsUndefinedNonterminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	g := NewBuilder("S").LHS("S").Alt().N("Undefined").End().Grammar()
	if err := g.Validate(); err == nil {
		t.Fatalf("expected a grammar error for an undefined nonterminal")
	}
}

func TestNullableFixedPoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	// S -> A S 'd' | ε ; A -> 'a' | 'c'   (scenario S6)
	g := NewBuilder("S").
		LHS("S").Alt().N("A").N("S").T("d").End().Alt().Eps().End().
		LHS("A").Alt().T("a").End().Alt().T("c").End().
		Grammar()
	a := Analyze(g.Normalize())
	if !a.Nullable("S") {
		t.Fatalf("S should be nullable")
	}
	if a.Nullable("A") {
		t.Fatalf("A should not be nullable")
	}
}

func TestFirstOfLeftRecursiveGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	g := leftRecursiveGrammar().Normalize()
	a := Analyze(g)
	first := a.First("S")
	if !first[Lit("a")] || !first[Lit("b")] {
		t.Fatalf("FIRST(S) should contain 'a' and 'b', got %v", first)
	}
}

func TestGLLBlockSegmentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	// alternative: 'a' S  -- terminal then nonterminal: one block, plus the
	// synthetic empty tail block
	alt := Alternative{T(Lit("a")), N("S")}
	blocks := SegmentBlocks(alt)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks (body + synthetic tail), got %d: %v", len(blocks), blocks)
	}
	if blocks[0].Start != 0 || blocks[0].End != 2 || !blocks[0].EndsInNonterm {
		t.Fatalf("unexpected first block: %v", blocks[0])
	}
	if blocks[1].Start != 2 || blocks[1].End != 2 {
		t.Fatalf("expected synthetic empty tail block at position 2, got %v", blocks[1])
	}
}

func TestGLLBlockSegmentationTailOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	alt := Alternative{T(Lit("b"))}
	blocks := SegmentBlocks(alt)
	if len(blocks) != 1 || blocks[0].EndsInNonterm {
		t.Fatalf("expected a single tail block, got %v", blocks)
	}
}

func TestTestSetForNullOnlySuffixCollapsesToEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	g := NewBuilder("S").LHS("S").Alt().Eps().End().Grammar().Normalize()
	a := Analyze(g)
	ts := a.TestSet("S", 0, 0)
	if !ts[Empty()] {
		t.Fatalf("expected {Empty} test set for a null-only alternative, got %v", ts)
	}
}

func TestReachableNonterminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	g := NewBuilder("S").
		LHS("S").Alt().T("a").End().
		LHS("Unused").Alt().T("z").End().
		Grammar()
	reach := g.ReachableNonterminals()
	if !reach["S"] || reach["Unused"] {
		t.Fatalf("unexpected reachability set: %v", reach)
	}
	g.Compress()
	if _, ok := g.Rules["Unused"]; ok {
		t.Fatalf("Compress should have dropped the unreachable nonterminal")
	}
}

func TestSortTerminalsIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.grammar")
	defer teardown()
	//
	set := map[Terminal]bool{Lit("b"): true, Lit("a"): true, Empty(): true}
	first := SortTerminals(set)
	for i := 0; i < 5; i++ {
		if got := SortTerminals(set); !equalTerminalSlices(got, first) {
			t.Fatalf("SortTerminals is not deterministic: %v vs %v", got, first)
		}
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 sorted terminals, got %d: %v", len(first), first)
	}
}

func equalTerminalSlices(a, b []Terminal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
