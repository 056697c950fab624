package interp

import (
	"testing"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/ir"
	"github.com/npillmayer/gll/irgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func build(t *testing.T, g *grammar.Grammar, tags grammar.TagMap) *ir.ParserDefinition {
	t.Helper()
	g.Normalize()
	a := grammar.Analyze(g)
	pd, err := irgen.Build(g, a, tags)
	if err != nil {
		t.Fatalf("irgen.Build: %v", err)
	}
	return pd
}

func assertAccepts(t *testing.T, pd *ir.ParserDefinition, input string) {
	t.Helper()
	if _, err := Parse(pd, input); err != nil {
		t.Errorf("expected %q to be accepted, got error: %v", input, err)
	}
}

func assertRejects(t *testing.T, pd *ir.ParserDefinition, input string) {
	t.Helper()
	if _, err := Parse(pd, input); err == nil {
		t.Errorf("expected %q to be rejected", input)
	}
}

// S1 -- left-recursive accept: S -> 'a' S | 'b' | 'a'.
func TestScenarioLeftRecursiveAccept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.interp")
	defer teardown()
	//
	b := grammar.NewBuilder("S")
	b.LHS("S").Alt().T("a").N("S").End().Alt().T("b").End().Alt().T("a").End()
	pd := build(t, b.Grammar(), nil)

	for _, in := range []string{"b", "a", "ab", "aab", "aaab"} {
		assertAccepts(t, pd, in)
	}
	assertRejects(t, pd, "c")
}

// S2 -- not_follow blocks continuation: S -> 'a' S | 'b' | 'c', tag
// (S,0,1) not_follow {'b'}.
func TestScenarioNotFollowBlocksContinuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.interp")
	defer teardown()
	//
	b := grammar.NewBuilder("S")
	b.LHS("S").Alt().T("a").N("S").End().Alt().T("b").End().Alt().T("c").End()
	g := b.Grammar()
	tags := grammar.NewTagMap()
	tags.Add(grammar.Slot{A: "S", K: 0, J: 1}, grammar.NotFollow, grammar.Lit("b"))
	pd := build(t, g, tags)

	for _, in := range []string{"c", "ac", "aac", "aaac", "b"} {
		assertAccepts(t, pd, in)
	}
	for _, in := range []string{"ab", "aab", "aaab"} {
		assertRejects(t, pd, in)
	}
}

// S3 -- not_precede on a terminal: S -> 'a' S | 'b' | ε, tag
// (S,1,0) not_precede {'a'}.
func TestScenarioNotPrecedeOnTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.interp")
	defer teardown()
	//
	b := grammar.NewBuilder("S")
	b.LHS("S").Alt().T("a").N("S").End().Alt().T("b").End().Alt().Eps().End()
	g := b.Grammar()
	tags := grammar.NewTagMap()
	tags.Add(grammar.Slot{A: "S", K: 1, J: 0}, grammar.NotPrecede, grammar.Lit("a"))
	pd := build(t, g, tags)

	for _, in := range []string{"aaa", "b", "", "a"} {
		assertAccepts(t, pd, in)
	}
	for _, in := range []string{"ab", "aaaab"} {
		assertRejects(t, pd, in)
	}
}

// S4 -- restriction on a nonterminal: S -> 'x' T 'y'; T -> 'a' | 'b' | 'c',
// tag (S,0,1) restriction {'a','b'}.
func TestScenarioRestrictionOnNonterminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.interp")
	defer teardown()
	//
	b := grammar.NewBuilder("S")
	b.LHS("S").Alt().T("x").N("T").T("y").End()
	b.LHS("T").Alt().T("a").End().Alt().T("b").End().Alt().T("c").End()
	g := b.Grammar()
	tags := grammar.NewTagMap()
	tags.Add(grammar.Slot{A: "S", K: 0, J: 1}, grammar.Restriction, grammar.Lit("a"), grammar.Lit("b"))
	pd := build(t, g, tags)

	assertAccepts(t, pd, "xcy")
	assertRejects(t, pd, "xay")
	assertRejects(t, pd, "xby")
}

// S5 -- ambiguity sharing: S -> S S | 'a'. Input "aaa" has two derivations;
// the resulting SPPF root must have exactly two packed children.
func TestScenarioAmbiguitySharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.interp")
	defer teardown()
	//
	b := grammar.NewBuilder("S")
	b.LHS("S").Alt().N("S").N("S").End().Alt().T("a").End()
	pd := build(t, b.Grammar(), nil)

	root, err := Parse(pd, "aaa")
	if err != nil {
		t.Fatalf("expected \"aaa\" to be accepted, got error: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 packed children from ambiguity sharing, got %d", len(root.Children))
	}
}

// S6 -- nullable alternation: S -> A S 'd' | ε; A -> 'a' | 'c'.
func TestScenarioNullableAlternation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.interp")
	defer teardown()
	//
	b := grammar.NewBuilder("S")
	b.LHS("S").Alt().N("A").N("S").T("d").End().Alt().Eps().End()
	b.LHS("A").Alt().T("a").End().Alt().T("c").End()
	pd := build(t, b.Grammar(), nil)

	for _, in := range []string{"", "ad", "cd", "acdd", "cadd"} {
		assertAccepts(t, pd, in)
	}
}
