package engine

import (
	"testing"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/sppf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// literalDispatcher implements Dispatcher for a tiny hand-built grammar
// S -> 'a' 'b', exercising Add/Create/Pop/NodeT without going through the
// IR/interpreter layers.
type literalDispatcher struct{}

var (
	sStart  = grammar.Slot{A: "S", K: -1, J: -1}
	sAlt0P0 = grammar.Slot{A: "S", K: 0, J: 0}
	sAlt0P1 = grammar.Slot{A: "S", K: 0, J: 1}
	sAlt0P2 = grammar.Slot{A: "S", K: 0, J: 2}
)

func (literalDispatcher) Run(p *Parser, slot grammar.Slot) {
	switch slot {
	case sStart:
		p.Dispatcher.(literalDispatcher).Run(p, sAlt0P0)
	case sAlt0P0:
		if p.Scanner.HasNext("a") {
			node := p.NodeT(grammar.Lit("a"), 1)
			p.SetCurrentNode(node)
			p.Dispatcher.(literalDispatcher).Run(p, sAlt0P1)
		}
	case sAlt0P1:
		if p.Scanner.HasNext("b") {
			left := p.CurrentNode()
			node := p.NodeT(grammar.Lit("b"), 1)
			combined := p.NodeP(sAlt0P2, left, node)
			p.SetCurrentNode(combined)
			p.Dispatcher.(literalDispatcher).Run(p, sAlt0P2)
		}
	case sAlt0P2:
		p.Pop()
	}
}

func buildAnalysis() *grammar.Analysis {
	b := grammar.NewBuilder("S")
	b.LHS("S").Alt().T("a").T("b").End()
	g := b.Grammar()
	g.Normalize()
	return grammar.Analyze(g)
}

func TestParserAcceptsMatchingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.engine")
	defer teardown()
	//
	a := buildAnalysis()
	root, err := Run(a, "ab", sStart, grammar.NonterminalSlot("S"), literalDispatcher{}, nil)
	if err != nil {
		t.Fatalf("expected successful parse, got error: %v", err)
	}
	if root.LeftExtent() != 0 || root.RightExtent() != 2 {
		t.Fatalf("expected root spanning [0,2), got [%d,%d)", root.LeftExtent(), root.RightExtent())
	}
}

func TestParserRejectsNonMatchingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.engine")
	defer teardown()
	//
	a := buildAnalysis()
	_, err := Run(a, "ac", sStart, grammar.NonterminalSlot("S"), literalDispatcher{}, nil)
	if err == nil {
		t.Fatalf("expected a ParseError for non-matching input")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestDescriptorDedupViaSeenSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.engine")
	defer teardown()
	//
	a := buildAnalysis()
	p := New(a, "ab", literalDispatcher{})
	node := &sppf.InitialNode{L: 0, R: 0}
	p.Add(sAlt0P0, p.cu, 0, node)
	p.Add(sAlt0P0, p.cu, 0, node)
	if len(p.todo) != 1 {
		t.Fatalf("expected duplicate descriptor to be suppressed, got %d queued", len(p.todo))
	}
}
