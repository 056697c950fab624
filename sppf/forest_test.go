package sppf

import (
	"testing"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeTCanonicalizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.sppf")
	defer teardown()
	//
	f := NewForest()
	a := f.NodeT(grammar.Lit("a"), 0, 1)
	b := f.NodeT(grammar.Lit("a"), 0, 1)
	if a != b {
		t.Fatalf("expected identical terminal nodes to canonicalize to the same pointer")
	}
	terms, _ := f.Size()
	if terms != 1 {
		t.Fatalf("expected 1 distinct terminal node, got %d", terms)
	}
}

func TestNodeP_AlphaSpecialShortcut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.sppf")
	defer teardown()
	//
	f := NewForest()
	info := grammar.SlotInfo{Slot: grammar.Slot{A: "S", K: 0, J: 1}, AlphaSpecial: true, BetaSpecial: false}
	right := f.NodeT(grammar.Lit("a"), 0, 1)
	result := f.NodeP(info, &InitialNode{0, 0}, right)
	if result != Node(right) {
		t.Fatalf("alpha-special single-symbol prefix should return right unchanged")
	}
}

func TestNodeP_AmbiguitySharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.sppf")
	defer teardown()
	//
	// Two distinct alternatives of S both completing over the same span
	// [0,3) must collapse to the same beta-special intermediate node,
	// appearing as two packed children of it (scenario S5: S -> S S | 'a').
	f := NewForest()
	infoAlt0 := grammar.SlotInfo{Slot: grammar.Slot{A: "S", K: 0, J: 2}, BetaSpecial: true}
	infoAlt1 := grammar.SlotInfo{Slot: grammar.Slot{A: "S", K: 1, J: 1}, BetaSpecial: true}

	left := f.NodeT(grammar.Lit("a"), 0, 1)
	mid := f.NodeT(grammar.Lit("a"), 1, 3)
	node1 := f.NodeP(infoAlt0, left, mid) // split at 1

	right := f.NodeT(grammar.Lit("a"), 0, 3) // stand-in terminal spanning the same extents for the test
	_ = right
	single := f.NodeT(grammar.Lit("a"), 0, 3)
	node2 := f.NodeP(infoAlt1, &InitialNode{0, 0}, single)

	in1, ok1 := node1.(*IntermediateNode)
	in2, ok2 := node2.(*IntermediateNode)
	if !ok1 || !ok2 {
		t.Fatalf("expected both results to be intermediate nodes")
	}
	if in1 != in2 {
		t.Fatalf("beta-special collapse failed: expected the same intermediate node for (S,0,3), got distinct nodes")
	}
	if len(in1.Children) != 2 {
		t.Fatalf("expected 2 packed children after ambiguity sharing, got %d", len(in1.Children))
	}
}

type countingListener struct{ terminals, intermediates int }

func (c *countingListener) EnterIntermediate(*IntermediateNode) bool { c.intermediates++; return true }
func (c *countingListener) ExitIntermediate(*IntermediateNode, interface{}, interface{}) interface{} {
	return nil
}
func (c *countingListener) Terminal(*TerminalNode) interface{} { c.terminals++; return nil }

func TestCursorTopDownVisitsEveryNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.sppf")
	defer teardown()
	//
	f := NewForest()
	info := grammar.SlotInfo{Slot: grammar.Slot{A: "S", K: 2, J: 1}, AlphaSpecial: false, BetaSpecial: true}
	left := f.NodeT(grammar.Lit("a"), 0, 1)
	right := f.NodeT(grammar.Lit("b"), 1, 2)
	node := f.NodeP(info, left, right).(*IntermediateNode)

	l := &countingListener{}
	NewCursor(f, nil).TopDown(node, l)
	if l.intermediates != 1 || l.terminals != 2 {
		t.Fatalf("expected 1 intermediate and 2 terminals visited, got %+v", l)
	}
}
