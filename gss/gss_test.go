package gss

import (
	"testing"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/sppf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAddNodeIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.gss")
	defer teardown()
	//
	root := Ref{Slot: grammar.Slot{A: "$null"}, Pos: 0}
	g := New(root)
	ref := Ref{Slot: grammar.Slot{A: "S", K: 0, J: 1}, Pos: 3}
	g.AddNode(ref)
	g.AddNode(ref)
	if !g.Contains(ref) {
		t.Fatalf("expected %s to be a node", ref)
	}
}

func TestAddEdgeDeduplicatesAndLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.gss")
	defer teardown()
	//
	root := Ref{Slot: grammar.Slot{A: "$null"}, Pos: 0}
	g := New(root)
	from := Ref{Slot: grammar.Slot{A: "S", K: 0, J: 1}, Pos: 1}
	label := &sppf.InitialNode{L: 0, R: 1}
	g.AddEdge(from, root, label)
	g.AddEdge(from, root, label) // second call must not duplicate the edge

	if !g.HasEdge(from, root) {
		t.Fatalf("expected edge %s -> %s", from, root)
	}
	edges := g.Edges(from)
	if len(edges) != 1 {
		t.Fatalf("expected exactly 1 outgoing edge, got %d", len(edges))
	}
	if edges[0].To != root {
		t.Fatalf("expected edge to %s, got %s", root, edges[0].To)
	}
	if edges[0].Label != sppf.Node(label) {
		t.Fatalf("expected edge label %s, got %s", label, edges[0].Label)
	}
}

func TestEdgesOfUnknownNodeIsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.gss")
	defer teardown()
	//
	g := New(Ref{Slot: grammar.Slot{A: "$null"}, Pos: 0})
	unknown := Ref{Slot: grammar.Slot{A: "X", K: 9, J: 9}, Pos: 42}
	if edges := g.Edges(unknown); edges != nil {
		t.Fatalf("expected nil edges for never-added ref, got %v", edges)
	}
}
