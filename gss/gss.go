package gss

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/sppf"
)

// Ref is a GSSRef = (slot, input-position): a node identity in the
// Graph-Structured Stack.
type Ref struct {
	Slot grammar.Slot
	Pos  int
}

func (r Ref) String() string {
	return fmt.Sprintf("<%s,%d>", r.Slot, r.Pos)
}

type edgeKey struct {
	From, To Ref
}

// GSS is a directed graph of Refs; edges carry an SPPF-node label (the
// c_n register's value at the moment the edge was created by create()).
// Successor sets are backed by gods' hashset, mirroring this module's
// sibling parsing packages' use of gods for ordered/deduplicated
// collections.
type GSS struct {
	successors map[Ref]*hashset.Set
	labels     map[edgeKey]sppf.Node
	Root       Ref
}

// New creates a GSS whose sentinel root is the null-slot at position 0.
func New(root Ref) *GSS {
	g := &GSS{
		successors: make(map[Ref]*hashset.Set),
		labels:     make(map[edgeKey]sppf.Node),
		Root:       root,
	}
	g.AddNode(root)
	return g
}

// Contains reports whether ref has been added as a node.
func (g *GSS) Contains(ref Ref) bool {
	_, ok := g.successors[ref]
	return ok
}

// AddNode inserts ref as a node with no outgoing edges, if absent.
func (g *GSS) AddNode(ref Ref) {
	if _, ok := g.successors[ref]; !ok {
		g.successors[ref] = hashset.New()
		tracer().Debugf("gss.AddNode: %s", ref)
	}
}

// AddEdge adds an edge from -> to labeled with node, if it does not already
// exist.
func (g *GSS) AddEdge(from, to Ref, label sppf.Node) {
	g.AddNode(from)
	if !g.successors[from].Contains(to) {
		g.successors[from].Add(to)
		g.labels[edgeKey{from, to}] = label
		tracer().Debugf("gss.AddEdge: %s -[%s]-> %s", from, label, to)
	}
}

// HasEdge reports whether an edge from -> to exists.
func (g *GSS) HasEdge(from, to Ref) bool {
	succ, ok := g.successors[from]
	return ok && succ.Contains(to)
}

// Edge pairs a successor Ref with the SPPF node labeling the edge to it.
type Edge struct {
	To    Ref
	Label sppf.Node
}

// Edges returns every outgoing edge of from.
func (g *GSS) Edges(from Ref) []Edge {
	succ, ok := g.successors[from]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, succ.Size())
	for _, v := range succ.Values() {
		to := v.(Ref)
		out = append(out, Edge{To: to, Label: g.labels[edgeKey{from, to}]})
	}
	return out
}
