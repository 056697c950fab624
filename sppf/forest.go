package sppf

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/gll/grammar"
)

// Forest is the arena owning every SPPF node produced during one parse. All
// of its state is created at parse entry and destroyed at parse exit (§5);
// it is never shared across parses.
type Forest struct {
	terminals     map[TerminalKey]*TerminalNode
	intermediates map[IntermediateKey]*IntermediateNode
	Root          *IntermediateNode
}

// NewForest creates an empty forest.
func NewForest() *Forest {
	return &Forest{
		terminals:     make(map[TerminalKey]*TerminalNode),
		intermediates: make(map[IntermediateKey]*IntermediateNode),
	}
}

// NodeT canonicalizes a terminal node with extents [l, r) into the
// forest's terminal table, per §4.5 getNodeT.
func (f *Forest) NodeT(sym grammar.Terminal, l, r int) *TerminalNode {
	key := TerminalKey{Sym: sym, L: l, R: r}
	if n, ok := f.terminals[key]; ok {
		return n
	}
	n := &TerminalNode{Sym: sym, L: l, R: r}
	f.terminals[key] = n
	tracer().Debugf("sppf.NodeT: created %s", n)
	return n
}

// NodeP implements §4.5's getNodeP: it enforces the SPPF's shape, including
// the alpha-special shortcut (a single-symbol prefix never needs its own
// intermediate node) and the beta-special ambiguity-sharing collapse.
func (f *Forest) NodeP(info grammar.SlotInfo, left, right Node) Node {
	if info.AlphaSpecial && !info.BetaSpecial {
		return right
	}
	var leftExtent int
	if _, isInitial := left.(*InitialNode); isInitial {
		leftExtent = right.LeftExtent()
	} else {
		leftExtent = left.LeftExtent()
	}
	rightExtent := right.RightExtent()

	key := IntermediateKey{A: info.Slot.A, L: leftExtent, R: rightExtent}
	if info.BetaSpecial {
		key.Collapsed = true
		key.K, key.J = -1, -1
	} else {
		key.K, key.J = info.Slot.K, info.Slot.J
	}

	node, ok := f.intermediates[key]
	if !ok {
		node = &IntermediateNode{Key: key, L: leftExtent, R: rightExtent, Children: make(map[PackedKey]*PackedNode)}
		f.intermediates[key] = node
		tracer().Infof("sppf.NodeP: created intermediate node %s", node)
	}

	var split int
	if _, isInitial := left.(*InitialNode); isInitial {
		split = right.LeftExtent()
	} else {
		split = left.RightExtent()
	}
	pkey := PackedKey{Slot: info.Slot, Split: split}
	if _, exists := node.Children[pkey]; !exists {
		packed := &PackedNode{Slot: info.Slot, Split: split, Right: right}
		if _, isInitial := left.(*InitialNode); !isInitial {
			packed.Left = left
		}
		node.Children[pkey] = packed
		tracer().Debugf("sppf.NodeP: added packed child %s under %s", packed, node)
	}
	return node
}

// SetRoot marks node as the root intermediate node of a successful parse.
func (f *Forest) SetRoot(node *IntermediateNode) {
	f.Root = node
}

// Lookup finds a cached intermediate node by key, used by the engine to
// test for the completion condition without creating a node.
func (f *Forest) Lookup(key IntermediateKey) (*IntermediateNode, bool) {
	n, ok := f.intermediates[key]
	return n, ok
}

// Size reports the number of distinct terminal and intermediate nodes
// currently held by the forest, used by tests asserting the deduplication
// bounds of testable property 5.
func (f *Forest) Size() (terminals, intermediates int) {
	return len(f.terminals), len(f.intermediates)
}

// Hash returns a stable content hash for a node, used for debug export and
// for cheaply distinguishing nodes in diagnostics -- the same role
// structhash plays for backlink hashing in this author's Earley parser.
func Hash(n Node) string {
	switch v := n.(type) {
	case *TerminalNode:
		h, _ := structhash.Hash(v.Key(), 1)
		return h
	case *IntermediateNode:
		h, _ := structhash.Hash(v.Key, 1)
		return h
	default:
		return fmt.Sprintf("%v", n)
	}
}

// ToGraphViz renders the forest's intermediate and terminal nodes as a
// Graphviz dot graph, for debugging.
func (f *Forest) ToGraphViz() string {
	var b strings.Builder
	b.WriteString("digraph SPPF {\n")
	for _, node := range f.intermediates {
		id := Hash(node)
		fmt.Fprintf(&b, "  %q [label=%q];\n", id, node.String())
		for _, p := range node.PackedChildren() {
			if p.Left != nil {
				fmt.Fprintf(&b, "  %q -> %q [label=\"left\"];\n", id, Hash(p.Left))
			}
			fmt.Fprintf(&b, "  %q -> %q [label=\"right\"];\n", id, Hash(p.Right))
		}
	}
	b.WriteString("}\n")
	return b.String()
}
