package sppf

import (
	"fmt"

	"github.com/npillmayer/gll/grammar"
)

// Node is implemented by every SPPF node kind and by the Initial pseudo-node.
type Node interface {
	LeftExtent() int
	RightExtent() int
	String() string
}

// InitialNode marks "no left child yet": the left operand passed to NodeP
// when processing the very first symbol of an alternative.
type InitialNode struct {
	L, R int
}

func (n *InitialNode) LeftExtent() int  { return n.L }
func (n *InitialNode) RightExtent() int { return n.R }
func (n *InitialNode) String() string   { return fmt.Sprintf("Initial(%d,%d)", n.L, n.R) }

// TerminalNode is T(sym, l, r): one per distinct (sym, l, r).
type TerminalNode struct {
	Sym grammar.Terminal
	L, R int
}

func (n *TerminalNode) LeftExtent() int  { return n.L }
func (n *TerminalNode) RightExtent() int { return n.R }
func (n *TerminalNode) String() string   { return fmt.Sprintf("T(%s,%d,%d)", n.Sym, n.L, n.R) }

// TerminalKey canonicalizes a terminal node for the Forest's dedup table.
type TerminalKey struct {
	Sym  grammar.Terminal
	L, R int
}

func (n *TerminalNode) Key() TerminalKey {
	return TerminalKey{Sym: n.Sym, L: n.L, R: n.R}
}

// PackedKey canonicalizes a packed node within its parent intermediate node:
// at most one packed child exists per (slot, split).
type PackedKey struct {
	Slot  grammar.Slot
	Split int
}

// PackedNode is P(slot, split, left?, right): one way of deriving the
// parent intermediate node. Left is nil for a single-symbol prefix (the
// parent's alpha was Initial).
type PackedNode struct {
	Slot        grammar.Slot
	Split       int
	Left, Right Node
}

func (n *PackedNode) LeftExtent() int {
	if n.Left != nil {
		return n.Left.LeftExtent()
	}
	return n.Right.LeftExtent()
}
func (n *PackedNode) RightExtent() int { return n.Right.RightExtent() }
func (n *PackedNode) String() string {
	return fmt.Sprintf("P(%s,%d)", n.Slot, n.Split)
}

// IntermediateKey canonicalizes an intermediate node. When Collapsed is
// true (the slot is beta-special), K and J are irrelevant to identity: two
// intermediate nodes for different alternatives of the same nonterminal
// that cover the same span collapse to the same key, which is the SPPF's
// ambiguity-sharing point (§3, §9 "nonterminal-collapse hashing").
type IntermediateKey struct {
	A         grammar.Nonterminal
	K, J      int
	Collapsed bool
	L, R      int
}

// IntermediateNode is I(slot, l, r), or -- when Collapsed -- "complete for
// nonterminal A at (l, r)". It owns its packed children, keyed by
// (slot, split).
type IntermediateNode struct {
	Key      IntermediateKey
	L, R     int
	Children map[PackedKey]*PackedNode
}

func (n *IntermediateNode) LeftExtent() int  { return n.L }
func (n *IntermediateNode) RightExtent() int { return n.R }
func (n *IntermediateNode) String() string {
	if n.Key.Collapsed {
		return fmt.Sprintf("Completed(%s,%d,%d)", n.Key.A, n.L, n.R)
	}
	return fmt.Sprintf("I(%s_alt%d_pos%d,%d,%d)", n.Key.A, n.Key.K, n.Key.J, n.L, n.R)
}

// PackedChildren returns the node's packed children in no particular order.
func (n *IntermediateNode) PackedChildren() []*PackedNode {
	out := make([]*PackedNode, 0, len(n.Children))
	for _, p := range n.Children {
		out = append(out, p)
	}
	return out
}
