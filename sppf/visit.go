package sppf

// Pruner resolves ambiguity when an intermediate node has more than one
// packed child: it selects which one the traversal should follow. The
// default, DontCarePruner, always selects the first packed child found,
// exactly as gorgo's sppf.DontCarePruner does for its n-ary forest.
type Pruner interface {
	Prune(node *IntermediateNode, candidates []*PackedNode) *PackedNode
}

type dontCarePruner struct{}

func (dontCarePruner) Prune(node *IntermediateNode, candidates []*PackedNode) *PackedNode {
	tracer().Infof("sppf.DontCarePruner: ambiguous node %s has %d packed children", node, len(candidates))
	return candidates[0]
}

// DontCarePruner never discriminates between ambiguity alternatives, thus
// always selecting whichever packed child iteration happens to find first.
var DontCarePruner Pruner = dontCarePruner{}

// Listener is a type for walking an SPPF. Unlike a concrete syntax tree
// listener, it walks the binary-subtree shape directly: an intermediate
// node has at most a Left and a Right child (§1, §3), not a flattened
// right-hand-side list.
type Listener interface {
	// EnterIntermediate is called before descending into node's packed
	// child; returning false skips the descent (ExitIntermediate is
	// still called, with nil child values).
	EnterIntermediate(node *IntermediateNode) bool
	// ExitIntermediate is called after the left/right children (if
	// visited) have produced their values.
	ExitIntermediate(node *IntermediateNode, left, right interface{}) interface{}
	// Terminal is called for every terminal leaf.
	Terminal(node *TerminalNode) interface{}
}

// Cursor walks a Forest starting at a chosen root, using a Pruner to
// resolve ambiguity.
type Cursor struct {
	forest *Forest
	pruner Pruner
}

// NewCursor creates a cursor over forest. A nil pruner defaults to
// DontCarePruner.
func NewCursor(forest *Forest, pruner Pruner) *Cursor {
	if pruner == nil {
		pruner = DontCarePruner
	}
	return &Cursor{forest: forest, pruner: pruner}
}

// TopDown traverses the forest top-down from root, applying listener
// methods, and returns the value the listener computed for root.
func (c *Cursor) TopDown(root *IntermediateNode, listener Listener) interface{} {
	if root == nil {
		return nil
	}
	return c.walk(root, listener)
}

func (c *Cursor) walk(n Node, listener Listener) interface{} {
	switch v := n.(type) {
	case *TerminalNode:
		return listener.Terminal(v)
	case *IntermediateNode:
		return c.walkIntermediate(v, listener)
	case *InitialNode:
		return nil
	default:
		return nil
	}
}

func (c *Cursor) walkIntermediate(node *IntermediateNode, listener Listener) interface{} {
	packed := c.disambiguate(node)
	if !listener.EnterIntermediate(node) {
		return listener.ExitIntermediate(node, nil, nil)
	}
	var leftVal, rightVal interface{}
	if packed.Left != nil {
		leftVal = c.walk(packed.Left, listener)
	}
	rightVal = c.walk(packed.Right, listener)
	return listener.ExitIntermediate(node, leftVal, rightVal)
}

func (c *Cursor) disambiguate(node *IntermediateNode) *PackedNode {
	children := node.PackedChildren()
	if len(children) == 1 {
		return children[0]
	}
	return c.pruner.Prune(node, children)
}
