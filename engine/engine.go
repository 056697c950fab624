package engine

import (
	"fmt"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/gss"
	"github.com/npillmayer/gll/scanner"
	"github.com/npillmayer/gll/sppf"
)

// NullSlot is the sentinel slot of the GSS root, (null-slot, 0).
var NullSlot = grammar.Slot{A: "$null", K: 0, J: 0}

// ParseError is returned when the worklist drains without the completion
// node being found. It carries no position hint, a known limitation (§7,
// §9): GLL's all-paths-at-once exploration does not single out "the"
// position a deterministic parser would have failed at.
type ParseError struct {
	StartSymbol grammar.Nonterminal
	InputLength int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gll: failed to parse %d code points as %s", e.InputLength, e.StartSymbol)
}

// Dispatcher runs the parse function registered (by the IR/interpreter
// layer) for a grammar slot against the current parser state.
type Dispatcher interface {
	Run(p *Parser, slot grammar.Slot)
}

// SlotInfoProvider supplies the precomputed alpha-special/beta-special
// predicates for a grammar slot, as required by getNodeP (§4.5). Both
// *grammar.Analysis and *ir.ParserDefinition satisfy it, which lets Parser
// depend on neither package directly.
type SlotInfoProvider interface {
	SlotInfo(slot grammar.Slot) grammar.SlotInfo
}

// Hooks mirrors the debug-hook API of the original reference
// implementation's AbstractParser (§ Part IV.1 of this module's full
// specification): optional callbacks fired at each primitive operation.
// A nil field is simply skipped.
type Hooks struct {
	OnStateSwitch func(d Descriptor)
	OnAdd         func(d Descriptor, alreadySeen bool)
	OnCreate      func(slot grammar.Slot, ref gss.Ref)
	OnPop         func(ref gss.Ref)
	OnNodeT       func(sym grammar.Terminal, node *sppf.TerminalNode)
	OnNodeP       func(slot grammar.Slot, node sppf.Node)
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// StoreSPPF controls whether the forest is retained after parsing. When
// false, the engine still builds it (SPPF construction cannot be skipped
// without changing the algorithm) but drops the reference once a
// success/failure answer is known, freeing memory for callers that only
// need a boolean accept/reject.
func StoreSPPF(store bool) Option {
	return func(p *Parser) { p.storeSPPF = store }
}

// TraceDescriptors enables the default hook set, forwarding every primitive
// operation to the package tracer at Debug/Info level.
func TraceDescriptors(enable bool) Option {
	return func(p *Parser) {
		if enable {
			p.Hooks = defaultHooks()
		}
	}
}

// MaxDescriptors caps the number of descriptors the worklist will process,
// an external resource guard (§5: "time/space bounds must be enforced
// externally"). Zero means unbounded.
func MaxDescriptors(n int) Option {
	return func(p *Parser) { p.maxDescriptors = n }
}

func defaultHooks() *Hooks {
	return &Hooks{
		OnStateSwitch: func(d Descriptor) { tracer().Debugf("state switch -> %s", d) },
		OnAdd: func(d Descriptor, seen bool) {
			if seen {
				tracer().Debugf("add: skip already-seen %s", d)
			} else {
				tracer().Debugf("add: enqueue %s", d)
			}
		},
		OnCreate: func(slot grammar.Slot, ref gss.Ref) { tracer().Debugf("create: %s -> %s", slot, ref) },
		OnPop:    func(ref gss.Ref) { tracer().Debugf("pop: %s", ref) },
		OnNodeT:  func(sym grammar.Terminal, node *sppf.TerminalNode) { tracer().Debugf("getNodeT(%s) = %s", sym, node) },
		OnNodeP:  func(slot grammar.Slot, node sppf.Node) { tracer().Debugf("getNodeP(%s) = %s", slot, node) },
	}
}

// Parser holds every piece of mutable state for one parse (§4.5). A Parser
// is created fresh for each call to Run and discarded at the end (§5); the
// grammar, analysis and IR it parses against are immutable and may be
// shared across parses.
type Parser struct {
	Analysis SlotInfoProvider
	Scanner  *scanner.Scanner
	GSS      *gss.GSS
	Forest   *sppf.Forest

	todo   []Descriptor
	seen   map[Descriptor]bool
	popped map[gss.Ref][]sppf.Node

	// working registers
	cu  gss.Ref
	cn  sppf.Node
	position int

	Dispatcher     Dispatcher
	Hooks          *Hooks
	storeSPPF      bool
	maxDescriptors int

	// AmbiguityChecksForSlot resolves the in-pop checks registered
	// against a return slot; each check is a predicate over
	// (from, to int) positions -- the span of the just-completed
	// nonterminal derivation -- returning true iff the derivation may
	// proceed. The Parser is passed through so a check can consult the
	// scanner for surrounding context (restriction, follow).
	AmbiguityChecksForSlot func(p *Parser, slot grammar.Slot) []func(from, to int) bool
}

// New creates a Parser ready to run over input.
func New(analysis SlotInfoProvider, input string, dispatcher Dispatcher, opts ...Option) *Parser {
	root := gss.Ref{Slot: NullSlot, Pos: 0}
	p := &Parser{
		Analysis:  analysis,
		Scanner:   scanner.New(input),
		GSS:       gss.New(root),
		Forest:    sppf.NewForest(),
		todo:      nil,
		seen:      make(map[Descriptor]bool),
		popped:    make(map[gss.Ref][]sppf.Node),
		cu:        root,
		cn:        &sppf.InitialNode{L: 0, R: 0},
		Dispatcher: dispatcher,
		storeSPPF: true,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// CurrentStack returns c_u, the GSS reference the current function is
// executing under.
func (p *Parser) CurrentStack() gss.Ref { return p.cu }

// CurrentNode returns c_n, the SPPF node most recently produced.
func (p *Parser) CurrentNode() sppf.Node { return p.cn }

// SetCurrentNode sets c_n; called by the statement interpreter after
// getNodeT/getNodeP.
func (p *Parser) SetCurrentNode(n sppf.Node) { p.cn = n }

// SetCurrentStack sets c_u; called by the statement interpreter after
// create(), so that a subsequent "call F_B" dispatches under the new stack
// frame.
func (p *Parser) SetCurrentStack(ref gss.Ref) { p.cu = ref }

// Position returns the scanner position the current function is executing
// at (restored from the descriptor at dispatch time).
func (p *Parser) Position() int { return p.position }

// Add implements §4.5's add(slot, gss, pos, sppf): deduplicate via the
// seen-set, then append to the worklist.
func (p *Parser) Add(slot grammar.Slot, stack gss.Ref, pos int, node sppf.Node) {
	d := Descriptor{Slot: slot, GSS: stack, Pos: pos, Node: node}
	already := p.seen[d]
	if p.Hooks != nil && p.Hooks.OnAdd != nil {
		p.Hooks.OnAdd(d, already)
	}
	if !already {
		p.seen[d] = true
		p.todo = append(p.todo, d)
	}
}

// Create implements §4.5's create(slot): computes ref = (slot, position);
// if absent from the GSS, inserts it; if c_u is not already a successor,
// adds an edge ref -[c_n]-> c_u, then replays every node popped earlier at
// ref against the new edge.
func (p *Parser) Create(slot grammar.Slot) gss.Ref {
	ref := gss.Ref{Slot: slot, Pos: p.position}
	p.GSS.AddNode(ref)
	if !p.GSS.HasEdge(ref, p.cu) {
		p.GSS.AddEdge(ref, p.cu, p.cn)
		for _, z := range p.popped[ref] {
			info := p.Analysis.SlotInfo(slot)
			node := p.Forest.NodeP(info, p.cn, z)
			if p.Hooks != nil && p.Hooks.OnNodeP != nil {
				p.Hooks.OnNodeP(slot, node)
			}
			p.Add(slot, p.cu, z.RightExtent(), node)
		}
	}
	if p.Hooks != nil && p.Hooks.OnCreate != nil {
		p.Hooks.OnCreate(slot, ref)
	}
	return ref
}

// Pop implements §4.5's pop(): records (c_u -> c_n) in popped, then for
// every outgoing edge of c_u, evaluates the in-pop ambiguity checks
// registered against c_u.Slot over the span (c_u.Pos, position) -- from where
// the popped nonterminal began to the current position; if all succeed,
// computes getNodeP and adds the resulting descriptor.
func (p *Parser) Pop() {
	if p.Hooks != nil && p.Hooks.OnPop != nil {
		p.Hooks.OnPop(p.cu)
	}
	if p.cu == p.GSS.Root {
		return
	}
	p.popped[p.cu] = append(p.popped[p.cu], p.cn)
	for _, edge := range p.GSS.Edges(p.cu) {
		to, label := edge.To, edge.Label
		ok := true
		if p.AmbiguityChecksForSlot != nil {
			for _, check := range p.AmbiguityChecksForSlot(p, p.cu.Slot) {
				if !check(p.cu.Pos, p.position) {
					ok = false
					break
				}
			}
		}
		if !ok {
			continue
		}
		info := p.Analysis.SlotInfo(p.cu.Slot)
		node := p.Forest.NodeP(info, label, p.cn)
		if p.Hooks != nil && p.Hooks.OnNodeP != nil {
			p.Hooks.OnNodeP(p.cu.Slot, node)
		}
		p.Add(p.cu.Slot, to, p.position, node)
	}
}

// NodeT implements §4.5's getNodeT: canonicalizes a terminal node spanning
// [position, position+length) and advances the scanner past the match.
func (p *Parser) NodeT(sym grammar.Terminal, length int) *sppf.TerminalNode {
	node := p.Forest.NodeT(sym, p.position, p.position+length)
	p.Scanner.Advance(length)
	p.position = p.Scanner.Position()
	if p.Hooks != nil && p.Hooks.OnNodeT != nil {
		p.Hooks.OnNodeT(sym, node)
	}
	return node
}

// NodeP implements §4.5's getNodeP directly against the forest.
func (p *Parser) NodeP(slot grammar.Slot, left, right sppf.Node) sppf.Node {
	info := p.Analysis.SlotInfo(slot)
	node := p.Forest.NodeP(info, left, right)
	if p.Hooks != nil && p.Hooks.OnNodeP != nil {
		p.Hooks.OnNodeP(slot, node)
	}
	return node
}

// Run executes the main loop (§4.5) and returns the root intermediate node
// of the resulting SPPF, or a *ParseError.
func Run(analysis SlotInfoProvider, input string, startSlot grammar.Slot, finalSlot grammar.Slot,
	dispatcher Dispatcher, ambiguityChecks func(p *Parser, slot grammar.Slot) []func(from, to int) bool, opts ...Option) (*sppf.IntermediateNode, error) {

	p := New(analysis, input, dispatcher, opts...)
	p.AmbiguityChecksForSlot = ambiguityChecks

	p.Add(startSlot, p.cu, 0, &sppf.InitialNode{L: 0, R: 0})

	processed := 0
	for len(p.todo) > 0 {
		if p.maxDescriptors > 0 && processed >= p.maxDescriptors {
			panic(fmt.Sprintf("gll: exceeded external descriptor cap of %d", p.maxDescriptors))
		}
		d := p.todo[0]
		p.todo = p.todo[1:]
		if p.Hooks != nil && p.Hooks.OnStateSwitch != nil {
			p.Hooks.OnStateSwitch(d)
		}
		p.cn = d.Node
		p.cu = d.GSS
		p.position = d.Pos
		p.Scanner.SetPosition(d.Pos)
		p.Dispatcher.Run(p, d.Slot)
		processed++
	}

	key := sppf.IntermediateKey{A: finalSlot.A, K: -1, J: -1, Collapsed: true, L: 0, R: p.Scanner.Len()}
	node, ok := p.Forest.Lookup(key)
	if !ok {
		return nil, &ParseError{StartSymbol: finalSlot.A, InputLength: p.Scanner.Len()}
	}
	p.Forest.SetRoot(node)
	if !p.storeSPPF {
		result := node
		p.Forest = nil
		return result, nil
	}
	return node, nil
}
