package interp

import (
	"fmt"

	"github.com/npillmayer/gll/engine"
	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/ir"
	"github.com/npillmayer/gll/sppf"
)

// Dispatcher implements engine.Dispatcher by tree-walking the statement
// lists of a ParserDefinition instead of compiling them.
type Dispatcher struct {
	PD *ir.ParserDefinition
}

// New wraps pd as an engine.Dispatcher.
func New(pd *ir.ParserDefinition) *Dispatcher {
	return &Dispatcher{PD: pd}
}

// Run looks up the function registered for slot and executes its body.
func (d *Dispatcher) Run(p *engine.Parser, slot grammar.Slot) {
	fn := d.PD.FunctionFor(slot)
	tracer().Debugf("interp.Run: entering %s (%d statements)", fn.Name, len(fn.Body))
	st := &execState{pd: d.PD, p: p, cn: p.CurrentNode()}
	st.exec(fn.Body)
}

// AmbiguityChecks builds the closures engine.Parser.Pop consults for the
// in-pop checks registered against slot. It matches the
// engine.Parser.AmbiguityChecksForSlot field type exactly, so it can be
// passed straight into engine.Run.
func (d *Dispatcher) AmbiguityChecks(p *engine.Parser, slot grammar.Slot) []func(from, to int) bool {
	idxs := d.PD.ChecksBySlot[slot]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]func(int, int) bool, 0, len(idxs))
	for _, idx := range idxs {
		check := d.PD.AmbiguityChecks[idx]
		out = append(out, func(from, to int) bool {
			return evaluateInPop(check, p.Scanner, from, to)
		})
	}
	return out
}

// execState holds the two working registers (c_n, c_r) local to one
// invocation of a parse function; it is not retained across descriptors.
type execState struct {
	pd *ir.ParserDefinition
	p  *engine.Parser
	cn sppf.Node
	cr sppf.Node
}

func (st *execState) setTarget(t ir.NodeTarget, n sppf.Node) {
	if t == ir.TargetCR {
		st.cr = n
	} else {
		st.cn = n
	}
}

// exec runs stmts in order. A CallFunction statement transfers control to
// the callee's start function and never returns to its caller -- a
// nonterminal symbol is always the last symbol of a GLL block (§3) -- so
// exec stops immediately afterward.
func (st *execState) exec(stmts []ir.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case ir.Comment:
			// no-op, carried through for IR-dump readability only.
		case ir.ConditionalCheck:
			check := st.pd.InputChecks[s.CheckIndex]
			if _, ok := matchInputCheck(check, st.p.Scanner); ok {
				st.exec(s.Then)
			}
		case ir.InvokeNodeT:
			check := st.pd.InputChecks[s.CheckIndex]
			m, ok := matchInputCheck(check, st.p.Scanner)
			if !ok {
				// unreachable under a well-formed IR: InvokeNodeT is always
				// nested inside a ConditionalCheck guarding the same index.
				return
			}
			st.setTarget(s.Target, st.p.NodeT(m.Sym, m.Length))
		case ir.InvokeNodeP:
			st.setTarget(s.Target, st.p.NodeP(s.Slot, st.cn, st.cr))
		case ir.InvokeCreate:
			st.p.SetCurrentNode(st.cn)
			st.p.SetCurrentStack(st.p.Create(s.Slot))
		case ir.CallFunction:
			// A call always starts the callee's own accumulation fresh: the
			// callee has no left sibling of its own yet, regardless of
			// whatever c_n the caller had accumulated for its own
			// alternative (that value was already latched as the new GSS
			// edge's label by the preceding InvokeCreate).
			callee := st.pd.FunctionFor(grammar.NonterminalSlot(s.Nonterminal))
			pos := st.p.Position()
			sub := &execState{pd: st.pd, p: st.p, cn: &sppf.InitialNode{L: pos, R: pos}}
			sub.exec(callee.Body)
			return
		case ir.InvokeAdd:
			st.p.Add(s.Slot, st.p.CurrentStack(), st.p.Position(), st.cn)
		case ir.InvokePop:
			st.p.SetCurrentNode(st.cn)
			st.p.Pop()
		case ir.Disambiguate:
			check := st.pd.AmbiguityChecks[s.CheckIndex]
			if !evaluateInline(check, st.p.Scanner) {
				return
			}
		default:
			panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
		}
	}
}
