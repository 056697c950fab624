package interp

import (
	"github.com/npillmayer/gll/engine"
	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/ir"
	"github.com/npillmayer/gll/sppf"
)

// Parse runs the GLL main loop over input against pd, interpreting its
// statement lists directly rather than compiling them. It is the
// convenience entry point a caller reaches for instead of wiring up
// package engine by hand.
func Parse(pd *ir.ParserDefinition, input string, opts ...engine.Option) (*sppf.IntermediateNode, error) {
	d := New(pd)
	finalSlot := grammar.NonterminalSlot(pd.FinalSlot.A)
	return engine.Run(pd, input, pd.StartSlot, finalSlot, d, d.AmbiguityChecks, opts...)
}
