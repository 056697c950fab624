package irgen

import (
	"fmt"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/ir"
)

// Build lowers g (already Normalize()d) plus its Analysis and a tag map into
// a parser IR. It returns a *grammar.Error if tags reference a nonexistent
// slot position.
func Build(g *grammar.Grammar, a *grammar.Analysis, tags grammar.TagMap) (*ir.ParserDefinition, error) {
	if tags == nil {
		tags = grammar.NewTagMap()
	}
	if err := tags.Validate(g); err != nil {
		return nil, err
	}
	pd := ir.New(string(g.Start))
	pd.SlotInfos = collectSlotInfos(g, a)
	pd.FinalSlot = grammar.NonterminalSlot(g.Start)

	b := &builder{g: g, a: a, tags: tags, pd: pd}
	for _, nt := range g.Nonterminals() {
		b.buildStartFunction(nt)
		for k, alt := range g.Rules[nt].Alternatives {
			blocks := a.Blocks(nt, k)
			for bi, block := range blocks {
				b.buildBlockFunction(nt, k, bi, block, alt)
			}
		}
	}
	pd.StartSlot = grammar.NonterminalSlot(g.Start)
	tracer().Infof("irgen.Build: %d functions, %d input checks, %d ambiguity checks",
		len(pd.Functions), len(pd.InputChecks), len(pd.AmbiguityChecks))
	return pd, nil
}

func collectSlotInfos(g *grammar.Grammar, a *grammar.Analysis) map[grammar.Slot]grammar.SlotInfo {
	out := make(map[grammar.Slot]grammar.SlotInfo)
	for _, nt := range g.Nonterminals() {
		out[grammar.NonterminalSlot(nt)] = a.SlotInfo(grammar.NonterminalSlot(nt))
		for k, alt := range g.Rules[nt].Alternatives {
			for j := 0; j <= len(alt); j++ {
				slot := grammar.Slot{A: nt, K: k, J: j}
				out[slot] = a.SlotInfo(slot)
			}
		}
	}
	return out
}

type builder struct {
	g    *grammar.Grammar
	a    *grammar.Analysis
	tags grammar.TagMap
	pd   *ir.ParserDefinition
}

// buildStartFunction emits F_A: for each alternative k, test the TEST set of
// (A, k, 0); if it matches, add the initial descriptor for that alternative.
func (b *builder) buildStartFunction(nt grammar.Nonterminal) {
	fn := &ir.Function{Name: startFuncName(nt), Slot: grammar.NonterminalSlot(nt)}
	for k := range b.g.Rules[nt].Alternatives {
		test := b.a.TestSet(nt, k, 0)
		checkIdx := b.pd.DeclareInputCheck(testSetToCheck(test))
		slot := grammar.Slot{A: nt, K: k, J: 0}
		fn.Body = append(fn.Body, ir.ConditionalCheck{
			CheckIndex: checkIdx,
			Then:       []ir.Statement{ir.InvokeAdd{Slot: slot}},
		})
	}
	b.pd.DeclareFunction(fn)
}

func startFuncName(nt grammar.Nonterminal) string {
	return fmt.Sprintf("F_%s", nt)
}

// buildBlockFunction emits the parse function for one GLL block, wiring its
// start slot (A, k, block.Start) into the goto table.
func (b *builder) buildBlockFunction(nt grammar.Nonterminal, k, blockIdx int, block grammar.Block, alt grammar.Alternative) {
	slot := grammar.Slot{A: nt, K: k, J: block.Start}
	fn := &ir.Function{Name: fmt.Sprintf("%s_block%d", slot.Name(), blockIdx), Slot: slot}

	j := block.Start
	for j < block.End {
		sym := alt[j]
		if sym.IsTerminal() {
			fn.Body = append(fn.Body, b.terminalStep(nt, k, j, sym)...)
			j++
			continue
		}
		// the nonterminal symbol is necessarily the last symbol of the
		// block (§3); this always is the final iteration of the loop.
		fn.Body = append(fn.Body, b.nonterminalStep(nt, k, j, sym)...)
		j++
	}
	if block.End == len(alt) && !block.EndsInNonterm {
		// a block ending in a nonterminal never falls through to a pop in
		// the same function: "call F_B" transfers control away for good,
		// and the pop for this alternative's completion belongs to the
		// dedicated function at the synthetic tail slot (A, k, len(alt))
		// instead.
		fn.Body = append(fn.Body, ir.InvokePop{})
	}
	b.pd.DeclareFunction(fn)
}

func (b *builder) terminalStep(nt grammar.Nonterminal, k, j int, sym grammar.Symbol) []ir.Statement {
	var pre []ir.Statement
	for _, tag := range b.tagsAt(nt, k, j) {
		if tag.Kind == grammar.Precede || tag.Kind == grammar.NotPrecede {
			idx := b.pd.DeclareAmbiguityCheck(b.lowerTag(tag, grammar.Slot{A: nt, K: k, J: j}, false))
			pre = append(pre, ir.Disambiguate{CheckIndex: idx})
		}
	}
	checkIdx := b.pd.DeclareInputCheck(terminalToCheck(sym.Terminal()))
	inner := []ir.Statement{
		ir.InvokeNodeT{CheckIndex: checkIdx, Target: ir.TargetCR},
		ir.InvokeNodeP{Slot: grammar.Slot{A: nt, K: k, J: j + 1}, Target: ir.TargetCN},
	}
	for _, tag := range b.tagsAt(nt, k, j) {
		if tag.Kind == grammar.Follow || tag.Kind == grammar.NotFollow {
			idx := b.pd.DeclareAmbiguityCheck(b.lowerTag(tag, grammar.Slot{A: nt, K: k, J: j}, false))
			inner = append(inner, ir.Disambiguate{CheckIndex: idx})
		}
	}
	stmts := append(pre, ir.ConditionalCheck{CheckIndex: checkIdx, Then: inner})
	return stmts
}

func (b *builder) nonterminalStep(nt grammar.Nonterminal, k, j int, sym grammar.Symbol) []ir.Statement {
	var stmts []ir.Statement
	for _, tag := range b.tagsAt(nt, k, j) {
		if tag.Kind == grammar.Precede || tag.Kind == grammar.NotPrecede {
			idx := b.pd.DeclareAmbiguityCheck(b.lowerTag(tag, grammar.Slot{A: nt, K: k, J: j}, false))
			stmts = append(stmts, ir.Disambiguate{CheckIndex: idx})
		}
	}
	returnSlot := grammar.Slot{A: nt, K: k, J: j + 1}
	body := []ir.Statement{
		ir.InvokeCreate{Slot: returnSlot},
		ir.CallFunction{Nonterminal: sym.Nonterminal()},
	}
	if b.a.Nullable(sym.Nonterminal()) {
		stmts = append(stmts, body...)
	} else {
		first := firstSetToCheck(b.a.First(sym.Nonterminal()))
		checkIdx := b.pd.DeclareInputCheck(first)
		stmts = append(stmts, ir.ConditionalCheck{CheckIndex: checkIdx, Then: body})
	}
	for _, tag := range b.tagsAt(nt, k, j) {
		if tag.Kind == grammar.Follow || tag.Kind == grammar.NotFollow || tag.Kind == grammar.Restriction {
			b.pd.DeclareAmbiguityCheck(b.lowerTag(tag, returnSlot, true))
		}
	}
	return stmts
}

func (b *builder) tagsAt(nt grammar.Nonterminal, k, j int) []grammar.Tag {
	return b.tags[grammar.Slot{A: nt, K: k, J: j}]
}

func (b *builder) lowerTag(tag grammar.Tag, slot grammar.Slot, inPop bool) ir.AmbiguityCheck {
	check := ir.AmbiguityCheck{Slot: slot, InPop: inPop}
	switch tag.Kind {
	case grammar.Precede, grammar.NotPrecede:
		check.Kind = ir.PrecedeKind
		check.Negated = tag.Kind == grammar.NotPrecede
	case grammar.Follow, grammar.NotFollow:
		check.Kind = ir.FollowKind
		check.Negated = tag.Kind == grammar.NotFollow
	case grammar.Restriction:
		check.Kind = ir.RestrictionKind
	}
	check.Literals = map[int][]string{}
	for _, term := range tag.Payload {
		switch term.Kind {
		case grammar.LiteralTerminal:
			n := len([]rune(term.Literal))
			check.Literals[n] = append(check.Literals[n], term.Literal)
		case grammar.ClassTerminal:
			check.Ranges = append(check.Ranges, term.Class)
		}
	}
	return check
}

func terminalToCheck(t grammar.Terminal) ir.InputCheck {
	switch t.Kind {
	case grammar.LiteralTerminal:
		return ir.NewLiteralCheck(t.Literal)
	case grammar.ClassTerminal:
		return ir.NewRangeCheck(t.Class)
	default:
		return ir.InputCheck{IncludesEmpty: true}
	}
}

func testSetToCheck(test map[grammar.Terminal]bool) ir.InputCheck {
	check := ir.InputCheck{Literals: map[int][]string{}}
	for t, ok := range test {
		if !ok {
			continue
		}
		switch t.Kind {
		case grammar.EmptyTerminal:
			check.IncludesEmpty = true
		case grammar.LiteralTerminal:
			n := len([]rune(t.Literal))
			check.Literals[n] = append(check.Literals[n], t.Literal)
		case grammar.ClassTerminal:
			check.Ranges = append(check.Ranges, t.Class)
		}
	}
	return check
}

func firstSetToCheck(first map[grammar.Terminal]bool) ir.InputCheck {
	check := ir.InputCheck{Literals: map[int][]string{}}
	for t, ok := range first {
		if !ok {
			continue
		}
		switch t.Kind {
		case grammar.EmptyTerminal:
			check.IncludesEmpty = true
		case grammar.LiteralTerminal:
			n := len([]rune(t.Literal))
			check.Literals[n] = append(check.Literals[n], t.Literal)
		case grammar.ClassTerminal:
			check.Ranges = append(check.Ranges, t.Class)
		}
	}
	return check
}
