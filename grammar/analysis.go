package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/npillmayer/gll/relation"
)

func terminalComparator(a, b interface{}) int {
	sa, sb := a.(Terminal).String(), b.(Terminal).String()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// SortTerminals returns the elements of a terminal set (as produced by
// First, Follow or TestSet) in a deterministic order, backed by gods'
// treeset rather than Go's randomized map iteration -- the same ordered-
// collection role gods plays in gorgo's LR table construction.
func SortTerminals(set map[Terminal]bool) []Terminal {
	ts := treeset.NewWith(terminalComparator)
	for t, ok := range set {
		if ok {
			ts.Add(t)
		}
	}
	out := make([]Terminal, 0, ts.Size())
	for _, v := range ts.Values() {
		out = append(out, v.(Terminal))
	}
	return out
}

// Analysis caches the results of the static analyses performed over a
// grammar: nullability, FIRST, FOLLOW, TEST sets, GLL-block segmentation and
// per-slot alpha/beta predicates. Analysis is immutable once built and is
// shared read-only across all parses of the grammar it describes.
type Analysis struct {
	g         *Grammar
	nullable  map[Nonterminal]bool
	first     map[Nonterminal]map[Terminal]bool
	follow    map[Nonterminal]map[Terminal]bool
	blocks    map[Nonterminal][][]Block
	slotInfos map[Slot]SlotInfo
}

// Block is a maximal prefix of an alternative: [Start, End) positions,
// either zero-or-more terminals followed by one nonterminal, or one-or-more
// terminals with no following nonterminal (a tail block). A synthetic empty
// block with Start == End marks the completion point after a trailing
// nonterminal.
type Block struct {
	Start, End   int
	EndsInNonterm bool
}

// Analyze runs every static analysis over g and returns the cached results.
// g should already be Normalize()d.
func Analyze(g *Grammar) *Analysis {
	a := &Analysis{g: g}
	a.computeNullable()
	a.computeFirst()
	a.computeFollow()
	a.computeBlocks()
	a.computeSlotInfos()
	tracer().Infof("grammar.Analyze: %d nonterminals analyzed", len(g.order))
	return a
}

func (a *Analysis) computeNullable() {
	a.nullable = make(map[Nonterminal]bool)
	changed := true
	for changed {
		changed = false
		for _, nt := range a.g.order {
			if a.nullable[nt] {
				continue
			}
			for _, alt := range a.g.Rules[nt].Alternatives {
				if a.alternativeNullableSoFar(alt) {
					a.nullable[nt] = true
					changed = true
					break
				}
			}
		}
	}
}

func (a *Analysis) alternativeNullableSoFar(alt Alternative) bool {
	for _, sym := range alt {
		if sym.IsTerminal() {
			if sym.Terminal().Kind != EmptyTerminal {
				return false
			}
			continue
		}
		if !a.nullable[sym.Nonterminal()] {
			return false
		}
	}
	return true
}

// Nullable reports whether nt can derive the empty string.
func (a *Analysis) Nullable(nt Nonterminal) bool {
	return a.nullable[nt]
}

// firstItem is the carrier for the "begins-with" relation: either a
// nonterminal or a terminal (Empty stands in for epsilon).
type firstItem struct {
	isNT bool
	nt   Nonterminal
	term Terminal
}

func ntItem(nt Nonterminal) firstItem  { return firstItem{isNT: true, nt: nt} }
func termItem(t Terminal) firstItem    { return firstItem{term: t} }

func (a *Analysis) computeFirst() {
	var pairs []relation.Pair[firstItem]
	for _, nt := range a.g.order {
		for _, alt := range a.g.Rules[nt].Alternatives {
			for _, sym := range alt {
				if sym.IsTerminal() {
					pairs = append(pairs, relation.Pair[firstItem]{X: ntItem(nt), Y: termItem(sym.Terminal())})
					break // a terminal always stops the begins-with chain
				}
				pairs = append(pairs, relation.Pair[firstItem]{X: ntItem(nt), Y: ntItem(sym.Nonterminal())})
				if !a.nullable[sym.Nonterminal()] {
					break
				}
			}
			if a.alternativeNullableSoFar(alt) {
				pairs = append(pairs, relation.Pair[firstItem]{X: ntItem(nt), Y: termItem(Empty())})
			}
		}
	}
	rel := relation.New(pairs...).TransitiveClosure()
	a.first = make(map[Nonterminal]map[Terminal]bool)
	for _, nt := range a.g.order {
		a.first[nt] = make(map[Terminal]bool)
	}
	for _, p := range rel.Pairs() {
		if !p.X.isNT {
			continue
		}
		if p.Y.isNT {
			// A nonterminal-to-nonterminal pair only matters as a bridge;
			// project only onto terminal codomain, per the spec.
			continue
		}
		a.first[p.X.nt][p.Y.term] = true
	}
}

// First returns FIRST(nt): the set of terminals (possibly including Empty)
// that can begin a derivation of nt.
func (a *Analysis) First(nt Nonterminal) map[Terminal]bool {
	return a.first[nt]
}

// FirstOfSuffix computes FIRST of the suffix alt[j:], per §4.3: union FIRST
// minus Empty for each symbol from j onward, stopping at the first
// non-nullable symbol; if the walk completes (every symbol nullable), Empty
// is added.
func (a *Analysis) FirstOfSuffix(alt Alternative, j int) map[Terminal]bool {
	out := make(map[Terminal]bool)
	for i := j; i < len(alt); i++ {
		sym := alt[i]
		if sym.IsTerminal() {
			out[sym.Terminal()] = true
			return out
		}
		for t, ok := range a.first[sym.Nonterminal()] {
			if ok && t.Kind != EmptyTerminal {
				out[t] = true
			}
		}
		if !a.nullable[sym.Nonterminal()] {
			return out
		}
	}
	out[Empty()] = true
	return out
}

func (a *Analysis) computeFollow() {
	a.follow = make(map[Nonterminal]map[Terminal]bool)
	for _, nt := range a.g.order {
		a.follow[nt] = make(map[Terminal]bool)
	}
	var subsumption []relation.Pair[Nonterminal]
	for _, nt := range a.g.order {
		for _, alt := range a.g.Rules[nt].Alternatives {
			for j, sym := range alt {
				if sym.IsTerminal() {
					continue
				}
				suffix := a.FirstOfSuffix(alt, j+1)
				for t, ok := range suffix {
					if ok && t.Kind != EmptyTerminal {
						a.follow[sym.Nonterminal()][t] = true
					}
				}
				if a.restNullable(alt, j+1) {
					// FOLLOW(nt) ⊆ FOLLOW(sym): whatever follows the
					// enclosing nonterminal also follows sym, since the
					// remainder of this alternative may vanish.
					subsumption = append(subsumption, relation.Pair[Nonterminal]{X: nt, Y: sym.Nonterminal()})
				}
			}
		}
	}
	closure := relation.New(subsumption...).TransitiveClosure()
	changed := true
	for changed {
		changed = false
		for _, p := range closure.Pairs() {
			before := len(a.follow[p.Y])
			for t, ok := range a.follow[p.X] {
				if ok {
					a.follow[p.Y][t] = true
				}
			}
			if len(a.follow[p.Y]) != before {
				changed = true
			}
		}
	}
}

func (a *Analysis) restNullable(alt Alternative, from int) bool {
	for i := from; i < len(alt); i++ {
		sym := alt[i]
		if sym.IsTerminal() {
			if sym.Terminal().Kind != EmptyTerminal {
				return false
			}
			continue
		}
		if !a.nullable[sym.Nonterminal()] {
			return false
		}
	}
	return true
}

// Follow returns FOLLOW(nt).
func (a *Analysis) Follow(nt Nonterminal) map[Terminal]bool {
	return a.follow[nt]
}

// TestSet computes the TEST set for slot position (A, k, j): FIRST of the
// suffix alt[j:]; if it contains Empty, union with FOLLOW(A), keeping Empty
// in the result. A null-only suffix collapses to {Empty} (plus FOLLOW(A)),
// since FirstOfSuffix of an all-nullable tail returns {Empty}.
func (a *Analysis) TestSet(nt Nonterminal, k, j int) map[Terminal]bool {
	alt := a.g.Rules[nt].Alternatives[k]
	suffix := a.FirstOfSuffix(alt, j)
	out := make(map[Terminal]bool, len(suffix))
	hasEmpty := false
	for t, ok := range suffix {
		if !ok {
			continue
		}
		if t.Kind == EmptyTerminal {
			hasEmpty = true
		}
		out[t] = true
	}
	if hasEmpty {
		for t, ok := range a.follow[nt] {
			if ok {
				out[t] = true
			}
		}
	}
	return out
}

func (a *Analysis) computeBlocks() {
	a.blocks = make(map[Nonterminal][][]Block)
	for _, nt := range a.g.order {
		alts := a.g.Rules[nt].Alternatives
		perAlt := make([][]Block, len(alts))
		for k, alt := range alts {
			perAlt[k] = SegmentBlocks(alt)
		}
		a.blocks[nt] = perAlt
	}
}

// SegmentBlocks segments a single alternative into GLL blocks, per §3: a
// maximal prefix of zero-or-more terminals followed by one nonterminal, or
// one-or-more terminals with no following nonterminal (a tail block). If the
// last block ends in a nonterminal, a synthetic empty tail block at
// position len(alt) is appended.
func SegmentBlocks(alt Alternative) []Block {
	var blocks []Block
	pos := 0
	for pos < len(alt) {
		start := pos
		for pos < len(alt) && alt[pos].IsTerminal() {
			pos++
		}
		endsInNonterm := pos < len(alt)
		if endsInNonterm {
			pos++ // include the nonterminal itself in this block
		}
		blocks = append(blocks, Block{Start: start, End: pos, EndsInNonterm: endsInNonterm})
	}
	if len(blocks) == 0 {
		// an alternative is never truly empty (Normalize() guarantees a
		// sole Empty terminal stands in), but guard against a bare []
		// alternative defensively.
		blocks = append(blocks, Block{Start: 0, End: 0, EndsInNonterm: false})
		return blocks
	}
	if blocks[len(blocks)-1].EndsInNonterm {
		blocks = append(blocks, Block{Start: len(alt), End: len(alt), EndsInNonterm: false})
	}
	return blocks
}

// Blocks returns the GLL-block segmentation of the k-th alternative of nt.
func (a *Analysis) Blocks(nt Nonterminal, k int) []Block {
	return a.blocks[nt][k]
}

func (a *Analysis) computeSlotInfos() {
	a.slotInfos = make(map[Slot]SlotInfo)
	for _, nt := range a.g.order {
		a.slotInfos[NonterminalSlot(nt)] = SlotInfo{Slot: NonterminalSlot(nt), BetaSpecial: true}
		for k, alt := range a.g.Rules[nt].Alternatives {
			for j := 0; j <= len(alt); j++ {
				slot := Slot{A: nt, K: k, J: j}
				info := SlotInfo{Slot: slot, BetaSpecial: j == len(alt)}
				if j == 1 {
					sym := alt[0]
					info.AlphaSpecial = sym.IsTerminal() || !a.nullable[sym.Nonterminal()]
				}
				a.slotInfos[slot] = info
			}
		}
	}
}

// SlotInfo returns the precomputed alpha/beta predicates for slot.
func (a *Analysis) SlotInfo(slot Slot) SlotInfo {
	if slot.IsNonterminalSlot() {
		return a.slotInfos[NonterminalSlot(slot.A)]
	}
	return a.slotInfos[slot]
}

// Grammar returns the grammar this analysis was computed over.
func (a *Analysis) Grammar() *Grammar {
	return a.g
}
