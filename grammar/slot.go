package grammar

import "fmt"

// Slot is a cursor (A, K, J): "in the K-th alternative of A, the dot is at
// position J." Slot is comparable and is used directly as a map key
// throughout the IR and runtime. The synthetic nonterminal slot (A, -1, -1)
// denotes "any complete parse of A" and is naturally equal to any other
// nonterminal slot for the same A, since K and J are both pinned to -1.
type Slot struct {
	A Nonterminal
	K int
	J int
}

// NonterminalSlot builds the synthetic slot (A, -1, -1).
func NonterminalSlot(a Nonterminal) Slot {
	return Slot{A: a, K: -1, J: -1}
}

// IsNonterminalSlot reports whether s is the synthetic "any complete parse
// of A" slot.
func (s Slot) IsNonterminalSlot() bool {
	return s.K == -1 && s.J == -1
}

// Name renders the slot using the naming convention A_altK_posJ, or just A
// for the synthetic nonterminal slot.
func (s Slot) Name() string {
	if s.IsNonterminalSlot() {
		return string(s.A)
	}
	return fmt.Sprintf("%s_alt%d_pos%d", s.A, s.K, s.J)
}

func (s Slot) String() string {
	return s.Name()
}

// SlotInfo carries the two predicates the runtime needs, precomputed once
// per slot at grammar-analysis time.
type SlotInfo struct {
	Slot Slot
	// AlphaSpecial is true iff the parsed prefix (alternative[:J]) has
	// length 1 and its single symbol is either a terminal or a
	// non-nullable nonterminal.
	AlphaSpecial bool
	// BetaSpecial is true iff the dot is at the end of the alternative
	// (J == len(alternative)).
	BetaSpecial bool
}
