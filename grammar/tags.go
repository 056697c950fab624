package grammar

import "fmt"

// TagKind discriminates the five disambiguation-tag kinds.
type TagKind int

const (
	Precede TagKind = iota
	NotPrecede
	Follow
	NotFollow
	Restriction
)

func (k TagKind) String() string {
	switch k {
	case Precede:
		return "precede"
	case NotPrecede:
		return "not_precede"
	case Follow:
		return "follow"
	case NotFollow:
		return "not_follow"
	case Restriction:
		return "restriction"
	default:
		return "?"
	}
}

// Tag is a triple (slot-position, kind, payload). It constrains the input
// around the dot position of that slot.
type Tag struct {
	Position Slot
	Kind     TagKind
	Payload  []Terminal // literals and/or character classes
}

// TagMap maps a grammar slot position to the list of tags attached there.
type TagMap map[Slot][]Tag

// NewTagMap builds an empty tag map.
func NewTagMap() TagMap {
	return make(TagMap)
}

// Add attaches a tag at position.
func (tm TagMap) Add(position Slot, kind TagKind, payload ...Terminal) {
	tm[position] = append(tm[position], Tag{Position: position, Kind: kind, Payload: payload})
}

// Validate checks that every tag position refers to an existing alternative
// and a dot position within bounds.
func (tm TagMap) Validate(g *Grammar) error {
	for pos := range tm {
		r, ok := g.Rules[pos.A]
		if !ok {
			return &Error{Nonterminal: pos.A, Msg: "tag references undefined nonterminal"}
		}
		if pos.K < 0 || pos.K >= len(r.Alternatives) {
			return &Error{Nonterminal: pos.A, Msg: fmt.Sprintf("tag references nonexistent alternative %d", pos.K)}
		}
		if pos.J < 0 || pos.J > len(r.Alternatives[pos.K]) {
			return &Error{Nonterminal: pos.A, Msg: fmt.Sprintf("tag references out-of-range dot position %d", pos.J)}
		}
	}
	return nil
}

// IsInPop reports whether a tag at this position must be registered as an
// in-pop check rather than evaluated inline: restriction is always in-pop;
// precede and not-precede are never in-pop (they are evaluated before
// consuming the symbol at the dot); follow and not-follow are in-pop iff the
// symbol at the dot is a nonterminal.
func (t Tag) IsInPop(alt Alternative) bool {
	switch t.Kind {
	case Restriction:
		return true
	case Precede, NotPrecede:
		return false
	case Follow, NotFollow:
		if t.Position.J >= len(alt) {
			return true // no symbol at the dot: only reachable via the synthetic tail, which is itself a pop
		}
		return !alt[t.Position.J].IsTerminal()
	}
	return false
}
