package interp

import (
	"sort"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/ir"
	"github.com/npillmayer/gll/scanner"
)

// matchResult describes a successful input-check match against the
// scanner's lookahead: which terminal matched, and over how many code
// points.
type matchResult struct {
	Sym    grammar.Terminal
	Length int
}

// matchInputCheck tests check against the scanner's current lookahead,
// preferring the longest literal match -- the length-bucketing of Literals
// exists precisely to make this preference cheap to compute.
func matchInputCheck(check ir.InputCheck, s *scanner.Scanner) (matchResult, bool) {
	lengths := make([]int, 0, len(check.Literals))
	for l := range check.Literals {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	for _, l := range lengths {
		cand := s.Peek(l)
		if len([]rune(cand)) != l {
			continue
		}
		for _, lit := range check.Literals[l] {
			if cand == lit {
				return matchResult{Sym: grammar.Lit(lit), Length: l}, true
			}
		}
	}
	if len(check.Ranges) > 0 {
		if r, ok := s.CodePointAt(s.Position()); ok {
			for _, set := range check.Ranges {
				if set.Contains(int(r)) {
					return matchResult{Sym: grammar.Class(set), Length: 1}, true
				}
			}
		}
	}
	if check.IncludesEmpty {
		return matchResult{Sym: grammar.Empty(), Length: 0}, true
	}
	return matchResult{}, false
}

// matchesContext reports whether the text/character produced by textAt and
// charAt satisfies one of check's literal or range alternatives.
func matchesContext(check ir.AmbiguityCheck, textAt func(int) string, charAt func() (rune, bool)) bool {
	for l, lits := range check.Literals {
		cand := textAt(l)
		if len([]rune(cand)) != l {
			continue
		}
		for _, lit := range lits {
			if cand == lit {
				return true
			}
		}
	}
	if len(check.Ranges) > 0 {
		if r, ok := charAt(); ok {
			for _, set := range check.Ranges {
				if set.Contains(int(r)) {
					return true
				}
			}
		}
	}
	return false
}

// evaluateInline evaluates a precede/not-precede/follow/not-follow check at
// the scanner's current position, for a Disambiguate statement executed
// inline inside a parse function's straight-line body.
func evaluateInline(check ir.AmbiguityCheck, s *scanner.Scanner) bool {
	var matched bool
	switch check.Kind {
	case ir.PrecedeKind:
		matched = matchesContext(check,
			func(l int) string { return s.PeekBackward(l) },
			func() (rune, bool) { return s.CodePointAt(s.Position() - 1) })
	case ir.FollowKind:
		matched = matchesContext(check,
			func(l int) string { return s.Peek(l) },
			func() (rune, bool) { return s.CodePointAt(s.Position()) })
	default:
		return true
	}
	if check.Negated {
		return !matched
	}
	return matched
}

// evaluateInPop evaluates a follow/not-follow/restriction check registered
// against a return slot, fired from the GSS pop primitive once the span
// [from, to) of the just-completed nonterminal derivation is known.
// Restriction forbids the derivation's own surface text from matching its
// payload; follow/not-follow constrain what comes immediately after it.
func evaluateInPop(check ir.AmbiguityCheck, s *scanner.Scanner, from, to int) bool {
	switch check.Kind {
	case ir.RestrictionKind:
		text := s.GetSlice(from, to)
		forbidden := matchesContext(check,
			func(l int) string {
				if len([]rune(text)) != l {
					return "\x00"
				}
				return text
			},
			func() (rune, bool) {
				r := []rune(text)
				if len(r) == 1 {
					return r[0], true
				}
				return 0, false
			})
		return !forbidden
	case ir.FollowKind:
		matched := matchesContext(check,
			func(l int) string { return s.GetSlice(to, to+l) },
			func() (rune, bool) { return s.CodePointAt(to) })
		if check.Negated {
			return !matched
		}
		return matched
	default:
		return true
	}
}
