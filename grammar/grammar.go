package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gll/ranges"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Nonterminal is an identifier, distinct from any terminal.
type Nonterminal string

// TerminalKind discriminates the three terminal variants.
type TerminalKind int

const (
	// EmptyTerminal matches the zero-length string.
	EmptyTerminal TerminalKind = iota
	// LiteralTerminal matches a fixed, non-empty code-point sequence.
	LiteralTerminal
	// ClassTerminal matches exactly one code point from a character class.
	ClassTerminal
)

func (k TerminalKind) String() string {
	switch k {
	case EmptyTerminal:
		return "ε"
	case LiteralTerminal:
		return "literal"
	case ClassTerminal:
		return "class"
	default:
		return "?"
	}
}

// Terminal is a tagged variant: Empty, Literal(s), or Class(set). Equality is
// structural.
type Terminal struct {
	Kind    TerminalKind
	Literal string      // valid iff Kind == LiteralTerminal
	Class   *ranges.Set // valid iff Kind == ClassTerminal
}

// Empty constructs the Empty terminal.
func Empty() Terminal { return Terminal{Kind: EmptyTerminal} }

// Lit constructs a Literal terminal. s must be non-empty.
func Lit(s string) Terminal {
	if s == "" {
		panic("grammar: literal terminal must be non-empty")
	}
	return Terminal{Kind: LiteralTerminal, Literal: s}
}

// Class constructs a character-class terminal from an integer-range set over
// Unicode scalar values.
func Class(set *ranges.Set) Terminal {
	return Terminal{Kind: ClassTerminal, Class: set}
}

// Equal reports structural equality of two terminals.
func (t Terminal) Equal(o Terminal) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case EmptyTerminal:
		return true
	case LiteralTerminal:
		return t.Literal == o.Literal
	case ClassTerminal:
		return t.Class.Equal(o.Class)
	}
	return false
}

func (t Terminal) String() string {
	switch t.Kind {
	case EmptyTerminal:
		return "ε"
	case LiteralTerminal:
		return fmt.Sprintf("%q", t.Literal)
	case ClassTerminal:
		return t.Class.String()
	}
	return "?"
}

// Symbol is Terminal ∪ Nonterminal.
type Symbol struct {
	isTerminal bool
	term       Terminal
	nonterm    Nonterminal
}

// T wraps a Terminal as a Symbol.
func T(t Terminal) Symbol { return Symbol{isTerminal: true, term: t} }

// N wraps a Nonterminal as a Symbol.
func N(nt Nonterminal) Symbol { return Symbol{isTerminal: false, nonterm: nt} }

// IsTerminal reports whether the symbol is a terminal.
func (s Symbol) IsTerminal() bool { return s.isTerminal }

// Terminal returns the wrapped terminal. Only valid if IsTerminal().
func (s Symbol) Terminal() Terminal { return s.term }

// Nonterminal returns the wrapped nonterminal. Only valid if !IsTerminal().
func (s Symbol) Nonterminal() Nonterminal { return s.nonterm }

// Equal reports structural equality of two symbols.
func (s Symbol) Equal(o Symbol) bool {
	if s.isTerminal != o.isTerminal {
		return false
	}
	if s.isTerminal {
		return s.term.Equal(o.term)
	}
	return s.nonterm == o.nonterm
}

func (s Symbol) String() string {
	if s.isTerminal {
		return s.term.String()
	}
	return string(s.nonterm)
}

// Alternative is an ordered, finite sequence of symbols: one right-hand side
// of a rule.
type Alternative []Symbol

// IsNullOnly reports whether the alternative consists only of Empty
// terminals.
func (a Alternative) IsNullOnly() bool {
	for _, sym := range a {
		if !sym.isTerminal || sym.term.Kind != EmptyTerminal {
			return false
		}
	}
	return true
}

func (a Alternative) String() string {
	if len(a) == 0 {
		return "ε"
	}
	parts := make([]string, len(a))
	for i, sym := range a {
		parts[i] = sym.String()
	}
	return strings.Join(parts, " ")
}

// Rule maps a nonterminal to its non-empty, ordered tuple of alternatives.
type Rule struct {
	LHS          Nonterminal
	Alternatives []Alternative
}

// Grammar is a start nonterminal plus a mapping from nonterminal to rule.
// Invariant, enforced by Validate: every nonterminal referenced in any
// alternative has a rule; the start nonterminal has a rule.
type Grammar struct {
	Start Nonterminal
	Rules map[Nonterminal]*Rule
	// order records nonterminals in the sequence rules were added, so that
	// iteration (error messages, pretty-printing, IR generation) is
	// deterministic without relying on Go's randomized map order.
	order []Nonterminal
}

// NewGrammar constructs an (initially empty) grammar with the given start
// symbol.
func NewGrammar(start Nonterminal) *Grammar {
	return &Grammar{Start: start, Rules: make(map[Nonterminal]*Rule)}
}

// AddRule adds or extends the rule for lhs with the given alternatives.
func (g *Grammar) AddRule(lhs Nonterminal, alts ...Alternative) {
	r, ok := g.Rules[lhs]
	if !ok {
		r = &Rule{LHS: lhs}
		g.Rules[lhs] = r
		g.order = append(g.order, lhs)
	}
	r.Alternatives = append(r.Alternatives, alts...)
}

// Nonterminals returns all nonterminals with a rule, in the order they were
// first added.
func (g *Grammar) Nonterminals() []Nonterminal {
	return append([]Nonterminal(nil), g.order...)
}

// Error reports a grammar-construction defect: an undefined nonterminal
// reference or a tag referencing a nonexistent slot position. It is raised
// eagerly, before any input is seen, matching the "grammar error" outcome.
type Error struct {
	Nonterminal Nonterminal
	Msg         string
}

func (e *Error) Error() string {
	return fmt.Sprintf("grammar error at %s: %s", e.Nonterminal, e.Msg)
}

// Validate checks that the start nonterminal and every nonterminal
// referenced in any alternative has a rule.
func (g *Grammar) Validate() error {
	if _, ok := g.Rules[g.Start]; !ok {
		return &Error{Nonterminal: g.Start, Msg: "start nonterminal has no rule"}
	}
	for _, nt := range g.order {
		for _, alt := range g.Rules[nt].Alternatives {
			for _, sym := range alt {
				if sym.IsTerminal() {
					continue
				}
				if _, ok := g.Rules[sym.Nonterminal()]; !ok {
					return &Error{Nonterminal: nt, Msg: fmt.Sprintf("references undefined nonterminal %s", sym.Nonterminal())}
				}
			}
		}
	}
	return nil
}

// ReachableNonterminals computes the set of nonterminals reachable from the
// start symbol by following nonterminal references in alternatives.
func (g *Grammar) ReachableNonterminals() map[Nonterminal]bool {
	seen := map[Nonterminal]bool{}
	var visit func(nt Nonterminal)
	visit = func(nt Nonterminal) {
		if seen[nt] {
			return
		}
		seen[nt] = true
		r, ok := g.Rules[nt]
		if !ok {
			return
		}
		for _, alt := range r.Alternatives {
			for _, sym := range alt {
				if !sym.IsTerminal() {
					visit(sym.Nonterminal())
				}
			}
		}
	}
	visit(g.Start)
	names := maps.Keys(seen)
	slices.Sort(names)
	tracer().Debugf("grammar.ReachableNonterminals: %d of %d nonterminals reachable: %v",
		len(seen), len(g.order), names)
	return seen
}

// Compress drops every nonterminal unreachable from the start symbol. It
// mutates and returns g.
func (g *Grammar) Compress() *Grammar {
	reachable := g.ReachableNonterminals()
	newOrder := make([]Nonterminal, 0, len(g.order))
	for _, nt := range g.order {
		if reachable[nt] {
			newOrder = append(newOrder, nt)
		} else {
			delete(g.Rules, nt)
			tracer().Infof("grammar.Compress: dropping unreachable nonterminal %s", nt)
		}
	}
	g.order = newOrder
	return g
}

// Normalize rewrites every alternative so that an Empty terminal only ever
// appears as the sole symbol of a null-only alternative, which simplifies
// GLL-block segmentation downstream. It mutates and returns g.
func (g *Grammar) Normalize() *Grammar {
	for _, nt := range g.order {
		r := g.Rules[nt]
		out := make([]Alternative, 0, len(r.Alternatives))
		for _, alt := range r.Alternatives {
			filtered := make(Alternative, 0, len(alt))
			for _, sym := range alt {
				if sym.isTerminal && sym.term.Kind == EmptyTerminal && len(alt) > 1 {
					continue // drop redundant ε among other symbols
				}
				filtered = append(filtered, sym)
			}
			if len(filtered) == 0 {
				filtered = Alternative{T(Empty())}
			}
			out = append(out, filtered)
		}
		r.Alternatives = out
	}
	return g
}

func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "start: %s\n", g.Start)
	for _, nt := range g.order {
		r := g.Rules[nt]
		for k, alt := range r.Alternatives {
			fmt.Fprintf(&b, "%s -> %s   // alt %d\n", nt, alt, k)
		}
	}
	return b.String()
}
