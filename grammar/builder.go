package grammar

import "github.com/npillmayer/gll/ranges"

// Builder assembles a Grammar with a fluent API, mirroring the builder style
// gorgo uses for LR grammars (lr.NewGrammarBuilder).
type Builder struct {
	g       *Grammar
	lhs     Nonterminal
	current Alternative
	started bool
}

// NewBuilder starts a grammar builder with the given start nonterminal.
func NewBuilder(start Nonterminal) *Builder {
	return &Builder{g: NewGrammar(start)}
}

// LHS selects (or introduces) the nonterminal alternatives are added to
// until the next LHS call.
func (b *Builder) LHS(nt Nonterminal) *Builder {
	b.flush()
	b.lhs = nt
	return b
}

// Alt starts a new alternative for the current LHS.
func (b *Builder) Alt() *Builder {
	b.flush()
	b.started = true
	b.current = Alternative{}
	return b
}

// T appends a literal terminal to the current alternative.
func (b *Builder) T(lit string) *Builder {
	b.current = append(b.current, T(Lit(lit)))
	return b
}

// Class appends a character-class terminal to the current alternative.
func (b *Builder) Class(set *ranges.Set) *Builder {
	b.current = append(b.current, T(Class(set)))
	return b
}

// Eps appends an Empty terminal to the current alternative.
func (b *Builder) Eps() *Builder {
	b.current = append(b.current, T(Empty()))
	return b
}

// N appends a nonterminal reference to the current alternative.
func (b *Builder) N(nt Nonterminal) *Builder {
	b.current = append(b.current, N(nt))
	return b
}

// End closes the current alternative. It is optional: the next Alt, LHS or
// Grammar call flushes implicitly.
func (b *Builder) End() *Builder {
	b.flush()
	return b
}

func (b *Builder) flush() {
	if b.started {
		alt := b.current
		if len(alt) == 0 {
			alt = Alternative{T(Empty())}
		}
		b.g.AddRule(b.lhs, alt)
		b.started = false
		b.current = nil
	}
}

// Grammar finalizes and returns the built grammar.
func (b *Builder) Grammar() *Grammar {
	b.flush()
	return b.g
}
