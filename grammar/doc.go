/*
Package grammar implements the context-free grammar data model this module's
parser generator consumes: terminals (empty, literal, or character class),
nonterminals, alternatives, rules and a grammar as a whole, together with the
static analysis performed over it — nullability, FIRST, FOLLOW and TEST sets,
and GLL-block segmentation of alternatives.

A grammar is built either directly (NewGrammar) or with the fluent Builder,
mirroring the builder style used for LR grammars in this author's sibling
module, gorgo:

	g := grammar.NewBuilder("S").
		LHS("S").Alt().T("a").N("S").End().Alt().T("b").End().Alt().T("a").End().
		Grammar()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
