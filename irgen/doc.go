/*
Package irgen lowers a *grammar.Grammar (together with its *grammar.Analysis
and a grammar.TagMap) into a *ir.ParserDefinition: one parse function per GLL
block of every alternative, plus one start function per nonterminal that
tests each alternative's TEST set against the current lookahead. Ambiguity
tags attached at grammar positions become either inline disambiguation
statements or post-pop checks registered against the nonterminal's return
slot, exactly as described in §4.4 of this module's specification.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package irgen

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
