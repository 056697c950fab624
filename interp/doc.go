/*
Package interp implements engine.Dispatcher by directly walking the
straight-line statement lists of a package ir ParserDefinition, rather than
emitting and compiling Go source for them. It is the tree-walking sibling of
the (out of scope) code-generating back-end mentioned by this module's
specification: both consume the same ir.ParserDefinition, this one simply
executes it instead of translating it.

The two families of runtime check the IR distinguishes -- input checks
(literal/range lookahead tests) and ambiguity checks (precede/follow/
restriction) -- are evaluated here against a scanner, since neither concept
exists in package engine or package ir themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package interp

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
