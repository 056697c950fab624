/*
Package engine implements the GLL runtime proper: the descriptor worklist,
seen-set, popped map, GSS, SPPF node tables and the working registers
c_u/c_n/c_r/position, together with the four primitive operations the
generated (or interpreted) parse functions call: add, create, pop and the
two getNode constructors. This is "the core of the core" (§2.6): correctness
and complexity bounds of the whole module live here.

Dispatch from a grammar slot to the parse function that implements it is
deliberately left abstract (the Dispatcher interface) so that this package
depends on neither the IR (package ir) nor the interpreter (package interp)
that executes it -- only on the grammar and SPPF/GSS data models.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package engine

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
