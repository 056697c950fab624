/*
Package ir defines the parser-definition intermediate representation that a
grammar plus a tag map is lowered into (see package irgen): a grammar-slot
table, an input-check table (literal/range), an ambiguity-check table, a
parse-function table (each function a straight-line list of statements), and
a slot-to-function goto map.

Two back-ends consume a *ParserDefinition*: package interp interprets it
directly; an external code emitter (out of scope for this module) would
print it as source in some host language.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ir

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
