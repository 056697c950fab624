/*
Package relation implements closures over finite mathematical relations: a
relation is a set of pairs (x, y) drawn from a carrier; this package computes
reflexive, symmetric and transitive closures of such a set. It is used by
grammar analysis to compute FIRST sets via the "begins-with" relation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package relation

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
