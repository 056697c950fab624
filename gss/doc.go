/*
Package gss implements the Graph-Structured Stack: a directed graph over
GSSRef = (grammar slot, input position), with edges labeled by the SPPF node
that was the top-of-stack label at the moment the edge was created. Multiple
parallel parses share structure by merging at identical GSSRefs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package gss

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
