/*
Package sppf implements the Shared Packed Parse Forest: the three node kinds
-- terminal, intermediate and packed -- plus a Forest arena that
canonicalizes them exactly as required for ambiguity sharing (a beta-special
intermediate node collapses to identity (A, l, r), independent of which
alternative completed), and a Cursor/Listener pair for traversing the
resulting DAG.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sppf

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
