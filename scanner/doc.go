/*
Package scanner implements a scanner over an immutable sequence of Unicode
code points, with a mutable position cursor that can be both read and set --
necessary to restore a suspended descriptor's scanner position when the GLL
main loop resumes it (§4.5, §4.6).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scanner

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
