/*
Package ranges implements an integer-range set (IRS): a canonicalized union of
closed integer ranges over a fixed universe, with complement, union,
intersection and difference. It is used throughout this module for character
classes and for lookahead/lookbehind terminal sets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ranges

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
