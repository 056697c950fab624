/*
Package gll is a general context-free parser generator and runtime, based on
the GLL (Generalized LL) algorithm with binary-subtree Shared Packed Parse
Forest (SPPF) output.

GLL accepts arbitrary context-free grammars, including ambiguous,
left-recursive and nullable ones, together with optional disambiguation tags
(lookahead, lookbehind and content-restriction constraints attached to
specific grammar positions). Package structure is as follows:

■ ranges: Package ranges implements an integer-range set (IRS), used for
character classes and lookahead sets.

■ relation: Package relation implements closures over finite relations,
used by grammar analysis.

■ grammar: Package grammar implements the context-free grammar data model,
nullability/FIRST/FOLLOW/TEST-set analysis and GLL-block segmentation.

■ ir: Package ir defines the parser-definition intermediate representation
that a grammar plus tags is lowered into.

■ irgen: Package irgen lowers a grammar and a tag map into a parser IR.

■ sppf: Package sppf implements the Shared Packed Parse Forest node types
and a Forest arena, plus tree/forest traversal.

■ gss: Package gss implements the Graph-Structured Stack.

■ scanner: Package scanner implements a code-point scanner over immutable
input.

■ engine: Package engine implements the GLL runtime: descriptor worklist,
main loop and SPPF construction.

■ interp: Package interp implements a thin interpreter back-end which
executes a parser IR directly, without generating source code.

The root package contains small value types shared across all of the above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package gll
