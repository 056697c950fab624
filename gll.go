package gll

import "fmt"

// Pos is an input position, counted in code points (not bytes).
type Pos = int

// Span denotes a half-open range [From, To) of code-point positions in the
// input. Every SPPF node tracks the span of input it covers.
type Span [2]Pos // (x…y)

// MakeSpan creates a span from…to.
func MakeSpan(from, to Pos) Span {
	return Span{from, to}
}

// From returns the start position of a span.
func (s Span) From() Pos {
	return s[0]
}

// To returns the end position of a span (exclusive).
func (s Span) To() Pos {
	return s[1]
}

// Len returns the length of (x…y).
func (s Span) Len() Pos {
	return s[1] - s[0]
}

// IsNull returns true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend grows s to cover other as well.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
