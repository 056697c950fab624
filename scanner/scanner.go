package scanner

// Scanner holds an immutable code-point sequence and a mutable position
// cursor, counted in code points (not bytes).
type Scanner struct {
	input []rune
	pos   int
}

// New creates a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: []rune(input)}
}

// Len returns the total number of code points in the input.
func (s *Scanner) Len() int {
	return len(s.input)
}

// Position returns the current cursor position.
func (s *Scanner) Position() int {
	return s.pos
}

// SetPosition restores the cursor to pos, used when the main loop resumes a
// suspended descriptor.
func (s *Scanner) SetPosition(pos int) {
	s.pos = pos
}

// ReachedEOI reports whether the cursor is at or past the end of input.
func (s *Scanner) ReachedEOI() bool {
	return s.pos >= len(s.input)
}

// HasNext reports whether the input starting at the current position
// equals literal.
func (s *Scanner) HasNext(literal string) bool {
	lit := []rune(literal)
	if s.pos+len(lit) > len(s.input) {
		return false
	}
	for i, r := range lit {
		if s.input[s.pos+i] != r {
			return false
		}
	}
	return true
}

// Peek returns the slice of up to n code points starting at the current
// position (peek_forward).
func (s *Scanner) Peek(n int) string {
	end := s.pos + n
	if end > len(s.input) {
		end = len(s.input)
	}
	if end <= s.pos {
		return ""
	}
	return string(s.input[s.pos:end])
}

// PeekBackward returns the slice of up to n code points ending at the
// current position.
func (s *Scanner) PeekBackward(n int) string {
	start := s.pos - n
	if start < 0 {
		start = 0
	}
	if start >= s.pos {
		return ""
	}
	return string(s.input[start:s.pos])
}

// GetSlice returns the code points in [a, b), clipped to the input bounds.
func (s *Scanner) GetSlice(a, b int) string {
	if a < 0 {
		a = 0
	}
	if b > len(s.input) {
		b = len(s.input)
	}
	if a >= b {
		return ""
	}
	return string(s.input[a:b])
}

// Advance moves the cursor forward by n code points.
func (s *Scanner) Advance(n int) {
	s.pos += n
	tracer().Debugf("scanner.Advance(%d) -> position %d", n, s.pos)
}

// CodePointAt returns the single code point at position, and whether
// position was in bounds.
func (s *Scanner) CodePointAt(position int) (rune, bool) {
	if position < 0 || position >= len(s.input) {
		return 0, false
	}
	return s.input[position], true
}
