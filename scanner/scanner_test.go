package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHasNextAndAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.scanner")
	defer teardown()
	//
	s := New("ab日c")
	if !s.HasNext("ab") {
		t.Fatalf("expected HasNext(%q) to match", "ab")
	}
	s.Advance(2)
	if s.Position() != 2 {
		t.Fatalf("expected position 2, got %d", s.Position())
	}
	if !s.HasNext("日") {
		t.Fatalf("expected HasNext to match the code point at position 2")
	}
}

func TestPeekAndPeekBackwardClipAtBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.scanner")
	defer teardown()
	//
	s := New("xy")
	if got := s.Peek(5); got != "xy" {
		t.Fatalf("expected Peek to clip to %q, got %q", "xy", got)
	}
	s.SetPosition(2)
	if got := s.PeekBackward(5); got != "xy" {
		t.Fatalf("expected PeekBackward to clip to %q, got %q", "xy", got)
	}
	if got := s.PeekBackward(0); got != "" {
		t.Fatalf("expected empty PeekBackward(0), got %q", got)
	}
}

func TestGetSliceAndCodePointAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.scanner")
	defer teardown()
	//
	s := New("hello")
	if got := s.GetSlice(1, 4); got != "ell" {
		t.Fatalf("expected %q, got %q", "ell", got)
	}
	if got := s.GetSlice(3, 100); got != "lo" {
		t.Fatalf("expected clipped slice %q, got %q", "lo", got)
	}
	if r, ok := s.CodePointAt(0); !ok || r != 'h' {
		t.Fatalf("expected ('h', true), got (%q, %v)", r, ok)
	}
	if _, ok := s.CodePointAt(-1); ok {
		t.Fatalf("expected out-of-bounds CodePointAt to report false")
	}
	if _, ok := s.CodePointAt(5); ok {
		t.Fatalf("expected out-of-bounds CodePointAt to report false")
	}
}

func TestReachedEOI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gll.scanner")
	defer teardown()
	//
	s := New("a")
	if s.ReachedEOI() {
		t.Fatalf("expected not at EOI before advancing")
	}
	s.Advance(1)
	if !s.ReachedEOI() {
		t.Fatalf("expected EOI after advancing past the only code point")
	}
}
