package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}

	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Errorf("Cover = %v, want 1:5-20", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}
	cases := []struct {
		off  uint32
		want bool
	}{
		{2, false},
		{3, true},
		{6, true},
		{7, false}, // half-open
	}
	for _, tc := range cases {
		if got := s.Contains(tc.off); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestSpanCovers(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 10}
	inner := Span{File: 0, Start: 2, End: 8}
	if !outer.Covers(inner) {
		t.Error("outer must cover inner")
	}
	if inner.Covers(outer) {
		t.Error("inner must not cover outer")
	}
	if !outer.Covers(outer) {
		t.Error("a span covers itself")
	}
}
