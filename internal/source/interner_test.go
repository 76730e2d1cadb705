package source

import "testing"

func TestInternerDedup(t *testing.T) {
	in := NewInterner()

	a := in.Intern("width")
	b := in.Intern("width")
	if a != b {
		t.Errorf("same string must intern to one ID: %d vs %d", a, b)
	}
	if c := in.Intern("height"); c == a {
		t.Error("distinct strings must not share an ID")
	}

	s, ok := in.Lookup(a)
	if !ok || s != "width" {
		t.Errorf("Lookup = %q, %v", s, ok)
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string must map to NoStringID, got %d", id)
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner holds only the sentinel, Len = %d", in.Len())
	}
}

func TestInternerNFC(t *testing.T) {
	in := NewInterner()
	// "é" precomposed vs combining sequence
	composed := in.Intern("café")
	decomposed := in.Intern("café")
	if composed != decomposed {
		t.Errorf("NFC-equal strings must intern to one ID: %d vs %d", composed, decomposed)
	}
}
