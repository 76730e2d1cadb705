package source

import "testing"

func TestAddVirtualAndText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.vn", []byte("struct Point {}\n"))

	file := fs.Get(id)
	if file == nil {
		t.Fatal("expected file")
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if got := fs.Text(Span{File: id, Start: 7, End: 12}); got != "Point" {
		t.Errorf("Text = %q, want %q", got, "Point")
	}
}

func TestLineColAt(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.vn", []byte("one\ntwo\nthree\n"))
	file := fs.Get(id)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{8, 3, 1},
		{12, 3, 5},
	}
	for _, tc := range cases {
		got := file.LineColAt(tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("LineColAt(%d) = %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Error("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("got %q", out)
	}

	clean := []byte("no carriage returns")
	out, changed = normalizeCRLF(clean)
	if changed || string(out) != string(clean) {
		t.Errorf("clean input must pass through, got %q changed=%v", out, changed)
	}
}

func TestLoadRevisions(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("same.vn", []byte("v1"))
	second := fs.AddVirtual("same.vn", []byte("v2"))

	if first == second {
		t.Fatal("revisions must get distinct IDs")
	}
	file, ok := fs.GetByPath("same.vn")
	if !ok {
		t.Fatal("path must resolve")
	}
	if string(file.Content) != "v2" {
		t.Errorf("index must point at latest revision, got %q", file.Content)
	}
}
