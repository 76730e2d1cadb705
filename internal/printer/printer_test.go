package printer

import (
	"testing"

	"stylist/internal/reformat"
	"stylist/internal/syntax"
	"stylist/internal/testkit"
)

func parse(t *testing.T, src string) *syntax.Tree {
	t.Helper()
	tree, _ := testkit.MustParse(t, src)
	return tree
}

func TestRoundTripExact(t *testing.T) {
	cases := []string{
		"pub struct P {\n    int a, b;\n}\n",
		"// header\npub struct S {\n\t///docs\n\tpub prop name: str;\n}\n",
		"pub struct S {\n    fn go(int x) {\n        if (x == 1) { return; } else { x = 2; }\n    }\n}\n",
		"pub struct S {\n    fn go() {\n        switch (k) {\n        case 1:\n            break;\n        }\n    }\n}\n",
	}
	for _, src := range cases {
		tree := parse(t, src)
		if got := Print(tree); got != src {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", got, src)
		}
	}
}

func TestReflowIndentation(t *testing.T) {
	src := "pub struct S {\n    fn go() {\n        if (x == 1) {\nreturn;\n}\n    }\n}\n"
	tree := parse(t, src)

	var ifStmt syntax.NodeID
	var walk func(id syntax.NodeID)
	walk = func(id syntax.NodeID) {
		if tree.Kind(id) == syntax.KindIfStmt {
			ifStmt = id
			return
		}
		for _, child := range tree.Children(id) {
			walk(child)
		}
	}
	walk(tree.Root())
	if !ifStmt.IsValid() {
		t.Fatal("no if stmt")
	}

	got := PrintWith(tree, reformat.NewSet(ifStmt), Options{})
	want := "pub struct S {\n    fn go() {\n        if (x == 1) {\n            return;\n        }\n    }\n}\n"
	if got != want {
		t.Errorf("reflow:\n got %q\nwant %q", got, want)
	}
}

func TestReflowSwitchCaseIndentation(t *testing.T) {
	src := "fn f() {\nswitch (x) {\ncase 1:\nbreak;\ndefault:\nbreak;\n}\n}\n"
	tree := parse(t, src)

	var sw syntax.NodeID
	var walk func(id syntax.NodeID)
	walk = func(id syntax.NodeID) {
		if tree.Kind(id) == syntax.KindSwitchStmt {
			sw = id
			return
		}
		for _, child := range tree.Children(id) {
			walk(child)
		}
	}
	walk(tree.Root())
	if !sw.IsValid() {
		t.Fatal("no switch stmt")
	}

	got := PrintWith(tree, reformat.NewSet(sw), Options{})
	want := "fn f() {\n    switch (x) {\n    case 1:\n        break;\n    default:\n        break;\n    }\n}\n"
	if got != want {
		t.Errorf("reflow:\n got %q\nwant %q", got, want)
	}
}

func TestReflowLeavesRestAlone(t *testing.T) {
	src := "pub struct S {\n        int weird;\n    fn go() {\nreturn;\n    }\n}\n"
	tree := parse(t, src)

	// no hints: output must be byte-identical
	if got := PrintWith(tree, reformat.NewSet(), Options{}); got != src {
		t.Errorf("unhinted print must be exact:\n got %q\nwant %q", got, src)
	}
}
