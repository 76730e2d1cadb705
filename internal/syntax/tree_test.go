package syntax

import (
	"testing"

	"stylist/internal/source"
	"stylist/internal/token"
)

// buildTree hand-assembles a file with two statements so sharing across
// revisions is observable by node identity:
//
//	a ; b ;
func buildTree() (*Tree, NodeID, NodeID) {
	t := NewTree(1, 16)
	leaf := func(kind token.Kind, text string, start uint32) NodeID {
		return t.AllocLeaf(token.Token{
			Kind: kind,
			Span: source.Span{File: 1, Start: start, End: start + uint32(len(text))},
			Text: text,
		})
	}
	stmtA := t.AllocNode(KindExprStmt, leaf(token.Ident, "a", 0), leaf(token.Semicolon, ";", 2))
	stmtB := t.AllocNode(KindExprStmt, leaf(token.Ident, "b", 4), leaf(token.Semicolon, ";", 6))
	root := t.AllocNode(KindFile, stmtA, stmtB)
	t.SetRoot(root)
	return t, stmtA, stmtB
}

func TestReplaceNodeSharesSiblings(t *testing.T) {
	tree, stmtA, stmtB := buildTree()

	repl := tree.AllocNode(KindExprStmt,
		tree.AllocLeaf(token.Token{
			Kind: token.Ident,
			Span: source.Span{File: 1, Start: 0, End: 1},
			Text: "c",
		}),
		tree.AllocLeaf(token.Token{
			Kind: token.Semicolon,
			Span: source.Span{File: 1, Start: 2, End: 3},
			Text: ";",
		}),
	)
	next, err := tree.ReplaceNode(stmtA, repl)
	if err != nil {
		t.Fatalf("ReplaceNode: %v", err)
	}

	if next.Root() == tree.Root() {
		t.Error("new revision reused the old root")
	}
	kids := next.Children(next.Root())
	if len(kids) != 2 {
		t.Fatalf("root has %d children", len(kids))
	}
	if kids[0] != repl {
		t.Errorf("first child = %d, want replacement %d", kids[0], repl)
	}
	// The untouched statement keeps its identity across revisions.
	if kids[1] != stmtB {
		t.Errorf("second child = %d, want shared %d", kids[1], stmtB)
	}

	// The old revision still reads the original shape.
	if got := tree.Text(tree.Root()); got != "a;b;" {
		t.Errorf("old revision text = %q", got)
	}
	if got := next.Text(next.Root()); got != "c;b;" {
		t.Errorf("new revision text = %q", got)
	}
}

func TestReplaceNodeRoot(t *testing.T) {
	tree, stmtA, _ := buildTree()

	next, err := tree.ReplaceNode(tree.Root(), stmtA)
	if err != nil {
		t.Fatalf("ReplaceNode: %v", err)
	}
	if next.Root() != stmtA {
		t.Errorf("root = %d, want %d", next.Root(), stmtA)
	}
}

func TestReplaceNodeUnreachable(t *testing.T) {
	tree, stmtA, _ := buildTree()

	if _, err := tree.ReplaceNode(NodeID(999), stmtA); err != ErrNotInTree {
		t.Errorf("err = %v, want ErrNotInTree", err)
	}
}

func TestLeafAtAndCovering(t *testing.T) {
	tree, stmtA, stmtB := buildTree()

	leaf := tree.LeafAt(4)
	if !leaf.IsValid() || tree.LeafToken(leaf).Text != "b" {
		t.Fatalf("LeafAt(4) = %v", leaf)
	}
	anchor := source.Span{File: 1, Start: 4, End: 5}
	if got := tree.CoveringOfKind(anchor, KindExprStmt); got != stmtB {
		t.Errorf("CoveringOfKind = %d, want %d", got, stmtB)
	}
	if got := tree.CoveringWhere(anchor, func(k Kind) bool { return k == KindFile }); got != tree.Root() {
		t.Errorf("CoveringWhere(file) = %d, want root", got)
	}
	if got := tree.CoveringOfKind(source.Span{File: 1, Start: 0, End: 1}, KindExprStmt); got != stmtA {
		t.Errorf("CoveringOfKind at 0 = %d, want %d", got, stmtA)
	}
}

func TestLeafHoldingTrivia(t *testing.T) {
	tree := NewTree(1, 4)
	leaf := tree.AllocLeaf(token.Token{
		Kind: token.Ident,
		Span: source.Span{File: 1, Start: 8, End: 9},
		Text: "x",
		Leading: []token.Trivia{{
			Kind: token.TriviaLineComment,
			Span: source.Span{File: 1, Start: 0, End: 7},
			Text: "// note",
		}},
	})
	tree.SetRoot(tree.AllocNode(KindFile, leaf))

	if got := tree.LeafHoldingTrivia(3); got != leaf {
		t.Errorf("LeafHoldingTrivia(3) = %d, want %d", got, leaf)
	}
	if got := tree.LeafHoldingTrivia(20); got.IsValid() {
		t.Errorf("LeafHoldingTrivia(20) = %d, want invalid", got)
	}
}
