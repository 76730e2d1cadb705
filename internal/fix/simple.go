package fix

import (
	"stylist/internal/reformat"
	"stylist/internal/source"
	"stylist/internal/syntax"
	"stylist/internal/token"
)

// The simple rewrites each replace exactly one node or trivia piece and hint
// the replacement for re-flow. All of them are idempotent: applied to their
// own output they change nothing, and re-evaluation reports no finding at
// the fixed location.

func newlineTrivia() []token.Trivia {
	return []token.Trivia{{Kind: token.TriviaNewline, Text: "\n"}}
}

func spaceTrivia() []token.Trivia {
	return []token.Trivia{{Kind: token.TriviaSpace, Text: " "}}
}

// withFirstLeading clones the spine down to the first leaf of id, giving
// that leaf the replacement leading trivia. Every other subtree is shared.
func withFirstLeading(t *syntax.Tree, id syntax.NodeID, lead []token.Trivia) syntax.NodeID {
	n := t.Node(id)
	if n.IsLeaf() {
		return t.AllocLeaf(t.Token(n.Token).WithLeading(lead))
	}
	kids := append([]syntax.NodeID(nil), t.Children(id)...)
	kids[0] = withFirstLeading(t, kids[0], lead)
	return t.AllocNode(n.Kind, kids...)
}

// rewriteMoveToNewLine puts the embedded statement on its own line by
// setting its leading formatting to a single line break. The re-flow hint
// supplies the indentation.
func rewriteMoveToNewLine(t *syntax.Tree, node syntax.NodeID, anchor source.Span) (*syntax.Tree, reformat.Set, error) {
	leaf := t.FirstLeaf(node)
	if !leaf.IsValid() {
		return nil, nil, ErrAnchorNotFound
	}
	if t.LeafToken(leaf).HasLeadingNewline() {
		return t, reformat.NewSet(), nil
	}
	kind := t.Kind(node)
	repl := withFirstLeading(t, node, newlineTrivia())
	next, err := t.ReplaceNode(node, repl)
	if err != nil {
		return nil, nil, err
	}
	return next, reformat.NewSet(next.CoveringOfKind(anchor, kind)), nil
}

// rewriteCanonicalEmptyString replaces an empty string literal initializer
// with str.empty, keeping one leading space.
func rewriteCanonicalEmptyString(t *syntax.Tree, node syntax.NodeID, anchor source.Span) (*syntax.Tree, reformat.Set, error) {
	repl := t.AllocNode(syntax.KindMemberExpr,
		t.AllocLeaf(token.Token{Kind: token.Ident, Span: anchor, Text: "str", Leading: spaceTrivia()}),
		t.AllocLeaf(token.Token{Kind: token.Dot, Span: anchor, Text: "."}),
		t.AllocLeaf(token.Token{Kind: token.Ident, Span: anchor, Text: "empty"}),
	)
	next, err := t.ReplaceNode(node, repl)
	if err != nil {
		return nil, nil, err
	}
	return next, reformat.NewSet(next.CoveringOfKind(anchor, syntax.KindMemberExpr)), nil
}

// rewriteInsertCommentSpace inserts one space after the leading slash run of
// the comment trivia at the anchor. Text without a recognizable slash run is
// ErrMalformedTrivia; an already spaced comment is left alone.
func rewriteInsertCommentSpace(t *syntax.Tree, node syntax.NodeID, anchor source.Span) (*syntax.Tree, reformat.Set, error) {
	tok := t.LeafToken(node)
	idx := -1
	for i, tr := range tok.Leading {
		if tr.IsComment() && (tr.Span.Contains(anchor.Start) || tr.Span.Start == anchor.Start) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil, ErrAnchorNotFound
	}

	text := tok.Leading[idx].Text
	run := 0
	for run < len(text) && text[run] == '/' {
		run++
	}
	if run < 2 {
		return nil, nil, ErrMalformedTrivia
	}
	if run == len(text) || text[run] == ' ' || text[run] == '\t' {
		return t, reformat.NewSet(), nil
	}

	leading := append([]token.Trivia(nil), tok.Leading...)
	leading[idx].Text = text[:run] + " " + text[run:]
	repl := t.AllocLeaf(tok.WithLeading(leading))
	next, err := t.ReplaceNode(node, repl)
	if err != nil {
		return nil, nil, err
	}
	return next, reformat.NewSet(repl), nil
}

// rewriteMakeImplicit replaces the explicit type name with the var keyword.
// The whole type name node goes away so the declaration reads as inferred.
func rewriteMakeImplicit(t *syntax.Tree, node syntax.NodeID, anchor source.Span) (*syntax.Tree, reformat.Set, error) {
	first := t.FirstLeaf(node)
	if !first.IsValid() {
		return nil, nil, ErrAnchorNotFound
	}
	lead := t.LeafToken(first).Leading
	repl := t.AllocLeaf(token.Token{Kind: token.KwVar, Span: anchor, Text: "var"}.WithLeading(lead))
	next, err := t.ReplaceNode(node, repl)
	if err != nil {
		return nil, nil, err
	}
	return next, reformat.NewSet(repl), nil
}
