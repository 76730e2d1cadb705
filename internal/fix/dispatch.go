package fix

import (
	"stylist/internal/reformat"
	"stylist/internal/source"
	"stylist/internal/syntax"
	"stylist/internal/token"
)

// rewriteChainToSwitch replaces an if/else-if chain with a switch over the
// chain's discriminator. Cases come out in source order, preserving
// first-match-wins, and each non-terminating body gets an explicit break.
// Bodies and match expressions are shared with the old revision wherever the
// rewrite does not need to touch their formatting.
func rewriteChainToSwitch(t *syntax.Tree, node syntax.NodeID, anchor source.Span) (*syntax.Tree, reformat.Set, error) {
	chain, err := syntax.AnalyzeChain(t, node)
	if err != nil {
		return nil, nil, err
	}

	b := dispatchBuilder{t: t, anchor: anchor}

	rootLead := t.LeafToken(t.FirstLeaf(chain.Root)).Leading
	kids := []syntax.NodeID{
		b.leaf(token.KwSwitch, "switch", rootLead),
		b.leaf(token.LParen, "(", spaceTrivia()),
		withFirstLeading(t, chain.Disc, nil),
		b.leaf(token.RParen, ")", nil),
		b.leaf(token.LBrace, "{", spaceTrivia()),
	}
	for _, link := range chain.Links {
		kids = append(kids, b.caseNode(link.Match, link.Body))
	}
	if chain.Default.IsValid() {
		kids = append(kids, b.defaultNode(chain.Default))
	}
	kids = append(kids, b.leaf(token.RBrace, "}", newlineTrivia()))

	repl := t.AllocNode(syntax.KindSwitchStmt, kids...)
	next, err := t.ReplaceNode(chain.Root, repl)
	if err != nil {
		return nil, nil, err
	}
	return next, reformat.NewSet(next.CoveringOfKind(anchor, syntax.KindSwitchStmt)), nil
}

type dispatchBuilder struct {
	t      *syntax.Tree
	anchor source.Span
}

func (b dispatchBuilder) leaf(kind token.Kind, text string, lead []token.Trivia) syntax.NodeID {
	return b.t.AllocLeaf(token.Token{Kind: kind, Span: b.anchor, Text: text}.WithLeading(lead))
}

// caseNode emits `case <match>: <body stmts> [break;]`.
func (b dispatchBuilder) caseNode(match, body syntax.NodeID) syntax.NodeID {
	kids := []syntax.NodeID{
		b.leaf(token.KwCase, "case", newlineTrivia()),
		withFirstLeading(b.t, match, spaceTrivia()),
		b.leaf(token.Colon, ":", nil),
	}
	return b.t.AllocNode(syntax.KindSwitchCase, b.caseTail(kids, body)...)
}

// defaultNode emits `default: <body stmts> [break;]` from a plain else body.
func (b dispatchBuilder) defaultNode(body syntax.NodeID) syntax.NodeID {
	kids := []syntax.NodeID{
		b.leaf(token.KwDefault, "default", newlineTrivia()),
		b.leaf(token.Colon, ":", nil),
	}
	return b.t.AllocNode(syntax.KindSwitchCase, b.caseTail(kids, body)...)
}

// caseTail appends the body statements, hoisting block contents so cases
// hold statements directly, plus a break when the body does not return.
func (b dispatchBuilder) caseTail(kids []syntax.NodeID, body syntax.NodeID) []syntax.NodeID {
	if b.t.Kind(body) == syntax.KindBlock {
		kids = append(kids, b.t.BlockStmts(body)...)
	} else {
		kids = append(kids, withFirstLeading(b.t, body, spaceTrivia()))
	}
	if !b.t.IsTerminating(body) {
		kids = append(kids, b.t.AllocNode(syntax.KindBreakStmt,
			b.leaf(token.KwBreak, "break", newlineTrivia()),
			b.leaf(token.Semicolon, ";", nil),
		))
	}
	return kids
}
