package check

import (
	"regexp"

	"stylist/internal/rules"
	"stylist/internal/syntax"
	"stylist/internal/token"
	"stylist/internal/types"
)

// registerBuiltins wires the builtin rule catalog to its predicates.
func registerBuiltins(e *Engine) {
	e.RegisterNodeCheck(rules.SameLineBody, checkSameLineBody)
	e.RegisterNodeCheck(rules.EmptyStringInit, checkEmptyStringInit)
	e.RegisterTriviaCheck(rules.CommentSpace, checkCommentSpace)
	e.RegisterNodeCheck(rules.MissingDoc, checkMissingDoc)
	e.RegisterNodeCheck(rules.PreferVar, checkPreferVar)
	e.RegisterNodeCheck(rules.ChainToSwitch, checkChainToSwitch)
}

// checkSameLineBody flags a controlled statement written on the same line as
// its control keyword. Blocks and empty statements are exempt, and an
// `else if` continuation is idiomatic rather than embedded.
func checkSameLineBody(cx *Context, node syntax.NodeID) {
	t := cx.Tree
	var controlled []syntax.NodeID
	switch t.Kind(node) {
	case syntax.KindIfStmt:
		if then := t.IfThen(node); then.IsValid() {
			controlled = append(controlled, then)
		}
		if els := t.IfElse(node); els.IsValid() && t.Kind(els) != syntax.KindIfStmt {
			controlled = append(controlled, els)
		}
	case syntax.KindWhileStmt:
		if body := t.WhileBody(node); body.IsValid() {
			controlled = append(controlled, body)
		}
	}

	for _, stmt := range controlled {
		switch t.Kind(stmt) {
		case syntax.KindBlock, syntax.KindEmptyStmt:
			continue
		}
		first := t.FirstToken(stmt)
		if !first.IsValid() || t.Token(first).HasLeadingNewline() {
			continue
		}
		cx.Report(t.Span(stmt), preview(t, stmt))
	}
}

// checkEmptyStringInit flags string declarators initialized with the literal
// "" instead of str.empty. An init that already is str.empty never triggers,
// so the fix converges in one application.
func checkEmptyStringInit(cx *Context, node syntax.NodeID) {
	t := cx.Tree
	typeName := t.DeclType(node)
	if typeName.IsValid() {
		// Explicitly typed: only string declarations qualify.
		if cx.Resolver == nil || cx.Resolver.ResolveTypeName(t, typeName) != types.String {
			return
		}
	}
	for _, d := range t.Declarators(node) {
		init := t.DeclaratorInit(d)
		if !init.IsValid() || !isEmptyStringLiteral(t, init) {
			continue
		}
		cx.Report(t.Span(init), t.DeclaratorName(d), t.Text(init))
	}
}

func isEmptyStringLiteral(t *syntax.Tree, expr syntax.NodeID) bool {
	if t.Kind(expr) != syntax.KindLiteralExpr {
		return false
	}
	tok := t.Token(t.FirstToken(expr))
	return tok != nil && tok.Kind == token.StringLit && tok.Text == `""`
}

// slammedComment matches comment text whose first character after the
// slashes is a word character.
var slammedComment = regexp.MustCompile(`^/{2,}[0-9A-Za-z_]`)

func checkCommentSpace(cx *Context, _ syntax.NodeID, tr token.Trivia) {
	if slammedComment.MatchString(tr.Text) {
		cx.Report(tr.Span)
	}
}

// checkMissingDoc flags public declarations with no doc comment in their
// leading trivia. Field declarations report once per declared name.
func checkMissingDoc(cx *Context, node syntax.NodeID) {
	t := cx.Tree
	if !t.DeclIsPublic(node) || t.HasDocComment(node) {
		return
	}
	if t.Kind(node) == syntax.KindFieldDecl {
		for _, d := range t.Declarators(node) {
			cx.Report(t.Span(d), t.DeclaratorName(d))
		}
		return
	}
	name := t.DeclNameNode(node)
	if !name.IsValid() {
		return
	}
	cx.Report(t.Span(name), t.DeclName(node))
}

// checkPreferVar flags explicitly typed locals whose declarator list carries
// a marker token, meaning the author already signalled intent to infer.
func checkPreferVar(cx *Context, node syntax.NodeID) {
	t := cx.Tree
	typeName := t.DeclType(node)
	if !typeName.IsValid() || t.DeclIsInferred(node) {
		return
	}
	for _, d := range t.Declarators(node) {
		if t.HasMarkerToken(d) {
			cx.Report(t.Span(typeName), t.Text(typeName))
			return
		}
	}
}

// checkChainToSwitch fires on the root of an if/else-if chain whose every
// condition tests one discriminator against a distinct constant. Interior
// links are visited as nodes too, but only the root reports.
func checkChainToSwitch(cx *Context, node syntax.NodeID) {
	t := cx.Tree
	if t.Kind(cx.Parent) == syntax.KindIfStmt && t.IfElse(cx.Parent) == node {
		return
	}
	chain, err := syntax.AnalyzeChain(t, node)
	if err != nil || len(chain.Links) < 2 {
		return
	}
	cx.Report(t.Span(node), t.Text(chain.Disc))
}
