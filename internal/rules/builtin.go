package rules

import (
	"stylist/internal/syntax"
	"stylist/internal/token"
)

// Builtin rule IDs.
const (
	SameLineBody    ID = "ST01"
	EmptyStringInit ID = "ST02"
	CommentSpace    ID = "ST03"
	MissingDoc      ID = "ST04"
	PreferVar       ID = "ST05"
	ChainToSwitch   ID = "ST06"
)

// Default returns the builtin catalog.
func Default() *Catalog {
	c := NewCatalog()

	c.Register(Rule{
		ID:             SameLineBody,
		Name:           "same-line-body",
		Severity:       SevWarning,
		Category:       CategoryLayout,
		Template:       "embedded statement %q should start on its own line",
		DefaultEnabled: true,
		Nodes:          []syntax.Kind{syntax.KindIfStmt, syntax.KindWhileStmt},
	})

	c.Register(Rule{
		ID:             EmptyStringInit,
		Name:           "empty-string-init",
		Severity:       SevInfo,
		Category:       CategoryReadability,
		Template:       "initialize %s with str.empty instead of %s",
		DefaultEnabled: true,
		Nodes:          []syntax.Kind{syntax.KindLocalDecl, syntax.KindFieldDecl},
	})

	c.Register(Rule{
		ID:             CommentSpace,
		Name:           "comment-space",
		Severity:       SevInfo,
		Category:       CategoryDocumentation,
		Template:       "comment should have a space after the slashes",
		DefaultEnabled: true,
		Trivia:         []token.TriviaKind{token.TriviaLineComment, token.TriviaDocComment},
	})

	c.Register(Rule{
		ID:             MissingDoc,
		Name:           "missing-doc",
		Severity:       SevWarning,
		Category:       CategoryDocumentation,
		Template:       "missing documentation for public symbol %s",
		DefaultEnabled: true,
		Nodes: []syntax.Kind{
			syntax.KindStructDecl, syntax.KindEnumDecl, syntax.KindMethodDecl,
			syntax.KindPropDecl, syntax.KindFieldDecl,
		},
	})

	c.Register(Rule{
		ID:             PreferVar,
		Name:           "prefer-var",
		Severity:       SevInfo,
		Category:       CategoryReadability,
		Template:       "use var instead of the explicit type %s",
		DefaultEnabled: true,
		Nodes:          []syntax.Kind{syntax.KindLocalDecl},
	})

	c.Register(Rule{
		ID:             ChainToSwitch,
		Name:           "chain-to-switch",
		Severity:       SevInfo,
		Category:       CategoryRefactor,
		Template:       "if/else chain over %s can be a switch",
		DefaultEnabled: true,
		Nodes:          []syntax.Kind{syntax.KindIfStmt},
	})

	return c
}
