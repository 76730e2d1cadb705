package token

import "stylist/internal/source"

// TriviaKind classifies non-semantic text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaDocComment
)

// Trivia is whitespace or comment text bound to the token that follows it.
// End-of-file trivia hangs off the EOF token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is a line or doc comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaDocComment
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line-comment"
	case TriviaDocComment:
		return "doc-comment"
	}
	return "unknown"
}
