package token

import (
	"stylist/internal/source"
)

// Token represents a single source token with its location and leading trivia.
// Serialization of a tree is the concatenation of every token's leading
// trivia text followed by its own text, so tokens carry enough to round-trip
// the file byte for byte.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwStruct, KwEnum, KwFn, KwProp, KwPub, KwVar, KwIf, KwElse, KwWhile,
		KwSwitch, KwCase, KwDefault, KwBreak, KwReturn, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// WithLeading returns a copy of the token with replacement leading trivia.
// The receiver is not modified.
func (t Token) WithLeading(trivia []Trivia) Token {
	t.Leading = append([]Trivia(nil), trivia...)
	return t
}

// LeadingText concatenates the token's leading trivia text.
func (t Token) LeadingText() string {
	if len(t.Leading) == 0 {
		return ""
	}
	var n int
	for _, tr := range t.Leading {
		n += len(tr.Text)
	}
	buf := make([]byte, 0, n)
	for _, tr := range t.Leading {
		buf = append(buf, tr.Text...)
	}
	return string(buf)
}

// HasLeadingNewline reports whether any leading trivia contains a line break.
func (t Token) HasLeadingNewline() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
