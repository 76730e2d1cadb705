package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		text string
		want Kind
	}{
		{"struct", KwStruct},
		{"var", KwVar},
		{"switch", KwSwitch},
		{"default", KwDefault},
		{"structs", Ident},
		{"Var", Ident},
		{"", Ident},
	}
	for _, tc := range cases {
		if got := LookupKeyword(tc.text); got != tc.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestWithLeadingDoesNotAlias(t *testing.T) {
	orig := Token{Kind: Ident, Text: "x"}
	trivia := []Trivia{{Kind: TriviaSpace, Text: " "}}

	copied := orig.WithLeading(trivia)
	trivia[0].Text = "???"

	if copied.Leading[0].Text != " " {
		t.Error("WithLeading must copy the trivia slice")
	}
	if orig.Leading != nil {
		t.Error("receiver must stay untouched")
	}
}

func TestHasLeadingNewline(t *testing.T) {
	tok := Token{Kind: Ident, Leading: []Trivia{
		{Kind: TriviaSpace, Text: "  "},
		{Kind: TriviaNewline, Text: "\n"},
	}}
	if !tok.HasLeadingNewline() {
		t.Error("expected newline in leading trivia")
	}
	if (Token{Kind: Ident}).HasLeadingNewline() {
		t.Error("bare token has no newline")
	}
}
