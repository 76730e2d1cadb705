package lexer

import (
	"testing"

	"stylist/internal/source"
	"stylist/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.vn", []byte(src))
	return New(fs.Get(id), nil).Tokens()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestBasicTokens(t *testing.T) {
	toks := lex(t, `var s = "";`)
	want := []token.Kind{
		token.KwVar, token.Ident, token.Assign, token.StringLit,
		token.Semicolon, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[3].Text != `""` {
		t.Errorf("string text = %q", toks[3].Text)
	}
}

func TestEqualityOperators(t *testing.T) {
	toks := lex(t, "x == 1 != 2 = 3")
	want := []token.Kind{
		token.Ident, token.EqEq, token.IntLit, token.BangEq,
		token.IntLit, token.Assign, token.IntLit, token.EOF,
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLeadingTriviaAttachment(t *testing.T) {
	toks := lex(t, "// note\nint x;")
	if toks[0].Kind != token.KwStruct && toks[0].Kind != token.Ident {
		// "int" is not a keyword in this language, just an identifier
		t.Fatalf("unexpected first token %v", toks[0].Kind)
	}
	lead := toks[0].Leading
	if len(lead) != 2 {
		t.Fatalf("leading trivia = %d pieces, want 2", len(lead))
	}
	if lead[0].Kind != token.TriviaLineComment || lead[0].Text != "// note" {
		t.Errorf("trivia 0 = %v %q", lead[0].Kind, lead[0].Text)
	}
	if lead[1].Kind != token.TriviaNewline {
		t.Errorf("trivia 1 = %v", lead[1].Kind)
	}
}

func TestDocCommentTrivia(t *testing.T) {
	toks := lex(t, "///doc\npub struct S {}")
	lead := toks[0].Leading
	if len(lead) == 0 || lead[0].Kind != token.TriviaDocComment {
		t.Fatalf("expected doc comment trivia, got %v", lead)
	}
	if lead[0].Text != "///doc" {
		t.Errorf("doc text = %q", lead[0].Text)
	}
}

func TestTrailingTriviaOnEOF(t *testing.T) {
	toks := lex(t, "x\n// trailing\n")
	eof := toks[len(toks)-1]
	if eof.Kind != token.EOF {
		t.Fatalf("last token = %v", eof.Kind)
	}
	var sawComment bool
	for _, tr := range eof.Leading {
		if tr.Kind == token.TriviaLineComment {
			sawComment = true
		}
	}
	if !sawComment {
		t.Error("EOF must carry trailing comment trivia")
	}
}

func TestMarkerTokens(t *testing.T) {
	toks := lex(t, "int x· = 1;")
	var sawMarker bool
	for _, tok := range toks {
		if tok.Kind == token.Marker {
			sawMarker = true
			if tok.Text != "·" {
				t.Errorf("marker text = %q", tok.Text)
			}
		}
	}
	if !sawMarker {
		t.Error("expected a Marker token for U+00B7")
	}

	toks = lex(t, "int y​;")
	sawMarker = false
	for _, tok := range toks {
		if tok.Kind == token.Marker {
			sawMarker = true
		}
	}
	if !sawMarker {
		t.Error("expected a Marker token for U+200B")
	}
}

func TestRoundTripText(t *testing.T) {
	src := "  // header\n\npub struct P {\n\tint a, b;\n}\n"
	toks := lex(t, src)

	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.LeadingText() + tok.Text
	}
	if rebuilt != src {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", rebuilt, src)
	}
}
