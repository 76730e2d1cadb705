package lexer

import (
	"stylist/internal/source"
	"stylist/internal/token"
)

// markerRunes are interpunct-style characters some input methods leave in
// pasted code. They are lexed as real tokens so style checks can see them.
var markerRunes = map[rune]bool{
	'·': true, // middle dot
	'​': true, // zero-width space
}

// Lexer produces significant tokens with leading trivia already attached.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	interner *source.Interner
	look     *token.Token   // one-token lookahead buffer
	hold     []token.Trivia // accumulated leading trivia
}

// New creates a lexer over the file. The interner may be nil.
func New(file *source.File, interner *source.Interner) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		interner: interner,
	}
}

// Next returns the next significant token. After the end of input it keeps
// returning EOF; the EOF token carries any trailing trivia of the file.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		eof := token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Mark()),
		}
		eof.Leading = lx.hold
		lx.hold = nil
		return eof
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStart(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= 0x80:
		tok = lx.scanUnicode()
	case isDigit(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer into a slice ending with the EOF token.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentStart(b) || isDigit(b) {
			lx.cursor.Bump()
			continue
		}
		break
	}
	text := lx.cursor.TextFrom(mark)
	if lx.interner != nil {
		lx.interner.Intern(text)
	}
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: lx.cursor.SpanFrom(mark),
		Text: text,
	}
}

// scanUnicode handles non-ASCII input: marker runes become Marker tokens,
// anything else is Invalid one rune at a time.
func (lx *Lexer) scanUnicode() token.Token {
	mark := lx.cursor.Mark()
	r, size := lx.cursor.PeekRune()
	lx.cursor.BumpN(uint32(size)) //nolint:gosec // rune size is 1..4

	kind := token.Invalid
	if markerRunes[r] {
		kind = token.Marker
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.TextFrom(mark),
	}
}

func (lx *Lexer) scanNumber() token.Token {
	mark := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return token.Token{
		Kind: token.IntLit,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.TextFrom(mark),
	}
}

func (lx *Lexer) scanString() token.Token {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			lx.cursor.BumpN(2)
			continue
		}
		if b == '"' {
			lx.cursor.Bump()
			break
		}
		if b == '\n' {
			break // unterminated; the parser reports it
		}
		lx.cursor.Bump()
	}
	return token.Token{
		Kind: token.StringLit,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.TextFrom(mark),
	}
}

func (lx *Lexer) scanPunct() token.Token {
	mark := lx.cursor.Mark()
	b := lx.cursor.Peek()
	kind := token.Invalid
	lx.cursor.Bump()

	switch b {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ';':
		kind = token.Semicolon
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '=':
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.EqEq
		} else {
			kind = token.Assign
		}
	case '!':
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
		} else {
			kind = token.Bang
		}
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	}

	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(mark),
		Text: lx.cursor.TextFrom(mark),
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
