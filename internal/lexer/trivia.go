package lexer

import (
	"stylist/internal/token"
)

// collectLeadingTrivia gathers the run of trivia before the next significant
// token into lx.hold:
//   - spaces and tabs coalesce into one TriviaSpace
//   - consecutive newlines coalesce into one TriviaNewline
//   - //... and ///... run to end of line; three or more slashes make a
//     TriviaDocComment, exactly two a TriviaLineComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		mark := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: lx.cursor.SpanFrom(mark),
				Text: lx.cursor.TextFrom(mark),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: lx.cursor.SpanFrom(mark),
				Text: lx.cursor.TextFrom(mark),
			})
			continue
		}

		if b == '/' && lx.cursor.PeekAt(1) == '/' {
			slashes := uint32(0)
			for lx.cursor.Peek() == '/' {
				slashes++
				lx.cursor.Bump()
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			kind := token.TriviaLineComment
			if slashes >= 3 {
				kind = token.TriviaDocComment
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind: kind,
				Span: lx.cursor.SpanFrom(mark),
				Text: lx.cursor.TextFrom(mark),
			})
			continue
		}

		break
	}
}
