package lexer

import (
	"todoc/internal/diag"
	"todoc/internal/token"
)

// scanComment scans "--..." to end of line, or "--[[...]]" / "--[=[...]=]"
// level-matched long comments. The raw text, markers included, stays on the
// token so the doc-tag parser can strip markers itself.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '-'
	lx.cursor.Bump() // '-'

	if _, ok := lx.peekLongBracket(0); ok {
		level := lx.eatLongBracketOpener()
		if !lx.eatLongBracketBody(level) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedComment, sp, "unterminated long comment")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.LongComment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.LineComment, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
