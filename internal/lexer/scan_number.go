package lexer

import (
	"todoc/internal/token"
)

// scanNumber scans Lua numerals: decimal with optional fraction and
// exponent, or 0x/0X hexadecimal with optional hex fraction and p-exponent.
// The extractor never interprets the value, so no numeric validation beyond
// shape happens here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
		if b := lx.cursor.Peek(); b == 'p' || b == 'P' {
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		// Not the concat operator: ".." must stay untouched.
		if b0, b1, ok := lx.cursor.Peek2(); !(ok && b0 == '.' && b1 == '.') {
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
