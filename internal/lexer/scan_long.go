package lexer

import (
	"todoc/internal/diag"
	"todoc/internal/token"
)

// peekLongBracket checks for a long-bracket opener "[", "="*level, "["
// starting delta bytes ahead, without consuming anything.
func (lx *Lexer) peekLongBracket(delta uint32) (level uint32, ok bool) {
	if lx.cursor.PeekAt(delta) != '[' {
		return 0, false
	}
	i := delta + 1
	for lx.cursor.PeekAt(i) == '=' {
		i++
	}
	if lx.cursor.PeekAt(i) != '[' {
		return 0, false
	}
	return i - delta - 1, true
}

// eatLongBracketOpener consumes "[", "="*level, "[" and returns the level.
// Callers must have verified the opener with peekLongBracket.
func (lx *Lexer) eatLongBracketOpener() (level uint32) {
	lx.cursor.Bump() // '['
	for lx.cursor.Peek() == '=' {
		lx.cursor.Bump()
		level++
	}
	lx.cursor.Bump() // '['
	return level
}

// eatLongBracketBody consumes up to and including the matching closer
// "]", "="*level, "]". Only the exact level closes the literal: "]]" inside
// a level-1 body is plain content. Reports whether a closer was found.
func (lx *Lexer) eatLongBracketBody(level uint32) bool {
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() != ']' {
			lx.cursor.Bump()
			continue
		}
		var i uint32 = 1
		for lx.cursor.PeekAt(i) == '=' {
			i++
		}
		if i-1 == level && lx.cursor.PeekAt(i) == ']' {
			for j := uint32(0); j <= i; j++ {
				lx.cursor.Bump()
			}
			return true
		}
		lx.cursor.Bump()
	}
	return false
}

// scanLongString scans a [[...]] / [=[...]=] string literal.
func (lx *Lexer) scanLongString() token.Token {
	start := lx.cursor.Mark()
	level := lx.eatLongBracketOpener()

	// Lua drops a newline immediately after the opener; the raw span keeps it.
	if !lx.eatLongBracketBody(level) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedLong, sp, "unterminated long string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.LongStringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
