package lexer

import (
	"fmt"

	"todoc/internal/diag"
	"todoc/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation, longest match first.
// '-' never reaches here as a comment ("--" is dispatched earlier).
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	kind := token.Invalid
	switch {
	case lx.try3('.', '.', '.'):
		kind = token.Ellipsis
	case lx.try2('.', '.'):
		kind = token.DotDot
	case lx.try2(':', ':'):
		kind = token.DblColon
	case lx.try2('=', '='):
		kind = token.EqEq
	case lx.try2('~', '='):
		kind = token.NotEq
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('<', '<'):
		kind = token.Shl
	case lx.try2('>', '>'):
		kind = token.Shr
	case lx.try2('/', '/'):
		kind = token.DblSlash
	default:
		kind = lx.scanSingleByte()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Invalid {
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", text))
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func (lx *Lexer) scanSingleByte() token.Kind {
	b := lx.cursor.Bump()
	switch b {
	case '+':
		return token.Plus
	case '-':
		return token.Minus
	case '*':
		return token.Star
	case '/':
		return token.Slash
	case '%':
		return token.Percent
	case '^':
		return token.Caret
	case '#':
		return token.Hash
	case '&':
		return token.Amp
	case '~':
		return token.Tilde
	case '|':
		return token.Pipe
	case '<':
		return token.Lt
	case '>':
		return token.Gt
	case '=':
		return token.Assign
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	case '{':
		return token.LBrace
	case '}':
		return token.RBrace
	case '[':
		return token.LBracket
	case ']':
		return token.RBracket
	case ';':
		return token.Semicolon
	case ':':
		return token.Colon
	case ',':
		return token.Comma
	case '.':
		return token.Dot
	default:
		return token.Invalid
	}
}
