package token

import (
	"todoc/internal/source"
)

// Token represents a single source token with its location and raw text.
// Literal and comment tokens carry their full raw span, delimiters included,
// so later stages never re-lex their interior.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, nil, or string
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, StringLit, LongStringLit, KwNil, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsComment reports whether the token is a line or long comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == LongComment
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAnd && t.Kind <= KwWhile
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= Ellipsis
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
