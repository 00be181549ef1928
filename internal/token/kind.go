package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal.
	Number
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// LongStringLit represents a level-matched [[...]] string literal.
	LongStringLit
	// LineComment represents a -- comment running to end of line.
	LineComment
	// LongComment represents a level-matched --[[...]] comment.
	LongComment

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseif represents the 'elseif' keyword.
	KwElseif // elseif
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLocal represents the 'local' keyword.
	KwLocal // local
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwRepeat represents the 'repeat' keyword.
	KwRepeat // repeat
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwUntil represents the 'until' keyword.
	KwUntil // until
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	DblSlash  // //
	Percent   // %
	Caret     // ^
	Hash      // #
	Amp       // &
	Tilde     // ~
	Pipe      // |
	Shl       // <<
	Shr       // >>
	EqEq      // ==
	NotEq     // ~=
	LtEq      // <=
	GtEq      // >=
	Lt        // <
	Gt        // >
	Assign    // =
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	DblColon  // ::
	Semicolon // ;
	Colon     // :
	Comma     // ,
	Dot       // .
	DotDot    // ..
	Ellipsis  // ...
)

var kindNames = map[Kind]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	Number:        "Number",
	StringLit:     "StringLit",
	LongStringLit: "LongStringLit",
	LineComment:   "LineComment",
	LongComment:   "LongComment",
	KwAnd:         "and",
	KwBreak:       "break",
	KwDo:          "do",
	KwElse:        "else",
	KwElseif:      "elseif",
	KwEnd:         "end",
	KwFalse:       "false",
	KwFor:         "for",
	KwFunction:    "function",
	KwGoto:        "goto",
	KwIf:          "if",
	KwIn:          "in",
	KwLocal:       "local",
	KwNil:         "nil",
	KwNot:         "not",
	KwOr:          "or",
	KwRepeat:      "repeat",
	KwReturn:      "return",
	KwThen:        "then",
	KwTrue:        "true",
	KwUntil:       "until",
	KwWhile:       "while",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	DblSlash:      "//",
	Percent:       "%",
	Caret:         "^",
	Hash:          "#",
	Amp:           "&",
	Tilde:         "~",
	Pipe:          "|",
	Shl:           "<<",
	Shr:           ">>",
	EqEq:          "==",
	NotEq:         "~=",
	LtEq:          "<=",
	GtEq:          ">=",
	Lt:            "<",
	Gt:            ">",
	Assign:        "=",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	DblColon:      "::",
	Semicolon:     ";",
	Colon:         ":",
	Comma:         ",",
	Dot:           ".",
	DotDot:        "..",
	Ellipsis:      "...",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
