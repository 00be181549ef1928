package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (fatal for the containing file).
	LexInfo                 Code = 1000
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedLong     Code = 1003
	LexUnterminatedComment  Code = 1004
	LexMalformedLongBracket Code = 1005

	// Structural (block matching, declarations).
	ParseInfo            Code = 2000
	ParseUnbalancedBlock Code = 2001
	ParseStrayEnd        Code = 2002
	ParseBadParamList    Code = 2003

	// Documentation DSL (always recoverable).
	DocInfo             Code = 3000
	DocUnknownTag       Code = 3001
	DocUnknownMarkup    Code = 3002
	DocMalformedParam   Code = 3003
	DocUnterminatedBody Code = 3004

	// Driver / IO.
	IOInfo     Code = 4000
	IOReadFile Code = 4001
	IOCache    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:                 "lexical note",
	LexUnknownChar:          "unknown character",
	LexUnterminatedString:   "unterminated string literal",
	LexUnterminatedLong:     "unterminated long bracket",
	LexUnterminatedComment:  "unterminated comment",
	LexMalformedLongBracket: "malformed long bracket opener",

	ParseInfo:            "structural note",
	ParseUnbalancedBlock: "unbalanced block",
	ParseStrayEnd:        "block terminator without opener",
	ParseBadParamList:    "malformed parameter list",

	DocInfo:             "documentation note",
	DocUnknownTag:       "unknown documentation tag",
	DocUnknownMarkup:    "unknown description markup",
	DocMalformedParam:   "malformed @param/@return line",
	DocUnterminatedBody: "unterminated brace body",

	IOInfo:     "driver note",
	IOReadFile: "cannot read source file",
	IOCache:    "document cache unavailable",
}

// ID returns the stable, grep-friendly identifier for the code.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
