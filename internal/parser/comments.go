package parser

import (
	"todoc/internal/doc"
	"todoc/internal/token"
)

// AssociateComment collects the contiguous run of comment tokens directly
// before the declaration's first token. Whitespace between comment lines
// never breaks the run (whitespace is not tokenized); any code token does.
// Returns nil when no comment touches the declaration.
func AssociateComment(tokens []token.Token, first int) *doc.CommentBlock {
	lo := first
	for lo > 0 && tokens[lo-1].IsComment() {
		lo--
	}
	if lo == first {
		return nil
	}

	block := &doc.CommentBlock{
		Lines: make([]doc.CommentLine, 0, first-lo),
		Span:  tokens[lo].Span,
	}
	for i := lo; i < first; i++ {
		block.Lines = append(block.Lines, doc.CommentLine{Text: tokens[i].Text, Span: tokens[i].Span})
		block.Span = block.Span.Cover(tokens[i].Span)
	}
	return block
}
