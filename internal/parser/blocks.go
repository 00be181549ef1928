package parser

import (
	"todoc/internal/diag"
	"todoc/internal/source"
	"todoc/internal/token"
)

// BlockSpan is one matched opener/terminator pair with its nested blocks.
// Opener and Closer are indices into the token slice the matcher consumed.
type BlockSpan struct {
	Opener   int
	Closer   int
	Children []*BlockSpan
}

// isBlockOpener reports whether the token introduces a block that a
// terminator must close. `while` and `for` are headers, not openers: the
// `do` they end with carries the depth.
func isBlockOpener(k token.Kind) bool {
	switch k {
	case token.KwFunction, token.KwIf, token.KwDo, token.KwRepeat:
		return true
	default:
		return false
	}
}

func isBlockCloser(k token.Kind) bool {
	return k == token.KwEnd || k == token.KwUntil
}

// MatchBlocks pairs block openers with their terminators using a depth
// stack over the keyword view of the token stream. Comment and literal
// tokens are skipped outright, so an "end" inside a comment or string can
// never perturb the depth.
//
// Returns the top-level spans and ok=false when end of input is reached
// with unmatched openers (fatal for the file). A stray terminator is
// reported but recoverable.
func MatchBlocks(tokens []token.Token, reporter diag.Reporter) (roots []*BlockSpan, ok bool) {
	var stack []*BlockSpan
	ok = true

	push := func(span *BlockSpan) {
		if len(stack) == 0 {
			roots = append(roots, span)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, span)
		}
		stack = append(stack, span)
	}

	for i := range tokens {
		t := &tokens[i]
		if t.IsComment() || t.IsLiteral() {
			continue
		}
		switch {
		case isBlockOpener(t.Kind):
			push(&BlockSpan{Opener: i, Closer: -1})
		case isBlockCloser(t.Kind):
			if len(stack) == 0 {
				diag.ReportWarning(reporter, diag.ParseStrayEnd, t.Span,
					"'"+t.Text+"' without a matching opener").Emit()
				continue
			}
			top := stack[len(stack)-1]
			top.Closer = i
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		// Report the innermost unmatched opener; it is the most useful span.
		t := tokens[stack[len(stack)-1].Opener]
		diag.ReportError(reporter, diag.ParseUnbalancedBlock, t.Span,
			"'"+t.Text+"' is never closed before end of input").
			WithNote(endOfInputSpan(tokens), "end of input reached here").
			Emit()
		ok = false
	}
	return roots, ok
}

func endOfInputSpan(tokens []token.Token) source.Span {
	if len(tokens) == 0 {
		return source.Span{}
	}
	last := tokens[len(tokens)-1].Span
	return source.Span{File: last.File, Start: last.End, End: last.End}
}

// Walk visits every span in the tree in source order.
func Walk(spans []*BlockSpan, visit func(*BlockSpan)) {
	for _, s := range spans {
		visit(s)
		Walk(s.Children, visit)
	}
}
