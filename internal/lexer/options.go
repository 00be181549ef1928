package lexer

import (
	"todoc/internal/diag"
	"todoc/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; scanning continues
	// either way, producing Invalid tokens for broken literals.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
