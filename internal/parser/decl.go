package parser

import (
	"strings"

	"todoc/internal/diag"
	"todoc/internal/doc"
	"todoc/internal/source"
	"todoc/internal/token"
)

// prevCode returns the index of the nearest non-comment token before i,
// or -1.
func prevCode(tokens []token.Token, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !tokens[j].IsComment() {
			return j
		}
	}
	return -1
}

// nextCode returns the index of the nearest non-comment token after i,
// or -1.
func nextCode(tokens []token.Token, i int) int {
	for j := i + 1; j < len(tokens); j++ {
		if !tokens[j].IsComment() {
			return j
		}
	}
	return -1
}

// recognize walks every block span whose opener is `function` and emits one
// declaration per accepted form. Non-function spans are recursed into but
// never emitted; unbound anonymous functions are skipped the same way.
func recognize(tokens []token.Token, roots []*BlockSpan, reporter diag.Reporter) (*doc.Decls, []DeclRef) {
	decls := doc.NewDecls(16)
	var refs []DeclRef

	Walk(roots, func(span *BlockSpan) {
		if tokens[span.Opener].Kind != token.KwFunction {
			return
		}
		if ref, ok := recognizeFunction(tokens, span, decls, reporter); ok {
			refs = append(refs, ref)
		}
	})
	return decls, refs
}

func recognizeFunction(tokens []token.Token, span *BlockSpan, decls *doc.Decls, reporter diag.Reporter) (DeclRef, bool) {
	fn := span.Opener
	n := nextCode(tokens, fn)
	if n < 0 {
		return DeclRef{}, false
	}

	switch tokens[n].Kind {
	case token.Ident:
		return recognizeNamed(tokens, fn, n, decls, reporter)
	case token.LParen:
		return recognizeAssigned(tokens, fn, n, decls, reporter)
	default:
		return DeclRef{}, false
	}
}

// recognizeNamed handles `function name(...)`, `local function name(...)`,
// `function a.b.c(...)` and `function a.b:m(...)`.
func recognizeNamed(tokens []token.Token, fn, head int, decls *doc.Decls, reporter diag.Reporter) (DeclRef, bool) {
	name := []source.StringID{decls.Intern(tokens[head].Text)}
	method := false

	i := head
	for {
		sep := nextCode(tokens, i)
		if sep < 0 {
			return DeclRef{}, false
		}
		if tokens[sep].Kind == token.Dot || tokens[sep].Kind == token.Colon {
			seg := nextCode(tokens, sep)
			if seg < 0 || tokens[seg].Kind != token.Ident {
				return DeclRef{}, false
			}
			name = append(name, decls.Intern(tokens[seg].Text))
			i = seg
			if tokens[sep].Kind == token.Colon {
				// The method name is the last path segment.
				method = true
				break
			}
			continue
		}
		break
	}

	lparen := nextCode(tokens, i)
	if lparen < 0 || tokens[lparen].Kind != token.LParen {
		return DeclRef{}, false
	}
	params, rparen := parseParams(tokens, lparen, reporter)
	if rparen < 0 {
		return DeclRef{}, false
	}

	kind := doc.DeclGlobalNamed
	local := false
	first := fn
	if p := prevCode(tokens, fn); p >= 0 && tokens[p].Kind == token.KwLocal {
		local = true
		first = p
	}
	switch {
	case method:
		kind = doc.DeclTableMethod
		params = append([]string{"self"}, params...)
	case len(name) > 1:
		kind = doc.DeclTableField
	case local:
		kind = doc.DeclLocalNamed
	}

	id := decls.Allocate(doc.FunctionDeclaration{
		Kind:   kind,
		Name:   name,
		Params: params,
		Local:  local,
		Span:   tokens[first].Span.Cover(tokens[rparen].Span),
	})
	return DeclRef{ID: id, First: first}, true
}

// recognizeAssigned handles `name = function(...)` and
// `local name = function(...)`. A `function` with no assignment target is
// an unbound anonymous function and produces nothing.
func recognizeAssigned(tokens []token.Token, fn, lparen int, decls *doc.Decls, reporter diag.Reporter) (DeclRef, bool) {
	eq := prevCode(tokens, fn)
	if eq < 0 || tokens[eq].Kind != token.Assign {
		return DeclRef{}, false
	}

	// Collect the target path right-to-left: Ident (Dot Ident)*.
	tail := prevCode(tokens, eq)
	if tail < 0 || tokens[tail].Kind != token.Ident {
		return DeclRef{}, false
	}
	rev := []string{tokens[tail].Text}
	head := tail
	for {
		sep := prevCode(tokens, head)
		if sep < 0 || tokens[sep].Kind != token.Dot {
			break
		}
		seg := prevCode(tokens, sep)
		if seg < 0 || tokens[seg].Kind != token.Ident {
			break
		}
		rev = append(rev, tokens[seg].Text)
		head = seg
	}

	name := make([]source.StringID, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		name = append(name, decls.Intern(rev[i]))
	}

	local := false
	first := head
	if p := prevCode(tokens, head); p >= 0 && tokens[p].Kind == token.KwLocal {
		local = true
		first = p
	}

	params, rparen := parseParams(tokens, lparen, reporter)
	if rparen < 0 {
		return DeclRef{}, false
	}

	id := decls.Allocate(doc.FunctionDeclaration{
		Kind:   doc.DeclAnonymousAssigned,
		Name:   name,
		Params: params,
		Local:  local,
		Span:   tokens[first].Span.Cover(tokens[rparen].Span),
	})
	return DeclRef{ID: id, First: first}, true
}

// parseParams reads the parameter list starting at the opening parenthesis,
// tracking nesting depth so the list may span any number of physical lines.
// Each comma-separated cell at depth one becomes one parameter name; cells
// that are not a plain name or `...` are kept opaque rather than validated.
// Returns the index of the closing parenthesis, or -1 when the list never
// closes (the block matcher will have reported the file already).
func parseParams(tokens []token.Token, lparen int, reporter diag.Reporter) ([]string, int) {
	var params []string
	var cell []string
	odd := false
	depth := 0

	flush := func() {
		if len(cell) > 0 {
			params = append(params, strings.Join(cell, " "))
			cell = cell[:0]
		}
	}

	for i := lparen; i >= 0; i = nextCode(tokens, i) {
		t := &tokens[i]
		switch t.Kind {
		case token.LParen:
			depth++
			if depth > 1 {
				cell = append(cell, t.Text)
			}
		case token.RParen:
			depth--
			if depth == 0 {
				flush()
				if odd {
					diag.ReportWarning(reporter, diag.ParseBadParamList,
						tokens[lparen].Span.Cover(t.Span),
						"parameter list contains unexpected tokens").Emit()
				}
				return params, i
			}
			cell = append(cell, t.Text)
		case token.Comma:
			if depth == 1 {
				flush()
			} else {
				cell = append(cell, t.Text)
			}
		case token.EOF:
			return params, -1
		default:
			if depth >= 1 {
				if depth == 1 && t.Kind != token.Ident && t.Kind != token.Ellipsis {
					odd = true
				}
				cell = append(cell, t.Text)
			}
		}
	}
	return params, -1
}
