// Package parser finds function declarations in a Lua token stream.
//
// Three passes share the token slice: MatchBlocks pairs block openers with
// terminators, recognize classifies function spans into declarations, and
// AssociateComment binds each declaration to the comment run touching it.
// Comment and literal tokens are opaque throughout, so keyword-looking text
// inside them can never affect matching.
package parser

import (
	"todoc/internal/diag"
	"todoc/internal/doc"
	"todoc/internal/token"
)

// DeclRef ties an allocated declaration to its position in the token
// stream and the comment block bound to it, if any.
type DeclRef struct {
	ID      doc.DeclID
	First   int // index of the declaration's first token
	Comment *doc.CommentBlock
}

// Result is the output of Parse for a single file.
type Result struct {
	Tokens []token.Token
	Blocks []*BlockSpan
	Decls  *doc.Decls
	Refs   []DeclRef // source order
	OK     bool      // false after a fatal structural error
}

// Parse runs block matching, declaration recognition and comment
// association over a fully tokenized file. A fatal imbalance stops after
// the matching pass: declarations inside a broken tree are not trustworthy.
func Parse(tokens []token.Token, reporter diag.Reporter) *Result {
	blocks, ok := MatchBlocks(tokens, reporter)
	if !ok {
		return &Result{
			Tokens: tokens,
			Blocks: blocks,
			Decls:  doc.NewDecls(0),
			OK:     false,
		}
	}

	decls, refs := recognize(tokens, blocks, reporter)
	for i := range refs {
		refs[i].Comment = AssociateComment(tokens, refs[i].First)
	}

	return &Result{
		Tokens: tokens,
		Blocks: blocks,
		Decls:  decls,
		Refs:   refs,
		OK:     true,
	}
}
