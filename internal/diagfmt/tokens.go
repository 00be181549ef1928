package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"todoc/internal/source"
	"todoc/internal/token"
)

// WriteTokensPretty dumps a token stream one token per line, with the
// resolved position and the exact source text.
func WriteTokensPretty(w io.Writer, fs *source.FileSet, tokens []token.Token) error {
	for _, t := range tokens {
		start, _ := fs.Resolve(t.Span)
		if _, err := fmt.Fprintf(w, "%4d:%-3d %-14s %q\n",
			start.Line, start.Col, t.Kind.String(), t.Text); err != nil {
			return err
		}
	}
	return nil
}

type jsonToken struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text"`
	Start uint32   `json:"start"`
	End   uint32   `json:"end"`
	Pos   *jsonPos `json:"pos,omitempty"`
}

// WriteTokensJSON dumps a token stream as a JSON array.
func WriteTokensJSON(w io.Writer, fs *source.FileSet, tokens []token.Token, includePositions bool) error {
	out := make([]jsonToken, 0, len(tokens))
	for _, t := range tokens {
		jt := jsonToken{
			Kind:  t.Kind.String(),
			Text:  t.Text,
			Start: t.Span.Start,
			End:   t.Span.End,
		}
		if includePositions {
			start, _ := fs.Resolve(t.Span)
			jt.Pos = &jsonPos{Line: start.Line, Col: start.Col}
		}
		out = append(out, jt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
