package fuzztests

import (
	"strings"
	"testing"

	"todoc/internal/diag"
	"todoc/internal/lexer"
	"todoc/internal/source"
	"todoc/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.lua", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Fatal("token stream must end with EOF")
		}

		// Spans must be monotone, in-bounds, and reproduce the text.
		prevEnd := uint32(0)
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("non-monotone span %v after offset %d", tok.Span, prevEnd)
			}
			if tok.Span.End > uint32(len(file.Content)) {
				t.Fatalf("span %v beyond content", tok.Span)
			}
			if got := string(file.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
				t.Fatalf("span text %q != token text %q", got, tok.Text)
			}
			gap := string(file.Content[prevEnd:tok.Span.Start])
			if strings.TrimSpace(gap) != "" {
				t.Fatalf("non-whitespace gap %q", gap)
			}
			prevEnd = tok.Span.End
		}
	})
}
