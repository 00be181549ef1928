package doctag

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"todoc/internal/doc"
	"todoc/internal/source"
)

// line is one logical documentation line: comment markers stripped, NFC
// normalized, with a span pointing at the physical source line it came from.
type line struct {
	text string
	span source.Span
}

// explode flattens a CommentBlock into logical lines. Line comments yield
// one line each; a long comment yields one line per physical line of its
// interior.
func explode(block *doc.CommentBlock) []line {
	var out []line
	for _, cl := range block.Lines {
		if isLongComment(cl.Text) {
			out = append(out, explodeLong(cl)...)
			continue
		}
		out = append(out, line{
			text: stripMarker(cl.Text),
			span: cl.Span,
		})
	}
	return out
}

// isLongComment reports whether the raw token text is a --[[...]] form.
func isLongComment(raw string) bool {
	rest, ok := strings.CutPrefix(raw, "--")
	if !ok {
		return false
	}
	rest = strings.TrimLeft(rest, "=")
	// "--[=[" vs "--[ regular text".
	rest, ok = strings.CutPrefix(rest, "[")
	if !ok {
		return false
	}
	rest = strings.TrimLeft(rest, "=")
	return strings.HasPrefix(rest, "[")
}

// explodeLong splits a long comment's interior into lines, keeping byte
// offsets so each logical line gets an accurate span.
func explodeLong(cl doc.CommentLine) []line {
	raw := cl.Text

	// Opener: "--[" "="* "[".
	body := strings.Index(raw, "[")
	level := 0
	for raw[body+1+level] == '=' {
		level++
	}
	start := body + level + 2
	end := len(raw) - (level + 2) // closer "]" "="* "]"
	if end < start {
		end = start
	}

	var out []line
	off := start
	for _, physical := range strings.Split(raw[start:end], "\n") {
		sp := source.Span{
			File:  cl.Span.File,
			Start: cl.Span.Start + uint32(off),
			End:   cl.Span.Start + uint32(off+len(physical)),
		}
		out = append(out, line{text: stripMarker(physical), span: sp})
		off += len(physical) + 1
	}
	return out
}

// stripMarker removes the per-line comment decoration: leading whitespace,
// then any run of '-' of length >= 2, then one optional space. Inside long
// comments (no dashes) only the surrounding whitespace goes. The '@' and
// '\' directive positions are relative to the stripped text.
func stripMarker(physical string) string {
	s := strings.TrimRight(physical, "\r")
	s = strings.TrimLeft(s, " \t")
	if strings.HasPrefix(s, "--") {
		s = strings.TrimLeft(s, "-")
		s = strings.TrimPrefix(s, " ")
	}
	return norm.NFC.String(s)
}
