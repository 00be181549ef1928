package diagfmt

import (
	"encoding/json"
	"io"

	"todoc/internal/diag"
	"todoc/internal/source"
)

type jsonPos struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Message string   `json:"message"`
	Start   uint32   `json:"start"`
	End     uint32   `json:"end"`
	Pos     *jsonPos `json:"pos,omitempty"`
}

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	File     string     `json:"file"`
	Start    uint32     `json:"start"`
	End      uint32     `json:"end"`
	Pos      *jsonPos   `json:"pos,omitempty"`
	EndPos   *jsonPos   `json:"end_pos,omitempty"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

// WriteJSON emits the bag as a JSON array, one object per diagnostic, in
// the bag's current order.
func WriteJSON(w io.Writer, fs *source.FileSet, bag *diag.Bag, opts JSONOpts) error {
	out := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			File:     fs.Get(d.Primary.File).Path,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		if opts.IncludePositions {
			start, end := fs.Resolve(d.Primary)
			jd.Pos = &jsonPos{Line: start.Line, Col: start.Col}
			jd.EndPos = &jsonPos{Line: end.Line, Col: end.Col}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jn := jsonNote{Message: n.Msg, Start: n.Span.Start, End: n.Span.End}
				if opts.IncludePositions {
					ns, _ := fs.Resolve(n.Span)
					jn.Pos = &jsonPos{Line: ns.Line, Col: ns.Col}
				}
				jd.Notes = append(jd.Notes, jn)
			}
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
