package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"todoc/internal/diag"
	"todoc/internal/source"
)

// WritePretty renders every diagnostic in the bag in a human-readable,
// compiler-style layout:
//
//	path:line:col: SEVERITY [ID]: message
//	   12 | function broken(
//	      |                 ^
func WritePretty(w io.Writer, fs *source.FileSet, bag *diag.Bag, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := writeOne(w, fs, d, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeOne(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) error {
	start, end := fs.Resolve(d.Primary)
	path := fs.Get(d.Primary.File).Path

	head := fmt.Sprintf("%s:%d:%d: %s [%s]: %s",
		path, start.Line, start.Col,
		severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}

	if opts.Context {
		if err := writeContext(w, fs, d.Primary, start, end); err != nil {
			return err
		}
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			npath := fs.Get(n.Span.File).Path
			if _, err := fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", npath, ns.Line, ns.Col, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeContext prints the first source line touched by the span together
// with a caret underline. Display columns are measured with runewidth so
// the carets line up under wide runes.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, start, end source.LineCol) error {
	line := fs.Get(sp.File).GetLine(start.Line)

	gutter := fmt.Sprintf("%5d | ", start.Line)
	if _, err := fmt.Fprintf(w, "%s%s\n", gutter, line); err != nil {
		return err
	}

	runes := []rune(line)
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = startCol + 1
	}

	pad := displayWidth(runes, 0, startCol-1)
	width := max(displayWidth(runes, startCol-1, endCol-1), 1)

	caret := strings.Repeat(" ", 5) + " | " +
		strings.Repeat(" ", pad) + strings.Repeat("^", width)
	_, err := fmt.Fprintln(w, caret)
	return err
}

// displayWidth sums the terminal width of runes[from:to], clamped to the
// slice bounds. Tabs count as a single cell since GetLine keeps them raw.
func displayWidth(runes []rune, from, to int) int {
	from = max(from, 0)
	to = min(to, len(runes))
	w := 0
	for i := from; i < to; i++ {
		w += runewidth.RuneWidth(runes[i])
		if runes[i] == '\t' {
			w++
		}
	}
	return w
}

func severityLabel(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return color.New(color.FgCyan).Sprint(sev.String())
	}
}
