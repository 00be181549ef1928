package render

import (
	"fmt"
	"io"

	"todoc/internal/doc"
)

// Format selects an output renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// Renderer turns an extracted document model into one output stream.
type Renderer interface {
	Render(w io.Writer, model *doc.DocumentModel) error
	// Ext is the file extension for per-run output files, dot included.
	Ext() string
}

// New returns the renderer for a format name.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatMarkdown, "md", "":
		return &Markdown{}, nil
	case FormatJSON:
		return &JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
