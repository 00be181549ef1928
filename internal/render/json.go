package render

import (
	"encoding/json"
	"io"

	"todoc/internal/doc"
)

// JSON renders the document model as indented JSON for downstream tooling.
type JSON struct{}

func (*JSON) Ext() string { return ".json" }

func (*JSON) Render(w io.Writer, model *doc.DocumentModel) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(model)
}
