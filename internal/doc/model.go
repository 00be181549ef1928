package doc

import (
	"sort"

	"todoc/internal/source"
)

// CommentLine is the raw text of one comment token, markers included.
type CommentLine struct {
	Text string
	Span source.Span
}

// CommentBlock is the contiguous run of comment tokens immediately
// preceding a declaration, in source order. A long comment contributes a
// single CommentLine spanning several physical lines.
type CommentBlock struct {
	Lines []CommentLine
	Span  source.Span
}

// DocumentedFunction pairs a declaration with its optional documentation.
// Instances are immutable once the per-file model is assembled.
type DocumentedFunction struct {
	Kind      DeclKind  `msgpack:"kind" json:"kind"`
	NamePath  string    `msgpack:"name" json:"name"`
	Signature string    `msgpack:"signature" json:"signature"`
	Params    []string  `msgpack:"params,omitempty" json:"params,omitempty"`
	Local     bool      `msgpack:"local,omitempty" json:"local,omitempty"`
	Line      uint32    `msgpack:"line" json:"line"`
	Doc       *DocEntry `msgpack:"doc,omitempty" json:"doc,omitempty"`
}

// FileDoc is the ordered documentation extracted from one source file.
type FileDoc struct {
	Path      string               `msgpack:"path" json:"path"`
	Functions []DocumentedFunction `msgpack:"functions" json:"functions"`
}

// DocumentModel is the final read-only output of the extraction core:
// per-file function lists, files in deterministic path order.
type DocumentModel struct {
	Files []FileDoc `msgpack:"files" json:"files"`
}

// Add appends a per-file document.
func (m *DocumentModel) Add(fd FileDoc) {
	m.Files = append(m.Files, fd)
}

// SortByPath orders files lexicographically so output is stable across
// runs regardless of worker completion order.
func (m *DocumentModel) SortByPath() {
	sort.Slice(m.Files, func(i, j int) bool {
		return m.Files[i].Path < m.Files[j].Path
	})
}

// FunctionCount counts documented functions across all files.
func (m *DocumentModel) FunctionCount() int {
	n := 0
	for i := range m.Files {
		n += len(m.Files[i].Functions)
	}
	return n
}
