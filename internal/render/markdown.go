package render

import (
	"fmt"
	"io"
	"strings"

	"todoc/internal/doc"
)

// Markdown renders the document model as one Markdown file per run: an
// `## path` section per source file, a `### name` block per function.
type Markdown struct{}

func (*Markdown) Ext() string { return ".md" }

func (m *Markdown) Render(w io.Writer, model *doc.DocumentModel) error {
	var b strings.Builder
	b.WriteString("# API Documentation\n")

	for i := range model.Files {
		fd := &model.Files[i]
		if len(fd.Functions) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n", fd.Path)
		for j := range fd.Functions {
			m.renderFunction(&b, &fd.Functions[j])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (m *Markdown) renderFunction(b *strings.Builder, fn *doc.DocumentedFunction) {
	fmt.Fprintf(b, "\n### %s\n\n", fn.NamePath)
	fmt.Fprintf(b, "```lua\n%s\n```\n", fn.Signature)

	entry := fn.Doc
	if entry == nil {
		b.WriteString("\n---\n")
		return
	}

	if len(entry.Includes) > 0 {
		fmt.Fprintf(b, "\n**Includes:** %s\n", strings.Join(entry.Includes, ", "))
	}
	if entry.Brief != "" {
		fmt.Fprintf(b, "\n%s\n", entry.Brief)
	}
	if entry.Note != "" {
		fmt.Fprintf(b, "\n> **Note:** %s\n", entry.Note)
	}

	if len(entry.Params) > 0 {
		b.WriteString("\n**Parameters:**\n\n")
		for _, p := range entry.Params {
			fmt.Fprintf(b, "- `%s` (%s)", p.Name, orUnknown(p.TypeName))
			if p.Description != "" {
				fmt.Fprintf(b, ": %s", p.Description)
			}
			b.WriteString("\n")
		}
	}
	if len(entry.Returns) > 0 {
		b.WriteString("\n**Returns:**\n\n")
		for _, r := range entry.Returns {
			fmt.Fprintf(b, "- (%s)", orUnknown(r.TypeName))
			if r.Description != "" {
				fmt.Fprintf(b, ": %s", r.Description)
			}
			b.WriteString("\n")
		}
	}

	for i := range entry.Description {
		renderNode(b, &entry.Description[i])
	}

	b.WriteString("\n---\n")
}

func renderNode(b *strings.Builder, n *doc.DescriptionNode) {
	switch n.Kind {
	case doc.NodeText:
		fmt.Fprintf(b, "\n%s\n", n.Text)
	case doc.NodeCode:
		lang := n.Lang
		if lang == "" {
			lang = "lua"
		}
		fmt.Fprintf(b, "\n```%s\n%s\n```\n", lang, n.Text)
	case doc.NodeFormula:
		fmt.Fprintf(b, "\n$%s$\n", n.Text)
	case doc.NodeBulletList:
		b.WriteString("\n")
		for _, item := range n.Items {
			fmt.Fprintf(b, "- %s\n", item)
		}
	case doc.NodeHTMLLink:
		label := n.Text
		if label == "" {
			label = n.URL
		}
		fmt.Fprintf(b, "\n[%s](%s)\n", label, n.URL)
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
