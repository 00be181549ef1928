package doctag_test

import (
	"reflect"
	"testing"

	"todoc/internal/diag"
	"todoc/internal/doc"
)

// desc wraps the lines in an @description block and returns its nodes.
func descNodes(t *testing.T, bodyLines ...string) ([]doc.DescriptionNode, *testReporter) {
	t.Helper()
	raw := []string{"-- @description"}
	raw = append(raw, bodyLines...)
	entry, reporter := parse(t, raw...)
	return entry.Description, reporter
}

func TestMarkup_TextDirective(t *testing.T) {
	nodes, _ := descNodes(t, `-- \text plain paragraph`)
	want := []doc.DescriptionNode{{Kind: doc.NodeText, Text: "plain paragraph"}}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("nodes = %+v", nodes)
	}
}

func TestMarkup_BlankLineSplitsParagraphs(t *testing.T) {
	nodes, _ := descNodes(t,
		"-- first paragraph",
		"--",
		"-- second paragraph")
	if len(nodes) != 2 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Text != "first paragraph" || nodes[1].Text != "second paragraph" {
		t.Errorf("nodes = %+v", nodes)
	}
}

func TestMarkup_CodeInline(t *testing.T) {
	nodes, _ := descNodes(t, `-- \code{local x = t[k]}`)
	want := []doc.DescriptionNode{{Kind: doc.NodeCode, Text: "local x = t[k]"}}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("nodes = %+v", nodes)
	}
}

func TestMarkup_CodeWithLanguage(t *testing.T) {
	nodes, _ := descNodes(t, `-- \code[c]{int main(void);}`)
	if len(nodes) != 1 || nodes[0].Lang != "c" || nodes[0].Text != "int main(void);" {
		t.Fatalf("nodes = %+v", nodes)
	}
}

// Braces pair by depth, so a body holding an unbalanced-looking snippet
// of Lua closes only at the matching brace.
func TestMarkup_CodeBraceDepth(t *testing.T) {
	nodes, _ := descNodes(t, `-- \code{t = { a = { 1 } }} trailing`)
	if len(nodes) != 1 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Text != "t = { a = { 1 } }" {
		t.Errorf("body = %q", nodes[0].Text)
	}
}

func TestMarkup_CodeMultiLine(t *testing.T) {
	nodes, _ := descNodes(t,
		`-- \code{local acc = 0`,
		"-- for _, v in ipairs(t) do",
		"--   acc = acc + v",
		"-- end}")
	if len(nodes) != 1 || nodes[0].Kind != doc.NodeCode {
		t.Fatalf("nodes = %+v", nodes)
	}
	want := "local acc = 0\nfor _, v in ipairs(t) do\n  acc = acc + v\nend"
	if nodes[0].Text != want {
		t.Errorf("body = %q, want %q", nodes[0].Text, want)
	}
}

func TestMarkup_UnterminatedBody(t *testing.T) {
	nodes, reporter := descNodes(t, `-- \formula{e = mc^2`)
	if !reporter.has(diag.DocUnterminatedBody) {
		t.Errorf("expected DocUnterminatedBody, got %v", reporter.diagnostics)
	}
	if len(nodes) != 1 || nodes[0].Kind != doc.NodeFormula {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Text != "e = mc^2" {
		t.Errorf("body = %q", nodes[0].Text)
	}
}

func TestMarkup_Formula(t *testing.T) {
	nodes, _ := descNodes(t, `-- \formula{a^2 + b^2 = c^2}`)
	want := []doc.DescriptionNode{{Kind: doc.NodeFormula, Text: "a^2 + b^2 = c^2"}}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("nodes = %+v", nodes)
	}
}

func TestMarkup_List(t *testing.T) {
	nodes, _ := descNodes(t,
		`-- \list`,
		"-- - first item",
		"-- - second item",
		"-- not a bullet anymore")
	if len(nodes) != 2 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Kind != doc.NodeBulletList ||
		!reflect.DeepEqual(nodes[0].Items, []string{"first item", "second item"}) {
		t.Errorf("list = %+v", nodes[0])
	}
	if nodes[1].Kind != doc.NodeText || nodes[1].Text != "not a bullet anymore" {
		t.Errorf("tail = %+v", nodes[1])
	}
}

func TestMarkup_HTMLLink(t *testing.T) {
	tests := []struct {
		line  string
		url   string
		label string
	}{
		{`-- \html https://example.com/api`, "https://example.com/api", ""},
		{`-- \html https://example.com/api API reference`, "https://example.com/api", "API reference"},
	}
	for _, tt := range tests {
		nodes, _ := descNodes(t, tt.line)
		if len(nodes) != 1 || nodes[0].Kind != doc.NodeHTMLLink {
			t.Fatalf("%q: nodes = %+v", tt.line, nodes)
		}
		if nodes[0].URL != tt.url || nodes[0].Text != tt.label {
			t.Errorf("%q: node = %+v", tt.line, nodes[0])
		}
	}
}

func TestMarkup_UnknownDirectiveKeptAsText(t *testing.T) {
	nodes, reporter := descNodes(t, `-- \table{a|b}`)
	if !reporter.has(diag.DocUnknownMarkup) {
		t.Errorf("expected DocUnknownMarkup, got %v", reporter.diagnostics)
	}
	if len(nodes) != 1 || nodes[0].Kind != doc.NodeText || nodes[0].Text != `\table{a|b}` {
		t.Fatalf("nodes = %+v", nodes)
	}
}

func TestMarkup_ContinuationAfterDirective(t *testing.T) {
	nodes, _ := descNodes(t,
		`-- \text starts here`,
		"-- and continues here")
	if len(nodes) != 1 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if nodes[0].Text != "starts here\nand continues here" {
		t.Errorf("text = %q", nodes[0].Text)
	}
}
