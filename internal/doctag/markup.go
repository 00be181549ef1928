package doctag

import (
	"strings"

	"todoc/internal/diag"
	"todoc/internal/doc"
)

// parseMarkup turns the body collected under @description into typed
// nodes. Directives are matched at the start of a markup line; everything
// else continues the most recent open paragraph or starts a new one.
func parseMarkup(lines []line, reporter diag.Reporter) []doc.DescriptionNode {
	var nodes []doc.DescriptionNode
	open := -1 // index into nodes of the paragraph accepting continuation

	appendNode := func(n doc.DescriptionNode, keepOpen bool) {
		nodes = append(nodes, n)
		if keepOpen {
			open = len(nodes) - 1
		} else {
			open = -1
		}
	}

	for i := 0; i < len(lines); i++ {
		text := strings.TrimSpace(lines[i].text)

		if text == "" {
			// A blank markup line ends the current paragraph.
			open = -1
			continue
		}

		if !strings.HasPrefix(text, `\`) {
			if open >= 0 {
				nodes[open].Text += "\n" + text
			} else {
				appendNode(doc.DescriptionNode{Kind: doc.NodeText, Text: text}, true)
			}
			continue
		}

		word, rest := cutMarkupWord(text[1:])
		switch word {
		case "text":
			appendNode(doc.DescriptionNode{Kind: doc.NodeText, Text: rest}, true)

		case "code":
			lang := ""
			if strings.HasPrefix(rest, "[") {
				if close := strings.IndexByte(rest, ']'); close > 0 {
					lang = rest[1:close]
					rest = strings.TrimSpace(rest[close+1:])
				}
			}
			node, next, terminated := scanBraceBody(lines, i, rest, reporter)
			node.Kind = doc.NodeCode
			node.Lang = lang
			appendNode(node, !terminated)
			i = next

		case "formula":
			node, next, terminated := scanBraceBody(lines, i, rest, reporter)
			node.Kind = doc.NodeFormula
			appendNode(node, !terminated)
			i = next

		case "list":
			items, next := scanBullets(lines, i)
			appendNode(doc.DescriptionNode{Kind: doc.NodeBulletList, Items: items}, false)
			i = next

		case "html":
			fields := strings.Fields(rest)
			node := doc.DescriptionNode{Kind: doc.NodeHTMLLink}
			if len(fields) > 0 {
				node.URL = fields[0]
			}
			if len(fields) > 1 {
				node.Text = strings.Join(fields[1:], " ")
			}
			appendNode(node, false)

		default:
			diag.ReportWarning(reporter, diag.DocUnknownMarkup, lines[i].span,
				`unknown markup \`+word+", kept as plain text").Emit()
			appendNode(doc.DescriptionNode{Kind: doc.NodeText, Text: text}, true)
		}
	}
	return nodes
}

// cutMarkupWord splits a directive into its word and the rest of the line.
// The word ends at the first non-letter byte, so "\code{x}" and "\code x"
// both yield "code".
func cutMarkupWord(s string) (word, rest string) {
	i := 0
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z') {
		i++
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// scanBraceBody reads a {…} body starting on line i at rest (the text
// after the directive word). The body may span lines and may contain any
// text as long as braces balance; a depth counter, not the first '}',
// decides where it ends. Without an opening brace the rest of the line is
// the body. Returns the node (Text filled), the line index to resume
// after, and whether the body was properly terminated.
func scanBraceBody(lines []line, i int, rest string, reporter diag.Reporter) (doc.DescriptionNode, int, bool) {
	if !strings.HasPrefix(rest, "{") {
		// Inline form: the remainder of the line is the body.
		return doc.DescriptionNode{Text: rest}, i, rest != ""
	}

	var body strings.Builder
	depth := 1
	cur := rest[1:]
	for {
		for j := 0; j < len(cur); j++ {
			switch cur[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					body.WriteString(cur[:j])
					return doc.DescriptionNode{Text: body.String()}, i, true
				}
			}
		}
		body.WriteString(cur)

		i++
		if i >= len(lines) {
			diag.ReportWarning(reporter, diag.DocUnterminatedBody, lines[len(lines)-1].span,
				"brace body is never closed; taking text to end of block").Emit()
			return doc.DescriptionNode{Text: body.String()}, i - 1, false
		}
		body.WriteByte('\n')
		cur = lines[i].text
	}
}

// scanBullets collects "- item" lines following a \list directive until
// the first non-bullet line. Returns the items and the index of the last
// consumed line.
func scanBullets(lines []line, i int) ([]string, int) {
	var items []string
	last := i
	for j := i + 1; j < len(lines); j++ {
		text := strings.TrimSpace(lines[j].text)
		after, ok := strings.CutPrefix(text, "-")
		if !ok || strings.HasPrefix(after, "-") {
			break
		}
		items = append(items, strings.TrimSpace(after))
		last = j
	}
	return items, last
}
