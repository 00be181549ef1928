// Package doctag parses the two-level annotation DSL found in comment
// blocks: top-level @tags, and the nested description markup collected
// under @description. Both parsers recover from unknown directives; no
// input ever fails a file at this stage.
package doctag

import (
	"strings"

	"todoc/internal/diag"
	"todoc/internal/doc"
)

// ParseEntry turns an associated comment block into a DocEntry.
// Recoverable problems (unknown tags, malformed @param lines) are reported
// through reporter and folded into the entry instead of dropping content.
func ParseEntry(block *doc.CommentBlock, reporter diag.Reporter) *doc.DocEntry {
	entry := doc.NewDocEntry()
	lines := explode(block)

	var descRun []line
	inDesc := false
	briefDone := false

	flushDesc := func() {
		if len(descRun) > 0 {
			entry.Description = append(entry.Description, parseMarkup(descRun, reporter)...)
			descRun = descRun[:0]
		}
		inDesc = false
	}

	for _, ln := range lines {
		text := strings.TrimSpace(ln.text)

		if tag, body, ok := cutTag(text); ok {
			flushDesc()
			briefDone = true
			switch tag {
			case "brief":
				entry.Brief = body
			case "param":
				entry.Params = append(entry.Params, parseParamTag(ln, body, true, reporter))
			case "return":
				entry.Returns = append(entry.Returns, parseParamTag(ln, body, false, reporter))
			case "description":
				inDesc = true
			case "note":
				entry.Note = body
			case "includes":
				for _, inc := range strings.Split(body, ",") {
					if inc = strings.TrimSpace(inc); inc != "" {
						entry.Includes = append(entry.Includes, inc)
					}
				}
			case "!all":
				entry.Exported = false
			default:
				diag.ReportWarning(reporter, diag.DocUnknownTag, ln.span,
					"unknown tag @"+tag+", kept as plain text").Emit()
				entry.Description = append(entry.Description, doc.DescriptionNode{
					Kind: doc.NodeText,
					Text: text,
				})
			}
			continue
		}

		if inDesc {
			descRun = append(descRun, ln)
			continue
		}

		if text == "" {
			continue
		}

		// Untagged leading text is the implicit brief; later untagged
		// lines in the same run extend it.
		if !briefDone {
			if entry.Brief == "" {
				entry.Brief = text
			} else {
				entry.Brief += " " + text
			}
		}
	}
	flushDesc()

	return entry
}

// cutTag splits "@word rest" at directive position. "@!all" is the one
// tag whose word is not alphanumeric.
func cutTag(text string) (tag, body string, ok bool) {
	if !strings.HasPrefix(text, "@") {
		return "", "", false
	}
	rest := text[1:]
	if rest == "" {
		return "", "", false
	}
	if strings.HasPrefix(rest, "!all") {
		return "!all", strings.TrimSpace(rest[len("!all"):]), true
	}
	cut := strings.IndexAny(rest, " \t")
	if cut < 0 {
		return rest, "", true
	}
	return rest[:cut], strings.TrimSpace(rest[cut+1:]), true
}

// parseParamTag parses "@param name type desc..." (named=true) or
// "@return type desc..." (named=false). Missing fields stay empty so
// downstream coverage tooling can flag them.
func parseParamTag(ln line, body string, named bool, reporter diag.Reporter) doc.Param {
	fields := strings.Fields(body)
	need := 1
	if named {
		need = 2
	}
	if len(fields) < need {
		tag := "@return"
		if named {
			tag = "@param"
		}
		diag.ReportWarning(reporter, diag.DocMalformedParam, ln.span,
			tag+" is missing required fields").Emit()
	}

	var p doc.Param
	i := 0
	if named && i < len(fields) {
		p.Name = fields[i]
		i++
	}
	if i < len(fields) {
		p.TypeName = fields[i]
		i++
	}
	if i < len(fields) {
		p.Description = strings.Join(fields[i:], " ")
	}
	return p
}
