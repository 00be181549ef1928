package doc

// NodeKind discriminates DescriptionNode variants. The set is closed:
// renderers switch over it exhaustively.
type NodeKind uint8

const (
	// NodeText is a plain paragraph.
	NodeText NodeKind = iota
	// NodeCode is a verbatim code block with an optional language hint.
	NodeCode
	// NodeFormula is a verbatim math formula.
	NodeFormula
	// NodeBulletList is an ordered sequence of bullet items.
	NodeBulletList
	// NodeHTMLLink is a URL with an optional label.
	NodeHTMLLink
)

func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeCode:
		return "code"
	case NodeFormula:
		return "formula"
	case NodeBulletList:
		return "list"
	case NodeHTMLLink:
		return "html"
	}
	return "unknown"
}

// DescriptionNode is one typed chunk of an @description body.
// Which fields are meaningful depends on Kind:
//
//	NodeText       Text
//	NodeCode       Text (body), Lang (optional hint)
//	NodeFormula    Text (body)
//	NodeBulletList Items
//	NodeHTMLLink   URL, Text (optional label)
type DescriptionNode struct {
	Kind  NodeKind `msgpack:"kind" json:"kind"`
	Text  string   `msgpack:"text,omitempty" json:"text,omitempty"`
	Lang  string   `msgpack:"lang,omitempty" json:"lang,omitempty"`
	Items []string `msgpack:"items,omitempty" json:"items,omitempty"`
	URL   string   `msgpack:"url,omitempty" json:"url,omitempty"`
}
