package mdtok

// ContentType names a family of constructs eligible within a region of
// input. Parse takes no ContentType: it always tokenizes its whole input
// as a document (flow content inside block-quote/list containers, each
// paragraph's lines handled as text), and no exported function tokenizes
// a region as bare flow, text, or string content.
type ContentType int

// The three content-type entry points (SPEC_FULL.md §6).
const (
	// Flow recognizes block-level constructs: headings, thematic
	// breaks, code blocks, block quotes, lists, and paragraphs.
	Flow ContentType = iota
	// Text recognizes inline constructs with the full marker set:
	// code spans, character escapes and references, and (falling back)
	// generic data.
	Text
	// String recognizes only character escapes and character
	// references, falling back to generic data. Fenced code info strings
	// are raw spans, not String content.
	String
)

// String renders "flow", "text", or "string".
func (ct ContentType) String() string {
	switch ct {
	case Flow:
		return "flow"
	case Text:
		return "text"
	case String:
		return "string"
	default:
		return "invalid"
	}
}
