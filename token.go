package mdtok

// TokenType names a grammatical role an Event's enclosing span plays.
// Token types are pure labels: they carry no payload beyond the point of
// the Enter/Exit events that bound them. The zero value, noToken, must
// never appear in a finished event stream.
type TokenType int

// The closed enumeration of token types this core recognizes. Every
// construct implemented under internal/tokenizer owns a disjoint subset of
// these; see SPEC_FULL.md §11 for which constructs are wired up.
const (
	noToken TokenType = iota

	// Document is the implicit root span of a parse.
	Document

	// Data is generic, unclassified content: whatever a content type's
	// catch-all construct consumes between recognized markers.
	Data
	// LineEnding spans a single line ending atom (LF, CR, or CRLF).
	LineEnding
	// SpaceOrTab spans a run of spaces, tabs, and/or virtual spaces.
	SpaceOrTab
	// BlankLineEnding spans a line ending that terminates a blank line.
	BlankLineEnding

	// Paragraph spans a run of non-blank lines forming a text paragraph.
	Paragraph

	// CodeText spans an inline code span, backtick sequence through
	// backtick sequence.
	CodeText
	// CodeTextSequence spans a run of backticks opening or closing a
	// code span.
	CodeTextSequence
	// CodeTextData spans literal content inside a code span, including
	// backtick runs that failed to close it.
	CodeTextData

	// HeadingSetext spans a paragraph retroactively promoted to a
	// setext heading by the heading-setext resolver.
	HeadingSetext
	// HeadingSetextText spans the promoted paragraph's former content.
	HeadingSetextText
	// HeadingSetextUnderline spans the underline line (run of '=' or
	// '-', optionally followed by trailing space/tab).
	HeadingSetextUnderline

	// HeadingATX spans a complete ATX heading line.
	HeadingATX
	// HeadingATXSequence spans the leading (or trailing) run of '#'.
	HeadingATXSequence
	// HeadingATXText spans an ATX heading's inner text.
	HeadingATXText

	// ThematicBreak spans a complete thematic break line.
	ThematicBreak
	// ThematicBreakSequence spans one marker byte run within a
	// thematic break (markers may be interleaved with whitespace).
	ThematicBreakSequence

	// CharacterEscape spans a backslash and the single punctuation byte
	// it escapes.
	CharacterEscape
	// CharacterEscapeMarker spans the escaping backslash.
	CharacterEscapeMarker
	// CharacterEscapeValue spans the escaped byte.
	CharacterEscapeValue

	// CharacterReference spans an entire "&...;" reference.
	CharacterReference
	// CharacterReferenceMarker spans the '&' or ';'.
	CharacterReferenceMarker
	// CharacterReferenceValue spans the reference's inner name, decimal
	// digits, or hex digits.
	CharacterReferenceValue

	// CodeIndented spans an indented code block's content lines.
	CodeIndented
	// CodeFlowChunk spans one line's worth of flow-level code content
	// (used by both indented and fenced code).
	CodeFlowChunk

	// CodeFenced spans a whole fenced code block, opening fence through
	// closing fence (or end of container).
	CodeFenced
	// CodeFencedFence spans one fence line (opening or closing).
	CodeFencedFence
	// CodeFencedFenceSequence spans the run of fence marker bytes.
	CodeFencedFenceSequence
	// CodeFencedFenceInfo spans the opening fence's info string.
	CodeFencedFenceInfo
	// CodeFencedFenceMeta spans the opening fence's meta string, when
	// separated from the info string by whitespace.
	CodeFencedFenceMeta

	// BlockQuote spans an entire block quote container.
	BlockQuote
	// BlockQuoteMarker spans a single '>' marker byte.
	BlockQuoteMarker
	// BlockQuotePrefix spans one line's leading "> " marker and
	// optional single following space.
	BlockQuotePrefix

	// List spans an entire list container (all of its items).
	List
	// ListItem spans a single list item container.
	ListItem
	// ListItemMarker spans a bullet or ordinal marker.
	ListItemMarker
	// ListItemPrefix spans one line's leading marker and its following
	// indent, up to the item's content column.
	ListItemPrefix
)

// String renders a human-readable constant name, matching the style of
// the teacher's own Format methods elsewhere in this module.
func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "InvalidToken"
}

var tokenTypeNames = map[TokenType]string{
	noToken:                  "None",
	Document:                 "Document",
	Data:                     "Data",
	LineEnding:               "LineEnding",
	SpaceOrTab:               "SpaceOrTab",
	BlankLineEnding:          "BlankLineEnding",
	Paragraph:                "Paragraph",
	CodeText:                 "CodeText",
	CodeTextSequence:         "CodeTextSequence",
	CodeTextData:             "CodeTextData",
	HeadingSetext:            "HeadingSetext",
	HeadingSetextText:        "HeadingSetextText",
	HeadingSetextUnderline:   "HeadingSetextUnderline",
	HeadingATX:               "HeadingATX",
	HeadingATXSequence:       "HeadingATXSequence",
	HeadingATXText:           "HeadingATXText",
	ThematicBreak:            "ThematicBreak",
	ThematicBreakSequence:    "ThematicBreakSequence",
	CharacterEscape:          "CharacterEscape",
	CharacterEscapeMarker:    "CharacterEscapeMarker",
	CharacterEscapeValue:     "CharacterEscapeValue",
	CharacterReference:       "CharacterReference",
	CharacterReferenceMarker: "CharacterReferenceMarker",
	CharacterReferenceValue:  "CharacterReferenceValue",
	CodeIndented:             "CodeIndented",
	CodeFlowChunk:            "CodeFlowChunk",
	CodeFenced:               "CodeFenced",
	CodeFencedFence:          "CodeFencedFence",
	CodeFencedFenceSequence:  "CodeFencedFenceSequence",
	CodeFencedFenceInfo:      "CodeFencedFenceInfo",
	CodeFencedFenceMeta:      "CodeFencedFenceMeta",
	BlockQuote:               "BlockQuote",
	BlockQuoteMarker:         "BlockQuoteMarker",
	BlockQuotePrefix:         "BlockQuotePrefix",
	List:                     "List",
	ListItem:                 "ListItem",
	ListItemMarker:           "ListItemMarker",
	ListItemPrefix:           "ListItemPrefix",
}
