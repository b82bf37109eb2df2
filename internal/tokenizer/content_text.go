package tokenizer

import "github.com/jcorbin/mdtok"

// text is one of the three content-type entry points SPEC_FULL.md §6
// requires external callers be able to select: inline content with the
// full marker set (code spans, character escapes, character references),
// falling back to generic data. Grounded on the same "content type is
// itself a mini-construct that dispatches on the current byte" design
// SPEC_FULL.md §4.6 describes for string; text is its richer sibling.
var textMarkers = []byte{'`', '\\', '&'}

func init() {
	register(nameTextFallbackByte, textFallbackByteStart)
	register(nameTextFallbackByteEnd, textFallbackByteEnd)
}

// RunText tokenizes src from the cursor to end of input as a bare `text`
// region: no paragraph wrapper, no line-ending-driven stop/continue
// decisions, just the marker dispatch every inline byte goes through.
// Paragraph (construct_paragraph.go) calls dispatchTextByte directly
// instead, since it alone decides when a line ending should end the
// construct rather than merely pass through as content.
func (t *Tokenizer) RunText() {
	saved := t.ts.markers
	t.ts.markers = textMarkers
	for t.current != mdtok.CodeNone {
		t.dispatchTextByte()
	}
	t.ts.markers = saved
}

// dispatchTextByte recognizes and tokenizes exactly one inline unit under
// the text content type's marker set, or -- if the current byte merely
// looked like a marker but no construct actually claimed it (e.g. a lone
// '&' that isn't a valid character reference) -- folds it into a
// one-byte Data span so the caller always makes progress. Assumes the
// caller has already excluded CodeNone and line endings.
func (t *Tokenizer) dispatchTextByte() {
	if t.firstConstruct("code-text", "character-escape", "character-reference") != "" {
		return
	}
	if t.attempt(nameDataStart) {
		return
	}
	t.attempt(nameTextFallbackByte)
}

func textFallbackByteStart(t *Tokenizer) State {
	t.Enter(mdtok.Data)
	return Next(nameTextFallbackByteEnd)
}

func textFallbackByteEnd(t *Tokenizer) State {
	t.Exit(mdtok.Data)
	return Ok()
}
