package tokenizer

import "github.com/jcorbin/mdtok"

// string is the most restricted of the three content-type entry points
// SPEC_FULL.md §6 requires (flow, text, string): inline content limited
// to character escapes and character references, falling back to generic
// data. Grounded on original_source/src/content/string.rs's start/before/
// before_data states; collapsed, like text's RunText, into a plain Go
// loop over one dispatch step rather than its own StateName-tagged
// states.
var stringMarkers = []byte{'&', '\\'}

// RunString tokenizes src from the cursor to end of input as a `string`
// region and registers the whitespace-trimming resolver string.rs
// registers at its own start, recording this call's event range so that
// resolver (resolve_whitespace.go) can find it once the whole parse is
// done.
func (t *Tokenizer) RunString() {
	begin := t.LastEventIndex() + 1
	saved := t.ts.markers
	t.ts.markers = stringMarkers
	for t.current != mdtok.CodeNone {
		t.dispatchStringByte()
	}
	t.ts.markers = saved
	if end := t.LastEventIndex() + 1; end > begin {
		t.stringRanges = append(t.stringRanges, [2]int{begin, end})
	}
	t.RegisterResolver("whitespace", resolveWhitespace)
}

// dispatchStringByte is to the string content type as dispatchTextByte
// (content_text.go) is to text: one marker-or-data step, falling back to
// a one-byte Data span if a marker byte's owning construct declines it.
func (t *Tokenizer) dispatchStringByte() {
	if t.firstConstruct("character-escape", "character-reference") != "" {
		return
	}
	if t.attempt(nameDataStart) {
		return
	}
	t.attempt(nameTextFallbackByte)
}
