package tokenizer

import "github.com/jcorbin/mdtok"

// resolveWhitespace trims a leading and/or trailing run of whole
// whitespace spans (SpaceOrTab, LineEnding) from each region RunString
// recorded. Grounded on the "trimming" half of SPEC_FULL.md §4.6's
// description of the string content type's resolver (the original
// partial_whitespace::resolve_whitespace this is named after was not
// among the files retrieved into this pack's original_source copy, so
// its exact algorithm could not be mirrored directly; see DESIGN.md).
// The "collapsing to single spaces" half is not implemented: space_or_tab
// already coalesces every contiguous space/tab run on one line into a
// single span, so there is no multi-span interior whitespace left for
// this resolver to merge within the regions this package currently
// produces.
func resolveWhitespace(t *Tokenizer) {
	for _, r := range t.stringRanges {
		trimWhitespaceEdges(t, r[0], r[1])
	}
}

func isWhitespaceEventType(typ mdtok.TokenType) bool {
	return typ == mdtok.SpaceOrTab || typ == mdtok.LineEnding
}

// trimWhitespaceEdges removes, via the Edit Map, every whole leading and
// trailing Enter/Exit whitespace-span pair within [begin, end), stopping
// at the first span (from each side) that is not whitespace.
func trimWhitespaceEdges(t *Tokenizer, begin, end int) {
	i := begin
	for i+1 < end {
		enter, exit := t.EventAt(i), t.EventAt(i+1)
		if enter.Kind != mdtok.Enter || exit.Kind != mdtok.Exit || enter.Type != exit.Type || !isWhitespaceEventType(enter.Type) {
			break
		}
		t.EditMap().add(i, 2, nil)
		i += 2
	}

	j := end
	for j-2 >= i {
		enter, exit := t.EventAt(j-2), t.EventAt(j-1)
		if enter.Kind != mdtok.Enter || exit.Kind != mdtok.Exit || enter.Type != exit.Type || !isWhitespaceEventType(enter.Type) {
			break
		}
		t.EditMap().add(j-2, 2, nil)
		j -= 2
	}
}
