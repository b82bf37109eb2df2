package tokenizer

import "github.com/jcorbin/mdtok"

// RunDocument drives an entire parse: it owns the root Document span, the
// open container stack (capped at one level deep, see containerKind), and
// the multi-line lifecycle of the two code-block constructs, dispatching
// each line in turn to whichever per-line or self-contained construct
// claims it. Adapted from scandown.BlockStack.Scan's per-line matching
// loop: that function re-walks its whole open block stack against every
// line and closes whatever a line fails to continue, which this collapses
// to the single-level case this package models.
//
// Unlike every per-byte construct elsewhere in this package, RunDocument
// is not itself a StateName-tagged state: it is the one place above the
// State Dispatcher that calls Enter/Exit and the attempt/check combinators
// directly, the same division of labor scandown itself draws between
// Scan's line-matching loop and the byte-level matchers (quoteMarker,
// fence, ruler, ...) it calls into.
//
// Container prefixes are matched and closed line by line here, but a
// construct's own multi-line content (paragraph's self-contained run of
// text lines, in particular) is not: once paragraph is handed a line
// inside an open container, it keeps consuming text by itself exactly as
// it would outside any container, including any literal container-marker
// bytes a later line repeats. True lazy continuation -- resuming an
// already-open paragraph after a missing container prefix -- cannot arise
// in this design for the same reason: by the time RunDocument regains
// control, paragraph has already decided on its own where to stop. See
// DESIGN.md for why this is an accepted scope cut rather than a bug.
func (t *Tokenizer) RunDocument() {
	t.Enter(mdtok.Document)

	kind := containerNone
	var fs flowState

	for t.current != mdtok.CodeNone {
		if kind != containerNone && !t.continueContainer(kind) {
			t.closeContainer(kind)
			kind = containerNone
			fs = flowState{}
		}
		if kind == containerNone {
			kind = t.tryOpenContainer()
		}

		t.dispatchLine(&fs)
	}

	if kind != containerNone {
		t.closeContainer(kind)
	}
	t.Exit(mdtok.Document)
}

// lineIsBlank is a pure lookahead reporting whether the rest of the
// current line, up to its line ending or end of input, is empty or all
// space/tab.
func (t *Tokenizer) lineIsBlank() bool {
	snap := t.snapshot()
	defer t.restore(snap)
	for t.current.IsSpaceOrTab() {
		t.advance()
	}
	return t.current == mdtok.CodeNone || t.current.IsLineEnding()
}

// consumeBlankLine commits a blank line's leading whitespace (if any) and
// its terminating line ending (if any; the final line of input may have
// neither).
func (t *Tokenizer) consumeBlankLine() {
	t.SpaceOrTab(0, spaceOrTabUnbounded)
	if t.current.IsLineEnding() {
		t.Enter(mdtok.BlankLineEnding)
		t.advance()
		t.Exit(mdtok.BlankLineEnding)
	}
}

// consumeLineEnding commits the line ending every leaf construct above
// deliberately leaves unconsumed (see thematic-break's doc comment),
// attributing it to the document driver rather than to whichever
// construct happened to precede it.
func (t *Tokenizer) consumeLineEnding() {
	if t.current.IsLineEnding() {
		t.Enter(mdtok.LineEnding)
		t.advance()
		t.Exit(mdtok.LineEnding)
	}
}

// containerKind names the single open container RunDocument is currently
// inside. Nesting is capped at one level (a scope cut documented in
// DESIGN.md): a block quote or a list, never one inside the other.
type containerKind int

const (
	containerNone containerKind = iota
	containerBlockQuote
	containerList
)

func (t *Tokenizer) continueContainer(kind containerKind) bool {
	switch kind {
	case containerBlockQuote:
		return t.attemptConstruct("block-quote")
	case containerList:
		return t.continueList()
	default:
		return false
	}
}

func (t *Tokenizer) closeContainer(kind containerKind) {
	switch kind {
	case containerBlockQuote:
		t.Exit(mdtok.BlockQuote)
	case containerList:
		t.Exit(mdtok.ListItem)
		t.Exit(mdtok.List)
	}
}

func (t *Tokenizer) tryOpenContainer() containerKind {
	if t.enabled("block-quote") && t.tryOpenBlockQuote() {
		return containerBlockQuote
	}
	if t.enabled("list") && t.tryOpenList() {
		return containerList
	}
	return containerNone
}

func (t *Tokenizer) tryOpenBlockQuote() bool {
	snap := t.snapshot()
	t.Enter(mdtok.BlockQuote)
	if !t.attemptConstruct("block-quote") {
		t.restore(snap)
		return false
	}
	return true
}

// listBullet/listOrdinal record the open list's marker family, read once
// when it opens and compared against each later line's marker to decide
// "same list, new item" from "a different list starts here" -- a
// simplification of scandown.ordinal's own delimiter tracking that drops
// the '.'  vs ')' distinction (see DESIGN.md).
//
// peekListFamily looks past up to TabSize-1 columns of leading space/tab
// before classifying the marker byte, the same tolerance listMarkerStart
// itself applies, so this pure lookahead agrees with what attemptConstruct
// will actually match.
func (t *Tokenizer) peekListFamily() (bullet byte, ordinal, ok bool) {
	snap := t.snapshot()
	defer t.restore(snap)
	for n := 0; t.current.IsSpaceOrTab() && n < mdtok.TabSize-1; n++ {
		t.advance()
	}
	b, isByte := t.current.Byte()
	if !isByte {
		return 0, false, false
	}
	switch {
	case b == '-' || b == '*' || b == '+':
		return b, false, true
	case isDigit(b):
		return 0, true, true
	default:
		return 0, false, false
	}
}

func (t *Tokenizer) tryOpenList() bool {
	bullet, ordinal, ok := t.peekListFamily()
	if !ok {
		return false
	}
	snap := t.snapshot()
	t.Enter(mdtok.List)
	t.Enter(mdtok.ListItem)
	if !t.attemptConstruct("list") {
		t.restore(snap)
		return false
	}
	t.listBullet, t.listOrdinal = bullet, ordinal
	return true
}

func (t *Tokenizer) continueList() bool {
	if bullet, ordinal, ok := t.peekListFamily(); ok {
		if ordinal != t.listOrdinal || (!ordinal && bullet != t.listBullet) {
			return false
		}
		snap := t.snapshot()
		t.Exit(mdtok.ListItem)
		t.Enter(mdtok.ListItem)
		if !t.attemptConstruct("list") {
			t.restore(snap)
			return false
		}
		return true
	}
	if t.current.IsSpaceOrTab() {
		return t.SpaceOrTab(1, spaceOrTabUnbounded)
	}
	return false
}
