package tokenizer

import "github.com/jcorbin/mdtok"

// paragraph: a run of non-blank lines of text content. Unlike the distilled
// spec's two detailed constructs, paragraph has no entry in Constructs (§6
// enumerates no "paragraph" option, matching upstream: a paragraph is the
// flow content type's fallback, never independently toggleable) and so is
// never added to the Construct registry; the flow driver (content_flow.go's
// dispatchLine) dispatches to it by StateName directly, the same way the
// text and string drivers dispatch to data.
//
// Scope simplification, documented per the task's grounding discipline: a
// single attempt spans the whole multi-line paragraph (stopping at a blank
// line, a setext underline, or end of input) rather than being re-entered
// line by line by the container driver. Per-byte inline content
// recognition is not duplicated here, though: each line's bytes are
// dispatched through content_text.go's dispatchTextByte, the same marker
// table an external `text` content-type caller would get. What paragraph
// alone owns is the line-level decision of whether a line ending
// continues or ends the construct, at the cost of not threading
// lazy-continuation or other-construct-interrupt checks through every
// line of a paragraph (see DESIGN.md).
func init() {
	register(nameParagraphStart, paragraphStart)
	register(nameParagraphInside, paragraphInside)
	register(nameParagraphAfterLineEnding, paragraphAfterLineEnding)
	register(nameParagraphLineEnd, paragraphLineEnd)
}

func paragraphStart(t *Tokenizer) State {
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() {
		return Nok()
	}
	t.Enter(mdtok.Paragraph)
	t.ts.markers = textMarkers
	return Retry(nameParagraphInside)
}

func paragraphInside(t *Tokenizer) State {
	switch {
	case t.current == mdtok.CodeNone:
		return Retry(nameParagraphLineEnd)
	case t.current.IsLineEnding():
		if paragraphNextLineBlank(t) || paragraphNextLineSetext(t) {
			return Retry(nameParagraphLineEnd)
		}
		t.Enter(mdtok.LineEnding)
		return Next(nameParagraphAfterLineEnding)
	default:
		t.dispatchTextByte()
		return Retry(nameParagraphInside)
	}
}

func paragraphAfterLineEnding(t *Tokenizer) State {
	t.Exit(mdtok.LineEnding)
	return Retry(nameParagraphInside)
}

func paragraphLineEnd(t *Tokenizer) State {
	t.Exit(mdtok.Paragraph)
	t.ts.markers = nil
	return Ok()
}

// paragraphNextLineBlank is a pure lookahead (see
// headingATXClosingRunCloses for why this is not itself a StateName):
// starting just after a line ending, it reports whether the line that
// follows is empty or all space/tab before the next line ending or EOF.
func paragraphNextLineBlank(t *Tokenizer) bool {
	snap := t.snapshot()
	defer t.restore(snap)
	t.advance()
	for t.current.IsSpaceOrTab() {
		t.advance()
	}
	return t.current == mdtok.CodeNone || t.current.IsLineEnding()
}

// paragraphNextLineSetext is a pure lookahead, grounded the same way as
// paragraphNextLineBlank: it decides, without committing anything, whether
// the line following the current line ending is a valid setext underline
// (optional indent within heading_setext's own bound, then a run of a
// single '=' or '-', then only space/tab to end of line). Paragraph must
// stop itself here rather than swallow that line as more text, because
// heading_setext's own start state (construct_headingsetext.go) only
// fires once the preceding paragraph has actually Exited -- this is the
// one interrupt paragraph's self-contained design (see the package doc
// comment) does check for, since without it the heading-setext construct
// and resolver could never run at all.
func paragraphNextLineSetext(t *Tokenizer) bool {
	if !t.constructs.HeadingSetext {
		return false
	}
	snap := t.snapshot()
	defer t.restore(snap)
	t.advance()

	max := spaceOrTabUnbounded
	if t.constructs.CodeIndented {
		max = mdtok.TabSize - 1
	}
	for n := 0; n < max && t.current.IsSpaceOrTab(); n++ {
		t.advance()
	}

	b, ok := t.current.Byte()
	if !ok || (b != '-' && b != '=') {
		return false
	}
	for t.current.IsByte(b) {
		t.advance()
	}
	for t.current.IsSpaceOrTab() {
		t.advance()
	}
	return t.current == mdtok.CodeNone || t.current.IsLineEnding()
}
