package tokenizer

import "github.com/jcorbin/mdtok"

// thematic_break: a line of three or more matching '-', '_', or '*' bytes,
// interleaved with any amount of space or tab. Grounded on scandown.ruler,
// generalized from a single whole-line byte scan into a per-byte
// tokenizer-engine construct; boundary cases (two-char runs invalid,
// plusses/equals never valid, mixed markers invalid) come from
// original_source/tests/thematic_break.rs's table, reproduced in
// SPEC_FULL.md §8 and in this package's tests.
//
// Like the reference implementation, this construct does not itself
// consume the line's trailing line ending: it stops as soon as it can tell
// the rest of the line (if any) is only space/tab, leaving the line ending
// to whichever driver invoked it.
//
// Up to TabSize-1 columns of leading space/tab are tolerated before the
// marker, matching scandown.Block's own trimIndent(tail, 0, 4) stripped
// before ruler/delimiter/quoteMarker/listMarker ever see a line: a more
// indented line has already been claimed by code-indented, which this
// construct's callers only try after this one (content_flow.go).
func init() {
	registerConstruct(Construct{
		Name:  "thematic-break",
		Start: nameThematicBreakStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.ThematicBreak
		},
	})
	register(nameThematicBreakStart, thematicBreakStart)
	register(nameThematicBreakBefore, thematicBreakBefore)
	register(nameThematicBreakSequence, thematicBreakSequence)
	register(nameThematicBreakAfter, thematicBreakAfter)
}

func thematicBreakStart(t *Tokenizer) State {
	t.SpaceOrTab(0, mdtok.TabSize-1)
	b, ok := t.current.Byte()
	if !ok || !isThematicBreakMarker(b) {
		return Nok()
	}
	t.ts.fenceChar = b
	t.Enter(mdtok.ThematicBreak)
	return Retry(nameThematicBreakBefore)
}

func isThematicBreakMarker(b byte) bool {
	return b == '-' || b == '_' || b == '*'
}

func thematicBreakBefore(t *Tokenizer) State {
	switch {
	case t.current.IsByte(t.ts.fenceChar):
		t.Enter(mdtok.ThematicBreakSequence)
		return Retry(nameThematicBreakSequence)
	case t.current.IsSpaceOrTab():
		if !t.SpaceOrTab(1, spaceOrTabUnbounded) {
			return thematicBreakFail(t)
		}
		return Retry(nameThematicBreakBefore)
	case t.current == mdtok.CodeNone || t.current.IsLineEnding():
		return Retry(nameThematicBreakAfter)
	default:
		return thematicBreakFail(t)
	}
}

func thematicBreakSequence(t *Tokenizer) State {
	if t.current.IsByte(t.ts.fenceChar) {
		t.ts.sizeB++
		return Next(nameThematicBreakSequence)
	}
	t.Exit(mdtok.ThematicBreakSequence)
	return Retry(nameThematicBreakBefore)
}

func thematicBreakAfter(t *Tokenizer) State {
	ok := t.ts.sizeB >= 3
	if !ok {
		return thematicBreakFail(t)
	}
	t.Exit(mdtok.ThematicBreak)
	t.ts.fenceChar = 0
	t.ts.resetRun()
	return Ok()
}

func thematicBreakFail(t *Tokenizer) State {
	t.ts.fenceChar = 0
	t.ts.resetRun()
	return Nok()
}
