package tokenizer

import "github.com/jcorbin/mdtok"

// heading_atx: "1*6 '#'" optionally followed by text and an optional
// closing run of '#'. Grounded on scandown.delimiter (generalized from a
// single-byte-class run counter bounded at a fixed width into this
// construct's opening-sequence state) plus the token set implied by
// SPEC_FULL.md §4.6's "Other constructs" line and §11's ATX heading entry.
//
// Up to TabSize-1 columns of leading space/tab are tolerated before the
// opening '#', matching scandown.Block's trimIndent(tail, 0, 4) stripped
// ahead of delimiter; four or more columns is already claimed by
// code-indented, tried only after this construct (content_flow.go).
func init() {
	registerConstruct(Construct{
		Name:  "heading-atx",
		Start: nameHeadingATXStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.HeadingATX
		},
	})
	register(nameHeadingATXStart, headingATXStart)
	register(nameHeadingATXSequenceOpen, headingATXSequenceOpen)
	register(nameHeadingATXAfterOpen, headingATXAfterOpen)
	register(nameHeadingATXBefore, headingATXBefore)
	register(nameHeadingATXData, headingATXData)
	register(nameHeadingATXSequenceFurther, headingATXSequenceFurther)
	register(nameHeadingATXAfterSequence, headingATXAfterSequence)
	register(nameHeadingATXBreak, headingATXBreak)
}

func headingATXStart(t *Tokenizer) State {
	t.SpaceOrTab(0, mdtok.TabSize-1)
	if !t.current.IsByte('#') {
		return Nok()
	}
	t.Enter(mdtok.HeadingATX)
	t.Enter(mdtok.HeadingATXSequence)
	return Retry(nameHeadingATXSequenceOpen)
}

func headingATXSequenceOpen(t *Tokenizer) State {
	if t.current.IsByte('#') {
		if t.ts.size >= 6 {
			return headingATXFail(t)
		}
		t.ts.size++
		return Next(nameHeadingATXSequenceOpen)
	}
	t.Exit(mdtok.HeadingATXSequence)
	t.ts.size = 0
	return Retry(nameHeadingATXAfterOpen)
}

// headingATXAfterOpen requires the opening sequence be followed by either
// end of line (a bare "###" heading with no title) or at least one
// space/tab before any title text begins.
func headingATXAfterOpen(t *Tokenizer) State {
	switch {
	case t.current == mdtok.CodeNone || t.current.IsLineEnding():
		return Retry(nameHeadingATXBreak)
	case t.current.IsSpaceOrTab():
		if !t.SpaceOrTab(1, spaceOrTabUnbounded) {
			return headingATXFail(t)
		}
		return Retry(nameHeadingATXBefore)
	default:
		return headingATXFail(t)
	}
}

func headingATXBefore(t *Tokenizer) State { return headingATXDispatch(t, true) }
func headingATXData(t *Tokenizer) State { return headingATXDispatch(t, false) }

// headingATXDispatch backs both Before (the first content byte) and Data
// (every subsequent one): at each byte it decides whether a run of '#' here
// is an ordinary title byte or the heading's closing sequence, by checking
// whether consuming it (plus any trailing space/tab) would reach end of
// line. CommonMark additionally requires the closing run be preceded by
// whitespace unless it is the very first content byte.
func headingATXDispatch(t *Tokenizer, atStart bool) State {
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() {
		headingATXExitTextIfOpen(t)
		return Retry(nameHeadingATXBreak)
	}
	if t.current.IsByte('#') && (atStart || t.previous.IsSpaceOrTab()) && headingATXClosingRunCloses(t) {
		headingATXExitTextIfOpen(t)
		t.Enter(mdtok.HeadingATXSequence)
		t.ts.sizeB = 1
		return Next(nameHeadingATXSequenceFurther)
	}
	if t.ts.size == 0 {
		t.Enter(mdtok.HeadingATXText)
		t.ts.size = 1
	}
	return Next(nameHeadingATXData)
}

func headingATXExitTextIfOpen(t *Tokenizer) {
	if t.ts.size != 0 {
		t.Exit(mdtok.HeadingATXText)
		t.ts.size = 0
	}
}

// headingATXClosingRunCloses is a pure lookahead: it walks forward over a
// run of '#' then a run of space/tab, without committing any of it, and
// reports whether that lands on end of line. It is not itself a
// StateName-dispatched state (it consumes more than one byte per call) --
// like the Attempt Controller's own snapshot/restore, it is a deliberate,
// narrow exception to the one-byte-per-state contract, used only to decide
// which state to commit to next.
func headingATXClosingRunCloses(t *Tokenizer) bool {
	snap := t.snapshot()
	defer t.restore(snap)
	for t.current.IsByte('#') {
		t.advance()
	}
	for t.current.IsSpaceOrTab() {
		t.advance()
	}
	return t.current == mdtok.CodeNone || t.current.IsLineEnding()
}

func headingATXSequenceFurther(t *Tokenizer) State {
	if t.current.IsByte('#') {
		t.ts.sizeB++
		return Next(nameHeadingATXSequenceFurther)
	}
	t.Exit(mdtok.HeadingATXSequence)
	t.ts.sizeB = 0
	return Retry(nameHeadingATXAfterSequence)
}

func headingATXAfterSequence(t *Tokenizer) State {
	if t.current.IsSpaceOrTab() {
		t.SpaceOrTab(0, spaceOrTabUnbounded)
	}
	return Retry(nameHeadingATXBreak)
}

func headingATXBreak(t *Tokenizer) State {
	t.Exit(mdtok.HeadingATX)
	t.ts.resetRun()
	return Ok()
}

func headingATXFail(t *Tokenizer) State {
	t.ts.resetRun()
	return Nok()
}
