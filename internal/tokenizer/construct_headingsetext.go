package tokenizer

import "github.com/jcorbin/mdtok"

// heading_setext: a postfix construct attempted at the start of a line
// following a paragraph. If an underline of '=' or '-' (optionally indented
// and optionally trailed by space/tab) occupies the whole line, the
// heading_setext resolver (resolve_setext.go) retroactively promotes the
// preceding paragraph into a heading. Grounded on
// original_source/src/construct/heading_setext.rs's start/before/inside/
// after states, mirrored state for state including its indentation limit
// (tab-size - 1 when code-indented is enabled, unbounded otherwise, since a
// more-indented line would already have been claimed by indented code) and
// its exact preceding-event check.
func init() {
	registerConstruct(Construct{
		Name:  "heading-setext",
		Start: nameHeadingSetextStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.HeadingSetext
		},
	})
	register(nameHeadingSetextStart, headingSetextStart)
	register(nameHeadingSetextBefore, headingSetextBefore)
	register(nameHeadingSetextInside, headingSetextInside)
	register(nameHeadingSetextAfter, headingSetextAfter)
}

func headingSetextStart(t *Tokenizer) State {
	max := spaceOrTabUnbounded
	if t.constructs.CodeIndented {
		max = mdtok.TabSize - 1
	}

	last := t.LastEventIndex()
	paragraphBefore := last >= 0 && t.EventAt(t.lastNonGap(last)).Type == mdtok.Paragraph

	if !paragraphBefore || t.lazy {
		return Nok()
	}

	t.SpaceOrTab(0, max)
	return Retry(nameHeadingSetextBefore)
}

func headingSetextBefore(t *Tokenizer) State {
	b, ok := t.current.Byte()
	if !ok || (b != '-' && b != '=') {
		return Nok()
	}
	t.ts.setextKind = b
	t.Enter(mdtok.HeadingSetextUnderline)
	return Retry(nameHeadingSetextInside)
}

func headingSetextInside(t *Tokenizer) State {
	if t.current.IsByte(t.ts.setextKind) {
		return Next(nameHeadingSetextInside)
	}
	t.Exit(mdtok.HeadingSetextUnderline)
	t.SpaceOrTab(0, spaceOrTabUnbounded)
	return Retry(nameHeadingSetextAfter)
}

func headingSetextAfter(t *Tokenizer) State {
	if t.current != mdtok.CodeNone && !t.current.IsLineEnding() {
		t.ts.setextKind = 0
		return Nok()
	}
	t.SetInterrupt(false)
	t.RegisterResolver("heading-setext", resolveHeadingSetext)
	t.ts.setextKind = 0
	return Ok()
}
