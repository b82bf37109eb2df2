package tokenizer

import "github.com/jcorbin/mdtok"

// resolveHeadingSetext walks the finished event vector once, and for every
// HeadingSetextUnderline it finds, relabels the Enter/Exit of the paragraph
// immediately preceding it into HeadingSetextText, then records (via the
// Edit Map) a synthesized HeadingSetext Enter just before that pair and a
// synthesized HeadingSetext Exit just after the underline.
//
// Grounded directly on heading_setext.rs's resolve function; the control
// flow below reproduces its exact branch structure (an Enter event only
// ever updates paragraphEnter; paragraphExit and the underline match are
// only considered on Exit events) rather than a more obvious-looking
// rewrite, since the original's shape is itself load-bearing: a bare
// "token_type == HeadingSetextUnderline" check would otherwise also match
// that construct's own Enter event.
func resolveHeadingSetext(t *Tokenizer) {
	events := t.Events()
	paragraphEnter := -1
	paragraphExit := -1

	for i, ev := range events {
		if ev.Kind == mdtok.Enter {
			if ev.Type == mdtok.Paragraph {
				paragraphEnter = i
			}
			continue
		}
		if ev.Type == mdtok.Paragraph {
			paragraphExit = i
			continue
		}
		if ev.Type != mdtok.HeadingSetextUnderline {
			continue
		}

		if paragraphEnter < 0 || paragraphExit < 0 {
			panic("tokenizer: heading-setext underline with no preceding paragraph")
		}
		enter, exit := paragraphEnter, paragraphExit
		paragraphEnter, paragraphExit = -1, -1

		t.RelabelLast(enter, mdtok.HeadingSetextText)
		t.RelabelLast(exit, mdtok.HeadingSetextText)

		headingEnter := events[enter]
		headingEnter.Type = mdtok.HeadingSetext
		headingExit := events[i]
		headingExit.Type = mdtok.HeadingSetext

		t.EditMap().add(enter, 0, []mdtok.Event{headingEnter})
		t.EditMap().add(i+1, 0, []mdtok.Event{headingExit})
	}
}
