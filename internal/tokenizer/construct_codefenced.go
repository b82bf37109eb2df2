package tokenizer

import "github.com/jcorbin/mdtok"

// code_fenced: an opening fence of three or more matching '`' or '~'
// bytes, an optional info string and (space-separated) meta string, closed
// later by a fence of the same character at least as long. Grounded on
// scandown.fence (generalized from a whole-line byte scan into per-byte
// states) and scandown.Codefence's open/close bookkeeping, which the
// document driver reproduces for the multi-line span.
//
// The info/meta strings are recognized here as raw spans; they are not
// parsed through the string content type, so character escapes and
// character references inside them are not tokenized.
//
// Up to TabSize-1 columns of leading space/tab are tolerated before both
// the opening and the closing fence's marker run, matching scandown's own
// trimIndent(tail, 0, 4) stripped ahead of fence; those columns are not
// part of the CodeFencedFence span.
func init() {
	registerConstruct(Construct{
		Name:  "code-fenced",
		Start: nameCodeFencedStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.CodeFenced
		},
	})
	register(nameCodeFencedStart, codeFencedStart)
	register(nameCodeFencedSequence, codeFencedSequence)
	register(nameCodeFencedAfterSequence, codeFencedAfterSequence)
	register(nameCodeFencedInfo, codeFencedInfo)
	register(nameCodeFencedInfoSpace, codeFencedInfoSpace)
	register(nameCodeFencedMeta, codeFencedMeta)

	register(nameCodeFencedCloseStart, codeFencedCloseStart)
	register(nameCodeFencedCloseSequence, codeFencedCloseSequence)
	register(nameCodeFencedCloseAfter, codeFencedCloseAfter)
}

func isCodeFenceMarker(b byte) bool { return b == '`' || b == '~' }

func codeFencedStart(t *Tokenizer) State {
	t.SpaceOrTab(0, mdtok.TabSize-1)
	b, ok := t.current.Byte()
	if !ok || !isCodeFenceMarker(b) {
		return Nok()
	}
	t.ts.fenceChar = b
	t.ts.fenceSize = 0
	t.Enter(mdtok.CodeFencedFence)
	t.Enter(mdtok.CodeFencedFenceSequence)
	return Retry(nameCodeFencedSequence)
}

func codeFencedSequence(t *Tokenizer) State {
	if t.current.IsByte(t.ts.fenceChar) {
		t.ts.fenceSize++
		return Next(nameCodeFencedSequence)
	}
	t.Exit(mdtok.CodeFencedFenceSequence)
	if t.ts.fenceSize < 3 {
		return codeFencedFail(t)
	}
	return Retry(nameCodeFencedAfterSequence)
}

func codeFencedAfterSequence(t *Tokenizer) State {
	switch {
	case t.current == mdtok.CodeNone || t.current.IsLineEnding():
		t.Exit(mdtok.CodeFencedFence)
		return Ok()
	case t.current.IsSpaceOrTab():
		t.SpaceOrTab(1, spaceOrTabUnbounded)
		return Retry(nameCodeFencedAfterSequence)
	default:
		t.Enter(mdtok.CodeFencedFenceInfo)
		return Next(nameCodeFencedInfo)
	}
}

func codeFencedInfo(t *Tokenizer) State {
	switch {
	case t.current == mdtok.CodeNone || t.current.IsLineEnding():
		t.Exit(mdtok.CodeFencedFenceInfo)
		t.Exit(mdtok.CodeFencedFence)
		return Ok()
	case t.current.IsSpaceOrTab():
		t.Exit(mdtok.CodeFencedFenceInfo)
		return Retry(nameCodeFencedInfoSpace)
	default:
		return Next(nameCodeFencedInfo)
	}
}

func codeFencedInfoSpace(t *Tokenizer) State {
	t.SpaceOrTab(1, spaceOrTabUnbounded)
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() {
		t.Exit(mdtok.CodeFencedFence)
		return Ok()
	}
	t.Enter(mdtok.CodeFencedFenceMeta)
	return Next(nameCodeFencedMeta)
}

func codeFencedMeta(t *Tokenizer) State {
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() {
		t.Exit(mdtok.CodeFencedFenceMeta)
		t.Exit(mdtok.CodeFencedFence)
		return Ok()
	}
	return Next(nameCodeFencedMeta)
}

func codeFencedFail(t *Tokenizer) State {
	t.ts.fenceChar = 0
	t.ts.fenceSize = 0
	return Nok()
}

// codeFencedCloseStart through codeFencedCloseAfter are not registered as
// a Construct: the document driver calls them directly, after setting
// ts.fenceChar to the open fence's marker byte and ts.sizeB to its
// required minimum width, once per content line while a fenced code block
// is open.
func codeFencedCloseStart(t *Tokenizer) State {
	t.SpaceOrTab(0, mdtok.TabSize-1)
	if !t.current.IsByte(t.ts.fenceChar) {
		return Nok()
	}
	t.Enter(mdtok.CodeFencedFence)
	t.Enter(mdtok.CodeFencedFenceSequence)
	t.ts.size = 0
	return Retry(nameCodeFencedCloseSequence)
}

func codeFencedCloseSequence(t *Tokenizer) State {
	if t.current.IsByte(t.ts.fenceChar) {
		t.ts.size++
		return Next(nameCodeFencedCloseSequence)
	}
	t.Exit(mdtok.CodeFencedFenceSequence)
	if t.ts.size < t.ts.sizeB {
		t.ts.resetRun()
		return Nok()
	}
	return Retry(nameCodeFencedCloseAfter)
}

func codeFencedCloseAfter(t *Tokenizer) State {
	if t.current.IsSpaceOrTab() {
		t.SpaceOrTab(0, spaceOrTabUnbounded)
	}
	if t.current != mdtok.CodeNone && !t.current.IsLineEnding() {
		t.ts.resetRun()
		return Nok()
	}
	t.Exit(mdtok.CodeFencedFence)
	t.ts.resetRun()
	return Ok()
}
