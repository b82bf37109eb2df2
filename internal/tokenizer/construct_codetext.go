package tokenizer

import "github.com/jcorbin/mdtok"

// code_text: an inline code span, sequence 1*byte sequence, where the
// opening and closing backtick runs must have equal length. Grounded
// directly on original_source/src/construct/code_text.rs's start,
// sequence_open, between, data, and sequence_close states -- the states
// below mirror that state machine's shape and exact boundary behavior,
// including its unresolved ambiguity about the preceding-event check (see
// DESIGN.md's Open Question entry).
func init() {
	registerConstruct(Construct{
		Name:  "code-text",
		Start: nameCodeTextStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.CodeText
		},
	})
	register(nameCodeTextStart, codeTextStart)
	register(nameCodeTextSequenceOpen, codeTextSequenceOpen)
	register(nameCodeTextBetween, codeTextBetween)
	register(nameCodeTextBetweenAfterLineEnding, codeTextBetweenAfterLineEnding)
	register(nameCodeTextData, codeTextData)
	register(nameCodeTextSequenceClose, codeTextSequenceClose)
}

// codeTextStart succeeds only on a backtick that either does not follow
// another backtick, or immediately follows a character-escape event -- an
// escape frees the tick that follows it to start a new run even though the
// previous raw byte was itself a backtick's worth of nothing (the escaped
// byte, not a tick). See the boundary table in SPEC_FULL.md §8: `` \``x` ``
// yields code wrapping `x`, the escape having freed the first tick.
func codeTextStart(t *Tokenizer) State {
	if !t.current.IsByte('`') {
		return Nok()
	}
	if t.previous.IsByte('`') && !precededByCharacterEscape(t) {
		return Nok()
	}
	t.Enter(mdtok.CodeText)
	t.Enter(mdtok.CodeTextSequence)
	return Retry(nameCodeTextSequenceOpen)
}

func precededByCharacterEscape(t *Tokenizer) bool {
	i := t.LastEventIndex()
	return i >= 0 && t.EventAt(i).Type == mdtok.CharacterEscape
}

func codeTextSequenceOpen(t *Tokenizer) State {
	if t.current.IsByte('`') {
		t.ts.size++
		return Next(nameCodeTextSequenceOpen)
	}
	t.Exit(mdtok.CodeTextSequence)
	return Retry(nameCodeTextBetween)
}

func codeTextBetween(t *Tokenizer) State {
	switch {
	case t.current == mdtok.CodeNone:
		t.ts.resetRun()
		return Nok()
	case t.current.IsLineEnding():
		t.Enter(mdtok.LineEnding)
		return Next(nameCodeTextBetweenAfterLineEnding)
	case t.current.IsByte('`'):
		t.Enter(mdtok.CodeTextSequence)
		return Retry(nameCodeTextSequenceClose)
	default:
		t.Enter(mdtok.CodeTextData)
		return Retry(nameCodeTextData)
	}
}

func codeTextBetweenAfterLineEnding(t *Tokenizer) State {
	t.Exit(mdtok.LineEnding)
	return Retry(nameCodeTextBetween)
}

func codeTextData(t *Tokenizer) State {
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() || t.current.IsByte('`') {
		t.Exit(mdtok.CodeTextData)
		return Retry(nameCodeTextBetween)
	}
	return Next(nameCodeTextData)
}

func codeTextSequenceClose(t *Tokenizer) State {
	if t.current.IsByte('`') {
		t.ts.sizeB++
		return Next(nameCodeTextSequenceClose)
	}

	if t.ts.size == t.ts.sizeB {
		t.Exit(mdtok.CodeTextSequence)
		t.Exit(mdtok.CodeText)
		t.ts.resetRun()
		return Ok()
	}

	// More or fewer ticks than the opener: this was never a closer, so
	// fold the attempted close back into data instead of leaving it
	// sequenced. Both the Enter and the Exit just pushed for this
	// sequence get relabeled, mirroring the reference's direct event
	// mutation (it indexes events[len-1] and events[len] right after its
	// own exit call; here the Enter is LastEventIndex before Exit and the
	// Exit is LastEventIndex after).
	enterIndex := t.LastEventIndex()
	t.Exit(mdtok.CodeTextSequence)
	exitIndex := t.LastEventIndex()
	t.RelabelLast(enterIndex, mdtok.CodeTextData)
	t.RelabelLast(exitIndex, mdtok.CodeTextData)
	t.ts.sizeB = 0
	return Retry(nameCodeTextBetween)
}
