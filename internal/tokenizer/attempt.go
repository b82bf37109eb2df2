package tokenizer

import (
	"github.com/jcorbin/mdtok"
	"github.com/jcorbin/mdtok/internal/buffer"
)

// snapshot captures every mutable Tokenizer field a sub-construct could
// touch: the buffer cursor (and with it input index and point), the
// current/previous symbolic bytes, the event log length, the open-Enter
// stack length, and the tokenize_state scratchpad. It is a small value
// type so that taking one is a cheap struct copy, per SPEC_FULL.md §9's
// recommended strategy ("keep mutable fields few and primitive, and copy
// them into a small stack-allocated frame on attempt entry").
type snapshot struct {
	buf       buffer.Buffer
	current   mdtok.Code
	previous  mdtok.Code
	point     mdtok.Point
	eventsLen int
	stackLen  int
	ts        tokenizeState
}

func (t *Tokenizer) snapshot() snapshot {
	return snapshot{
		buf:       t.buf,
		current:   t.current,
		previous:  t.previous,
		point:     t.point,
		eventsLen: t.events.len(),
		stackLen:  len(t.stack),
		ts:        t.ts,
	}
}

func (t *Tokenizer) restore(s snapshot) {
	t.buf = s.buf
	t.current = s.current
	t.previous = s.previous
	t.point = s.point
	t.events.truncate(s.eventsLen)
	t.stack = t.stack[:s.stackLen]
	t.ts = s.ts
}

// attempt speculatively dispatches the construct whose entry state is
// start: on Ok, its events and input position are kept; on Nok, the
// tokenizer is fully restored to its pre-attempt snapshot and the original
// current Code is back in play. Returns the construct's Ok/Nok outcome.
//
// attempt may be called from within a state function to implement the
// "try construct X, else construct Y" pattern that SPEC_FULL.md §4.5
// describes as attempt(construct, on_ok, on_nok): here on_ok/on_nok are
// expressed as ordinary Go control flow around the call rather than as
// StateName continuations threaded through the dispatcher, since Go's call
// stack already gives a correct, cheap place to resume after a nested
// construct's own trampoline loop finishes. See DESIGN.md for why this
// departs from the closure-free, fully flattened trampoline the reference
// implementation uses for its *own* per-byte states (those remain
// StateName-tagged; only this higher-level combinator is ordinary Go).
func (t *Tokenizer) attempt(start StateName) bool {
	snap := t.snapshot()
	ok := t.run(start)
	if !ok {
		t.restore(snap)
	}
	return ok
}

// check is like attempt but always discards events and always restores
// input position, regardless of outcome: a pure lookahead used to decide
// between continuations without committing anything the lookahead itself
// produced.
func (t *Tokenizer) check(start StateName) bool {
	snap := t.snapshot()
	ok := t.run(start)
	t.restore(snap)
	return ok
}

// attemptTo runs attempt and returns a Retry verdict at onOk or onNok,
// mirroring the literal attempt(construct, on_ok, on_nok) shape from
// SPEC_FULL.md §4.5 for callers that want the continuation expressed as a
// StateName rather than inline Go branches.
func (t *Tokenizer) attemptTo(start StateName, onOk, onNok StateName) State {
	if t.attempt(start) {
		return Retry(onOk)
	}
	return Retry(onNok)
}

// checkTo is to check as attemptTo is to attempt.
func (t *Tokenizer) checkTo(start StateName, onOk, onNok StateName) State {
	if t.check(start) {
		return Retry(onOk)
	}
	return Retry(onNok)
}
