package tokenizer

import "github.com/jcorbin/mdtok"

// space_or_tab is a partial construct (not independently toggleable via
// Constructs, see SPEC_FULL.md §11) consumed by many others to eat a
// bounded run of spaces, tabs, and virtual spaces. Grounded on the
// reference implementation's partial_space_or_tab, itself referenced from
// heading_setext.rs's before state; generalized here from "skip up to
// tab-size-1 columns" into a reusable [min, max] bounded run so every
// construct that needs leading/trailing whitespace can share one
// implementation instead of hand-rolling a loop.
const spaceOrTabUnbounded = 1 << 30

func init() {
	register(nameSpaceOrTabStart, spaceOrTabStart)
	register(nameSpaceOrTabInside, spaceOrTabInside)
}

// SpaceOrTab attempts to consume between min and max (inclusive) columns
// of space/tab/virtual-space, entering and exiting a SpaceOrTab token
// around whatever it actually consumes. Returns false (and consumes
// nothing) if fewer than min are available.
func (t *Tokenizer) SpaceOrTab(min, max int) bool {
	t.ts.spaceOrTabMin = min
	t.ts.spaceOrTabMax = max
	return t.attempt(nameSpaceOrTabStart)
}

func spaceOrTabStart(t *Tokenizer) State {
	if t.current.IsSpaceOrTab() && t.ts.size < t.ts.spaceOrTabMax {
		t.Enter(mdtok.SpaceOrTab)
		t.ts.size++
		return Next(nameSpaceOrTabInside)
	}
	return spaceOrTabDone(t)
}

func spaceOrTabInside(t *Tokenizer) State {
	if t.current.IsSpaceOrTab() && t.ts.size < t.ts.spaceOrTabMax {
		t.ts.size++
		return Next(nameSpaceOrTabInside)
	}
	t.Exit(mdtok.SpaceOrTab)
	return spaceOrTabDone(t)
}

func spaceOrTabDone(t *Tokenizer) State {
	ok := t.ts.size >= t.ts.spaceOrTabMin
	t.ts.size = 0
	t.ts.resetSpaceOrTab()
	if ok {
		return Ok()
	}
	return Nok()
}
