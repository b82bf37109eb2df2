package tokenizer

// tokenizeState is the scratchpad shared by whichever construct is
// currently active, per SPEC_FULL.md §3/§9. Fields are grouped by the
// construct family that owns them; the discipline is "zero on entry and
// on both the Ok and Nok exit paths", enforced here by small reset
// methods rather than scattering zeroing code across every state.
type tokenizeState struct {
	// size/sizeB: shared run-length counters. Owned at any moment by
	// whichever construct is mid-run (code-text's opening/closing tick
	// counts, a thematic-break/ATX sequence length, a fence width).
	size  int
	sizeB int

	// markers: the set of marker bytes a string/text "before" dispatch
	// should recognize next (character escape '\\', character reference
	// '&'). Borrowed, never owned, by the content-type drivers.
	markers []byte

	// spaceOrTabMin/Max: bounds for the current space_or_tab partial
	// invocation.
	spaceOrTabMin int
	spaceOrTabMax int

	// setextKind: '=' or '-', set by heading-setext's before state and
	// read by its inside state. Stored here, not closed over, per
	// SPEC_FULL.md §9's "state functions as identifiers, not closures".
	setextKind byte

	// fenceChar/fenceSize: the fenced-code-block marker byte and its
	// opening run length, set while tokenizing the opening fence line.
	fenceChar byte
	fenceSize int
}

// resetRun zeros the run-length counters. Called by every construct that
// owns size/sizeB, on both its Ok and Nok paths.
func (s *tokenizeState) resetRun() {
	s.size = 0
	s.sizeB = 0
}

// resetSpaceOrTab zeros the space_or_tab partial's bounds after use.
func (s *tokenizeState) resetSpaceOrTab() {
	s.spaceOrTabMin = 0
	s.spaceOrTabMax = 0
}
