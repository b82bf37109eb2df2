package tokenizer

import (
	"sort"

	"github.com/jcorbin/mdtok"
)

// editMap is the Edit Map component (SPEC_FULL.md §4.3): resolvers
// accumulate edits against event-log indices captured during a single
// forward walk, and a final consume pass applies them all in one sweep so
// that no edit invalidates an index a still-to-run edit already captured.
//
// This is the same technique the teacher's internal/scanio.Editor uses for
// splicing content tokens without invalidating open Cursors -- accumulate
// operations, then replay them in position order -- generalized here from
// a byte-arena cursor to a flat index into the event vector, since a
// resolver's unit of edit is "some number of events", not "some number of
// bytes".
type editMap struct {
	edits []edit
}

type edit struct {
	pos     int // index into the original event vector
	remove  int // how many original events to drop starting at pos
	inserts []mdtok.Event
}

// add records that, starting at pos in the pre-edit event vector, remove
// events should be dropped and inserts spliced in their place. Multiple
// adds at the same pos are legal (e.g. one resolver pass wrapping a range
// with both a synthesized Enter before it and a synthesized Exit after
// it); they are applied in the order added.
func (m *editMap) add(pos, remove int, inserts []mdtok.Event) {
	m.edits = append(m.edits, edit{pos: pos, remove: remove, inserts: inserts})
}

// empty reports whether any edits were recorded.
func (m *editMap) empty() bool { return len(m.edits) == 0 }

// consume applies every recorded edit to events in one left-to-right
// sweep and returns the rewritten vector. events is not modified in
// place; consume returns a fresh slice.
func (m *editMap) consume(events []mdtok.Event) []mdtok.Event {
	if len(m.edits) == 0 {
		return events
	}

	// Stable sort by position so that same-position edits apply in the
	// order they were added (stable preserves that relative order).
	sort.SliceStable(m.edits, func(i, j int) bool { return m.edits[i].pos < m.edits[j].pos })

	out := make([]mdtok.Event, 0, len(events))
	cursor := 0
	for _, e := range m.edits {
		out = append(out, events[cursor:e.pos]...)
		out = append(out, e.inserts...)
		cursor = e.pos + e.remove
	}
	out = append(out, events[cursor:]...)

	m.edits = m.edits[:0]
	return out
}
