// Package buffer implements the tokenizer's Input Buffer: indexed byte
// access over a markdown source with tab expansion and line-ending
// normalization, yielding a stream of mdtok.Code values plus the mdtok.Point
// of whichever Code is about to be read.
//
// Grounded on the column-counting half of the teacher's
// (jcorbin/soc/scandown) trimIndent, generalized from "count spaces up to a
// limit, splitting a tab that would overshoot it" into an unbounded
// Code-at-a-time cursor the tokenizer engine can snapshot and restore.
package buffer

import "github.com/jcorbin/mdtok"

// Buffer is a cursor over a byte slice that yields mdtok.Code values one at
// a time, expanding tabs into a tab byte followed by virtual spaces and
// collapsing "\r\n" into a single CodeCarriageReturnLineFeed atom.
//
// Buffer is a small value type by design (SPEC_FULL.md §9 "Design Notes"):
// copying it is a cheap, correct snapshot, which is exactly what the
// Attempt Controller needs on every speculative sub-construct dispatch.
type Buffer struct {
	src     []byte
	index   int
	pending int // remaining virtual spaces owed by a tab not yet fully expanded
	point   mdtok.Point
}

// New returns a Buffer positioned at the start of src.
func New(src []byte) Buffer {
	return Buffer{src: src, point: mdtok.Point{Index: 0, Line: 1, Column: 1}}
}

// Peek returns the Code at the cursor without consuming it.
func (b Buffer) Peek() mdtok.Code {
	if b.pending > 0 {
		return mdtok.CodeVirtualSpace
	}
	if b.index >= len(b.src) {
		return mdtok.CodeNone
	}
	c := b.src[b.index]
	if c == '\r' && b.index+1 < len(b.src) && b.src[b.index+1] == '\n' {
		return mdtok.CodeCarriageReturnLineFeed
	}
	return mdtok.Code(c)
}

// Point returns the position of the Code that Peek would return.
func (b Buffer) Point() mdtok.Point { return b.point }

// Advance moves the cursor past the current Code, updating Point
// accordingly. Advancing past CodeNone is a no-op: EOF holds forever.
func (b *Buffer) Advance() {
	if b.pending > 0 {
		b.pending--
		b.point.Column++
		return
	}
	if b.index >= len(b.src) {
		return
	}

	switch c := b.src[b.index]; c {
	case '\r':
		if b.index+1 < len(b.src) && b.src[b.index+1] == '\n' {
			b.index += 2
		} else {
			b.index++
		}
		b.point.Index = b.index
		b.point.Line++
		b.point.Column = 1

	case '\n':
		b.index++
		b.point.Index = b.index
		b.point.Line++
		b.point.Column = 1

	case '\t':
		b.index++
		width := mdtok.TabSize - ((b.point.Column - 1) % mdtok.TabSize)
		stop := b.point.Column + width
		b.point.Index = b.index
		b.point.Column++
		b.pending = stop - b.point.Column

	default:
		b.index++
		b.point.Index = b.index
		b.point.Column++
	}
}

// Index returns the raw byte offset of the cursor. Two Buffers with equal
// Index, equal Point, and equal pending virtual-space counts are
// indistinguishable as cursors, which is what makes snapshot/restore by
// value-copy correct.
func (b Buffer) Index() int { return b.index }

// AtBoundary reports whether the cursor sits at a real byte boundary, i.e.
// is not mid-expansion of a tab into virtual spaces. Constructs that must
// slice raw bytes (rather than rely on Code-at-a-time matching) should only
// do so when this holds.
func (b Buffer) AtBoundary() bool { return b.pending == 0 }
