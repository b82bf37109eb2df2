package tokenizer

import "github.com/jcorbin/mdtok"

// data is the generic catch-all construct shared by the text and string
// content types (SPEC_FULL.md §4.6 "String / Text content types"):
// whatever the driver's before-dispatch didn't recognize as a marker byte
// falls through to here, which just consumes a run of ordinary bytes.
//
// It is not independently toggleable via Constructs: there is no document
// in which "data" can be meaningfully disabled, since every byte not
// claimed by another construct must become something.
func init() {
	register(nameDataStart, dataStart)
	register(nameDataInside, dataInside)
}

func isMarker(t *Tokenizer, c mdtok.Code) bool {
	b, ok := c.Byte()
	if !ok {
		return false
	}
	for _, m := range t.ts.markers {
		if m == b {
			return true
		}
	}
	return false
}

func dataStart(t *Tokenizer) State {
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() || isMarker(t, t.current) {
		return Nok()
	}
	t.Enter(mdtok.Data)
	return Next(nameDataInside)
}

func dataInside(t *Tokenizer) State {
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() || isMarker(t, t.current) {
		t.Exit(mdtok.Data)
		return Ok()
	}
	return Next(nameDataInside)
}
