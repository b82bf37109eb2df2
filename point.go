package mdtok

import "fmt"

// Point is a position within the original input: a byte offset, a 1-based
// line number, and a 1-based column that counts virtual spaces produced by
// tab expansion (see Code).
type Point struct {
	Index  int
	Line   int
	Column int
}

// Format writes a compact "line:column@index" representation, matching the
// terse %v / verbose %+v split used elsewhere in this package.
func (p Point) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		fmt.Fprintf(f, "%d:%d", p.Line, p.Column)
		if f.Flag('+') {
			fmt.Fprintf(f, "@%d", p.Index)
		}
	default:
		fmt.Fprintf(f, "%%!%c(mdtok.Point=%d:%d@%d)", c, p.Line, p.Column, p.Index)
	}
}
