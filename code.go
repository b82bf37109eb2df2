package mdtok

import "fmt"

// Code is a symbolic input unit fed to construct state machines. Ordinary
// bytes (including bare '\r' and bare '\n') are represented directly by
// their byte value; a handful of distinguished values stand for conditions
// that have no single source byte: end of input, a CRLF pair collapsed to
// one atom, and a virtual space synthesized by tab expansion.
//
// Matching is by direct comparison: `tokenizer.Current == mdtok.CodeNone`,
// `tokenizer.Current == mdtok.Code('`')`, and so on.
type Code int32

// Distinguished Code values. Ordinary bytes occupy [0, 256) and compare
// equal to Code(b) for their byte value b.
const (
	// CodeNone marks end of input; it is returned indefinitely once the
	// input buffer is exhausted.
	CodeNone Code = -1
	// CodeVirtualSpace is a synthesized space emitted while completing a
	// tab's expansion to the next tab stop. It does not advance the
	// underlying byte index.
	CodeVirtualSpace Code = -2
	// CodeCarriageReturnLineFeed represents a "\r\n" pair as a single
	// atom, distinct from a bare CR or bare LF.
	CodeCarriageReturnLineFeed Code = -3
)

// IsByte reports whether c represents the given raw byte value.
func (c Code) IsByte(b byte) bool { return c == Code(b) }

// Byte returns the raw byte value and true if c represents an ordinary
// byte (including bare '\r' or '\n'); otherwise 0 and false.
func (c Code) Byte() (byte, bool) {
	if c >= 0 && c < 256 {
		return byte(c), true
	}
	return 0, false
}

// IsLineEnding reports whether c is a line ending atom: bare CR, bare LF,
// or the combined CRLF atom.
func (c Code) IsLineEnding() bool {
	return c == CodeCarriageReturnLineFeed || c == Code('\n') || c == Code('\r')
}

// IsSpaceOrTab reports whether c is an ordinary space, an ordinary tab, or
// a virtual space produced by tab expansion.
func (c Code) IsSpaceOrTab() bool {
	return c == CodeVirtualSpace || c == Code(' ') || c == Code('\t')
}

// Format renders a Code value for debugging.
func (c Code) Format(f fmt.State, r rune) {
	switch c {
	case CodeNone:
		fmt.Fprint(f, "EOF")
	case CodeVirtualSpace:
		fmt.Fprint(f, "VS")
	case CodeCarriageReturnLineFeed:
		fmt.Fprint(f, `CRLF`)
	default:
		if b, ok := c.Byte(); ok {
			switch b {
			case '\n':
				fmt.Fprint(f, `LF`)
			case '\r':
				fmt.Fprint(f, `CR`)
			default:
				fmt.Fprintf(f, "%q", string(rune(b)))
			}
			return
		}
		fmt.Fprintf(f, "Code(%d)", int32(c))
	}
}
