package tokenizer

import "github.com/jcorbin/mdtok"

// list (item marker) recognizes one line's leading bullet ('-', '*', '+')
// or ordinal ("1." / "1)", 1-9 digits) marker plus its following required
// space/tab. Grounded on scandown.listMarker/scandown.ordinal, generalized
// from a whole-line scan into per-byte states; the maximum of 9 ordinal
// digits mirrors ordinal's own width cap.
//
// As with block-quote, the List/ListItem container span lifecycle across
// many lines belongs to the document driver, not this construct: this
// construct only wraps one line's ListItemPrefix/ListItemMarker bytes.
// Hanging-indent alignment to the marker's own printed width (so that a
// continuation line need only be indented to the first non-marker column)
// is not implemented; a single required space/tab after the marker is
// enough to end the prefix, a documented scope reduction from scandown's
// own trimIndent-based alignment.
//
// Up to TabSize-1 columns of leading space/tab are tolerated before the
// marker itself, matching scandown.Block's trimIndent(tail, 0, 4) stripped
// ahead of listMarker/ordinal; those columns are not part of the prefix
// span. document.go's peekListFamily mirrors this same tolerance in its
// own pure lookahead, so the document driver's decision to open or
// continue a list agrees with what this construct will actually match.
func init() {
	registerConstruct(Construct{
		Name:  "list",
		Start: nameListMarkerStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.List
		},
	})
	register(nameListMarkerStart, listMarkerStart)
	register(nameListMarkerBulletAfter, listMarkerBulletAfter)
	register(nameListMarkerOrdinalDigits, listMarkerOrdinalDigits)
	register(nameListMarkerOrdinalDelim, listMarkerOrdinalDelim)
	register(nameListMarkerAfter, listMarkerAfter)
}

func listMarkerStart(t *Tokenizer) State {
	t.SpaceOrTab(0, mdtok.TabSize-1)
	b, ok := t.current.Byte()
	if !ok {
		return Nok()
	}
	switch {
	case b == '-' || b == '*' || b == '+':
		t.Enter(mdtok.ListItemPrefix)
		t.Enter(mdtok.ListItemMarker)
		return Next(nameListMarkerBulletAfter)
	case isDigit(b):
		t.Enter(mdtok.ListItemPrefix)
		t.Enter(mdtok.ListItemMarker)
		t.ts.size = 1
		return Next(nameListMarkerOrdinalDigits)
	default:
		return Nok()
	}
}

func listMarkerBulletAfter(t *Tokenizer) State {
	t.Exit(mdtok.ListItemMarker)
	return Retry(nameListMarkerAfter)
}

func listMarkerOrdinalDigits(t *Tokenizer) State {
	if b, ok := t.current.Byte(); ok {
		if isDigit(b) && t.ts.size < 9 {
			t.ts.size++
			return Next(nameListMarkerOrdinalDigits)
		}
		if b == '.' || b == ')' {
			return Next(nameListMarkerOrdinalDelim)
		}
	}
	t.ts.size = 0
	return Nok()
}

func listMarkerOrdinalDelim(t *Tokenizer) State {
	t.Exit(mdtok.ListItemMarker)
	t.ts.size = 0
	return Retry(nameListMarkerAfter)
}

func listMarkerAfter(t *Tokenizer) State {
	if t.current.IsSpaceOrTab() {
		t.SpaceOrTab(1, spaceOrTabUnbounded)
		t.Exit(mdtok.ListItemPrefix)
		return Ok()
	}
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() {
		t.Exit(mdtok.ListItemPrefix)
		return Ok()
	}
	return Nok()
}
