package tokenizer

import "github.com/jcorbin/mdtok"

// block_quote recognizes one line's leading block quote prefix: '>'
// optionally followed by a single space. Grounded on scandown.quoteMarker,
// which is itself delimiter(line, 3, '>') followed by trimIndent(tail, 1,
// 1) -- generalized here from a whole-line byte scan into per-byte states,
// and narrowed from delimiter's generic "up to 3 repeats" (which scandown
// uses for '>' only incidentally, since block quotes never repeat the
// marker on one prefix) to a single '>'.
//
// The container lifecycle (when a BlockQuote span opens and closes across
// many lines) is owned by the document driver (document.go), not by this
// construct: this construct only ever wraps one line's prefix bytes in
// BlockQuotePrefix/BlockQuoteMarker, the same division of labor scandown
// itself uses between its per-line matchers and BlockStack.Scan's open/
// close bookkeeping.
//
// Up to TabSize-1 columns of leading space/tab are tolerated before the
// '>', matching scandown.Block's trimIndent(tail, 0, 4) stripped ahead of
// quoteMarker; those columns are not themselves part of the prefix span.
func init() {
	registerConstruct(Construct{
		Name:  "block-quote",
		Start: nameBlockQuoteStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.BlockQuote
		},
	})
	register(nameBlockQuoteStart, blockQuoteStart)
	register(nameBlockQuoteAfterMarker, blockQuoteAfterMarker)
}

func blockQuoteStart(t *Tokenizer) State {
	t.SpaceOrTab(0, mdtok.TabSize-1)
	if !t.current.IsByte('>') {
		return Nok()
	}
	t.Enter(mdtok.BlockQuotePrefix)
	t.Enter(mdtok.BlockQuoteMarker)
	return Next(nameBlockQuoteAfterMarker)
}

func blockQuoteAfterMarker(t *Tokenizer) State {
	t.Exit(mdtok.BlockQuoteMarker)
	t.SpaceOrTab(0, 1)
	t.Exit(mdtok.BlockQuotePrefix)
	return Ok()
}
