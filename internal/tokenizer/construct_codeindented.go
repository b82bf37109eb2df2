package tokenizer

import "github.com/jcorbin/mdtok"

// code_indented, one content line: requires exactly 4 columns of leading
// space/tab (a 5th+ column of indentation is literal content, not part of
// the stripped prefix), then wraps the remainder of the line as a
// CodeFlowChunk. Grounded directly on scandown.Codeblock's continuation
// rule, which tests trimIndent(line, 0, prior.Indent+4) against the
// previous line's recorded indent; we simplify that to a fixed four-column
// threshold since this package does not track a container's own indent
// baseline the way scandown's Block does (see document.go).
//
// As with the other container-ish constructs, the document driver owns
// when a CodeIndented span opens (this line qualifies and no lazier
// construct claimed it) and closes (a later line fails this check and
// isn't blank).
func init() {
	registerConstruct(Construct{
		Name:  "code-indented",
		Start: nameCodeIndentedStart,
		Enabled: func(c *mdtok.Constructs) bool {
			return c.CodeIndented
		},
	})
	register(nameCodeIndentedStart, codeIndentedStart)
}

func codeIndentedStart(t *Tokenizer) State {
	if !t.SpaceOrTab(mdtok.TabSize, mdtok.TabSize) {
		return Nok()
	}
	return Retry(nameCodeFlowChunkLine)
}
