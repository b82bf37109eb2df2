package tokenizer

import "github.com/jcorbin/mdtok"

// codeFlowChunkLine wraps whatever remains of the current line (up to EOF
// or the line ending, exclusive) as a single CodeFlowChunk. It is shared by
// code-indented and code-fenced content lines, reflecting the
// simplification that a code block's continuation content
// is recognized a whole line at a time rather than byte by byte: nothing
// inside a code block's content needs construct-level recognition, so the
// per-byte engine's only job here is to mark the span.
func init() {
	register(nameCodeFlowChunkLine, codeFlowChunkLineStart)
	register(nameCodeFlowChunkLineInside, codeFlowChunkLineInside)
}

func codeFlowChunkLineStart(t *Tokenizer) State {
	t.Enter(mdtok.CodeFlowChunk)
	return Next(nameCodeFlowChunkLineInside)
}

func codeFlowChunkLineInside(t *Tokenizer) State {
	if t.current == mdtok.CodeNone || t.current.IsLineEnding() {
		t.Exit(mdtok.CodeFlowChunk)
		return Ok()
	}
	return Next(nameCodeFlowChunkLineInside)
}
