package tokenizer

import "github.com/jcorbin/mdtok"

// flow is the block-level content-type entry point (SPEC_FULL.md §6).
// flowState carries the multi-line code-block bookkeeping its per-line
// dispatch needs between calls: RunDocument (document.go) owns one across
// a whole parse, layering container (block-quote/list) bookkeeping around
// it; RunFlow owns one across a single container-free region.
type flowState struct {
	fencedOpen, indentedOpen bool
	fenceChar                byte
	fenceWidth               int
}

// dispatchLine recognizes and tokenizes exactly one line of flow content:
// it continues an already-open code block, or else tries each flow leaf
// construct in CommonMark's own precedence order (setext heading before
// thematic break and ATX heading, since a setext underline only exists
// immediately after a paragraph; fenced and indented code last, since
// both are losing alternatives to any other construct that claims the
// line), falling back to paragraph.
func (t *Tokenizer) dispatchLine(fs *flowState) {
	if fs.fencedOpen {
		t.ts.fenceChar, t.ts.sizeB = fs.fenceChar, fs.fenceWidth
		if t.attempt(nameCodeFencedCloseStart) {
			fs.fencedOpen = false
		} else {
			t.attempt(nameCodeFlowChunkLine)
		}
		t.ts.fenceChar, t.ts.sizeB = 0, 0
		t.consumeLineEnding()
		return
	}

	if fs.indentedOpen {
		if t.attemptConstruct("code-indented") {
			t.consumeLineEnding()
			return
		}
		fs.indentedOpen = false
	}

	if t.lineIsBlank() {
		t.consumeBlankLine()
		return
	}

	switch {
	case t.attemptConstruct("heading-setext"):
	case t.attemptConstruct("thematic-break"):
	case t.attemptConstruct("heading-atx"):
	case t.attemptConstruct("code-fenced"):
		fs.fencedOpen, fs.fenceChar, fs.fenceWidth = true, t.ts.fenceChar, t.ts.fenceSize
	case t.attemptConstruct("code-indented"):
		fs.indentedOpen = true
	default:
		t.attempt(nameParagraphStart)
	}
	t.consumeLineEnding()
}

// RunFlow tokenizes src from the cursor to end of input as a bare `flow`
// region, with no Document wrapper and no container bookkeeping: just the
// per-line leaf dispatch document.go also drives. Tokenize does not call
// it (it always runs RunDocument), and no exported function builds a
// Tokenizer to run it on.
func (t *Tokenizer) RunFlow() {
	var fs flowState
	for t.current != mdtok.CodeNone {
		t.dispatchLine(&fs)
	}
}
