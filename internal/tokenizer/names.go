package tokenizer

// StateName identifies a single state of some construct's transition
// graph. Centralizing every construct's states in one enumeration (rather
// than one per file) mirrors the teacher's habit of centralizing its
// BlockType constants in one block (scandown/block.go) even though the
// logic that interprets each one is scattered across many functions.
type StateName int

const (
	nameInvalid StateName = iota

	// content type entry points (flow/text/string) are driven as plain Go
	// loops -- RunFlow/RunDocument, RunText, RunString -- rather than
	// their own StateName-tagged states, the same way document.go and
	// paragraph are: each dispatches line-at-a-time or byte-at-a-time
	// into the StateName-tagged constructs below via attempt/
	// attemptConstruct, but their own control flow needs Go's call stack,
	// not the trampoline (see document.go's doc comment).

	// generic data (shared by text and string content types)
	nameDataStart
	nameDataInside

	// text/string content types' shared claimed-marker-but-unclaimed
	// fallback: wrap one byte as Data regardless of isMarker
	nameTextFallbackByte
	nameTextFallbackByteEnd

	// space_or_tab partial, shared by many constructs
	nameSpaceOrTabStart
	nameSpaceOrTabInside

	// character escape
	nameCharacterEscapeStart
	nameCharacterEscapeInside
	nameCharacterEscapeValue

	// character reference
	nameCharacterReferenceStart
	nameCharacterReferenceOpen
	nameCharacterReferenceNumeric
	nameCharacterReferenceValue
	nameCharacterReferenceEnd

	// code (text)
	nameCodeTextStart
	nameCodeTextSequenceOpen
	nameCodeTextBetween
	nameCodeTextBetweenAfterLineEnding
	nameCodeTextData
	nameCodeTextSequenceClose

	// thematic break
	nameThematicBreakStart
	nameThematicBreakBefore
	nameThematicBreakSequence
	nameThematicBreakSequenceAfter
	nameThematicBreakAfter

	// heading (atx)
	nameHeadingATXStart
	nameHeadingATXSequenceOpen
	nameHeadingATXAfterOpen
	nameHeadingATXBefore
	nameHeadingATXData
	nameHeadingATXBreak
	nameHeadingATXSequenceFurther
	nameHeadingATXAfterSequence

	// heading (setext)
	nameHeadingSetextStart
	nameHeadingSetextBefore
	nameHeadingSetextInside
	nameHeadingSetextAfter

	// paragraph
	nameParagraphStart
	nameParagraphInside
	nameParagraphAfterLineEnding
	nameParagraphLineEnd

	// code (indented), one content line
	nameCodeIndentedStart

	// code (fenced), opening fence line
	nameCodeFencedStart
	nameCodeFencedSequence
	nameCodeFencedAfterSequence
	nameCodeFencedInfo
	nameCodeFencedInfoSpace
	nameCodeFencedMeta

	// code (fenced), closing fence check against a later content line
	nameCodeFencedCloseStart
	nameCodeFencedCloseSequence
	nameCodeFencedCloseAfter

	// shared one-line raw content chunk, used by both code constructs'
	// continuation lines
	nameCodeFlowChunkLine
	nameCodeFlowChunkLineInside

	// block quote marker (per-line partial)
	nameBlockQuoteStart
	nameBlockQuoteAfterMarker

	// list marker (per-line partial)
	nameListMarkerStart
	nameListMarkerBulletAfter
	nameListMarkerOrdinalDigits
	nameListMarkerOrdinalDelim
	nameListMarkerAfter
)
