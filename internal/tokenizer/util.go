package tokenizer

import "github.com/jcorbin/mdtok"

// lastNonGap returns the index of the last event at or before index whose
// type is not LineEnding or SpaceOrTab, skipping backward over any run of
// those. Returns -1 if none exists. Grounded on the reference
// implementation's skip::opt_back helper, used by heading-setext's start
// state to find "the last substantive event" before deciding whether a
// paragraph immediately precedes the underline.
func (t *Tokenizer) lastNonGap(index int) int {
	for ; index >= 0; index-- {
		switch t.events.at(index).Type {
		case mdtok.LineEnding, mdtok.SpaceOrTab:
			continue
		}
		return index
	}
	return -1
}
