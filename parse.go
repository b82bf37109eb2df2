package mdtok

import "github.com/jcorbin/mdtok/internal/tokenizer"

// Parse tokenizes src under the given Constructs and Options and returns
// the resulting flat, balanced Event vector. Parse owns no retained state
// across calls: every call starts a fresh Tokenizer over src.
//
// A nil constructs is treated as DefaultConstructs; a nil opts is treated
// as the Options zero value.
func Parse(src []byte, constructs *Constructs, opts *Options) []Event {
	if constructs == nil {
		c := DefaultConstructs()
		constructs = &c
	}
	if opts == nil {
		opts = &Options{}
	}
	return tokenizer.Tokenize(src, constructs, opts)
}
