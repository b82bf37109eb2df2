package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/mdtok"
)

// seedInvariantCorpus exercises a cross-section of every construct family
// this package implements, the same role original_source's proptest corpus
// plays for the reference implementation (SPEC_FULL.md §8, §10.3).
func seedInvariantCorpus(f *testing.F) {
	for _, s := range []string{
		"",
		"plain paragraph text\n",
		"# ATX heading\n",
		"####### too many\n",
		"Setext\n======\n",
		"Setext\n------\n",
		"***\n---\n___\n",
		"Foo\n---\nbar\n",
		"    indented code\n    more\n",
		"```go\nfmt.Println()\n```\n",
		"`a`\n",
		"``a`b``\n",
		"``x`\n",
		"\\``x`\n",
		"> block quote\n> second line\n",
		"- item one\n- item two\n",
		"1. ordinal\n2. ordinal\n",
		"a\\*b & &amp; \\\n",
		"\t\ttabs\tinside\n",
		"\r\n\r\nCRLF line endings\r\n",
	} {
		f.Add(s)
	}
}

// FuzzInvariants runs invariants 1 and 3 from SPEC_FULL.md §8 directly
// against the tokenizer's internal state (the open-Enter stack and the
// tokenize_state scratchpad), which only a white-box test in this package
// can observe.
func FuzzInvariants(f *testing.F) {
	seedInvariantCorpus(f)
	f.Fuzz(func(t *testing.T, src string) {
		c := mdtok.DefaultConstructs()
		tk := newTokenizer([]byte(src), &c, &mdtok.Options{})

		require.NotPanics(t, func() {
			tk.RunDocument()
			tk.runResolvers()
		})

		require.Empty(t, tk.stack, "invariant 1: open-Enter stack must be empty once the document closes")
		require.Zero(t, tk.ts.size, "invariant 3: tokenize_state.size must be zero once parsing completes")
		require.Zero(t, tk.ts.sizeB, "invariant 3: tokenize_state.size_b must be zero once parsing completes")

		depth := 0
		var open []mdtok.TokenType
		for _, ev := range tk.Events() {
			switch ev.Kind {
			case mdtok.Enter:
				open = append(open, ev.Type)
				depth++
			case mdtok.Exit:
				require.NotEmpty(t, open, "invariant 1: Exit %v with no matching Enter", ev.Type)
				last := open[len(open)-1]
				require.Equal(t, last, ev.Type, "invariant 1: Exit must match the innermost open Enter")
				open = open[:len(open)-1]
				depth--
			}
		}
		require.Zero(t, depth, "invariant 1: every Enter must have a matching Exit")
	})
}
