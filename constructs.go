package mdtok

// Constructs is a flat enable-map over every construct name the core
// knows about, one bool field per construct. It is deliberately a plain
// aggregate rather than a map[string]bool: per SPEC_FULL.md §9, config
// here should be cheap to copy and check, not a dynamic lookup.
//
// Not every field has a registered state machine behind it yet (see
// SPEC_FULL.md §11): Attention, Autolink, Definition, Frontmatter,
// HardBreakEscape, HardBreakTrailing, HTMLFlow, HTMLText, LabelStartImage,
// LabelStartLink, and LabelEnd are recognized names that compile and may be
// toggled, but the dispatcher never selects a construct for them. Toggling
// an unimplemented field is inert, not an error.
type Constructs struct {
	Attention          bool
	Autolink           bool
	BlockQuote         bool
	CharacterEscape    bool
	CharacterReference bool
	CodeIndented       bool
	CodeFenced         bool
	CodeText           bool
	Definition         bool
	Frontmatter        bool
	HardBreakEscape    bool
	HardBreakTrailing  bool
	HeadingATX         bool
	HeadingSetext      bool
	HTMLFlow           bool
	HTMLText           bool
	LabelStartImage    bool
	LabelStartLink     bool
	LabelEnd           bool
	List               bool
	ThematicBreak      bool
}

// DefaultConstructs returns the CommonMark-default enable-map: every
// construct named in SPEC_FULL.md §11 that this core actually implements
// is on; the remaining recognized-but-unimplemented names default to their
// CommonMark-enabled value too. Since no construct is registered for those
// names, turning them on or off changes no event.
func DefaultConstructs() Constructs {
	return Constructs{
		Attention:          true,
		Autolink:           true,
		BlockQuote:         true,
		CharacterEscape:    true,
		CharacterReference: true,
		CodeIndented:       true,
		CodeFenced:         true,
		CodeText:           true,
		Definition:         true,
		Frontmatter:        false,
		HardBreakEscape:    true,
		HardBreakTrailing:  true,
		HeadingATX:         true,
		HeadingSetext:      true,
		HTMLFlow:           true,
		HTMLText:           true,
		LabelStartImage:    true,
		LabelStartLink:     true,
		LabelEnd:           true,
		List:               true,
		ThematicBreak:      true,
	}
}
