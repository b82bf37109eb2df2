package tokenizer

import "github.com/jcorbin/mdtok"

// Construct names a top-level grammatical rule and the state it is entered
// through, plus the predicate that tells whether the caller's Constructs
// configuration has it turned on. The engine itself never special-cases a
// construct by name beyond this table: SPEC_FULL.md §4.6 is explicit that
// "the engine does not know about them individually; they are plugged in by
// name," which is why this is a name-to-StateName table rather than, say, a
// switch statement scattered through the content-type drivers.
type Construct struct {
	Name    string
	Start   StateName
	Enabled func(c *mdtok.Constructs) bool
}

// registry is the Construct Registry (SPEC_FULL.md §2's "Resolver
// Registry" row covers resolvers; this is its sibling for constructs).
// Populated by each construct file's init().
var registry = map[string]Construct{}

// registerConstruct installs a named, independently toggleable construct.
// Partials like space_or_tab that have no Constructs field of their own
// register their states directly with register() instead and never appear
// here (documented as an Open Question decision in DESIGN.md).
func registerConstruct(c Construct) {
	if _, exists := registry[c.Name]; exists {
		panic("tokenizer: duplicate construct registration: " + c.Name)
	}
	registry[c.Name] = c
}

// enabled reports whether the named construct is both registered and
// turned on in t's Constructs configuration.
func (t *Tokenizer) enabled(name string) bool {
	c, ok := registry[name]
	if !ok {
		return false
	}
	return c.Enabled == nil || c.Enabled(t.constructs)
}

// attemptConstruct speculatively dispatches the named construct if it is
// enabled, per the attempt/check semantics of attempt.go. A disabled or
// unregistered construct behaves as an immediate Nok without touching the
// tokenizer.
func (t *Tokenizer) attemptConstruct(name string) bool {
	c, ok := registry[name]
	if !ok || (c.Enabled != nil && !c.Enabled(t.constructs)) {
		return false
	}
	return t.attempt(c.Start)
}

func (t *Tokenizer) checkConstruct(name string) bool {
	c, ok := registry[name]
	if !ok || (c.Enabled != nil && !c.Enabled(t.constructs)) {
		return false
	}
	return t.check(c.Start)
}

// firstConstruct tries each name in order, committing to (and returning the
// name of) the first that succeeds via attempt. Returns "" if none match.
// This is the table-driven replacement for the reference implementation's
// per-byte "classify then dispatch" switch: a content-type driver builds
// its candidate list once (by marker byte, see content_text.go) and calls
// this rather than hand-writing a chain of if/else attempts.
func (t *Tokenizer) firstConstruct(names ...string) string {
	for _, name := range names {
		if t.attemptConstruct(name) {
			return name
		}
	}
	return ""
}
