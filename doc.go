// Package mdtok implements the core of a CommonMark-compliant markdown
// tokenizer: a streaming, backtracking, event-emitting scanner driven by a
// library of per-construct state machines, plus a resolver pipeline that
// rewrites the emitted event stream into its final form.
//
// The package does not render HTML or build an AST. It produces a flat,
// balanced vector of Events that reference byte ranges of the original
// input by Point; an external compiler walks that vector to produce
// whatever artifact it wants. See internal/tokenizer for the engine and
// construct state machines.
package mdtok
