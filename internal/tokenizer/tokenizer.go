package tokenizer

import (
	"github.com/jcorbin/mdtok"
	"github.com/jcorbin/mdtok/internal/buffer"
)

// Tokenizer is the top-level mutable state threaded through every
// construct state machine: the Input Buffer cursor, the current/previous
// symbolic bytes, the Event Log, the open-Enter stack, the shared
// tokenize_state scratchpad, the enabled-constructs configuration, and the
// flags a containing context sets before running a construct
// (SPEC_FULL.md §3).
type Tokenizer struct {
	buf      buffer.Buffer
	current  mdtok.Code
	previous mdtok.Code
	point    mdtok.Point

	events eventLog
	stack  []mdtok.TokenType
	ts     tokenizeState

	constructs *mdtok.Constructs
	opts       *mdtok.Options

	// interrupt is set by a containing context to tell a construct it is
	// being asked whether it may interrupt an open paragraph.
	interrupt bool
	// lazy marks the current line as a lazy continuation: it inherits
	// the enclosing container context without repeating its markers.
	lazy bool
	// concrete marks a line that, once a container prefix is consumed,
	// may not be reinterpreted as anything but flow content.
	concrete bool

	resolvers []namedResolver
	seen      map[string]bool
	edits     editMap

	// listBullet/listOrdinal record the currently open list's marker
	// family, set by the document driver (document.go) when a list
	// opens and read when deciding whether a later line's marker
	// continues it or starts a different list.
	listBullet  byte
	listOrdinal bool

	// stringRanges records each [begin, end) event-log range a RunString
	// call produced, for the whitespace resolver (resolve_whitespace.go)
	// to trim once the whole parse (and thus every region) is known.
	stringRanges [][2]int
}

type namedResolver struct {
	name string
	fn   func(t *Tokenizer)
}

// newTokenizer builds a Tokenizer positioned at the start of src.
func newTokenizer(src []byte, constructs *mdtok.Constructs, opts *mdtok.Options) *Tokenizer {
	t := &Tokenizer{
		buf:        buffer.New(src),
		previous:   mdtok.CodeNone,
		constructs: constructs,
		opts:       opts,
		seen:       map[string]bool{},
	}
	t.current = t.buf.Peek()
	t.point = t.buf.Point()
	return t
}

// Tokenize runs the whole document driver over src and returns the final,
// resolved event vector. This is the one exported entry point into the
// package, and it always runs RunDocument: RunFlow, RunText, and RunString
// are not called by it, and no exported function constructs a Tokenizer
// to run them on.
func Tokenize(src []byte, constructs *mdtok.Constructs, opts *mdtok.Options) []mdtok.Event {
	t := newTokenizer(src, constructs, opts)
	t.RunDocument()
	t.runResolvers()
	return t.Events()
}

// Current returns the symbolic Code at the cursor.
func (t *Tokenizer) Current() mdtok.Code { return t.current }

// Previous returns the symbolic Code last consumed.
func (t *Tokenizer) Previous() mdtok.Code { return t.previous }

// Point returns the position of Current.
func (t *Tokenizer) Point() mdtok.Point { return t.point }

// Constructs returns the enabled-constructs configuration in effect.
func (t *Tokenizer) Constructs() *mdtok.Constructs { return t.constructs }

// SetInterrupt/SetLazy let a containing context (the document/flow driver)
// set the flags a construct's start state consults before running.
func (t *Tokenizer) SetInterrupt(v bool) { t.interrupt = v }
func (t *Tokenizer) SetLazy(v bool)      { t.lazy = v }

// advance consumes the current symbolic Code: it becomes Previous, and a
// fresh Current/Point are pulled from the buffer. Called by the State
// Dispatcher's trampoline whenever a state returns Next; construct authors
// never call it directly, which is what lets "a state function consumed a
// byte" stay a structural property of returning Next rather than
// something each state must remember to do itself.
func (t *Tokenizer) advance() {
	t.previous = t.current
	t.buf.Advance()
	t.current = t.buf.Peek()
	t.point = t.buf.Point()
}

// Enter pushes an Enter event of the given type at the current point and
// records typ on the open-Enter stack.
func (t *Tokenizer) Enter(typ mdtok.TokenType) int {
	t.stack = append(t.stack, typ)
	return t.events.append(mdtok.Enter, typ, t.point)
}

// Exit pops the open-Enter stack (it must match typ; a mismatch is an
// invariant violation, not a construct failure, and panics) and appends
// the matching Exit event at the current point.
func (t *Tokenizer) Exit(typ mdtok.TokenType) int {
	n := len(t.stack)
	if n == 0 || t.stack[n-1] != typ {
		panic("tokenizer: unbalanced exit: " + typ.String())
	}
	t.stack = t.stack[:n-1]
	return t.events.append(mdtok.Exit, typ, t.point)
}

// RelabelLast rewrites the token type of the event at the given index,
// previously returned by Enter or Exit. Used by constructs that must
// reclassify their own just-emitted events on a failed close (code-text's
// unmatched closing sequence) without a full resolver pass.
func (t *Tokenizer) RelabelLast(index int, typ mdtok.TokenType) {
	t.events.setType(index, typ)
}

// LastEventIndex returns the index the next Enter/Exit call would occupy
// minus one, i.e. the index of the most recently appended event, or -1 if
// none have been appended yet.
func (t *Tokenizer) LastEventIndex() int { return t.events.len() - 1 }

// EventAt returns the event at the given index.
func (t *Tokenizer) EventAt(i int) mdtok.Event { return t.events.at(i) }

// RegisterResolver adds a named resolver to the end of the resolver
// registry, unless a resolver of that name has already been registered in
// this parse (constructs may attempt the same registration repeatedly,
// e.g. once per setext heading found).
func (t *Tokenizer) RegisterResolver(name string, fn func(t *Tokenizer)) {
	if t.seen[name] {
		return
	}
	t.seen[name] = true
	t.resolvers = append(t.resolvers, namedResolver{name, fn})
}

// EditMap returns the tokenizer's Edit Map, for resolvers that need to
// splice or remove events without invalidating indices captured earlier in
// their walk.
func (t *Tokenizer) EditMap() *editMap { return &t.edits }

// runResolvers runs every registered resolver in registration order, each
// observing the complete output of the previous, then applies the
// accumulated Edit Map in one sweep.
func (t *Tokenizer) runResolvers() {
	for _, r := range t.resolvers {
		r.fn(t)
	}
	if !t.edits.empty() {
		t.events.events = t.edits.consume(t.events.events)
	}
}

// Events returns the final event vector. Only meaningful after resolvers
// have run.
func (t *Tokenizer) Events() []mdtok.Event { return t.events.slice() }
