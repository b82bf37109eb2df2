package tokenizer

// verdictKind is the four-way outcome a state function returns, per
// SPEC_FULL.md §4.4.
type verdictKind int

const (
	verdictNext verdictKind = iota
	verdictRetry
	verdictOk
	verdictNok
)

// State is the value a state function returns to the State Dispatcher: a
// verdict, plus (for Next/Retry) the StateName to transition to. Construct
// authors never build one by hand outside of the Next/Retry/Ok/Nok helpers
// below.
type State struct {
	kind verdictKind
	name StateName
}

// Next says the current Code has been consumed; advance one symbolic Code
// and transition to name.
func Next(name StateName) State { return State{kind: verdictNext, name: name} }

// Retry says nothing was consumed; re-enter name with the same current
// Code.
func Retry(name StateName) State { return State{kind: verdictRetry, name: name} }

// Ok says the construct succeeded.
func Ok() State { return State{kind: verdictOk} }

// Nok says the construct failed; the Attempt Controller must roll back.
func Nok() State { return State{kind: verdictNok} }

// StateFunc is a single named state of a construct's transition graph: a
// pure function of the tokenizer's current position to the next State. See
// SPEC_FULL.md §9: state identity lives in the StateName tag the dispatcher
// switches on, never in a captured closure, so that sub-construct dispatch
// stays a flat trampoline rather than a call stack of continuations.
type StateFunc func(t *Tokenizer) State
