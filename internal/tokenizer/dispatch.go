package tokenizer

// stateTable is the State Dispatcher's single dispatch table: every
// construct registers its states here by name at package init, so running
// a construct is never more than a table lookup plus a call, with no
// per-transition allocation (SPEC_FULL.md §9).
var stateTable = map[StateName]StateFunc{}

// register installs a state function under name. Called from each
// construct file's init(); panics on a duplicate name, which would be a
// programmer error (two constructs colliding on one StateName tag) rather
// than anything a document could trigger.
func register(name StateName, fn StateFunc) {
	if _, exists := stateTable[name]; exists {
		panic("tokenizer: duplicate state registration")
	}
	stateTable[name] = fn
}

// run is the State Dispatcher's trampoline: it repeatedly looks up and
// calls the current state's function, consuming or not per the returned
// verdict, until the construct reaches Ok or Nok.
func (t *Tokenizer) run(start StateName) bool {
	name := start
	for {
		fn, ok := stateTable[name]
		if !ok {
			panic("tokenizer: unregistered state")
		}
		switch s := fn(t); s.kind {
		case verdictNext:
			t.advance()
			name = s.name
		case verdictRetry:
			name = s.name
		case verdictOk:
			return true
		case verdictNok:
			return false
		default:
			panic("tokenizer: invalid verdict")
		}
	}
}
