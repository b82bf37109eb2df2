package tokenizer

import "github.com/jcorbin/mdtok"

// eventLog is the Event Log component (SPEC_FULL.md §4.2): an append-only,
// checkpoint-capable sequence of Events. Truncate implements attempt
// rollback; SetType implements both resolver rewrites and a construct's
// own in-place relabeling on a failed close (code-text's unmatched closing
// sequence, see construct_codetext.go).
type eventLog struct {
	events []mdtok.Event
}

func (l *eventLog) append(kind mdtok.EventKind, typ mdtok.TokenType, at mdtok.Point) int {
	l.events = append(l.events, mdtok.Event{Kind: kind, Type: typ, Point: at})
	return len(l.events) - 1
}

func (l *eventLog) len() int { return len(l.events) }

func (l *eventLog) at(i int) mdtok.Event { return l.events[i] }

func (l *eventLog) setType(i int, typ mdtok.TokenType) { l.events[i].Type = typ }

// truncate discards every event from length n onward, restoring the log to
// the state it had when n was captured.
func (l *eventLog) truncate(n int) { l.events = l.events[:n] }

// slice returns the full event vector. The caller must not retain it past
// the next mutation of the log.
func (l *eventLog) slice() []mdtok.Event { return l.events }
