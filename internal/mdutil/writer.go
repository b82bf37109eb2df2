// Package mdutil holds small I/O helpers used by mdtok's command line
// tools. Adapted from the teacher's internal/socutil writer -- trimmed to
// just the two shapes cmd/mdevents actually needs: a sticky-error writer
// for the event dump, and a line-prefixing writer for routing stdlib log
// output through a tag without it interleaving mid-line with that dump.
// The teacher's general-purpose WriteBuffer and pluggable FlushPolicy
// exist to let a caller choose its own flush granularity; nothing in this
// repository ever flushes anything but whole lines, so Prefixer below
// buffers and flushes lines directly instead of carrying that
// indirection forward unused.
package mdutil

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, remembering its first error and refusing
// further writes once one occurs. cmd/mdevents uses this around stdout so
// it can ignore per-Fprintf errors while writing an event dump and check
// Err exactly once at the end.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix before every line
// written through it. The caller should Close it to flush a final partial
// line. cmd/mdevents routes the stdlib log package's output through one
// of these so a log line never lands mid-write against the event dump
// sharing its stderr/stdout.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	return &Prefixer{prefix: prefix, to: w}
}

// Prefixer buffers writes and flushes complete lines, each preceded by
// its prefix, to the underlying writer as soon as a newline completes
// them. Create with PrefixWriter.
type Prefixer struct {
	prefix string
	to     io.Writer
	buf    bytes.Buffer
}

// Write implements io.Writer, inserting prefix before every line.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	for len(b) > 0 {
		if p.atLineStart() {
			p.buf.WriteString(p.prefix)
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		} else {
			b = nil
		}
		m, _ := p.buf.Write(line)
		n += m
	}
	return n, p.flushLines()
}

// atLineStart reports whether the next byte written begins a fresh line:
// either nothing is buffered yet, or the buffer's last byte is a newline.
func (p *Prefixer) atLineStart() bool {
	buffered := p.buf.Bytes()
	return len(buffered) == 0 || buffered[len(buffered)-1] == '\n'
}

// flushLines writes every complete line currently buffered (everything up
// to and including the last newline) to the underlying writer.
func (p *Prefixer) flushLines() error {
	b := p.buf.Bytes()
	i := bytes.LastIndexByte(b, '\n')
	if i < 0 {
		return nil
	}
	i++
	_, err := p.to.Write(b[:i])
	p.buf.Next(i)
	return err
}

// Close flushes any buffered partial final line to the underlying writer.
func (p *Prefixer) Close() error {
	if p.buf.Len() == 0 {
		return nil
	}
	_, err := p.to.Write(p.buf.Bytes())
	p.buf.Reset()
	return err
}
