package bindata

import (
	"fmt"
	"log"
)

// TraceSink receives one notification per read of a named primitive — the
// opt-in hook spec.md §6 describes. It is threaded explicitly through
// Reader.SetTrace rather than held as package-level state, so multiple
// trees on different goroutines can trace independently (or not at all)
// without interfering with each other.
type TraceSink interface {
	Trace(path string, value any)
}

// TraceFunc adapts a plain function to TraceSink.
type TraceFunc func(path string, value any)

// Trace implements TraceSink.
func (f TraceFunc) Trace(path string, value any) { f(path, value) }

const traceMaxChars = 30

// FormatTraceLine renders "path => value", truncating value's printed
// form to 30 characters with a trailing ellipsis, per spec.md §6.
func FormatTraceLine(path string, value any) string {
	s := fmt.Sprintf("%v", value)
	if len(s) > traceMaxChars {
		s = s[:traceMaxChars] + "…"
	}
	return path + " => " + s
}

// LogTraceSink adapts a stdlib *log.Logger into a TraceSink. No example in
// the pack wires a structured logger into a leaf data/serialization
// library of this shape, so tracing output stays on the standard library's
// log package rather than adopting a third-party logger here — see
// DESIGN.md.
func LogTraceSink(l *log.Logger) TraceSink {
	return TraceFunc(func(path string, value any) {
		l.Println(FormatTraceLine(path, value))
	})
}
