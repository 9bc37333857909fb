// Package diag implements the compiler's diagnostics channel: an ordered,
// append-only list of notes with a severity, and a derived overall
// severity for the run. Diagnostics compose — each level of recursion in
// the walker may append a contextual note to an inner failure — so the
// channel is a plain value, never an error that unwinds the stack.
package diag

import "fmt"

// Severity orders the three note levels the compiler ever appends. Higher
// values are more severe, on the three-level scale spec.md defines.
type Severity int

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) IsValid() bool { return s >= Info && s <= Error }

// Note is a single diagnostic: a severity and a rendered message.
type Note struct {
	Severity Severity
	Message  string
}

func (n Note) String() string { return n.Severity.String() + ": " + n.Message }

// List is the ordered, append-only diagnostics channel. The zero value is
// an empty list ready to use.
type List struct {
	notes []Note
	max   Severity
}

// Add appends a note at the given severity.
func (l *List) Add(sev Severity, format string, args ...interface{}) {
	l.notes = append(l.notes, Note{sev, fmt.Sprintf(format, args...)})
	if sev > l.max {
		l.max = sev
	}
}

func (l *List) Info(format string, args ...interface{})  { l.Add(Info, format, args...) }
func (l *List) Warn(format string, args ...interface{})  { l.Add(Warn, format, args...) }
func (l *List) Error(format string, args ...interface{}) { l.Add(Error, format, args...) }

// Context appends a contextual message at sev, and then absorbs every note
// from other into this list, preserving their original severities. This is
// how a caller annotates a nested failure without losing the detail that
// produced it (spec.md §7: "a caller ... may append a contextual note ...
// and return early").
func (l *List) Context(sev Severity, other *List, format string, args ...interface{}) {
	l.Add(sev, format, args...)
	l.Absorb(other)
}

// Absorb appends every note of other onto l, in order.
func (l *List) Absorb(other *List) {
	if other == nil {
		return
	}
	l.notes = append(l.notes, other.notes...)
	if other.max > l.max {
		l.max = other.max
	}
}

// Notes returns the accumulated notes in append order.
func (l *List) Notes() []Note { return l.notes }

// MaxSeverity returns the overall severity of the run: the maximum
// severity of any recorded note, or Info if the list is empty.
func (l *List) MaxSeverity() Severity { return l.max }

// OK reports whether no ERROR (or higher) note was ever appended.
func (l *List) OK() bool { return l.max < Error }

// Len reports the number of accumulated notes.
func (l *List) Len() int { return len(l.notes) }
