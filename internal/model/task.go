// Package model defines the core data structures for todo.
package model

import "strings"

// Status markers prefixed to every task line in the backing file.
const (
	MarkerPending = "[ ] "
	MarkerDone    = "[*] "

	// MarkerLen is the byte length shared by both markers.
	MarkerLen = 4
)

// Task is a single to-do entry. Its identity is its position in the list.
type Task struct {
	Text string
	Done bool

	// Legacy is set for lines that carried no recognized marker.
	// Text then holds the raw line, which is saved back verbatim.
	Legacy bool
}

// NewTask returns a pending task with the given text.
func NewTask(text string) Task {
	return Task{Text: text}
}

// ParseLine decodes one line of the backing file.
func ParseLine(line string) Task {
	switch {
	case strings.HasPrefix(line, MarkerPending):
		return Task{Text: line[MarkerLen:]}
	case strings.HasPrefix(line, MarkerDone):
		return Task{Text: line[MarkerLen:], Done: true}
	default:
		return Task{Text: line, Legacy: true}
	}
}

// Line encodes the task as a line of the backing file, without the newline.
func (t Task) Line() string {
	if t.Legacy {
		return t.Text
	}
	return t.Marker() + t.Text
}

// Marker returns the status marker for the task, or "" for legacy lines.
func (t Task) Marker() string {
	switch {
	case t.Legacy:
		return ""
	case t.Done:
		return MarkerDone
	default:
		return MarkerPending
	}
}

// MarkDone returns a copy of t in the done state.
// A legacy line is promoted to a regular task whose text is the raw line.
func (t Task) MarkDone() Task {
	return Task{Text: t.Text, Done: true}
}
