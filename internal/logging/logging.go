// Package logging builds the diagnostic logger used by todo.
// Diagnostics go to stderr and stay quiet unless verbose output is requested;
// user-facing messages are printed by the commands themselves.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is shown before every log line.
const Prefix = "todo"

// New returns a logger writing to w. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          Prefix,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, false)
}
