package cli

import (
	"errors"
	"fmt"
)

// UsageError indicates a command was invoked with missing arguments.
// Usage errors never touch the task list.
type UsageError struct {
	Command string // the command being run
	Message string // what was wrong
}

func (e *UsageError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Message)
	}
	return e.Message
}

// IndexError indicates a task number that is not a number or is outside
// the current list.
type IndexError struct {
	Value      string // the task number as given
	OutOfRange bool   // parsed fine but no task sits at that position
	Len        int    // list length at the time of the check
}

func (e *IndexError) Error() string {
	switch {
	case !e.OutOfRange:
		return fmt.Sprintf("invalid task number %q", e.Value)
	case e.Len == 0:
		return fmt.Sprintf("task number %s out of range: the list is empty", e.Value)
	default:
		return fmt.Sprintf("task number %s out of range (1-%d)", e.Value, e.Len)
	}
}

// IsRecoverable reports whether err is a usage-level error that leaves
// the task list untouched.
func IsRecoverable(err error) bool {
	var usageErr *UsageError
	var indexErr *IndexError
	var unknownErr *UnknownCommandError
	return errors.As(err, &usageErr) || errors.As(err, &indexErr) || errors.As(err, &unknownErr)
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
