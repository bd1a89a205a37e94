package cli

import (
	"strconv"
	"strings"
)

// ParseIndex parses the 1-based task number at args[pos].
// A missing argument yields a *UsageError, anything that is not a
// positive integer an *IndexError.
func ParseIndex(command string, args []string, pos int) (int, error) {
	if pos >= len(args) {
		return 0, &UsageError{Command: command, Message: "missing task number"}
	}

	value := strings.TrimSpace(args[pos])
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, &IndexError{Value: args[pos]}
	}
	return n, nil
}

// CheckIndex verifies that index addresses a task in a list of length n.
func CheckIndex(index, n int) error {
	if index < 1 || index > n {
		return &IndexError{Value: strconv.Itoa(index), OutOfRange: true, Len: n}
	}
	return nil
}
