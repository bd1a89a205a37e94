// Package cli provides CLI infrastructure for todo.
package cli

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownCommandError indicates a command name matched nothing, or more
// than one command by prefix.
type UnknownCommandError struct {
	Name       string   // the name as typed
	Candidates []string // commands sharing the prefix, if ambiguous
}

func (e *UnknownCommandError) Error() string {
	if len(e.Candidates) > 0 {
		return fmt.Sprintf("ambiguous command %q matches: %s", e.Name, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

// MatchCommand finds a unique command from a prefix.
// Returns the matched command or an *UnknownCommandError.
func MatchCommand(prefix string, commands []string) (string, error) {
	name := strings.ToLower(prefix)

	// First check for exact match
	for _, cmd := range commands {
		if strings.ToLower(cmd) == name {
			return cmd, nil
		}
	}

	var matches []string
	if name != "" {
		for _, cmd := range commands {
			if strings.HasPrefix(strings.ToLower(cmd), name) {
				matches = append(matches, cmd)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", &UnknownCommandError{Name: prefix}
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", &UnknownCommandError{Name: prefix, Candidates: matches}
	}
}
