package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// colorEnabled tracks whether styled output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

// renderer is pinned to the ANSI profile; whether styles apply at all
// is decided by colorEnabled.
var renderer = newRenderer()

var boldStyle = renderer.NewStyle().Bold(true)

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// SetColorMode applies one of ColorAuto, ColorAlways or ColorNever.
// In auto mode, styling follows whether w is a terminal.
func SetColorMode(mode string, w io.Writer) {
	switch mode {
	case ColorAlways:
		colorEnabled = true
	case ColorNever:
		colorEnabled = false
	default:
		colorEnabled = IsTerminal(w)
	}
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGreen + s + colorReset
}

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return colorRed + s + colorReset
}

// Bold renders s in boldface if colors are enabled.
func Bold(s string) string {
	if !colorEnabled {
		return s
	}
	return boldStyle.Render(s)
}

// Strike renders s struck through if colors are enabled.
// The whole string is wrapped in a single escape sequence.
func Strike(s string) string {
	if !colorEnabled {
		return s
	}
	return termenv.String(s).CrossOut().String()
}
