// Package style provides semantic terminal styling for dispatcher output
// using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Error, Hint, Header, Muted) rather than visual. When
// disabled, all helpers return the input string unchanged with no ANSI
// codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	errorStyle  lipgloss.Style
	hintStyle   lipgloss.Style
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR convention:
// if the variable is set to any non-empty value, styling stays disabled
// regardless of enable.
//
// This function should be called once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	// Force ANSI256 regardless of TTY detection so styling survives
	// pipelines the caller explicitly enabled it for.
	lipgloss.SetColorProfile(termenv.ANSI256)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
}

// Enabled reports whether styling is active.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Error styles a fatal error message.
func Error(text string) string { return render(errorStyle, text) }

// Hint styles a did-you-mean suggestion.
func Hint(text string) string { return render(hintStyle, text) }

// Header styles a section heading.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary detail.
func Muted(text string) string { return render(mutedStyle, text) }
