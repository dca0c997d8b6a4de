// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Report styles
	Failure  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	FilePath lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style
	Count    lipgloss.Style

	// Rule listing styles
	RuleID      lipgloss.Style
	TableHeader lipgloss.Style
	Enabled     lipgloss.Style
	Disabled    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newStyle returns an empty style that keeps tabs as they are. Report lines
// quote document text verbatim.
func newStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Failure:  newStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:  newStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:    newStyle().Foreground(lipgloss.Color("9")),
		FilePath: newStyle().Bold(true),
		Location: newStyle().Foreground(lipgloss.Color("11")),
		Message:  newStyle(),
		Count:    newStyle().Foreground(lipgloss.Color("9")).Bold(true),

		RuleID:      newStyle().Foreground(lipgloss.Color("12")),
		TableHeader: newStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Enabled:     newStyle().Foreground(lipgloss.Color("10")),
		Disabled:    newStyle().Foreground(lipgloss.Color("8")),

		Dim:  newStyle().Foreground(lipgloss.Color("8")),
		Bold: newStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := newStyle()
	return &Styles{
		Failure:     plain,
		Success:     plain,
		Error:       plain,
		FilePath:    plain,
		Location:    plain,
		Message:     plain,
		Count:       plain,
		RuleID:      plain,
		TableHeader: plain,
		Enabled:     plain,
		Disabled:    plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the terminal behind writer, or a
// default width when writer is not a terminal.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
