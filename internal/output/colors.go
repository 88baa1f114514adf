package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var colorsEnabled = detectColors()

// detectColors reports whether stdout is a color-capable terminal
func detectColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// SetColorsEnabled overrides color detection. Used by tests and --no-color.
func SetColorsEnabled(enabled bool) {
	colorsEnabled = enabled
}

func render(style lipgloss.Style, text string) string {
	if !colorsEnabled {
		return text
	}
	return style.Render(text)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return render(lipgloss.NewStyle().Foreground(lipgloss.Color("6")), branchName+" (current)")
	}
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("12")), branchName)
}

// ColorFork colors the fork marker shown next to branches with multiple children
func ColorFork(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("3")), text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return render(lipgloss.NewStyle().Foreground(lipgloss.Color("8")), text)
}
