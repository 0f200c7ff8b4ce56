// Package style renders run reports for the CLI.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Status of a finished run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var (
	// TitleStyle renders section headers
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// MutedStyle renders secondary detail like issued commands
	MutedStyle = lipgloss.NewStyle().Faint(true)
)

// StatusStyle returns the pterm style for a status badge.
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ColorEnabled reports whether the environment supports color output.
// Pipeline agents usually capture output, so this drives pterm's
// global color switch.
func ColorEnabled() bool {
	return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}
