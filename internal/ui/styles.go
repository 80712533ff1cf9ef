package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, focused borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success status
	ErrorColor   = lipgloss.Color("#FF5555") // Red - error status
	WarningColor = lipgloss.Color("#FFA500") // Orange - busy indicator
	MutedColor   = lipgloss.Color("#626262") // Gray - help, disabled controls
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 50
	MaxContentWidth  = 80
)

var (
	// TitleStyle is for the form title
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// LabelStyle is for input labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// FocusedLabelStyle is for the label of the focused input
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// ButtonStyle is for an enabled, unfocused submit button
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(MutedColor).
			Padding(0, 2)

	// FocusedButtonStyle is for the submit button when it has focus
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	// DisabledButtonStyle is for the submit button in the busy state
	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 2).
				Faint(true)

	// SpinnerStyle colours the busy spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// SuccessTextStyle is for success status text
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTextStyle is for error status text
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// HelpStyle is for the key help line
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginTop(1)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, clamped to the supported range
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MaxContentWidth
	}
	return ClampWidth(width)
}

// ClampWidth limits width to [MinTerminalWidth, MaxContentWidth]
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// StatusBoxStyle returns the bordered box style for a status of the given colour
func StatusBoxStyle(width int, color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, 1)
}
