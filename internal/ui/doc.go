// Package ui provides the terminal styling shared by contactform's commands.
//
// It holds the lipgloss palette, the rendering of a status region as a
// bordered box and a small Printer used by the non-interactive send command.
// The interactive form lives in the form subpackage and reuses these styles.
package ui
