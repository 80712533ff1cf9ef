package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/contactform/internal/contact"
)

// Run shows the interactive form until the user quits.
// The form's change listener is pointed at the program for the duration.
func Run(ctx context.Context, form *contact.Form) error {
	p := tea.NewProgram(NewModel(ctx, form), tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the event loop reads the message, and form changes
	// can happen inside Update, so notify asynchronously.
	form.SetOnChange(func() {
		go p.Send(RefreshMsg{})
	})
	defer form.SetOnChange(nil)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("contact form: %w", err)
	}
	return nil
}
