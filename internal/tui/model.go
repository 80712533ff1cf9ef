package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/contactform/internal/contact"
	"github.com/muurk/contactform/internal/ui"
)

// RefreshMsg tells the model that the underlying form changed
type RefreshMsg struct{}

// submitDoneMsg is returned once the submit listener has finished
type submitDoneMsg struct{}

// Focus positions, in tab order
const (
	focusName = iota
	focusEmail
	focusMessage
	focusButton
	focusCount
)

// Model renders a contact.Form and forwards keystrokes into it.
// The form is the single source of truth; the inputs mirror it.
type Model struct {
	ctx  context.Context
	form *contact.Form

	nameInput    textinput.Model
	emailInput   textinput.Model
	messageInput textarea.Model
	focus        int

	spinner  spinner.Model
	spinning bool

	help help.Model
	keys keyMap

	width    int
	quitting bool
}

// NewModel creates a model for form. ctx is passed to every submit.
func NewModel(ctx context.Context, form *contact.Form) Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "Tu nombre"
	nameInput.CharLimit = 120
	nameInput.Width = 50

	emailInput := textinput.New()
	emailInput.Placeholder = "tu@email.com"
	emailInput.CharLimit = 254
	emailInput.Width = 50

	messageInput := textarea.New()
	messageInput.Placeholder = "Escribe tu mensaje..."
	messageInput.ShowLineNumbers = false
	messageInput.CharLimit = 5000
	messageInput.SetWidth(52)
	messageInput.SetHeight(5)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.SpinnerStyle

	m := Model{
		ctx:          ctx,
		form:         form,
		nameInput:    nameInput,
		emailInput:   emailInput,
		messageInput: messageInput,
		spinner:      s,
		help:         help.New(),
		keys:         newKeyMap(),
		width:        ui.MaxContentWidth,
	}
	m.syncFromForm()
	m.nameInput.Focus()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = ui.ClampWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case RefreshMsg:
		m.syncFromForm()
		if m.busy() && !m.spinning {
			m.spinning = true
			return m, m.spinner.Tick
		}
		return m, nil

	case submitDoneMsg:
		m.syncFromForm()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}

		if msg.Type == tea.KeyEnter {
			switch m.focus {
			case focusButton:
				return m, m.submit()
			case focusName, focusEmail:
				return m, m.setFocus(m.focus + 1)
			}
		}
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput passes msg to the focused input and writes the new value through to the form
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		if v := m.nameInput.Value(); v != m.form.Snapshot().Name {
			m.form.SetName(v)
		}
	case focusEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
		if v := m.emailInput.Value(); v != m.form.Snapshot().Email {
			m.form.SetEmail(v)
		}
	case focusMessage:
		m.messageInput, cmd = m.messageInput.Update(msg)
		if v := m.messageInput.Value(); v != m.form.Snapshot().Message {
			m.form.SetMessage(v)
		}
	}

	return m, cmd
}

// submit fires the form's submit event in the background.
// A disabled button does nothing.
func (m Model) submit() tea.Cmd {
	if m.busy() {
		return nil
	}
	form := m.form
	ctx := m.ctx
	return func() tea.Msg {
		form.Submit(ctx)
		return submitDoneMsg{}
	}
}

// setFocus moves focus to position i
func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.messageInput.Blur()

	switch i {
	case focusName:
		return m.nameInput.Focus()
	case focusEmail:
		return m.emailInput.Focus()
	case focusMessage:
		return m.messageInput.Focus()
	}
	return nil
}

// syncFromForm copies field values from the form into the inputs when they differ
func (m *Model) syncFromForm() {
	snap := m.form.Snapshot()
	if m.nameInput.Value() != snap.Name {
		m.nameInput.SetValue(snap.Name)
	}
	if m.emailInput.Value() != snap.Email {
		m.emailInput.SetValue(snap.Email)
	}
	if m.messageInput.Value() != snap.Message {
		m.messageInput.SetValue(snap.Message)
	}
}

// busy reports whether the submit button is disabled
func (m Model) busy() bool {
	return m.form.Snapshot().Button.Disabled
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.form.Snapshot()
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render("Contacto"))
	b.WriteString("\n")

	b.WriteString(m.label("Nombre", focusName) + "\n")
	b.WriteString(m.nameInput.View() + "\n\n")
	b.WriteString(m.label("Email", focusEmail) + "\n")
	b.WriteString(m.emailInput.View() + "\n\n")
	b.WriteString(m.label("Mensaje", focusMessage) + "\n")
	b.WriteString(m.messageInput.View() + "\n\n")

	b.WriteString(m.renderButton(snap.Button))
	b.WriteString("\n")

	if status := ui.RenderStatus(snap.Status, m.width); status != "" {
		b.WriteString("\n" + status + "\n")
	}

	b.WriteString(ui.HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) label(text string, pos int) string {
	if m.focus == pos {
		return ui.FocusedLabelStyle.Render(text)
	}
	return ui.LabelStyle.Render(text)
}

func (m Model) renderButton(button contact.SubmitButton) string {
	switch {
	case button.Disabled:
		return m.spinner.View() + " " + ui.DisabledButtonStyle.Render(button.Label)
	case m.focus == focusButton:
		return ui.FocusedButtonStyle.Render(button.Label)
	default:
		return ui.ButtonStyle.Render(button.Label)
	}
}
