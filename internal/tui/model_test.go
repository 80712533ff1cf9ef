package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/contactform/internal/contact"
)

func newTestModel() (Model, *contact.Form) {
	form := contact.NewForm("")
	return NewModel(context.Background(), form), form
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model, cmd
}

func TestTypingWritesThroughToForm(t *testing.T) {
	m, form := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ana")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ana@example.com")})

	snap := form.Snapshot()
	if snap.Name != "Ana" || snap.Email != "ana@example.com" {
		t.Errorf("form = %+v, want typed values", snap)
	}
	if m.focus != focusEmail {
		t.Errorf("focus = %d, want email", m.focus)
	}
}

func TestFocusCycles(t *testing.T) {
	m, _ := newTestModel()

	for i := 0; i < focusCount; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.focus != focusName {
		t.Errorf("focus after full cycle = %d, want name", m.focus)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusButton {
		t.Errorf("focus after shift+tab = %d, want button", m.focus)
	}
}

func TestRefreshSyncsClearedFields(t *testing.T) {
	m, form := newTestModel()
	form.Fill(contact.Submission{Name: "Ana", Email: "ana@example.com", Message: "Hola"})
	m, _ = update(t, m, RefreshMsg{})

	if m.nameInput.Value() != "Ana" || m.messageInput.Value() != "Hola" {
		t.Fatalf("inputs not synced: %q %q", m.nameInput.Value(), m.messageInput.Value())
	}

	form.ClearFields()
	m, _ = update(t, m, RefreshMsg{})

	if m.nameInput.Value() != "" || m.emailInput.Value() != "" || m.messageInput.Value() != "" {
		t.Error("inputs should be empty after the form was cleared")
	}
}

func TestSubmitKey(t *testing.T) {
	m, form := newTestModel()

	submitted := 0
	form.OnSubmit(func(ctx context.Context) { submitted++ })

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s should return a submit command")
	}
	if _, ok := cmd().(submitDoneMsg); !ok {
		t.Error("submit command should report completion")
	}
	if submitted != 1 {
		t.Errorf("submitted = %d, want 1", submitted)
	}
}

func TestSubmitIgnoredWhileBusy(t *testing.T) {
	m, form := newTestModel()
	form.OnSubmit(func(ctx context.Context) { t.Error("listener should not run while busy") })
	form.SetBusy(true)

	m, cmd := update(t, m, RefreshMsg{})
	if cmd == nil {
		t.Error("entering busy should start the spinner")
	}

	if _, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Error("submit should be ignored while busy")
	}
}

func TestViewShowsStatusAndButton(t *testing.T) {
	m, form := newTestModel()
	form.Present("Correo enviado exitosamente", contact.KindSuccess)

	view := m.View()
	for _, want := range []string{"Contacto", "Nombre", "Mensaje", contact.DefaultSubmitLabel, "Correo enviado exitosamente"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	form.SetBusy(true)
	if view := m.View(); !strings.Contains(view, contact.LabelSending) {
		t.Errorf("View() while busy missing %q", contact.LabelSending)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.quitting {
		t.Fatal("esc should quit")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}
