package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muurk/contactform/internal/contact"
)

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     contact.StatusRegion
		wantEmpty  bool
		wantText   string
		wantMarker string
	}{
		{"initial region", contact.NewStatusRegion(), true, "", ""},
		{"hidden success", contact.StatusRegion{Text: "Enviado", Kind: contact.KindSuccess, Hidden: true}, true, "", ""},
		{"visible without kind", contact.StatusRegion{Text: "?"}, true, "", ""},
		{"success", contact.StatusRegion{Text: "Correo enviado exitosamente", Kind: contact.KindSuccess}, false, "Correo enviado exitosamente", SuccessMarker},
		{"error", contact.StatusRegion{Text: contact.MsgConnectionError, Kind: contact.KindError}, false, contact.MsgConnectionError, FailureMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderStatus(tt.status, MaxContentWidth)
			if tt.wantEmpty {
				if got != "" {
					t.Errorf("RenderStatus() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.wantText) {
				t.Errorf("RenderStatus() = %q, want it to contain %q", got, tt.wantText)
			}
			if !strings.Contains(got, tt.wantMarker) {
				t.Errorf("RenderStatus() = %q, want marker %q", got, tt.wantMarker)
			}
		})
	}
}

func TestPrinterPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.SetWidth(MaxContentWidth)

	p.PrintStatus(contact.NewStatusRegion())
	if buf.Len() != 0 {
		t.Errorf("hidden status printed %q", buf.String())
	}

	p.PrintStatus(contact.StatusRegion{Text: "Enviado", Kind: contact.KindSuccess})
	if !strings.Contains(buf.String(), "Enviado") {
		t.Errorf("output = %q, want it to contain Enviado", buf.String())
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{10, MinTerminalWidth},
		{MinTerminalWidth, MinTerminalWidth},
		{64, 64},
		{200, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
