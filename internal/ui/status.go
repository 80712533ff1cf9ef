package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/contactform/internal/contact"
)

// RenderStatus renders a status region. A hidden region, or one that never
// received a kind, renders as an empty string.
func RenderStatus(status contact.StatusRegion, width int) string {
	if status.Hidden {
		return ""
	}

	switch status.Kind {
	case contact.KindSuccess:
		text := SuccessTextStyle.Render(SuccessMarker + "  " + status.Text)
		return StatusBoxStyle(width, SuccessColor).Render(text)
	case contact.KindError:
		text := ErrorTextStyle.Render(FailureMarker + "  " + status.Text)
		return StatusBoxStyle(width, ErrorColor).Render(text)
	default:
		return ""
	}
}

// Printer writes styled output for non-interactive commands
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer that writes to w (os.Stdout when nil)
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) {
	p.width = ClampWidth(width)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintStatus writes the rendered status region, if visible
func (p *Printer) PrintStatus(status contact.StatusRegion) {
	if rendered := RenderStatus(status, p.width); rendered != "" {
		p.Println(rendered)
	}
}
