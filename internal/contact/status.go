package contact

// StatusRegion is the feedback area of the form.
// The zero value is an empty, hidden region.
type StatusRegion struct {
	Text   string
	Kind   StatusKind
	Hidden bool
}

// NewStatusRegion returns a region in its initial hidden state
func NewStatusRegion() StatusRegion {
	return StatusRegion{Hidden: true}
}

// Present replaces whatever the region showed with message in the given kind
// and makes it visible. Calling it twice with the same arguments is the same
// as calling it once.
func (s *StatusRegion) Present(message string, kind StatusKind) {
	s.Kind = kind
	s.Text = message
	s.Hidden = false
}

// Hide hides the region. Text and kind are kept so a renderer can fade them out.
func (s *StatusRegion) Hide() {
	s.Hidden = true
}

// Visible reports whether the region is currently shown
func (s StatusRegion) Visible() bool {
	return !s.Hidden
}

// SubmitButton is the submit control of the form
type SubmitButton struct {
	Label    string
	Disabled bool

	// saved holds the label from before the busy state
	saved string
	busy  bool
}

// NewSubmitButton returns an enabled button with the given label
func NewSubmitButton(label string) SubmitButton {
	if label == "" {
		label = DefaultSubmitLabel
	}
	return SubmitButton{Label: label}
}

// EnterBusy disables the button and swaps in busyLabel, remembering the original.
// Entering busy twice keeps the first saved label.
func (b *SubmitButton) EnterBusy(busyLabel string) {
	if !b.busy {
		b.saved = b.Label
		b.busy = true
	}
	b.Disabled = true
	b.Label = busyLabel
}

// ExitBusy re-enables the button and restores the saved label
func (b *SubmitButton) ExitBusy() {
	if b.busy {
		b.Label = b.saved
		b.saved = ""
		b.busy = false
	}
	b.Disabled = false
}
