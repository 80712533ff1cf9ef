package contact

import (
	"context"
	"sync"
)

// FormGateway is everything the handler needs from the form it serves.
type FormGateway interface {
	// ReadFields returns the current name, email and message, trimmed
	ReadFields() Submission
	// SetBusy enters (true) or leaves (false) the busy state of the submit control
	SetBusy(busy bool)
	// Present shows message in the status region with the given kind
	Present(message string, kind StatusKind)
	// ClearFields empties the three inputs
	ClearFields()
	// HideStatus hides the status region
	HideStatus()
}

// TransportClient sends a submission to the backend.
// A returned error means the call itself failed (network, decoding);
// a reply with a failure status or success=false is not an error.
type TransportClient interface {
	Send(ctx context.Context, sub Submission) (*Reply, error)
}

// SubmitSource is something that emits submit events, such as a form.
type SubmitSource interface {
	OnSubmit(listener func(ctx context.Context))
}

// Form is an in-memory contact form: three inputs, a submit button and a
// status region. It implements FormGateway and SubmitSource and is safe
// for concurrent use.
type Form struct {
	mu       sync.Mutex
	name     string
	email    string
	message  string
	button   SubmitButton
	status   StatusRegion
	listener func(ctx context.Context)
	onChange func()
}

// Snapshot is a copy of the form's observable state
type Snapshot struct {
	Name    string
	Email   string
	Message string
	Button  SubmitButton
	Status  StatusRegion
}

// NewForm creates an empty form whose submit button shows submitLabel
func NewForm(submitLabel string) *Form {
	return &Form{
		button: NewSubmitButton(submitLabel),
		status: NewStatusRegion(),
	}
}

// SetOnChange registers fn to be called after every state change.
// fn is called without the form lock held.
func (f *Form) SetOnChange(fn func()) {
	f.mu.Lock()
	f.onChange = fn
	f.mu.Unlock()
}

// update runs mutate under the lock, then notifies the change listener
func (f *Form) update(mutate func()) {
	f.mu.Lock()
	mutate()
	notify := f.onChange
	f.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// SetName sets the raw name input value
func (f *Form) SetName(v string) { f.update(func() { f.name = v }) }

// SetEmail sets the raw email input value
func (f *Form) SetEmail(v string) { f.update(func() { f.email = v }) }

// SetMessage sets the raw message input value
func (f *Form) SetMessage(v string) { f.update(func() { f.message = v }) }

// Fill sets all three inputs at once
func (f *Form) Fill(sub Submission) {
	f.update(func() {
		f.name = sub.Name
		f.email = sub.Email
		f.message = sub.Message
	})
}

// ReadFields implements FormGateway
func (f *Form) ReadFields() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Submission{Name: f.name, Email: f.email, Message: f.message}.Trimmed()
}

// SetBusy implements FormGateway
func (f *Form) SetBusy(busy bool) {
	f.update(func() {
		if busy {
			f.button.EnterBusy(LabelSending)
		} else {
			f.button.ExitBusy()
		}
	})
}

// Present implements FormGateway
func (f *Form) Present(message string, kind StatusKind) {
	f.update(func() { f.status.Present(message, kind) })
}

// ClearFields implements FormGateway
func (f *Form) ClearFields() {
	f.update(func() {
		f.name = ""
		f.email = ""
		f.message = ""
	})
}

// HideStatus implements FormGateway
func (f *Form) HideStatus() {
	f.update(func() { f.status.Hide() })
}

// OnSubmit implements SubmitSource. A later call replaces the listener.
func (f *Form) OnSubmit(listener func(ctx context.Context)) {
	f.mu.Lock()
	f.listener = listener
	f.mu.Unlock()
}

// Submit fires the submit event and blocks until the listener returns.
// Like a disabled button, a busy form does not fire. It reports whether
// the listener ran.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	listener := f.listener
	disabled := f.button.Disabled
	f.mu.Unlock()

	if listener == nil || disabled {
		return false
	}
	listener(ctx)
	return true
}

// Snapshot returns a copy of the current state
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Name:    f.name,
		Email:   f.email,
		Message: f.message,
		Button:  f.button,
		Status:  f.status,
	}
}
