package contact

import (
	"fmt"
	"strings"
	"unicode"
)

// User-facing texts. The backend this form talks to answers in Spanish,
// so the local messages match it.
const (
	MsgEmptyFields     = "Por favor completa todos los campos"
	MsgInvalidEmail    = "Por favor ingresa un email válido"
	MsgSendFailed      = "Error al enviar el correo"
	MsgConnectionError = "Error de conexión. Intenta de nuevo."
	LabelSending       = "Enviando..."
	DefaultSubmitLabel = "Enviar mensaje"
)

// Submission is one attempt to send the contact form.
// Values are read fresh from the form on every submit and never stored.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Trimmed returns a copy with leading and trailing whitespace removed from every field
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    strings.TrimFunc(s.Name, isTrimmable),
		Email:   strings.TrimFunc(s.Email, isTrimmable),
		Message: strings.TrimFunc(s.Message, isTrimmable),
	}
}

// isTrimmable reports whitespace plus the byte order mark, which
// unicode.IsSpace does not cover
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Result is the JSON body returned by the backend
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Reply is a settled transport call: the HTTP status plus the decoded body
type Reply struct {
	StatusCode int
	Result     Result
}

// OK reports whether the HTTP status is in the 2xx range
func (r *Reply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Succeeded reports whether both the status code and the success flag say so
func (r *Reply) Succeeded() bool {
	return r.OK() && r.Result.Success
}

// StatusKind is the presentation state of the status region
type StatusKind int

const (
	KindNone StatusKind = iota
	KindSuccess
	KindError
)

// String returns the class-like name of the kind
func (k StatusKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("StatusKind(%d)", k)
	}
}

// Outcome tells the caller which branch a submission ended in
type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeInvalid
	OutcomeRejected
	OutcomeConnectionError
	OutcomeBusy
)

// String returns a short name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRejected:
		return "rejected"
	case OutcomeConnectionError:
		return "connection_error"
	case OutcomeBusy:
		return "busy"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}
