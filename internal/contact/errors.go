package contact

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred during a submission
type ErrorType int

const (
	// ErrTypeValidation indicates a locally detected input problem (empty field, malformed email)
	ErrTypeValidation ErrorType = iota
	// ErrTypeLogical indicates the backend answered but reported success=false
	ErrTypeLogical
	// ErrTypeHTTP indicates a non-2xx status code
	ErrTypeHTTP
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the backend refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeLogical:
		return "Logical Failure"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ErrNoForm is returned by Attach when there is no form to register on.
var ErrNoForm = errors.New("contact: form not found")

// SubmitError represents an error that occurred while submitting the contact form
type SubmitError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SubmitError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more specific error type
func ClassifyNetworkError(err error) *SubmitError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) || errors.Is(err, os.ErrDeadlineExceeded) {
		return &SubmitError{Type: ErrTypeTimeout, Message: "request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &SubmitError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &SubmitError{Type: ErrTypeConnectionRefused, Message: "backend refused connection", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		classified := ClassifyNetworkError(urlErr.Err)
		classified.Err = err
		return classified
	}

	return &SubmitError{Type: ErrTypeNetwork, Message: "network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *SubmitError {
	classified := ClassifyNetworkError(err)
	if classified == nil {
		return &SubmitError{Type: ErrTypeNetwork, Message: message}
	}
	classified.Message = message
	return classified
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *SubmitError {
	return &SubmitError{Type: ErrTypeHTTP, Message: message, StatusCode: statusCode}
}

// NewLogicalError creates an error for a reply whose success flag is false
func NewLogicalError(statusCode int, message string) *SubmitError {
	return &SubmitError{Type: ErrTypeLogical, Message: message, StatusCode: statusCode}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *SubmitError {
	return &SubmitError{Type: ErrTypeParse, Message: message, Err: err}
}

// NewValidationError creates a validation error. The message is shown to the user as-is.
func NewValidationError(message string) *SubmitError {
	return &SubmitError{Type: ErrTypeValidation, Message: message}
}

func errorType(err error) (ErrorType, bool) {
	var subErr *SubmitError
	if errors.As(err, &subErr) {
		return subErr.Type, true
	}
	return 0, false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsTransportError reports whether err belongs to the connection-error branch:
// anything the network layer or the body decoder produced.
func IsTransportError(err error) bool {
	t, ok := errorType(err)
	if !ok {
		return err != nil
	}
	switch t {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS, ErrTypeParse:
		return true
	}
	return false
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		return err.Error()
	}

	switch subErr.Type {
	case ErrTypeTimeout:
		return "Backend not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Backend refused connection"
	case ErrTypeDNS:
		return "Cannot resolve backend hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Backend error (HTTP %d)", subErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse backend response"
	default:
		return subErr.Message
	}
}
