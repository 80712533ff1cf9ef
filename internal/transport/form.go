package transport

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/muurk/contactform/internal/contact"
)

// FieldNames maps the submission fields to multipart form field names
type FieldNames struct {
	Name    string
	Email   string
	Message string
}

// DefaultFieldNames are the form field names sent by default
var DefaultFieldNames = FieldNames{
	Name:    "name",
	Email:   "email",
	Message: "message",
}

// SpanishFieldNames matches backends that expect nombre/email/mensaje
var SpanishFieldNames = FieldNames{
	Name:    "nombre",
	Email:   "email",
	Message: "mensaje",
}

// Validate checks that no field name is empty or duplicated
func (f FieldNames) Validate() error {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return fmt.Errorf("form field names cannot be empty (name=%q email=%q message=%q)", f.Name, f.Email, f.Message)
	}
	if f.Name == f.Email || f.Name == f.Message || f.Email == f.Message {
		return fmt.Errorf("form field names must be distinct (name=%q email=%q message=%q)", f.Name, f.Email, f.Message)
	}
	return nil
}

// EncodeMultipart writes sub as multipart/form-data and returns the body and
// its Content-Type (which carries the boundary).
func EncodeMultipart(sub contact.Submission, names FieldNames) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := []struct{ key, value string }{
		{names.Name, sub.Name},
		{names.Email, sub.Email},
		{names.Message, sub.Message},
	}
	for _, field := range fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", field.key, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	return body, w.FormDataContentType(), nil
}
