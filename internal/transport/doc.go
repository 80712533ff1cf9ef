// Package transport provides the HTTP client that delivers contact-form
// submissions to the backend.
//
// Submissions are sent as multipart/form-data POST requests to /send_email.
// The backend answers with a JSON body:
//
//	{"success": true, "message": "Correo enviado exitosamente"}
//
// Both the HTTP status and the success flag are returned to the caller; the
// client itself never turns a failed reply into an error. Errors are reserved
// for calls that did not produce a decodable reply (network failures, DNS,
// refused connections, malformed JSON) and are classified with the contact
// package's error types.
//
// There are no retries and, unless SetTimeout is called, no request timeout.
//
// # Usage Example
//
//	client := transport.NewClient("https://portfolio.example.com")
//	client.SetFields(transport.SpanishFieldNames)
//
//	reply, err := client.Send(ctx, contact.Submission{
//	    Name:    "Ana",
//	    Email:   "ana@example.com",
//	    Message: "Hola",
//	})
package transport
