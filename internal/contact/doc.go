// Package contact implements the contact-form submit flow.
//
// A Handler reads three fields from a FormGateway, checks them, sends them
// through a TransportClient and reports the outcome back to the form's status
// region. The busy state of the submit control is entered right before the
// transport call and always left when it settles, whichever branch is taken.
//
// # Flow
//
//  1. Read name, email and message (trimmed)
//  2. Reject empty fields, then malformed emails, without sending anything
//  3. Disable the submit control and show "Enviando..."
//  4. POST the submission and wait for the reply
//  5. Show the backend's message; on success clear the fields and hide the
//     status after a delay
//  6. On a transport failure show a generic connection error
//  7. Restore the submit control
//
// # Usage Example
//
//	form := contact.NewForm("Enviar mensaje")
//	client := transport.NewClient("https://example.com")
//
//	if _, err := contact.Attach(form, form, client); err != nil {
//	    log.Fatal(err)
//	}
//
//	form.Fill(contact.Submission{Name: "Ana", Email: "ana@example.com", Message: "Hola"})
//	form.Submit(ctx)
//
// # Hide Timer
//
// A success message is hidden after DefaultHideDelay. Starting a new
// submission cancels any pending hide, so an old timer never hides a newer
// message.
package contact
