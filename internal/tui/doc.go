// Package tui implements the interactive terminal contact form.
//
// The Bubble Tea model is a view over a contact.Form: keystrokes are written
// into the form, and every change the submit handler makes to the form
// (busy state, status message, cleared fields) arrives back as a RefreshMsg.
//
// # Layout
//
//	Contacto
//
//	Nombre   [textinput]
//	Email    [textinput]
//	Mensaje  [textarea]
//
//	[ Enviar mensaje ]        (spinner + "Enviando..." while busy)
//
//	╭──────────────────────────────╮
//	│ ✓  Correo enviado exitosamente │
//	╰──────────────────────────────╯
//
// # Keys
//
//   - tab / shift+tab: move between fields and the button
//   - enter: next field, or send when the button is focused
//   - ctrl+s: send from anywhere
//   - esc / ctrl+c: quit
//
// Sending is ignored while the button is disabled.
package tui
