// Package config manages the contactform configuration file.
//
// The configuration is a small YAML document that says where the backend
// lives, which multipart field names it expects and how the form behaves.
// Nothing about a submission is ever written here.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/contactform/config.yaml or $HOME/.config/contactform/config.yaml
//   - macOS: $HOME/.config/contactform/config.yaml
//   - Windows: %LOCALAPPDATA%\contactform\config.yaml
//
// # Example
//
//	version: 1
//	endpoint:
//	  base_url: https://portfolio.example.com
//	  path: /send_email
//	  timeout: 15s
//	fields:
//	  name: nombre
//	  email: email
//	  message: mensaje
//	ui:
//	  hide_delay: 5s
//	  submit_label: Enviar mensaje
//
// The CONTACTFORM_ENDPOINT environment variable overrides endpoint.base_url.
package config
