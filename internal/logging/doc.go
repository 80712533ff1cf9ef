// Package logging provides structured logging for contactform.
//
// This package wraps a global zap logger with convenience functions and a
// few submission-specific helpers. Logging is silent unless a level is given
// explicitly or through the CONTACTFORM_LOG_LEVEL environment variable, so
// the terminal form and the send command keep clean output by default.
//
// # Levels
//
//   - Debug: payload sizes, request URLs
//   - Info: submission lifecycle events
//   - Warn: replies the backend marked as failed
//   - Error: transport failures (network, decoding)
//
// # Usage
//
//	if err := logging.Initialize("debug", "/tmp/contactform.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogSubmission(id, "transport_started")
//
// The interactive form owns stdout, so pass a file path when running it with
// logging enabled.
package logging
