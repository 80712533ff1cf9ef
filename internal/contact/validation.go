package contact

import "regexp"

// emailPattern: something@something.something with no whitespace and no extra '@'.
// \s alone is ASCII-only, so vertical tab, Unicode separators and the BOM are listed too.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// IsValidEmail reports whether s looks like local@domain.tld.
// It is a syntactic sanity check, not an RFC validator; nothing is resolved.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateSubmission applies the emptiness gate and then the format gate.
// The submission is expected to be trimmed already.
// The returned error is a validation error whose Message is shown to the user.
func ValidateSubmission(sub Submission) error {
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return NewValidationError(MsgEmptyFields)
	}
	if !IsValidEmail(sub.Email) {
		return NewValidationError(MsgInvalidEmail)
	}
	return nil
}
