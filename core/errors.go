package core

import "errors"

// ErrorKind classifies a validation failure so callers can branch on the
// failure class without parsing messages.
type ErrorKind int

const (
	InvalidDuration ErrorKind = iota + 1
	MissingDuration
	InactiveProject
	InactivePerson
	OverlapConflict
)

// ValidationError is a user-input problem reported back to the caller.
// It is never a system failure; repository errors pass through untouched.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ErrorKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// AsValidation unwraps err into a ValidationError when it carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsKind reports whether err is a validation failure of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ve, ok := AsValidation(err)
	return ok && ve.Kind == kind
}
