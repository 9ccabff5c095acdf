package provider

import (
	"errors"
)

var (
	// ErrAuthentication indicates the vendor rejected the credentials.
	ErrAuthentication = errors.New("authentication failed")

	// ErrTransient indicates a failure that may succeed on retry.
	ErrTransient = errors.New("transient error")

	// ErrEmptyResponse indicates the vendor returned a well-formed response
	// without any content parts.
	ErrEmptyResponse = errors.New("empty response")

	// ErrNoImage indicates the vendor returned text but no image data.
	ErrNoImage = errors.New("no image in response")
)

// ValidationError reports invalid input. It is returned before any vendor
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
	}
}
