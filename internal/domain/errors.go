package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Code so callers can branch with errors.Is().
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrUnauthorized - credential mismatch; the message never says which
	// half of the pair was wrong.
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "Invalid admin credentials",
	}

	// ErrInvalidAction - unknown action discriminator in a request body.
	ErrInvalidAction = &DomainError{
		Code:    "VALIDATION",
		Message: "Invalid action",
	}

	// ErrNotFound - resource not found
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewValidationError creates a VALIDATION error with a field-specific message.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}

// NewNotFoundError creates a NOT_FOUND error with extra context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}
