package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo functions when the requested booking
// does not exist. The service treats it as "contact is free".
var ErrNotFound = errors.New("not found")

// ErrValidation is the sentinel every *ValidationError unwraps to.
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrMissingField is returned by the service when a required submission
// field is absent or blank. Handlers should map this to HTTP 400.
var ErrMissingField = errors.New("missing required field")

// ErrDuplicateEmail and ErrDuplicatePhone report that a stored booking
// already uses the submitted contact. Handlers map both to HTTP 401.
var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicatePhone = errors.New("phone already exists")
)

// FieldError is a single field constraint violation.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError lists every field that failed the booking constraints.
// errors.Is(err, ErrValidation) reports true for it.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
