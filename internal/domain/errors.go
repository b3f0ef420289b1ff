package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services, repositories and delivery.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicateName       = errors.New("name already in use")
	ErrInvalidRange        = errors.New("invalid range")
	ErrOutOfEventBounds    = errors.New("performance out of event bounds")
	ErrOverlapConflict     = errors.New("performance overlaps another performance")
	ErrChildrenOutOfBounds = errors.New("performances out of event bounds")

	// ErrConcurrentModification reports a write that lost a race with another writer
	// and gave up retrying. The request is safe to repeat.
	ErrConcurrentModification = errors.New("modified concurrently")
)

// ValidationError is a field-scoped rejection. Err is one of the sentinel errors
// above and is reachable through errors.Is.
type ValidationError struct {
	Err     error
	Message string
	Fields  []string
}

// NewValidationError returns a ValidationError attached to the given fields.
func NewValidationError(err error, message string, fields ...string) *ValidationError {
	return &ValidationError{Err: err, Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return strings.Join(e.Fields, ", ") + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FieldErrors expands the error into a field -> message map for API responses.
func (e *ValidationError) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f] = e.Message
	}
	return out
}

// AsValidationError returns the ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
