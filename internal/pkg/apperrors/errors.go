package apperrors

import "errors"

var (
	// ErrNotFound signals that the referenced row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict signals that the row changed between read and write.
	// The caller re-checked existence: the row is still there, so the
	// update lost an optimistic version race.
	ErrConflict = errors.New("record changed since it was read")

	// ErrInvalidCredentials is deliberately generic. It never says which
	// of username or password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError carries field-level messages for a rejected write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}

// NewValidation builds a single-field validation error.
func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
