package storage

import "errors"

// ConflictError reports a uniqueness violation on a named field. Repositories
// return it (wrapped or bare) so use cases can tell the caller exactly which
// field collided instead of surfacing a driver error.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + " already exists"
}

func NewConflict(field string) *ConflictError {
	return &ConflictError{Field: field}
}

// AsConflict unwraps err looking for a ConflictError.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
