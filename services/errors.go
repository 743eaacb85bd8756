package services

import "errors"

// ErrNotFound covers every lookup of an id that does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned by Login when the password hash does not
// verify. Deliberately indistinguishable on the wire from an unknown user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError marks a request rejected before any mutation: a blank
// required field, a non-positive price or a category reference that does not
// resolve. For the latter ValidCategoryIDs carries the ids the caller may
// use instead.
type ValidationError struct {
	Message          string
	ValidCategoryIDs []uint
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// ConflictError marks a request that clashes with existing state: a taken
// username or a category delete blocked by its items.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
