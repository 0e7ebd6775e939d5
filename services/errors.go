package services

import "errors"

// Error classes the HTTP layer maps onto response codes. Services wrap these
// with %w so callers can test with errors.Is.
var (
	// ErrNotFound: the requested invention, file or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the caller is not allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation: the input is malformed (unknown status, negative funding
	// amount, empty comment content, ...).
	ErrValidation = errors.New("validation failed")
	// ErrConflict: the likes uniqueness invariant was found violated. This is
	// a data-integrity condition, not a user error.
	ErrConflict = errors.New("data integrity conflict")
)
