package errors

import "errors"

var (
	// ErrNotFound marks a resource that could not be resolved.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an authenticated principal without sufficient rights.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation marks rejected caller input.
	ErrValidation = errors.New("validation")
	// ErrUnauthorized marks a missing or unverifiable principal.
	ErrUnauthorized = errors.New("unauthorized")
)
