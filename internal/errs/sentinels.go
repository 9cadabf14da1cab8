// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers. The HTTP layer maps these to
// status codes; everything else compares with errors.Is.
var (
	// ErrNotFound indicates the requested entity does not exist (or its
	// existence is hidden from the caller).
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a valid session with insufficient rights.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyExists indicates a uniqueness conflict (duplicate email,
	// already a team member).
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation")
)
