package service

import "errors"

// Service errors. Callers match them with errors.Is; the API layer maps each
// one to a status code and a stable error code.
var (
	// ErrDuplicateIdentity indicates that an account with the email already exists.
	// API layer should map this to HTTP 400 with code DuplicateIdentity.
	ErrDuplicateIdentity = errors.New("an account with this email already exists")

	// ErrCredentialRejected indicates that the password does not satisfy the policy.
	ErrCredentialRejected = errors.New("password rejected by policy")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTourNotFound indicates that the tour does not exist or is not eligible.
	ErrTourNotFound = errors.New("tour not found")

	// ErrStorageUnavailable wraps any unexpected storage failure.
	// API layer should map this to HTTP 500.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
