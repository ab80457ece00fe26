package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid, the signature doesn't
	// match, or the issuer/audience is not ours.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf/iat claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")
)

// Password policy errors. All of them wrap ErrPasswordPolicy.
var (
	ErrPasswordPolicy   = errors.New("password does not meet policy")
	ErrPasswordTooShort = fmt.Errorf("%w: too short", ErrPasswordPolicy)
	ErrPasswordTooLong  = fmt.Errorf("%w: longer than 72 bytes", ErrPasswordPolicy)
	ErrPasswordTooWeak  = fmt.Errorf("%w: needs upper-case, lower-case and digit characters", ErrPasswordPolicy)
)
