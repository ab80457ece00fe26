package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tours-api/internal/api/shared"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/service"
	"github.com/phrazzld/tours-api/internal/service/auth"
)

// APIError is the client-facing rendering of an internal error.
type APIError struct {
	Status  int
	Code    string
	Message string
}

// MapError maps internal errors to a status code, a stable error code and a
// message that is safe to show to clients.
func MapError(err error) APIError {
	var verr *domain.ValidationError

	switch {
	case err == nil:
		return APIError{http.StatusInternalServerError, shared.CodeInternal, "An unexpected error occurred"}

	case errors.Is(err, service.ErrDuplicateIdentity):
		return APIError{http.StatusBadRequest, shared.CodeDuplicateIdentity, "An account with this email already exists"}

	case errors.Is(err, service.ErrCredentialRejected):
		return APIError{http.StatusBadRequest, shared.CodeCredentialRejected, passwordPolicyMessage(err)}

	case errors.As(err, &verr):
		return APIError{http.StatusBadRequest, shared.CodeInvalidRequest, "Invalid " + verr.Field + ": " + verr.Message}

	case errors.Is(err, domain.ErrValidation):
		return APIError{http.StatusBadRequest, shared.CodeInvalidRequest, "Invalid request"}

	case errors.Is(err, service.ErrInvalidCredentials):
		return APIError{http.StatusUnauthorized, shared.CodeInvalidCredentials, "Invalid email or password"}

	case errors.Is(err, auth.ErrExpiredToken):
		return APIError{http.StatusUnauthorized, shared.CodeUnauthorized, "Token expired"}

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return APIError{http.StatusUnauthorized, shared.CodeUnauthorized, "Invalid token"}

	case errors.Is(err, service.ErrTourNotFound):
		return APIError{http.StatusNotFound, shared.CodeNotFound, "Tour not found"}

	case errors.Is(err, service.ErrStorageUnavailable):
		return APIError{http.StatusInternalServerError, shared.CodeStorageUnavailable, "The service is temporarily unavailable"}

	default:
		return APIError{http.StatusInternalServerError, shared.CodeInternal, "An unexpected error occurred"}
	}
}

func passwordPolicyMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrPasswordTooShort):
		return "Password is too short"
	case errors.Is(err, auth.ErrPasswordTooLong):
		return "Password must be at most 72 bytes"
	case errors.Is(err, auth.ErrPasswordTooWeak):
		return "Password must contain upper-case, lower-case and digit characters"
	default:
		return "Password does not meet the policy"
	}
}

// HandleAPIError writes the error response for err and logs err, redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	e := MapError(err)
	shared.RespondWithErrorAndLog(w, r, e.Status, e.Code, e.Message, err)
}
