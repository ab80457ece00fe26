package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/tours-api/internal/api/shared"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/service"
	"github.com/phrazzld/tours-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"nil", nil, http.StatusInternalServerError, shared.CodeInternal},
		{"duplicate", service.ErrDuplicateIdentity, http.StatusBadRequest, shared.CodeDuplicateIdentity},
		{"weak password", fmt.Errorf("%w: %w", service.ErrCredentialRejected, auth.ErrPasswordTooWeak), http.StatusBadRequest, shared.CodeCredentialRejected},
		{"validation", domain.NewValidationError("role", "is not a known role", domain.ErrInvalidRole), http.StatusBadRequest, shared.CodeInvalidRequest},
		{"wrapped validation sentinel", fmt.Errorf("%w: bad", domain.ErrValidation), http.StatusBadRequest, shared.CodeInvalidRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, shared.CodeInvalidCredentials},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, shared.CodeUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, shared.CodeUnauthorized},
		{"tour not found", service.ErrTourNotFound, http.StatusNotFound, shared.CodeNotFound},
		{"storage", fmt.Errorf("%w: %w", service.ErrStorageUnavailable, errors.New("pq: secret")), http.StatusInternalServerError, shared.CodeStorageUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, shared.CodeInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			assert.Equal(t, tc.status, got.Status)
			assert.Equal(t, tc.code, got.Code)
			assert.NotEmpty(t, got.Message)
			if tc.err != nil {
				assert.NotContains(t, got.Message, "secret")
			}
		})
	}
}

func TestPasswordPolicyMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Password is too short", passwordPolicyMessage(auth.ErrPasswordTooShort))
	assert.Equal(t, "Password must be at most 72 bytes", passwordPolicyMessage(auth.ErrPasswordTooLong))
	assert.Contains(t, passwordPolicyMessage(auth.ErrPasswordTooWeak), "upper-case")
	assert.Equal(t, "Password does not meet the policy", passwordPolicyMessage(service.ErrCredentialRejected))
}
