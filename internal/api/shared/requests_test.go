package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"omitempty,oneof=Customer Supplier"`
	Name  string `json:"first_name" validate:"required,max=5"`
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","first_name":"Al"}`))
		var got sampleRequest
		require.NoError(t, DecodeJSON(req, &got))
		assert.Equal(t, "a@b.co", got.Email)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var got sampleRequest
		assert.ErrorIs(t, DecodeJSON(req, &got), ErrEmptyBody)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		var got sampleRequest
		assert.Error(t, DecodeJSON(req, &got))
	})
}

func TestValidationMessage(t *testing.T) {
	tests := []struct {
		name string
		req  sampleRequest
		want string
	}{
		{"missing email", sampleRequest{Name: "Al"}, "Invalid email: required field"},
		{"bad email", sampleRequest{Email: "nope", Name: "Al"}, "Invalid email: invalid email format"},
		{"bad role", sampleRequest{Email: "a@b.co", Name: "Al", Role: "Admin"}, "Invalid role: must be one of Customer Supplier"},
		{"long name", sampleRequest{Email: "a@b.co", Name: "Alexander"}, "Invalid first_name: too long"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.want, ValidationMessage(err))
		})
	}

	assert.NoError(t, ValidateRequest(sampleRequest{Email: "a@b.co", Name: "Al"}))
	assert.Equal(t, "Validation error", ValidationMessage(assert.AnError))
}
