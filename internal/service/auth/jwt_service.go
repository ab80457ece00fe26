package auth

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token carrying the account's
	// identity and its full role set at the time of issuance.
	GenerateToken(ctx context.Context, account *domain.Account) (*IssuedToken, error)

	// ValidateToken verifies signature, algorithm, expiry, issuer and audience
	// and returns the claims. Expired tokens yield ErrExpiredToken; every other
	// failure yields ErrInvalidToken or ErrTokenNotYetValid.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// IssuedToken is a signed token and the instant it stops being accepted.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// Claims is the identity asserted by a valid token.
type Claims struct {
	AccountID uuid.UUID
	Email     string
	Name      string
	Roles     []domain.Role

	Issuer    string
	Audience  []string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// HasRole reports whether the token asserts role r.
func (c *Claims) HasRole(r domain.Role) bool {
	return slices.Contains(c.Roles, r)
}
