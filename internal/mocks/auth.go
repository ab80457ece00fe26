package mocks

import (
	"context"

	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/service/auth"
	"github.com/stretchr/testify/mock"
)

// MockJWTService is a mock of auth.JWTService.
type MockJWTService struct {
	mock.Mock
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken is a mock implementation of auth.JWTService.GenerateToken
func (m *MockJWTService) GenerateToken(ctx context.Context, account *domain.Account) (*auth.IssuedToken, error) {
	args := m.Called(ctx, account)
	if token, ok := args.Get(0).(*auth.IssuedToken); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

// ValidateToken is a mock implementation of auth.JWTService.ValidateToken
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	args := m.Called(ctx, tokenString)
	if claims, ok := args.Get(0).(*auth.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPasswordHasher is a mock of auth.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash is a mock implementation of auth.PasswordHasher.Hash
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Compare is a mock implementation of auth.PasswordHasher.Compare
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// CompareDummy is a mock implementation of auth.PasswordHasher.CompareDummy
func (m *MockPasswordHasher) CompareDummy(password string) {
	m.Called(password)
}
