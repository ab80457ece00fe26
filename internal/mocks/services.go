package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock of service.AccountService.
type MockAccountService struct {
	mock.Mock
}

var _ service.AccountService = (*MockAccountService)(nil)

// Register is a mock implementation of service.AccountService.Register
func (m *MockAccountService) Register(ctx context.Context, in service.RegisterInput) (*domain.Account, error) {
	args := m.Called(ctx, in)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// Login is a mock implementation of service.AccountService.Login
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if result, ok := args.Get(0).(*service.LoginResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTourQueryService is a mock of service.TourQueryService.
type MockTourQueryService struct {
	mock.Mock
}

var _ service.TourQueryService = (*MockTourQueryService)(nil)

// ListTours is a mock implementation of service.TourQueryService.ListTours
func (m *MockTourQueryService) ListTours(ctx context.Context) ([]domain.TourSummary, error) {
	args := m.Called(ctx)
	if tours, ok := args.Get(0).([]domain.TourSummary); ok {
		return tours, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetTour is a mock implementation of service.TourQueryService.GetTour
func (m *MockTourQueryService) GetTour(ctx context.Context, id uuid.UUID) (*domain.TourDetail, error) {
	args := m.Called(ctx, id)
	if detail, ok := args.Get(0).(*domain.TourDetail); ok {
		return detail, args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchTours is a mock implementation of service.TourQueryService.SearchTours
func (m *MockTourQueryService) SearchTours(ctx context.Context, criteria service.SearchCriteria) ([]domain.TourSummary, error) {
	args := m.Called(ctx, criteria)
	if tours, ok := args.Get(0).([]domain.TourSummary); ok {
		return tours, args.Error(1)
	}
	return nil, args.Error(1)
}
