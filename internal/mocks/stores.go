package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockAccountStore is a mock of store.AccountStore.
type MockAccountStore struct {
	mock.Mock
}

var _ store.AccountStore = (*MockAccountStore)(nil)

// Create is a mock implementation of store.AccountStore.Create
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// GetByEmail is a mock implementation of store.AccountStore.GetByEmail
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*domain.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns m.
func (m *MockAccountStore) WithTx(*sql.Tx) store.AccountStore {
	return m
}

// MockSupplierStore is a mock of store.SupplierStore.
type MockSupplierStore struct {
	mock.Mock
}

var _ store.SupplierStore = (*MockSupplierStore)(nil)

// Create is a mock implementation of store.SupplierStore.Create
func (m *MockSupplierStore) Create(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

// WithTx returns m.
func (m *MockSupplierStore) WithTx(*sql.Tx) store.SupplierStore {
	return m
}

// MockTourStore is a mock of store.TourStore.
type MockTourStore struct {
	mock.Mock
}

var _ store.TourStore = (*MockTourStore)(nil)

// ListEligible is a mock implementation of store.TourStore.ListEligible
func (m *MockTourStore) ListEligible(ctx context.Context) ([]domain.TourListing, error) {
	args := m.Called(ctx)
	if listings, ok := args.Get(0).([]domain.TourListing); ok {
		return listings, args.Error(1)
	}
	return nil, args.Error(1)
}

// SearchEligible is a mock implementation of store.TourStore.SearchEligible
func (m *MockTourStore) SearchEligible(ctx context.Context, filter store.TourFilter) ([]domain.TourListing, error) {
	args := m.Called(ctx, filter)
	if listings, ok := args.Get(0).([]domain.TourListing); ok {
		return listings, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetEligible is a mock implementation of store.TourStore.GetEligible
func (m *MockTourStore) GetEligible(ctx context.Context, id uuid.UUID) (*store.TourRecord, error) {
	args := m.Called(ctx, id)
	if record, ok := args.Get(0).(*store.TourRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}
