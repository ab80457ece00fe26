package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is the business profile owned by an account holding RoleSupplier.
// Suppliers start unapproved; approval is granted outside this service.
type Supplier struct {
	ID           uuid.UUID `json:"id"`
	AccountID    uuid.UUID `json:"account_id"`
	BusinessName string    `json:"business_name"`
	Description  string    `json:"description"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SupplierProfile carries the optional business fields supplied at registration.
// Nil fields default to the empty string.
type SupplierProfile struct {
	BusinessName *string
	Description  *string
	PhoneNumber  *string
	Address      *string
}

// NewSupplier creates an unapproved supplier profile for the given account.
func NewSupplier(accountID uuid.UUID, p SupplierProfile) (*Supplier, error) {
	if accountID == uuid.Nil {
		return nil, NewValidationError("account_id", "cannot be empty", ErrInvalidID)
	}
	now := time.Now().UTC()
	return &Supplier{
		ID:           uuid.New(),
		AccountID:    accountID,
		BusinessName: valueOrEmpty(p.BusinessName),
		Description:  valueOrEmpty(p.Description),
		PhoneNumber:  valueOrEmpty(p.PhoneNumber),
		Address:      valueOrEmpty(p.Address),
		IsApproved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
