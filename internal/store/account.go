package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/tours-api/internal/domain"
)

// AccountStore defines the interface for account persistence.
type AccountStore interface {
	// Create inserts the account together with every role in account.Roles.
	// Returns ErrEmailExists if the email is already taken (case-insensitive).
	// Returns a wrapped domain validation error if the account is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByEmail retrieves an account and its roles by email, ignoring case.
	// Roles are returned in the order they were granted.
	// Returns ErrAccountNotFound if no account matches.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// WithTx returns an AccountStore bound to tx.
	WithTx(tx *sql.Tx) AccountStore
}

// SupplierStore defines the interface for supplier profile persistence.
type SupplierStore interface {
	// Create inserts the supplier profile.
	// Returns ErrSupplierExists if the account already owns a profile.
	Create(ctx context.Context, supplier *domain.Supplier) error

	// WithTx returns a SupplierStore bound to tx.
	WithTx(tx *sql.Tx) SupplierStore
}
