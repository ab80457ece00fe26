package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before being
	// stored, or when the database rejects it through a CHECK, NOT NULL or
	// foreign key constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrAccountNotFound indicates that no account matches the lookup.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrTourNotFound indicates that the tour does not exist or is not eligible.
	ErrTourNotFound = fmt.Errorf("%w: tour", ErrNotFound)

	// ErrEmailExists indicates that an account with the given email already exists.
	// Emails compare case-insensitively.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrSupplierExists indicates that the account already owns a supplier profile.
	ErrSupplierExists = fmt.Errorf("%w: supplier", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // e.g. "account", "tour"
	Operation string // e.g. "create", "search"
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
