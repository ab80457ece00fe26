package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewAccount(t *testing.T) {
	account, err := NewAccount(" jane@example.com ", "hash", "Jane", "Doe", RoleSupplier)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if account.Email != "jane@example.com" {
		t.Errorf("Expected trimmed email, got %q", account.Email)
	}

	if len(account.Roles) != 1 || account.Roles[0] != RoleSupplier {
		t.Errorf("Expected roles [Supplier], got %v", account.Roles)
	}

	if account.CreatedAt.IsZero() || account.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	if account.DisplayName() != "Jane Doe" {
		t.Errorf("Expected display name %q, got %q", "Jane Doe", account.DisplayName())
	}
}

func TestAccountValidate(t *testing.T) {
	valid := func() Account {
		return Account{
			ID:           uuid.New(),
			Email:        "jane@example.com",
			PasswordHash: "hash",
			FirstName:    "Jane",
			LastName:     "Doe",
			Roles:        []Role{RoleCustomer},
		}
	}

	tests := []struct {
		name    string
		mutate  func(a *Account)
		wantErr error
	}{
		{"valid", func(a *Account) {}, nil},
		{"nil id", func(a *Account) { a.ID = uuid.Nil }, ErrInvalidID},
		{"bad email", func(a *Account) { a.Email = "not-an-email" }, ErrInvalidEmail},
		{"email without tld", func(a *Account) { a.Email = "jane@example" }, ErrInvalidEmail},
		{"missing hash", func(a *Account) { a.PasswordHash = "" }, ErrValidation},
		{"missing first name", func(a *Account) { a.FirstName = "" }, ErrValidation},
		{"missing last name", func(a *Account) { a.LastName = "" }, ErrValidation},
		{"no roles", func(a *Account) { a.Roles = nil }, ErrInvalidRole},
		{"unknown role", func(a *Account) { a.Roles = []Role{"Guide"} }, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected error to match ErrValidation, got %v", err)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("")
	if err != nil || role != RoleCustomer {
		t.Errorf("Expected default Customer role, got %q (%v)", role, err)
	}

	role, err = ParseRole("Supplier")
	if err != nil || role != RoleSupplier {
		t.Errorf("Expected Supplier role, got %q (%v)", role, err)
	}

	if _, err := ParseRole("supplier"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("Expected role names to be case-sensitive, got %v", err)
	}
}

func TestAccountRoles(t *testing.T) {
	a := Account{Roles: []Role{RoleSupplier, RoleCustomer}}

	if !a.HasRole(RoleCustomer) {
		t.Error("Expected account to hold Customer role")
	}
	if a.HasRole(RoleAdmin) {
		t.Error("Expected account not to hold Admin role")
	}
	if a.PrimaryRole() != RoleSupplier {
		t.Errorf("Expected primary role Supplier, got %q", a.PrimaryRole())
	}
	if (&Account{}).PrimaryRole() != "" {
		t.Error("Expected empty primary role for account without roles")
	}
}

func TestValidateIdentity(t *testing.T) {
	if err := ValidateIdentity(" jane@example.com ", "Jane", "Doe"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tests := []struct {
		name               string
		email, first, last string
		wantErr            error
	}{
		{"malformed email", "jane-at-example", "Jane", "Doe", ErrInvalidEmail},
		{"blank first name", "jane@example.com", " ", "Doe", ErrValidation},
		{"missing last name", "jane@example.com", "Jane", "", ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateIdentity(tc.email, tc.first, tc.last)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
