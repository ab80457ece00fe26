package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is an authorization role held by an account.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleSupplier Role = "Supplier"
	RoleAdmin    Role = "Admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a role name to a Role. An empty name yields RoleCustomer,
// which is the default for self-registration.
func ParseRole(name string) (Role, error) {
	if name == "" {
		return RoleCustomer, nil
	}
	r := Role(name)
	if !r.Valid() {
		return "", NewValidationError("role", "is not a known role", ErrInvalidRole)
	}
	return r, nil
}

// Account represents a registered identity of the marketplace.
// An account holds one or more roles; suppliers additionally own a Supplier profile.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never exposed
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAccount builds an account with a fresh ID and timestamps.
// The password hash is supplied by the caller; plaintext never reaches the domain.
func NewAccount(email, passwordHash, firstName, lastName string, role Role) (*Account, error) {
	now := time.Now().UTC()
	a := &Account{
		ID:           uuid.New(),
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Roles:        []Role{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the account invariants.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := ValidateIdentity(a.Email, a.FirstName, a.LastName); err != nil {
		return err
	}
	if a.PasswordHash == "" {
		return NewValidationError("password", "hash cannot be empty", ErrValidation)
	}
	if len(a.Roles) == 0 {
		return NewValidationError("roles", "cannot be empty", ErrInvalidRole)
	}
	for _, r := range a.Roles {
		if !r.Valid() {
			return NewValidationError("roles", "contains an unknown role", ErrInvalidRole)
		}
	}
	return nil
}

// ValidateIdentity checks the email and name fields of an account. Inputs are
// trimmed the same way NewAccount trims them.
func ValidateIdentity(email, firstName, lastName string) error {
	if !validEmailFormat(strings.TrimSpace(email)) {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	if strings.TrimSpace(firstName) == "" {
		return NewValidationError("first_name", "cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(lastName) == "" {
		return NewValidationError("last_name", "cannot be empty", ErrValidation)
	}
	return nil
}

// HasRole reports whether the account holds role r.
func (a *Account) HasRole(r Role) bool {
	for _, held := range a.Roles {
		if held == r {
			return true
		}
	}
	return false
}

// PrimaryRole returns the first role held, or "" if none.
func (a *Account) PrimaryRole() Role {
	if len(a.Roles) == 0 {
		return ""
	}
	return a.Roles[0]
}

// DisplayName is the full name used in token claims.
func (a *Account) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// validEmailFormat is a structural check only: a non-empty local part, an '@',
// and a dotted domain. Request validation applies the stricter RFC check first.
func validEmailFormat(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
