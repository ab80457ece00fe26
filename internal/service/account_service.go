package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/platform/logger"
	"github.com/phrazzld/tours-api/internal/platform/metrics"
	"github.com/phrazzld/tours-api/internal/platform/tracing"
	"github.com/phrazzld/tours-api/internal/service/auth"
	"github.com/phrazzld/tours-api/internal/store"
	"go.opentelemetry.io/otel/attribute"
)

// RegisterInput is the data accepted by Register. The supplier fields are only
// used when Role is Supplier.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	// Role defaults to Customer when empty. Admin cannot self-register.
	Role string

	BusinessName        *string
	BusinessDescription *string
	PhoneNumber         *string
	Address             *string
}

// IdentitySummary describes the authenticated account in a login response.
type IdentitySummary struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	// Role is the first role granted to the account.
	Role  domain.Role
	Roles []domain.Role
}

// LoginResult is a freshly issued token and the identity it asserts.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  IdentitySummary
}

// AccountService registers accounts and authenticates them.
type AccountService interface {
	// Register creates an account with a single role and, for suppliers, an
	// unapproved supplier profile. Both are written in one transaction.
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)

	// Login verifies the credentials and issues an access token.
	// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// AccountServiceImpl implements AccountService.
type AccountServiceImpl struct {
	accountStore  store.AccountStore
	supplierStore store.SupplierStore
	hasher        auth.PasswordHasher
	policy        auth.PasswordPolicy
	jwtService    auth.JWTService
	db            *sql.DB
	logger        *slog.Logger
}

var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService creates a new AccountService.
func NewAccountService(
	accountStore store.AccountStore,
	supplierStore store.SupplierStore,
	hasher auth.PasswordHasher,
	policy auth.PasswordPolicy,
	jwtService auth.JWTService,
	db *sql.DB,
	logger *slog.Logger,
) *AccountServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountServiceImpl{
		accountStore:  accountStore,
		supplierStore: supplierStore,
		hasher:        hasher,
		policy:        policy,
		jwtService:    jwtService,
		db:            db,
		logger:        logger.With("component", "account_service"),
	}
}

// Register implements AccountService.
func (s *AccountServiceImpl) Register(ctx context.Context, in RegisterInput) (_ *domain.Account, err error) {
	ctx, span := tracing.StartSpan(ctx, "AccountService.Register")
	defer func() { tracing.EndSpan(span, err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	role, err := domain.ParseRole(strings.TrimSpace(in.Role))
	if err != nil {
		metrics.ObserveAuth("register", "invalid")
		return nil, err
	}
	if role == domain.RoleAdmin {
		metrics.ObserveAuth("register", "invalid")
		return nil, domain.NewValidationError("role", "must be Customer or Supplier", domain.ErrInvalidRole)
	}
	span.SetAttributes(attribute.String("account.role", string(role)))

	if err := s.policy.Check(in.Password); err != nil {
		metrics.ObserveAuth("register", "rejected")
		log.Debug("password rejected by policy", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCredentialRejected, err)
	}

	// malformed identities are rejected before paying for bcrypt
	if err := domain.ValidateIdentity(in.Email, in.FirstName, in.LastName); err != nil {
		metrics.ObserveAuth("register", "invalid")
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		metrics.ObserveAuth("register", "error")
		log.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	account, err := domain.NewAccount(in.Email, hash, in.FirstName, in.LastName, role)
	if err != nil {
		metrics.ObserveAuth("register", "invalid")
		return nil, err
	}

	var supplier *domain.Supplier
	if role == domain.RoleSupplier {
		supplier, err = domain.NewSupplier(account.ID, domain.SupplierProfile{
			BusinessName: in.BusinessName,
			Description:  in.BusinessDescription,
			PhoneNumber:  in.PhoneNumber,
			Address:      in.Address,
		})
		if err != nil {
			metrics.ObserveAuth("register", "invalid")
			return nil, err
		}
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.accountStore.WithTx(tx).Create(ctx, account); err != nil {
			return err
		}
		if supplier != nil {
			return s.supplierStore.WithTx(tx).Create(ctx, supplier)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			metrics.ObserveAuth("register", "duplicate")
			log.Debug("registration with existing email", "email", account.Email)
			return nil, ErrDuplicateIdentity
		case errors.Is(err, store.ErrInvalidEntity):
			metrics.ObserveAuth("register", "invalid")
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		default:
			metrics.ObserveAuth("register", "error")
			log.Error("failed to persist account", "error", err, "email", account.Email)
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
	}

	metrics.ObserveAuth("register", "success")
	log.Info("account registered",
		"account_id", account.ID,
		"role", role)
	return account, nil
}

// Login implements AccountService.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (_ *LoginResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "AccountService.Login")
	defer func() { tracing.EndSpan(span, err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accountStore.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.hasher.CompareDummy(password)
			metrics.ObserveAuth("login", "rejected")
			return nil, ErrInvalidCredentials
		}
		metrics.ObserveAuth("login", "error")
		log.Error("failed to look up account", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		metrics.ObserveAuth("login", "rejected")
		log.Debug("password mismatch", "account_id", account.ID)
		return nil, ErrInvalidCredentials
	}

	issued, err := s.jwtService.GenerateToken(ctx, account)
	if err != nil {
		metrics.ObserveAuth("login", "error")
		log.Error("failed to issue token", "error", err, "account_id", account.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	span.SetAttributes(attribute.String("account.id", account.ID.String()))
	metrics.ObserveAuth("login", "success")
	log.Info("account logged in", "account_id", account.ID)

	return &LoginResult{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Identity: IdentitySummary{
			ID:        account.ID,
			Email:     account.Email,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Role:      account.PrimaryRole(),
			Roles:     account.Roles,
		},
	}, nil
}
