package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/platform/logger"
	"github.com/phrazzld/tours-api/internal/store"
)

// PostgresAccountStore implements store.AccountStore.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates an account store over a connection or transaction.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

var _ store.AccountStore = (*PostgresAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx.
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{db: tx, logger: s.logger}
}

// Create implements store.AccountStore.Create.
// The account row and its roles are written with separate statements; callers
// that need atomicity run Create inside a transaction.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrEmailExists) {
			log.Debug("account email already registered",
				slog.String("account_id", account.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to insert account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return store.NewStoreError("account", "create", "insert failed", mapped)
	}

	for i, role := range account.Roles {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO account_roles (account_id, role, position) VALUES ($1, $2, $3)`,
			account.ID, string(role), i,
		)
		if err != nil {
			log.Error("failed to insert account role",
				slog.String("error", err.Error()),
				slog.String("account_id", account.ID.String()),
				slog.String("role", string(role)))
			return store.NewStoreError("account", "create", "role insert failed", MapError(err))
		}
	}

	log.Info("account created",
		slog.String("account_id", account.ID.String()),
		slog.String("role", string(account.PrimaryRole())))
	return nil
}

// GetByEmail implements store.AccountStore.GetByEmail.
func (s *PostgresAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		account domain.Account
		roles   string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT a.id, a.email, a.password_hash, a.first_name, a.last_name, a.created_at, a.updated_at,
		       COALESCE(string_agg(r.role, ',' ORDER BY r.position), '')
		FROM accounts a
		LEFT JOIN account_roles r ON r.account_id = a.id
		WHERE lower(a.email) = lower($1)
		GROUP BY a.id`,
		strings.TrimSpace(email),
	).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
		&account.CreatedAt,
		&account.UpdatedAt,
		&roles,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by email", slog.String("error", err.Error()))
		return nil, store.NewStoreError("account", "get", "query failed", err)
	}

	account.Roles = splitRoles(roles)
	return &account, nil
}

func splitRoles(joined string) []domain.Role {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	roles := make([]domain.Role, 0, len(parts))
	for _, p := range parts {
		roles = append(roles, domain.Role(p))
	}
	return roles
}
