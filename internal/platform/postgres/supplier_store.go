package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/platform/logger"
	"github.com/phrazzld/tours-api/internal/store"
)

// PostgresSupplierStore implements store.SupplierStore.
type PostgresSupplierStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSupplierStore creates a supplier store over a connection or transaction.
func NewPostgresSupplierStore(db store.DBTX, logger *slog.Logger) *PostgresSupplierStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSupplierStore{
		db:     db,
		logger: logger.With(slog.String("component", "supplier_store")),
	}
}

var _ store.SupplierStore = (*PostgresSupplierStore)(nil)

// WithTx implements store.SupplierStore.WithTx.
func (s *PostgresSupplierStore) WithTx(tx *sql.Tx) store.SupplierStore {
	return &PostgresSupplierStore{db: tx, logger: s.logger}
}

// Create implements store.SupplierStore.Create.
func (s *PostgresSupplierStore) Create(ctx context.Context, supplier *domain.Supplier) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO suppliers
			(id, account_id, business_name, description, phone_number, address, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		supplier.ID,
		supplier.AccountID,
		supplier.BusinessName,
		supplier.Description,
		supplier.PhoneNumber,
		supplier.Address,
		supplier.IsApproved,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrSupplierExists) {
			return store.ErrSupplierExists
		}
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("supplier rejected by constraint",
				slog.String("error", err.Error()),
				slog.String("account_id", supplier.AccountID.String()))
			return fmt.Errorf("%w: account %s", mapped, supplier.AccountID)
		}
		log.Error("failed to insert supplier",
			slog.String("error", err.Error()),
			slog.String("supplier_id", supplier.ID.String()))
		return store.NewStoreError("supplier", "create", "insert failed", mapped)
	}

	log.Info("supplier profile created",
		slog.String("supplier_id", supplier.ID.String()),
		slog.String("account_id", supplier.AccountID.String()))
	return nil
}
