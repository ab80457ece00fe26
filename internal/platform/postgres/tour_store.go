package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/platform/logger"
	"github.com/phrazzld/tours-api/internal/store"
)

var dialect = goqu.Dialect("postgres")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere, with the
// LIKE metacharacters in term taken literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// PostgresTourStore implements store.TourStore.
type PostgresTourStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTourStore creates a tour store. It needs a *sql.DB rather than a
// DBTX because detail reads open their own snapshot transaction.
func NewPostgresTourStore(db *sql.DB, logger *slog.Logger) *PostgresTourStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTourStore{
		db:     db,
		logger: logger.With(slog.String("component", "tour_store")),
	}
}

var _ store.TourStore = (*PostgresTourStore)(nil)

var listingColumns = []any{
	goqu.I("t.id"),
	goqu.I("t.supplier_id"),
	goqu.I("t.title"),
	goqu.I("t.description"),
	goqu.I("t.price"),
	goqu.I("t.capacity"),
	goqu.I("t.location"),
	goqu.I("t.duration_minutes"),
	goqu.I("t.image_url"),
	goqu.I("t.is_active"),
	goqu.I("t.is_approved"),
	goqu.I("t.created_at"),
	goqu.I("t.updated_at"),
	goqu.I("s.business_name"),
	goqu.COUNT(goqu.I("r.id")).As("review_count"),
	goqu.COALESCE(goqu.SUM(goqu.I("r.rating")), goqu.L("0")).As("rating_sum"),
}

// eligibleListings selects every active and approved tour with its supplier
// name and review tally in one statement.
func eligibleListings() *goqu.SelectDataset {
	return dialect.From(goqu.T("tours").As("t")).
		Prepared(true).
		Select(listingColumns...).
		Join(goqu.T("suppliers").As("s"), goqu.On(goqu.I("s.id").Eq(goqu.I("t.supplier_id")))).
		LeftJoin(goqu.T("reviews").As("r"), goqu.On(goqu.I("r.tour_id").Eq(goqu.I("t.id")))).
		Where(
			goqu.I("t.is_active").IsTrue(),
			goqu.I("t.is_approved").IsTrue(),
		).
		GroupBy(goqu.I("t.id"), goqu.I("s.id"))
}

func newestFirst(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.Order(goqu.I("t.created_at").Desc(), goqu.I("t.id").Asc())
}

// filterExpressions translates a TourFilter into WHERE clauses.
func filterExpressions(f store.TourFilter) []exp.Expression {
	var exprs []exp.Expression
	if term := strings.TrimSpace(f.Location); term != "" {
		exprs = append(exprs, goqu.I("t.location").ILike(containsPattern(term)))
	}
	if f.MinPrice != nil {
		exprs = append(exprs, goqu.I("t.price").Gte(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		exprs = append(exprs, goqu.I("t.price").Lte(*f.MaxPrice))
	}
	return exprs
}

// ListEligible implements store.TourStore.ListEligible.
func (s *PostgresTourStore) ListEligible(ctx context.Context) ([]domain.TourListing, error) {
	return s.queryListings(ctx, "list", newestFirst(eligibleListings()))
}

// SearchEligible implements store.TourStore.SearchEligible.
func (s *PostgresTourStore) SearchEligible(ctx context.Context, filter store.TourFilter) ([]domain.TourListing, error) {
	ds := eligibleListings()
	if exprs := filterExpressions(filter); len(exprs) > 0 {
		ds = ds.Where(exprs...)
	}
	return s.queryListings(ctx, "search", newestFirst(ds))
}

func (s *PostgresTourStore) queryListings(
	ctx context.Context,
	operation string,
	ds *goqu.SelectDataset,
) ([]domain.TourListing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, store.NewStoreError("tour", operation, "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tours",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("tour", operation, "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	listings := []domain.TourListing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			log.Error("failed to scan tour row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("tour", operation, "scan failed", err)
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("tour", operation, "row iteration failed", err)
	}

	log.Debug("tours retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(listings)))
	return listings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner, extra ...any) (*domain.TourListing, error) {
	var l domain.TourListing
	dest := []any{
		&l.Tour.ID,
		&l.Tour.SupplierID,
		&l.Tour.Title,
		&l.Tour.Description,
		&l.Tour.Price,
		&l.Tour.Capacity,
		&l.Tour.Location,
		&l.Tour.DurationMinutes,
		&l.Tour.ImageURL,
		&l.Tour.IsActive,
		&l.Tour.IsApproved,
		&l.Tour.CreatedAt,
		&l.Tour.UpdatedAt,
		&l.SupplierName,
		&l.Ratings.Count,
		&l.Ratings.Sum,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetEligible implements store.TourStore.GetEligible. The tour row and its
// reviews are read in one read-only repeatable-read transaction so the tally
// and the review list agree.
func (s *PostgresTourStore) GetEligible(ctx context.Context, id uuid.UUID) (*store.TourRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tourQuery, tourArgs, err := eligibleListings().
		SelectAppend(goqu.I("s.description"), goqu.I("s.phone_number")).
		Where(goqu.I("t.id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, store.NewStoreError("tour", "get", "failed to build query", err)
	}

	reviewQuery, reviewArgs, err := dialect.From(goqu.T("reviews").As("r")).
		Prepared(true).
		Select(
			goqu.I("r.id"),
			goqu.I("r.tour_id"),
			goqu.I("r.customer_id"),
			goqu.I("r.rating"),
			goqu.I("r.comment"),
			goqu.I("r.created_at"),
			goqu.I("a.first_name"),
			goqu.I("a.last_name"),
		).
		Join(goqu.T("accounts").As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("r.customer_id")))).
		Where(goqu.I("r.tour_id").Eq(id)).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, store.NewStoreError("tour", "get", "failed to build review query", err)
	}

	var record store.TourRecord
	err = store.RunInTransactionWithOptions(ctx, s.db, store.ReadSnapshot, func(ctx context.Context, tx *sql.Tx) error {
		listing, err := scanListing(
			tx.QueryRowContext(ctx, tourQuery, tourArgs...),
			&record.Supplier.Description,
			&record.Supplier.PhoneNumber,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return store.ErrTourNotFound
			}
			return store.NewStoreError("tour", "get", "query failed", err)
		}
		record.Listing = *listing
		record.Supplier.BusinessName = listing.SupplierName

		rows, err := tx.QueryContext(ctx, reviewQuery, reviewArgs...)
		if err != nil {
			return store.NewStoreError("review", "list", "query failed", err)
		}
		defer func() { _ = rows.Close() }()

		record.Reviews = []domain.ReviewWithAuthor{}
		for rows.Next() {
			var r domain.ReviewWithAuthor
			if err := rows.Scan(
				&r.ID,
				&r.TourID,
				&r.CustomerID,
				&r.Rating,
				&r.Comment,
				&r.CreatedAt,
				&r.AuthorFirstName,
				&r.AuthorLastName,
			); err != nil {
				return store.NewStoreError("review", "list", "scan failed", err)
			}
			record.Reviews = append(record.Reviews, r)
		}
		if err := rows.Err(); err != nil {
			return store.NewStoreError("review", "list", "row iteration failed", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrTourNotFound) {
			log.Error("failed to get tour",
				slog.String("tour_id", id.String()),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	return &record, nil
}
