package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/platform/logger"
	"github.com/phrazzld/tours-api/internal/platform/metrics"
	"github.com/phrazzld/tours-api/internal/platform/tracing"
	"github.com/phrazzld/tours-api/internal/store"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// SearchCriteria are the optional filters of SearchTours. Nil and empty
// fields mean "no constraint".
type SearchCriteria struct {
	Location  string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	MinRating *float64
}

// Validate rejects negative prices, an inverted price range and a rating
// threshold outside [0, 5].
func (c SearchCriteria) Validate() error {
	if c.MinPrice != nil && c.MinPrice.IsNegative() {
		return domain.NewValidationError("minPrice", "cannot be negative", domain.ErrInvalidPrice)
	}
	if c.MaxPrice != nil && c.MaxPrice.IsNegative() {
		return domain.NewValidationError("maxPrice", "cannot be negative", domain.ErrInvalidPrice)
	}
	if c.MinPrice != nil && c.MaxPrice != nil && c.MinPrice.GreaterThan(*c.MaxPrice) {
		return domain.NewValidationError("minPrice", "cannot exceed maxPrice", domain.ErrValidation)
	}
	if c.MinRating != nil && (math.IsNaN(*c.MinRating) || *c.MinRating < 0 || *c.MinRating > domain.MaxRating) {
		return domain.NewValidationError("minRating", "must be between 0 and 5", domain.ErrInvalidRating)
	}
	return nil
}

// TourQueryService answers read-only questions about eligible tours.
// Average ratings are derived from the review tallies on every call.
type TourQueryService interface {
	// ListTours returns every eligible tour, newest first.
	ListTours(ctx context.Context) ([]domain.TourSummary, error)

	// GetTour returns the detail view of one eligible tour.
	// Unknown and non-eligible tours yield ErrTourNotFound.
	GetTour(ctx context.Context, id uuid.UUID) (*domain.TourDetail, error)

	// SearchTours filters eligible tours by location and price in storage, then
	// by average rating in memory, and orders the result by average rating
	// descending. Tours with equal averages keep the newest-first order.
	SearchTours(ctx context.Context, criteria SearchCriteria) ([]domain.TourSummary, error)
}

// TourQueryServiceImpl implements TourQueryService.
type TourQueryServiceImpl struct {
	tourStore store.TourStore
	logger    *slog.Logger
}

var _ TourQueryService = (*TourQueryServiceImpl)(nil)

// NewTourQueryService creates a new TourQueryService.
func NewTourQueryService(tourStore store.TourStore, logger *slog.Logger) *TourQueryServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &TourQueryServiceImpl{
		tourStore: tourStore,
		logger:    logger.With("component", "tour_query_service"),
	}
}

// ListTours implements TourQueryService.
func (s *TourQueryServiceImpl) ListTours(ctx context.Context) (_ []domain.TourSummary, err error) {
	ctx, span := tracing.StartSpan(ctx, "TourQueryService.ListTours")
	defer func() { tracing.EndSpan(span, err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	listings, err := s.tourStore.ListEligible(ctx)
	if err != nil {
		log.Error("failed to list tours", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	summaries := summarize(listings)
	span.SetAttributes(attribute.Int("tours.count", len(summaries)))
	metrics.ObserveQuery("list", len(summaries))
	log.Debug("listed tours", "count", len(summaries))
	return summaries, nil
}

// GetTour implements TourQueryService.
func (s *TourQueryServiceImpl) GetTour(ctx context.Context, id uuid.UUID) (_ *domain.TourDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, "TourQueryService.GetTour")
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(attribute.String("tour.id", id.String()))
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := s.tourStore.GetEligible(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTourNotFound) || errors.Is(err, sql.ErrNoRows) {
			log.Debug("tour not found", "tour_id", id)
			metrics.ObserveQuery("get", 0)
			return nil, ErrTourNotFound
		}
		log.Error("failed to get tour", "error", err, "tour_id", id)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	reviews := make([]domain.ReviewView, 0, len(record.Reviews))
	for i := range record.Reviews {
		reviews = append(reviews, record.Reviews[i].View())
	}

	metrics.ObserveQuery("get", 1)
	return &domain.TourDetail{
		TourSummary: record.Listing.Summarize(),
		Supplier:    record.Supplier,
		Reviews:     reviews,
	}, nil
}

// SearchTours implements TourQueryService.
func (s *TourQueryServiceImpl) SearchTours(ctx context.Context, criteria SearchCriteria) (_ []domain.TourSummary, err error) {
	ctx, span := tracing.StartSpan(ctx, "TourQueryService.SearchTours")
	defer func() { tracing.EndSpan(span, err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	listings, err := s.tourStore.SearchEligible(ctx, store.TourFilter{
		Location: criteria.Location,
		MinPrice: criteria.MinPrice,
		MaxPrice: criteria.MaxPrice,
	})
	if err != nil {
		log.Error("failed to search tours", "error", err, "location", criteria.Location)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	summaries := summarize(listings)
	matched := len(summaries)
	if criteria.MinRating != nil {
		summaries = filterByRating(summaries, *criteria.MinRating)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].AverageRating > summaries[j].AverageRating
	})

	span.SetAttributes(
		attribute.Int("tours.matched", matched),
		attribute.Int("tours.count", len(summaries)),
	)
	metrics.ObserveRatingFiltered(matched - len(summaries))
	metrics.ObserveQuery("search", len(summaries))
	log.Debug("searched tours",
		"matched", matched,
		"returned", len(summaries))
	return summaries, nil
}

func summarize(listings []domain.TourListing) []domain.TourSummary {
	summaries := make([]domain.TourSummary, 0, len(listings))
	for i := range listings {
		summaries = append(summaries, listings[i].Summarize())
	}
	return summaries
}

// filterByRating keeps tours whose average is at least threshold, preserving order.
// Unrated tours average 0, so they only pass a threshold of 0.
func filterByRating(summaries []domain.TourSummary, threshold float64) []domain.TourSummary {
	kept := summaries[:0]
	for _, t := range summaries {
		if t.AverageRating >= threshold {
			kept = append(kept, t)
		}
	}
	return kept
}
