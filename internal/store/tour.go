package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/shopspring/decimal"
)

// TourFilter holds the relational predicates of a search. Zero values mean
// "no constraint". The rating threshold is not part of it: ratings are derived
// from the returned tallies by the caller.
type TourFilter struct {
	// Location matches tours whose location contains it, ignoring case.
	Location string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// TourRecord is everything needed to render the detail view of one tour,
// read from a single snapshot.
type TourRecord struct {
	Listing  domain.TourListing
	Supplier domain.SupplierContact
	// Reviews are ordered newest first.
	Reviews []domain.ReviewWithAuthor
}

// TourStore defines read access to tours. Every method only ever sees tours
// that are both active and approved.
type TourStore interface {
	// ListEligible returns all eligible tours with supplier name and review
	// tally, newest first (ties broken by id).
	ListEligible(ctx context.Context) ([]domain.TourListing, error)

	// SearchEligible is ListEligible restricted by filter.
	SearchEligible(ctx context.Context, filter TourFilter) ([]domain.TourListing, error)

	// GetEligible returns one eligible tour with supplier contact and reviews.
	// Returns ErrTourNotFound if the tour does not exist or is not eligible.
	GetEligible(ctx context.Context, id uuid.UUID) (*TourRecord, error)
}
