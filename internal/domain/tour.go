package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tour is a bookable experience offered by a supplier.
type Tour struct {
	ID              uuid.UUID       `json:"id"`
	SupplierID      uuid.UUID       `json:"supplier_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Capacity        int             `json:"capacity"`
	Location        string          `json:"location"`
	DurationMinutes int             `json:"duration_minutes"`
	ImageURL        string          `json:"image_url"`
	IsActive        bool            `json:"is_active"`
	IsApproved      bool            `json:"is_approved"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Eligible reports whether the tour may be shown to customers.
// Only active and approved tours are ever returned by the query engine.
func (t *Tour) Eligible() bool {
	return t.IsActive && t.IsApproved
}

// Validate checks the stored invariants of a tour.
func (t *Tour) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if t.SupplierID == uuid.Nil {
		return NewValidationError("supplier_id", "cannot be empty", ErrInvalidID)
	}
	if t.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	if t.Price.IsNegative() {
		return NewValidationError("price", "cannot be negative", ErrInvalidPrice)
	}
	if t.Capacity < 1 {
		return NewValidationError("capacity", "must be at least 1", ErrInvalidCapacity)
	}
	return nil
}

// RatingTally is the raw review aggregate of a tour: how many reviews exist and
// the sum of their ratings. The average is derived from it on every read.
type RatingTally struct {
	Count int
	Sum   int
}

// Average returns the mean rating, or 0 when the tour has no reviews.
func (r RatingTally) Average() float64 {
	return AverageRating(r.Sum, r.Count)
}

// AverageRating computes the arithmetic mean of count ratings summing to sum.
// Zero reviews yield the "no rating yet" sentinel 0.
func AverageRating(sum, count int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// TourListing is a tour row joined with its supplier name and review tally,
// as produced by the storage layer for list and search queries.
type TourListing struct {
	Tour         Tour
	SupplierName string
	Ratings      RatingTally
}

// TourSummary is the list/search view of an eligible tour.
type TourSummary struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Price           decimal.Decimal
	Location        string
	DurationMinutes int
	ImageURL        string
	Capacity        int
	SupplierName    string
	AverageRating   float64
	ReviewCount     int
	CreatedAt       time.Time
}

// Summarize derives the summary view, computing the average rating.
func (l *TourListing) Summarize() TourSummary {
	return TourSummary{
		ID:              l.Tour.ID,
		Title:           l.Tour.Title,
		Description:     l.Tour.Description,
		Price:           l.Tour.Price,
		Location:        l.Tour.Location,
		DurationMinutes: l.Tour.DurationMinutes,
		ImageURL:        l.Tour.ImageURL,
		Capacity:        l.Tour.Capacity,
		SupplierName:    l.SupplierName,
		AverageRating:   l.Ratings.Average(),
		ReviewCount:     l.Ratings.Count,
		CreatedAt:       l.Tour.CreatedAt,
	}
}

// SupplierContact is the public part of a supplier shown on a tour detail page.
type SupplierContact struct {
	BusinessName string
	Description  string
	PhoneNumber  string
}

// TourDetail is the detail view of a single eligible tour.
type TourDetail struct {
	TourSummary
	Supplier SupplierContact
	Reviews  []ReviewView
}
