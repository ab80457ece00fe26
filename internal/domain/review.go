package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer's rating of a tour.
// Nothing prevents a customer from reviewing the same tour more than once.
type Review struct {
	ID         uuid.UUID `json:"id"`
	TourID     uuid.UUID `json:"tour_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate checks the review invariants.
func (r *Review) Validate() error {
	if r.TourID == uuid.Nil {
		return NewValidationError("tour_id", "cannot be empty", ErrInvalidID)
	}
	if r.CustomerID == uuid.Nil {
		return NewValidationError("customer_id", "cannot be empty", ErrInvalidID)
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return NewValidationError("rating", "must be between 1 and 5", ErrInvalidRating)
	}
	return nil
}

// ReviewWithAuthor is a review joined with its author's name, before redaction.
type ReviewWithAuthor struct {
	Review
	AuthorFirstName string
	AuthorLastName  string
}

// ReviewView is a review as shown publicly.
type ReviewView struct {
	ID           uuid.UUID
	Rating       int
	Comment      string
	CreatedAt    time.Time
	CustomerName string
}

// View redacts the author's name for public display.
func (r *ReviewWithAuthor) View() ReviewView {
	return ReviewView{
		ID:           r.ID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		CustomerName: RedactedReviewerName(r.AuthorFirstName, r.AuthorLastName),
	}
}

// RedactedReviewerName keeps the first name and reduces the last name to its
// initial, e.g. "Jane Doe" becomes "Jane D.".
func RedactedReviewerName(firstName, lastName string) string {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return firstName
	}
	initial, _ := utf8.DecodeRuneInString(lastName)
	if firstName == "" {
		return string(initial) + "."
	}
	return firstName + " " + string(initial) + "."
}
