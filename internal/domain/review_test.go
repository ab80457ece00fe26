package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRedactedReviewerName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "Jane D."},
		{"Jane", "doe", "Jane d."},
		{"Jane", "", "Jane"},
		{"  Jane ", " Doe", "Jane D."},
		{"Zoë", "Ørsted", "Zoë Ø."},
		{"", "Doe", "D."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RedactedReviewerName(tt.first, tt.last), "%q %q", tt.first, tt.last)
	}
}

func TestReviewValidate(t *testing.T) {
	t.Parallel()

	base := Review{TourID: uuid.New(), CustomerID: uuid.New(), Rating: 3}
	assert.NoError(t, base.Validate())

	for _, rating := range []int{0, 6, -1} {
		r := base
		r.Rating = rating
		assert.ErrorIs(t, r.Validate(), ErrInvalidRating, "rating %d", rating)
	}
	for _, rating := range []int{MinRating, MaxRating} {
		r := base
		r.Rating = rating
		assert.NoError(t, r.Validate(), "rating %d", rating)
	}
}

func TestReviewWithAuthorView(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	r := ReviewWithAuthor{
		Review:          Review{ID: uuid.New(), Rating: 5, Comment: "Great views", CreatedAt: created},
		AuthorFirstName: "Jane",
		AuthorLastName:  "Doe",
	}

	v := r.View()
	assert.Equal(t, r.ID, v.ID)
	assert.Equal(t, 5, v.Rating)
	assert.Equal(t, "Great views", v.Comment)
	assert.Equal(t, created, v.CreatedAt)
	assert.Equal(t, "Jane D.", v.CustomerName)
}
