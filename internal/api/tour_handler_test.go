package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/api/shared"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/mocks"
	"github.com/phrazzld/tours-api/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tourRouter(h *TourHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/tours", h.List)
	r.Get("/api/tours/search", h.Search)
	r.Get("/api/tours/{id}", h.Get)
	return r
}

func summary(title, price string, avg float64) domain.TourSummary {
	return domain.TourSummary{
		ID:            uuid.New(),
		Title:         title,
		Price:         decimal.RequireFromString(price),
		Location:      "Scottsdale, AZ",
		SupplierName:  "Desert Jeep Co",
		AverageRating: avg,
		CreatedAt:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTourHandler_List(t *testing.T) {
	t.Parallel()

	tours := new(mocks.MockTourQueryService)
	tours.On("ListTours", mock.Anything).Return([]domain.TourSummary{
		summary("Sunset Jeep", "80", 4.5),
	}, nil).Once()

	rec := httptest.NewRecorder()
	tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tours", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":80.00`)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Sunset Jeep", body[0]["title"])
	assert.Equal(t, 4.5, body[0]["average_rating"])
	assert.Equal(t, "Desert Jeep Co", body[0]["supplier_name"])
}

func TestTourHandler_ListEmpty(t *testing.T) {
	t.Parallel()

	tours := new(mocks.MockTourQueryService)
	tours.On("ListTours", mock.Anything).Return([]domain.TourSummary{}, nil).Once()

	rec := httptest.NewRecorder()
	tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tours", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTourHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("detail", func(t *testing.T) {
		t.Parallel()
		tours := new(mocks.MockTourQueryService)
		s := summary("Sunset Jeep", "80.5", 4)
		reviewID := uuid.New()
		tours.On("GetTour", mock.Anything, s.ID).Return(&domain.TourDetail{
			TourSummary: s,
			Supplier:    domain.SupplierContact{BusinessName: "Desert Jeep Co", PhoneNumber: "480-555-0100"},
			Reviews: []domain.ReviewView{
				{ID: reviewID, Rating: 4, Comment: "Fun", CustomerName: "Jane D."},
			},
		}, nil).Once()

		rec := httptest.NewRecorder()
		tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tours/"+s.ID.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"price":80.50`)
		var body TourDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, s.ID, body.ID)
		assert.Equal(t, "480-555-0100", body.Supplier.PhoneNumber)
		require.Len(t, body.Reviews, 1)
		assert.Equal(t, "Jane D.", body.Reviews[0].CustomerName)
		assert.Equal(t, reviewID, body.Reviews[0].ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		tours := new(mocks.MockTourQueryService)
		id := uuid.New()
		tours.On("GetTour", mock.Anything, id).Return(nil, service.ErrTourNotFound).Once()

		rec := httptest.NewRecorder()
		tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tours/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, shared.CodeNotFound, decodeError(t, rec).Code)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		t.Parallel()
		tours := new(mocks.MockTourQueryService)

		rec := httptest.NewRecorder()
		tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tours/not-a-uuid", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		tours.AssertNotCalled(t, "GetTour", mock.Anything, mock.Anything)
	})
}

func TestTourHandler_Search(t *testing.T) {
	t.Parallel()

	t.Run("parses all parameters", func(t *testing.T) {
		t.Parallel()
		tours := new(mocks.MockTourQueryService)
		tours.On("SearchTours", mock.Anything, mock.MatchedBy(func(c service.SearchCriteria) bool {
			return c.Location == "scottsdale" &&
				c.MinPrice != nil && c.MinPrice.Equal(decimal.NewFromInt(50)) &&
				c.MaxPrice != nil && c.MaxPrice.Equal(decimal.RequireFromString("100.5")) &&
				c.MinRating != nil && *c.MinRating == 4
		})).Return([]domain.TourSummary{summary("Sunset Jeep", "80", 4.5)}, nil).Once()

		rec := httptest.NewRecorder()
		tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/api/tours/search?location=scottsdale&minPrice=50&maxPrice=100.5&minRating=4", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		tours.AssertExpectations(t)
	})

	t.Run("blank parameters are absent", func(t *testing.T) {
		t.Parallel()
		tours := new(mocks.MockTourQueryService)
		tours.On("SearchTours", mock.Anything, service.SearchCriteria{}).Return([]domain.TourSummary{}, nil).Once()

		rec := httptest.NewRecorder()
		tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/api/tours/search?location=&minPrice=&minRating=", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		tours.AssertExpectations(t)
	})

	bad := []string{
		"/api/tours/search?minPrice=cheap",
		"/api/tours/search?maxPrice=1,000",
		"/api/tours/search?minRating=high",
		"/api/tours/search?minRating=NaN",
	}
	for _, target := range bad {
		t.Run(target, func(t *testing.T) {
			t.Parallel()
			tours := new(mocks.MockTourQueryService)

			rec := httptest.NewRecorder()
			tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, shared.CodeInvalidRequest, decodeError(t, rec).Code)
			tours.AssertNotCalled(t, "SearchTours", mock.Anything, mock.Anything)
		})
	}

	t.Run("service validation error", func(t *testing.T) {
		t.Parallel()
		tours := new(mocks.MockTourQueryService)
		tours.On("SearchTours", mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("minPrice", "cannot exceed maxPrice", domain.ErrValidation)).Once()

		rec := httptest.NewRecorder()
		tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/api/tours/search?minPrice=100&maxPrice=50", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid minPrice: cannot exceed maxPrice", decodeError(t, rec).Error)
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()
		tours := new(mocks.MockTourQueryService)
		tours.On("SearchTours", mock.Anything, mock.Anything).
			Return(nil, errors.Join(service.ErrStorageUnavailable, errors.New("timeout"))).Once()

		rec := httptest.NewRecorder()
		tourRouter(NewTourHandler(tours)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tours/search", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "timeout")
	})
}
