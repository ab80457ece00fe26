package api

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/api/shared"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/service"
	"github.com/shopspring/decimal"
)

// TourHandler serves the read-only tour endpoints.
type TourHandler struct {
	tours service.TourQueryService
}

// NewTourHandler creates a new TourHandler.
func NewTourHandler(tours service.TourQueryService) *TourHandler {
	return &TourHandler{tours: tours}
}

// List handles GET /api/tours.
func (h *TourHandler) List(w http.ResponseWriter, r *http.Request) {
	tours, err := h.tours.ListTours(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newTourSummaryResponses(tours))
}

// Get handles GET /api/tours/{id}. An id that is not a UUID cannot name an
// eligible tour and is reported as not found.
func (h *TourHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, shared.CodeNotFound, "Tour not found")
		return
	}

	detail, err := h.tours.GetTour(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newTourDetailResponse(detail))
}

// Search handles GET /api/tours/search?location=&minPrice=&maxPrice=&minRating=.
func (h *TourHandler) Search(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseSearchCriteria(r.URL.Query())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	tours, err := h.tours.SearchTours(r.Context(), criteria)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newTourSummaryResponses(tours))
}

// parseSearchCriteria reads the optional search parameters. Blank values are
// treated as absent; unparsable numbers are validation errors.
func parseSearchCriteria(q url.Values) (service.SearchCriteria, error) {
	var c service.SearchCriteria
	c.Location = strings.TrimSpace(q.Get("location"))

	var err error
	if c.MinPrice, err = parsePrice(q, "minPrice"); err != nil {
		return c, err
	}
	if c.MaxPrice, err = parsePrice(q, "maxPrice"); err != nil {
		return c, err
	}

	if raw := strings.TrimSpace(q.Get("minRating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
			return c, domain.NewValidationError("minRating", "must be a number", domain.ErrValidation)
		}
		c.MinRating = &rating
	}
	return c, nil
}

func parsePrice(q url.Values, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a number", domain.ErrValidation)
	}
	return &d, nil
}
