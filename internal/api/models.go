package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tours-api/internal/domain"
	"github.com/phrazzld/tours-api/internal/service"
	"github.com/phrazzld/tours-api/internal/service/auth"
	"github.com/shopspring/decimal"
)

// RegisterRequest defines the payload for the registration endpoint.
// The password policy is enforced by the service, not by these tags.
type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email,max=254"`
	Password  string `json:"password"   validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Role      string `json:"role"       validate:"omitempty,oneof=Customer Supplier"`

	// Supplier profile, only used when Role is Supplier.
	BusinessName        *string `json:"business_name"        validate:"omitempty,max=200"`
	BusinessDescription *string `json:"business_description" validate:"omitempty,max=2000"`
	PhoneNumber         *string `json:"phone_number"         validate:"omitempty,max=32"`
	Address             *string `json:"address"              validate:"omitempty,max=500"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
}

// LoginRequest defines the payload for the login endpoint. Email format is
// not checked here: a malformed email is just another unknown account.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the identity summary returned by login.
type UserResponse struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Role      domain.Role   `json:"role"`
	Roles     []domain.Role `json:"roles"`
}

// LoginResponse carries the access token and the identity it asserts.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"` // RFC 3339
	User      UserResponse `json:"user"`
}

func newLoginResponse(res *service.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339),
		User: UserResponse{
			ID:        res.Identity.ID,
			Email:     res.Identity.Email,
			FirstName: res.Identity.FirstName,
			LastName:  res.Identity.LastName,
			Role:      res.Identity.Role,
			Roles:     res.Identity.Roles,
		},
	}
}

// MeResponse is the identity asserted by the caller's token.
type MeResponse struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Roles     []domain.Role `json:"roles"`
	ExpiresAt string        `json:"expires_at"`
}

func newMeResponse(c *auth.Claims) MeResponse {
	return MeResponse{
		ID:        c.AccountID,
		Email:     c.Email,
		Name:      c.Name,
		Roles:     c.Roles,
		ExpiresAt: c.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// TourSummaryResponse is one entry of the list and search results.
type TourSummaryResponse struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Price           json.Number `json:"price"`
	Location        string      `json:"location"`
	DurationMinutes int         `json:"duration_minutes"`
	ImageURL        string      `json:"image_url"`
	Capacity        int         `json:"capacity"`
	SupplierName    string      `json:"supplier_name"`
	AverageRating   float64     `json:"average_rating"`
	ReviewCount     int         `json:"review_count"`
	CreatedAt       time.Time   `json:"created_at"`
}

// SupplierResponse is the public supplier contact on a tour detail.
type SupplierResponse struct {
	BusinessName string `json:"business_name"`
	Description  string `json:"description"`
	PhoneNumber  string `json:"phone_number"`
}

// ReviewResponse is a review with the author's name redacted.
type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customer_name"`
}

// TourDetailResponse is the single-tour view.
type TourDetailResponse struct {
	TourSummaryResponse
	Supplier SupplierResponse `json:"supplier"`
	Reviews  []ReviewResponse `json:"reviews"`
}

// price renders a decimal as a JSON number with exactly two decimals.
func price(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func newTourSummaryResponse(t domain.TourSummary) TourSummaryResponse {
	return TourSummaryResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Price:           price(t.Price),
		Location:        t.Location,
		DurationMinutes: t.DurationMinutes,
		ImageURL:        t.ImageURL,
		Capacity:        t.Capacity,
		SupplierName:    t.SupplierName,
		AverageRating:   t.AverageRating,
		ReviewCount:     t.ReviewCount,
		CreatedAt:       t.CreatedAt,
	}
}

func newTourSummaryResponses(tours []domain.TourSummary) []TourSummaryResponse {
	out := make([]TourSummaryResponse, 0, len(tours))
	for _, t := range tours {
		out = append(out, newTourSummaryResponse(t))
	}
	return out
}

func newTourDetailResponse(d *domain.TourDetail) TourDetailResponse {
	reviews := make([]ReviewResponse, 0, len(d.Reviews))
	for _, rv := range d.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:           rv.ID,
			Rating:       rv.Rating,
			Comment:      rv.Comment,
			CreatedAt:    rv.CreatedAt,
			CustomerName: rv.CustomerName,
		})
	}
	return TourDetailResponse{
		TourSummaryResponse: newTourSummaryResponse(d.TourSummary),
		Supplier: SupplierResponse{
			BusinessName: d.Supplier.BusinessName,
			Description:  d.Supplier.Description,
			PhoneNumber:  d.Supplier.PhoneNumber,
		},
		Reviews: reviews,
	}
}
