package api

import (
	"net/http"

	"github.com/phrazzld/tours-api/internal/api/shared"
	"github.com/phrazzld/tours-api/internal/service"
)

// AuthHandler handles registration, login and identity requests.
type AuthHandler struct {
	accounts service.AccountService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.CodeInvalidRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.CodeInvalidRequest, shared.ValidationMessage(err))
		return
	}

	account, err := h.accounts.Register(r.Context(), service.RegisterInput{
		Email:               req.Email,
		Password:            req.Password,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Role:                req.Role,
		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,
		PhoneNumber:         req.PhoneNumber,
		Address:             req.Address,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RegisterResponse{
		Message: "Registration successful",
		UserID:  account.ID,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.CodeInvalidRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.CodeInvalidRequest, shared.ValidationMessage(err))
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newLoginResponse(result))
}

// Me handles GET /api/auth/me. It only reads the token claims.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := shared.ClaimsFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, shared.CodeUnauthorized, "Authentication required")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newMeResponse(claims))
}
