package http

import (
	"net/http"

	"github.com/aussiebroadwan/cardbank/internal/bank/service"
	"github.com/aussiebroadwan/cardbank/pkg/banksdk"
	"github.com/aussiebroadwan/cardbank/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister creates a user account.
//
//	@Summary		Register
//	@Description	Creates a ROLE_USER account. Emails are case insensitive and unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		banksdk.RegisterRequest	true	"account details"
//	@Success		201		{object}	banksdk.UserResponse
//	@Failure		400		{object}	banksdk.APIError	"Validation failed"
//	@Failure		409		{object}	banksdk.APIError	"Email already registered"
//	@Failure		429		{object}	banksdk.APIError	"Rate limit exceeded"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		banksdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleLogin exchanges credentials for a bearer token.
//
//	@Summary		Login
//	@Description	Verifies the credentials and returns an HS512 bearer token whose subject is the user's email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		banksdk.LoginRequest	true	"credentials"
//	@Success		200		{object}	banksdk.TokenResponse
//	@Failure		400		{object}	banksdk.APIError	"Validation failed"
//	@Failure		401		{object}	banksdk.APIError	"Invalid email or password"
//	@Failure		403		{object}	banksdk.APIError	"Account is locked"
//	@Failure		429		{object}	banksdk.APIError	"Rate limit exceeded"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		banksdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, banksdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.AuthService.TokenLifetime().Seconds()),
	})
}
