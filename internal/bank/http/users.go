package http

import (
	"net/http"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/service"
	"github.com/aussiebroadwan/cardbank/pkg/banksdk"
	"github.com/aussiebroadwan/cardbank/pkg/httpx"
)

type UserHandler struct {
	UserService *service.UserService
}

// HandleMe returns the authenticated user.
//
//	@Summary		Current user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	banksdk.UserResponse
//	@Failure		401	{string}	string	"Unauthorized: Access requires authentication."
//	@Failure		403	{string}	string	"Forbidden: Account is locked."
//	@Router			/v1/me [get].
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	user, err := h.UserService.GetUserByID(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleLock locks an account. Tokens already issued to it stop working on
// their next request.
//
//	@Summary		Lock user
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"user id"
//	@Success		204
//	@Failure		403	{object}	banksdk.APIError	"Caller lacks ROLE_ADMIN or targets itself"
//	@Failure		404	{object}	banksdk.APIError	"Unknown user"
//	@Router			/v1/users/{id}/lock [post].
func (h *UserHandler) HandleLock(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, true)
}

// HandleUnlock unlocks an account.
//
//	@Summary		Unlock user
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"user id"
//	@Success		204
//	@Failure		403	{object}	banksdk.APIError	"Caller lacks ROLE_ADMIN"
//	@Failure		404	{object}	banksdk.APIError	"Unknown user"
//	@Router			/v1/users/{id}/unlock [post].
func (h *UserHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, false)
}

func (h *UserHandler) setLocked(w http.ResponseWriter, r *http.Request, locked bool) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.UserService.SetLocked(r.Context(), p.UserID, id, locked); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u domain.User) banksdk.UserResponse {
	return banksdk.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Locked:      u.Locked,
		CreatedAt:   u.CreatedAt,
	}
}
