package http

import (
	"net/http"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/service"
	"github.com/aussiebroadwan/cardbank/pkg/banksdk"
	"github.com/aussiebroadwan/cardbank/pkg/httpx"
)

type CardHandler struct {
	CardService *service.CardService
}

// HandleCreate stores a card for the caller.
//
//	@Summary		Store card
//	@Description	Encrypts and stores a card. Without a number a Luhn-valid one is generated.
//	@Tags			Cards
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		banksdk.CreateCardRequest	true	"card"
//	@Success		201		{object}	banksdk.CardResponse
//	@Failure		400		{object}	banksdk.APIError	"Validation failed"
//	@Failure		401		{string}	string				"Unauthorized: Access requires authentication."
//	@Failure		409		{object}	banksdk.APIError	"Card already stored"
//	@Router			/v1/cards [post].
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	var req createCardRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		banksdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	card, err := h.CardService.Create(r.Context(), p.UserID, req.HolderName, req.Number)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCardResponse(card))
}

// HandleList lists the caller's cards.
//
//	@Summary		List cards
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	banksdk.CardListResponse
//	@Failure		401	{string}	string	"Unauthorized: Access requires authentication."
//	@Router			/v1/cards [get].
func (h *CardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	cards, err := h.CardService.List(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := banksdk.CardListResponse{Cards: make([]banksdk.CardResponse, 0, len(cards))}
	for _, c := range cards {
		resp.Cards = append(resp.Cards, toCardResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns one of the caller's cards.
//
//	@Summary		Get card
//	@Tags			Cards
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"card id"
//	@Success		200	{object}	banksdk.CardResponse
//	@Failure		401	{string}	string				"Unauthorized: Access requires authentication."
//	@Failure		404	{object}	banksdk.APIError	"Unknown card"
//	@Router			/v1/cards/{id} [get].
func (h *CardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	card, err := h.CardService.Get(r.Context(), p.UserID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCardResponse(card))
}

func toCardResponse(c domain.MaskedCard) banksdk.CardResponse {
	return banksdk.CardResponse{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		HolderName:   c.HolderName,
		MaskedNumber: c.MaskedNumber,
		CreatedAt:    c.CreatedAt,
	}
}
