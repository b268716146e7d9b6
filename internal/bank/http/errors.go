package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/pkg/banksdk"
	"github.com/aussiebroadwan/cardbank/pkg/idx"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

// writeServiceError maps a service error to its API error. Unexpected errors
// are logged and reported as a generic server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		banksdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, domain.ErrUnauthorized):
		banksdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, domain.ErrAccountLocked):
		banksdk.ErrAccountLocked.WriteError(w)
	case errors.Is(err, domain.ErrForbidden):
		banksdk.ErrForbidden.WriteError(w)
	case errors.Is(err, domain.ErrNotFound):
		banksdk.ErrNotFound.WriteError(w)
	case errors.Is(err, domain.ErrAlreadyExists):
		banksdk.ErrConflict.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		if reqID := slogx.RequestID(r.Context()); reqID != "" {
			banksdk.ErrServerError.WithDetails(map[string]string{"request_id": reqID}).WriteError(w)
			return
		}
		banksdk.ErrServerError.WriteError(w)
	}
}

// writeValidationError reports DTO validation failures with per-field details.
func writeValidationError(w http.ResponseWriter, err error) {
	details := map[string]string{}

	var fieldErrs validationErrors
	if errors.As(err, &fieldErrs) {
		for field, ferr := range fieldErrs {
			details[field] = ferr.Error()
		}
	}

	banksdk.ErrValidation.WithDetails(details).WriteError(w)
}

// pathID reads the {id} path value. Malformed ids cannot name a stored
// record, so they are answered with 404 without reaching the store.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		banksdk.ErrNotFound.WriteError(w)
		return "", false
	}
	return id.String(), true
}
