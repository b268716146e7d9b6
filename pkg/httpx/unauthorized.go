package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

const (
	UnauthorizedMessage  = "Unauthorized: Access requires authentication."
	AccountLockedMessage = "Forbidden: Account is locked."
	ForbiddenMessage     = "Forbidden: Insufficient authority."
)

// Responder terminates a request that could not be authenticated. The
// reason is only for diagnostics and never reaches the client.
type Responder func(w http.ResponseWriter, r *http.Request, reason error)

// Unauthorized is the default Responder: a fixed 401 plain text response.
func Unauthorized(w http.ResponseWriter, r *http.Request, reason error) {
	attrs := []any{"method", r.Method, "resource", r.URL.Path}
	if reason != nil {
		attrs = append(attrs, "reason", reason.Error())
	}
	slogx.FromContext(r.Context()).Warn("unauthorized request", attrs...)

	w.Header().Set("WWW-Authenticate", `Bearer realm="cardbank"`)
	WriteText(w, http.StatusUnauthorized, UnauthorizedMessage)
}

// Forbidden writes a 403 plain text response with msg.
func Forbidden(w http.ResponseWriter, msg string) {
	WriteText(w, http.StatusForbidden, msg)
}
