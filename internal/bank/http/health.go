package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/cardbank/internal/bank/service"
	"github.com/aussiebroadwan/cardbank/internal/bank/store"
	"github.com/aussiebroadwan/cardbank/pkg/banksdk"
	"github.com/aussiebroadwan/cardbank/pkg/httpx"
	"github.com/aussiebroadwan/cardbank/pkg/jwtx"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

const (
	// probeCardNumber is encrypted and masked on every readiness check.
	probeCardNumber = "4000000000000002"
	probeCardMasked = "4000******0002"

	readinessTimeout = 2 * time.Second
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	Version   string
	StartTime time.Time

	Store  store.Store
	Tokens *jwtx.Provider
	Cards  service.CardProtector
}

func (h *HealthHandler) response(status string) banksdk.HealthResponse {
	return banksdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
		Version: h.Version,
	}
}

// HandleLivez godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe, always 200 OK while the process is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	banksdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func (h *HealthHandler) HandleLivez(w http.ResponseWriter, _ *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, h.response("ok"))
}

// HandleReadyz godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database, the token provider and the card cipher
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	banksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	banksdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func (h *HealthHandler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := &banksdk.HealthChecks{
		Database: h.checkDatabase(ctx),
		Tokens:   h.checkTokens(),
		Cards:    h.checkCards(ctx),
	}

	resp := h.response("ok")
	resp.Checks = checks
	status := http.StatusOK
	for _, c := range []string{checks.Database, checks.Tokens, checks.Cards} {
		if !healthy(c) {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, status, resp)
}

// checkDatabase pings the store. The cause is logged, never returned.
func (h *HealthHandler) checkDatabase(ctx context.Context) string {
	if err := h.Store.Ping(ctx); err != nil {
		slogx.FromContext(ctx).Error("readiness: database ping failed", "error", err)
		return "error"
	}
	return "ok"
}

// checkTokens issues and validates a token. A short secret still works but
// is reported.
func (h *HealthHandler) checkTokens() string {
	token, err := h.Tokens.Issue("readyz")
	if err != nil || !h.Tokens.IsValid(token) {
		return "error: token round trip failed"
	}
	if h.Tokens.Weak() {
		return "ok (weak secret)"
	}
	return "ok"
}

func (h *HealthHandler) checkCards(ctx context.Context) string {
	ct, err := h.Cards.Encrypt(probeCardNumber)
	if err != nil {
		slogx.FromContext(ctx).Error("readiness: card encrypt failed", "error", err)
		return "error: encrypt failed"
	}
	if masked, err := h.Cards.Mask(ct); err != nil || masked != probeCardMasked {
		slogx.FromContext(ctx).Error("readiness: card mask failed", "error", err)
		return "error: mask failed"
	}
	return "ok"
}

func healthy(check string) bool {
	return strings.HasPrefix(check, "ok")
}
