package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/cardbank/pkg/cryptox"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

// DefaultLookupTimeout bounds the user lookup done for each authenticated request.
const DefaultLookupTimeout = 3 * time.Second

var (
	ErrAccountLocked = errors.New("httpx: account locked")
	ErrAuthnPanic    = errors.New("httpx: panic during authentication")
)

// TokenValidator is the subset of the token provider the gate needs.
type TokenValidator interface {
	IsValid(token string) bool
	ExtractIdentity(token string) (string, error)
}

// PrincipalLoader resolves a token identity to a principal. It should fail
// distinctly for unknown users and transient errors; the gate treats both as
// unauthenticated.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, identity string) (Principal, error)
}

// AuthnOptions tunes AuthnMiddleware.
type AuthnOptions struct {
	// LookupTimeout defaults to DefaultLookupTimeout.
	LookupTimeout time.Duration

	// Unauthorized defaults to Unauthorized.
	Unauthorized Responder
}

// AuthnMiddleware establishes the request principal from a bearer token.
//
// Requests without a usable token, or with one that fails validation, pass
// through anonymously and are left to the authorization layer. A valid token
// whose identity cannot be resolved is rejected with 401, and one that
// resolves to a locked account with 403. Downstream handlers only ever see a
// principal this middleware installed.
func AuthnMiddleware(tokens TokenValidator, loader PrincipalLoader, opts AuthnOptions) Middleware {
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = DefaultLookupTimeout
	}
	if opts.Unauthorized == nil {
		opts.Unauthorized = Unauthorized
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := withoutPrincipal(r.Context())
			r = r.WithContext(ctx)
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			fp := cryptox.Fingerprint(raw)
			if !tokens.IsValid(raw) {
				log.Debug("bearer token rejected", "token_fp", fp)
				next.ServeHTTP(w, r)
				return
			}

			p, err := authenticate(ctx, tokens, loader, raw, opts.LookupTimeout)
			switch {
			case errors.Is(err, ErrAccountLocked):
				log.Warn("locked account rejected", "user_id", p.UserID, "token_fp", fp)
				Forbidden(w, AccountLockedMessage)
				return
			case err != nil:
				log.Warn("authentication failed", "err", err, "token_fp", fp)
				opts.Unauthorized(w, r, err)
				return
			}

			ctx = slogx.With(ContextWithPrincipal(ctx, p), "user_id", p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate resolves raw to a principal. Panics from the validator or the
// loader are turned into errors so nothing escapes to the server.
func authenticate(
	ctx context.Context,
	tokens TokenValidator,
	loader PrincipalLoader,
	raw string,
	timeout time.Duration,
) (p Principal, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p, err = Principal{}, fmt.Errorf("%w: %v", ErrAuthnPanic, rec)
		}
	}()

	identity, err := tokens.ExtractIdentity(raw)
	if err != nil {
		return Principal{}, fmt.Errorf("extract identity: %w", err)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p, err = loader.LoadPrincipal(lookupCtx, identity)
	if err != nil {
		return Principal{}, fmt.Errorf("load principal: %w", err)
	}
	if p.Locked {
		return p, ErrAccountLocked
	}

	return p, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. A missing header or any other scheme is reported as no token.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
