package httpx

import (
	"errors"
	"net/http"
)

var errNoPrincipal = errors.New("no authenticated principal")

// RequireAuthenticated rejects anonymous requests through responder
// (Unauthorized when nil).
func RequireAuthenticated(responder Responder) Middleware {
	if responder == nil {
		responder = Unauthorized
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				responder(w, r, errNoPrincipal)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyAuthority the caller must hold at least one of the provided
// authorities. Anonymous callers get a 401, authenticated ones a 403.
func RequireAnyAuthority(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				Unauthorized(w, r, errNoPrincipal)
				return
			}

			for _, a := range required {
				if p.HasAuthority(a) {
					next.ServeHTTP(w, r)
					return
				}
			}

			Forbidden(w, ForbiddenMessage)
		})
	}
}
