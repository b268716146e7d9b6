package httpx

import "context"

// Principal is the authenticated identity attached to a single request. It
// is built by AuthnMiddleware and never outlives the request context.
type Principal struct {
	UserID      string
	Email       string
	DisplayName string
	Role        string
	Locked      bool
	Authorities []string
}

// HasAuthority reports whether the principal was granted authority.
func (p Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

type principalKey struct{}

// ContextWithPrincipal returns ctx carrying a copy of p.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, &p)
}

// PrincipalFromContext returns the request principal, ok is false for
// anonymous requests.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	if !ok || p == nil {
		return Principal{}, false
	}
	return *p, true
}

// withoutPrincipal masks any principal an outer layer may have attached.
func withoutPrincipal(ctx context.Context) context.Context {
	if _, ok := PrincipalFromContext(ctx); !ok {
		return ctx
	}
	return context.WithValue(ctx, principalKey{}, (*Principal)(nil))
}
