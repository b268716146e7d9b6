package jwtx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the HS512 key size recommended by RFC 7518. Shorter
// secrets still work but the provider reports them as weak.
const MinSecretLength = 64

var (
	ErrInvalidArgument = errors.New("jwtx: invalid argument")
	ErrUnauthenticated = errors.New("jwtx: unauthenticated")

	// ErrExpiredToken and ErrMalformedToken both match ErrUnauthenticated
	// with errors.Is.
	ErrExpiredToken   = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrMalformedToken = fmt.Errorf("%w: token subject missing", ErrUnauthenticated)
)

// ProviderConfig configures a Provider. It is read once at construction.
type ProviderConfig struct {
	// Secret is used as-is for the HMAC key.
	Secret string

	// Lifetime of issued tokens, DefaultTokenLifetime when zero. Token
	// timestamps have one second precision, so it must be whole seconds.
	Lifetime time.Duration

	// Issuer is written to and required on tokens when set.
	Issuer string

	// Now is the clock, time.Now when nil.
	Now func() time.Time
}

// Provider issues and validates HS512 bearer tokens bound to an identity.
// There is no revocation: a token stays valid until it expires.
type Provider struct {
	key      []byte
	lifetime time.Duration
	issuer   string
	now      func() time.Time
	parser   *jwt.Parser
}

// NewProvider creates a Provider from cfg.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: signing secret is empty", ErrInvalidArgument)
	}
	if cfg.Lifetime == 0 {
		cfg.Lifetime = DefaultTokenLifetime
	}
	if cfg.Lifetime < time.Second || cfg.Lifetime%time.Second != 0 {
		return nil, fmt.Errorf("%w: token lifetime %s is not a whole number of seconds", ErrInvalidArgument, cfg.Lifetime)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(cfg.Now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &Provider{
		key:      []byte(cfg.Secret),
		lifetime: cfg.Lifetime,
		issuer:   cfg.Issuer,
		now:      cfg.Now,
		parser:   jwt.NewParser(opts...),
	}, nil
}

// Weak reports whether the signing secret is shorter than MinSecretLength.
func (p *Provider) Weak() bool { return len(p.key) < MinSecretLength }

// Lifetime returns the configured token lifetime.
func (p *Provider) Lifetime() time.Duration { return p.lifetime }

// Issue signs a token for identity valid from now until now+lifetime. The
// issue time is truncated to the second so exp is exactly iat+lifetime.
func (p *Provider) Issue(identity string) (string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", fmt.Errorf("%w: identity is blank", ErrInvalidArgument)
	}

	now := p.now().Truncate(time.Second)
	claims := NewClaims(identity, p.issuer, p.lifetime, now)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(p.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign token: %w", err)
	}
	return token, nil
}

// ExtractIdentity verifies token and returns its subject.
func (p *Provider) ExtractIdentity(token string) (string, error) {
	claims, err := p.verify(token)
	if err != nil {
		return "", err
	}

	identity := claims.Identity()
	if identity == "" {
		return "", ErrMalformedToken
	}
	return identity, nil
}

// IsValid reports whether token is well formed, correctly signed and not
// expired. It never panics and never returns an error.
func (p *Provider) IsValid(token string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	_, err := p.verify(token)
	return err == nil
}

func (p *Provider) verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: token is blank", ErrUnauthenticated)
	}

	claims := &Claims{}
	parsed, err := p.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case !parsed.Valid:
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	return claims, nil
}
