package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/cardbank/pkg/cryptox"
	"github.com/aussiebroadwan/cardbank/pkg/jwtx"
)

// Keys holds the key material derived once at startup. Nothing in it is
// mutated afterwards, so it is shared by pointer across requests.
type Keys struct {
	Tokens    *jwtx.Provider
	Cards     *cryptox.CardCipher
	Passwords *cryptox.PasswordHasher
}

// DeriveKeys builds the token provider, the card cipher and the password
// hasher from cfg. The pepper is loaded from, or created at, cfg.PepperFile.
func DeriveKeys(cfg Config, logger *slog.Logger) (*Keys, error) {
	tokens, err := jwtx.NewProvider(jwtx.ProviderConfig{
		Secret:   cfg.JWTSecret,
		Lifetime: cfg.JWTLifetime,
		Issuer:   cfg.JWTIssuer,
	})
	if err != nil {
		return nil, fmt.Errorf("token provider: %w", err)
	}
	if tokens.Weak() {
		logger.Warn("BANK_JWT_SECRET is shorter than recommended for HS512",
			"length", len(cfg.JWTSecret),
			"recommended", jwtx.MinSecretLength,
		)
	}

	cards, err := cryptox.NewCardCipher(cfg.CardSecret)
	if err != nil {
		return nil, fmt.Errorf("card cipher: %w", err)
	}
	if len(cfg.CardSecret) < cryptox.CardKeySize {
		logger.Warn("BANK_CARD_SECRET is zero padded to the AES-256 key size",
			"length", len(cfg.CardSecret),
			"key_size", cryptox.CardKeySize,
		)
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("pepper: %w", err)
	}

	logger.Info("keys derived",
		"token_lifetime", tokens.Lifetime(),
		"card_secret_length", len(cfg.CardSecret),
	)

	return &Keys{
		Tokens:    tokens,
		Cards:     cards,
		Passwords: cryptox.NewPasswordHasher(pepper),
	}, nil
}
