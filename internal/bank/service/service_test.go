package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/service"
	"github.com/aussiebroadwan/cardbank/internal/bank/store/drivers/sqlite"
	"github.com/aussiebroadwan/cardbank/pkg/cryptox"
	"github.com/aussiebroadwan/cardbank/pkg/jwtx"
)

const testJWTSecret = "service-test-secret-service-test-secret-service-test-secret-0123"

type fixture struct {
	store     *sqlite.Store
	hasher    *cryptox.PasswordHasher
	tokens    *jwtx.Provider
	cipher    *cryptox.CardCipher
	auth      *service.AuthService
	users     *service.UserService
	cards     *service.CardService
	bootstrap *service.BootstrapService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	tokens, err := jwtx.NewProvider(jwtx.ProviderConfig{Secret: testJWTSecret, Lifetime: time.Hour})
	require.NoError(t, err)

	cipher, err := cryptox.NewCardCipher("service-test-card-secret")
	require.NoError(t, err)

	hasher := cryptox.NewPasswordHasher("pepper")

	return &fixture{
		store:     s,
		hasher:    hasher,
		tokens:    tokens,
		cipher:    cipher,
		auth:      &service.AuthService{Store: s, Hasher: hasher, Tokens: tokens},
		users:     &service.UserService{Store: s},
		cards:     &service.CardService{Store: s, Cipher: cipher, BIN: "4000"},
		bootstrap: &service.BootstrapService{Store: s, Hasher: hasher},
	}
}

func (f *fixture) register(t *testing.T, email string) domain.User {
	t.Helper()
	u, err := f.auth.Register(context.Background(), email, "Test User", "correct horse battery")
	require.NoError(t, err)
	return u
}
