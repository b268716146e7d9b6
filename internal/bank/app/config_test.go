package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BANK_JWT_SECRET", "BANK_JWT_LIFETIME_MS", "BANK_JWT_ISSUER",
	"BANK_CARD_SECRET", "BANK_CARD_BIN", "BANK_LOOKUP_TIMEOUT", "BANK_TRUST_PROXY_HEADERS",
	"BANK_ADMIN_EMAIL", "BANK_ADMIN_PASSWORD", "BANK_ADMIN_NAME",
	"BANK_DATABASE_FILE", "BANK_PEPPER_FILE",
	"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
}

// clearEnv unsets every config variable for the duration of the test. The
// original values are restored on cleanup, including variables loaded from
// an env file during the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("BANK_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANK_JWT_SECRET", "jwt-secret")
	t.Setenv("BANK_CARD_SECRET", "card-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, time.Hour, cfg.JWTLifetime)
	require.Empty(t, cfg.JWTIssuer)
	require.Equal(t, DefaultCardBIN, cfg.CardBIN)
	require.Equal(t, 3*time.Second, cfg.LookupTimeout)
	require.False(t, cfg.TrustProxy)
	require.Equal(t, "bank.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANK_JWT_SECRET", "jwt-secret")
	t.Setenv("BANK_JWT_LIFETIME_MS", "90000")
	t.Setenv("BANK_JWT_ISSUER", "cardbank")
	t.Setenv("BANK_CARD_SECRET", "card-secret")
	t.Setenv("BANK_CARD_BIN", "5100")
	t.Setenv("BANK_LOOKUP_TIMEOUT", "750")
	t.Setenv("BANK_TRUST_PROXY_HEADERS", "true")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 90*time.Second, cfg.JWTLifetime)
	require.Equal(t, "cardbank", cfg.JWTIssuer)
	require.Equal(t, "5100", cfg.CardBIN)
	require.Equal(t, 750*time.Millisecond, cfg.LookupTimeout)
	require.True(t, cfg.TrustProxy)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 2*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "bank.env")
	require.NoError(t, os.WriteFile(file, []byte(
		"BANK_JWT_SECRET=from-file\nBANK_CARD_SECRET=card-from-file\nBANK_CARD_BIN=3700\n",
	), 0600))
	t.Setenv("BANK_ENV_FILE", file)

	// Values already in the environment win over the file.
	t.Setenv("BANK_CARD_BIN", "6011")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-file", cfg.JWTSecret)
	require.Equal(t, "card-from-file", cfg.CardSecret)
	require.Equal(t, "6011", cfg.CardBIN)
}

func TestLoadConfig_MalformedEnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	t.Setenv("BANK_ENV_FILE", dir) // a directory cannot be parsed

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		JWTSecret:   "jwt-secret",
		JWTLifetime: time.Hour,
		CardSecret:  "card-secret",
		CardBIN:     "4000",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, "BANK_JWT_SECRET"},
		{"missing card secret", func(c *Config) { c.CardSecret = "" }, "BANK_CARD_SECRET"},
		{"zero lifetime", func(c *Config) { c.JWTLifetime = 0 }, "BANK_JWT_LIFETIME_MS"},
		{"sub second lifetime", func(c *Config) { c.JWTLifetime = 500 * time.Millisecond }, "BANK_JWT_LIFETIME_MS"},
		{"fractional second lifetime", func(c *Config) { c.JWTLifetime = 1500 * time.Millisecond }, "BANK_JWT_LIFETIME_MS"},
		{"non numeric bin", func(c *Config) { c.CardBIN = "40a0" }, "BANK_CARD_BIN"},
		{"bin too long", func(c *Config) { c.CardBIN = "4000000000000000" }, "BANK_CARD_BIN"},
		{"admin email only", func(c *Config) { c.AdminEmail = "root@bank.test" }, "BANK_ADMIN_PASSWORD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_ValidateJoinsErrors(t *testing.T) {
	err := Config{CardBIN: "4000", JWTLifetime: time.Hour}.Validate()
	require.ErrorContains(t, err, "BANK_JWT_SECRET")
	require.ErrorContains(t, err, "BANK_CARD_SECRET")
}
