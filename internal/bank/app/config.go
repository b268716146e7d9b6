package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultJWTLifetimeMS = 3600000
	DefaultCardBIN       = "4000"
)

type Config struct {
	JWTSecret     string        // Required: HS512 signing secret, 64+ bytes recommended
	JWTLifetime   time.Duration // Optional: token lifetime from BANK_JWT_LIFETIME_MS (default: 1h)
	JWTIssuer     string        // Optional: iss claim written and required when set
	CardSecret    string        // Required: card cipher secret, first 32 bytes are used
	CardBIN       string        // Optional: prefix for generated card numbers (default: 4000)
	LookupTimeout time.Duration // Optional: per request user lookup timeout (default: 3s)
	TrustProxy    bool          // Optional: key IP rate limits on X-Forwarded-For/X-Real-IP (default: false)

	AdminEmail       string // Optional: bootstrap admin created on first start
	AdminPassword    string // Optional: bootstrap admin password
	AdminDisplayName string // Optional: bootstrap admin display name

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./bank.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. Variables from
// the file named by BANK_ENV_FILE (default .env) are loaded first without
// overriding ones already set.
func LoadConfig() (Config, error) {
	if err := loadEnvFile(getEnvOrDefault("BANK_ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	cfg := Config{
		JWTSecret:     os.Getenv("BANK_JWT_SECRET"),
		JWTLifetime:   time.Duration(getEnvIntOrDefault("BANK_JWT_LIFETIME_MS", DefaultJWTLifetimeMS)) * time.Millisecond,
		JWTIssuer:     os.Getenv("BANK_JWT_ISSUER"),
		CardSecret:    os.Getenv("BANK_CARD_SECRET"),
		CardBIN:       getEnvOrDefault("BANK_CARD_BIN", DefaultCardBIN),
		LookupTimeout: getEnvDurationOrDefault("BANK_LOOKUP_TIMEOUT", 3*time.Second),
		TrustProxy:    getEnvBoolOrDefault("BANK_TRUST_PROXY_HEADERS", false),

		AdminEmail:       os.Getenv("BANK_ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("BANK_ADMIN_PASSWORD"),
		AdminDisplayName: os.Getenv("BANK_ADMIN_NAME"),

		DatabaseFile:        getEnvOrDefault("BANK_DATABASE_FILE", "bank.db"),
		PepperFile:          getEnvOrDefault("BANK_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg, cfg.Validate()
}

// Validate reports missing or malformed settings.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("BANK_JWT_SECRET is required"))
	}
	if c.JWTLifetime < time.Second || c.JWTLifetime%time.Second != 0 {
		errs = append(errs, fmt.Errorf("BANK_JWT_LIFETIME_MS %d must be a positive multiple of 1000", c.JWTLifetime.Milliseconds()))
	}
	if c.CardSecret == "" {
		errs = append(errs, errors.New("BANK_CARD_SECRET is required"))
	}
	if _, err := strconv.ParseUint(c.CardBIN, 10, 64); err != nil || len(c.CardBIN) >= 16 {
		errs = append(errs, fmt.Errorf("BANK_CARD_BIN %q must be 1-15 digits", c.CardBIN))
	}
	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		errs = append(errs, errors.New("BANK_ADMIN_EMAIL and BANK_ADMIN_PASSWORD must be set together"))
	}
	return errors.Join(errs...)
}

func loadEnvFile(file string) error {
	err := godotenv.Load(file)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", file, err)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are milliseconds
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}

	return defaultValue
}
