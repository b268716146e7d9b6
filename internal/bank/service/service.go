package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/store"
)

// TokenIssuer issues bearer tokens bound to a user's email.
type TokenIssuer interface {
	Issue(identity string) (string, error)
	Lifetime() time.Duration
}

// CardProtector encrypts card numbers at rest and masks them for display.
type CardProtector interface {
	Encrypt(cardNumber string) (string, error)
	Mask(ciphertext string) (string, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// mapStoreErr translates store sentinels into domain errors.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", domain.ErrAlreadyExists, err)
	}
	return err
}

func nowUTC(now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	return now().UTC().Truncate(time.Millisecond)
}
