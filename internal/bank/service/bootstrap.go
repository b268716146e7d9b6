package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/store"
	"github.com/aussiebroadwan/cardbank/pkg/idx"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

var errAlreadyBootstrapped = errors.New("already bootstrapped")

type BootstrapService struct {
	Store  store.Store
	Hasher PasswordHasher
	Now    func() time.Time
}

// EnsureAdmin creates the first ROLE_ADMIN account when no user exists yet.
// It reports whether an account was created.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, admin domain.BootstrapAdmin) (bool, error) {
	l := slogx.FromContext(ctx)

	email := domain.NormalizeEmail(admin.Email)
	if email == "" || admin.Password == "" {
		l.Debug("no bootstrap admin configured")
		return false, nil
	}

	displayName := strings.TrimSpace(admin.DisplayName)
	if displayName == "" {
		displayName = "Administrator"
	}

	hash, err := s.Hasher.Hash(admin.Password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	now := nowUTC(s.Now)
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return errAlreadyBootstrapped
		}
		return tx.Users().CreateUser(ctx, user)
	})
	switch {
	case errors.Is(err, errAlreadyBootstrapped):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("create admin: %w", mapStoreErr(err))
	}

	l.Info("bootstrap admin created", slog.String("user_id", user.ID))
	return true, nil
}
