package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/store"
	"github.com/aussiebroadwan/cardbank/pkg/httpx"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	return u, mapStoreErr(err)
}

// LoadPrincipal resolves a token identity for the authentication gate. An
// unknown email yields domain.ErrNotFound, any other error is passed through.
func (s *UserService) LoadPrincipal(ctx context.Context, identity string) (httpx.Principal, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(identity))
	if err != nil {
		return httpx.Principal{}, fmt.Errorf("lookup %q: %w", identity, mapStoreErr(err))
	}

	return httpx.Principal{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Locked:      u.Locked,
		Authorities: u.Authorities(),
	}, nil
}

// SetLocked locks or unlocks userID. Admins cannot lock themselves out.
func (s *UserService) SetLocked(ctx context.Context, actorID, userID string, locked bool) error {
	if locked && actorID == userID {
		return fmt.Errorf("%w: cannot lock own account", domain.ErrForbidden)
	}

	if err := s.Store.Users().SetLocked(ctx, userID, locked); err != nil {
		return mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("account lock changed",
		slog.String("target_user_id", userID),
		slog.Bool("locked", locked),
	)
	return nil
}
