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

type AuthService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens TokenIssuer
	Now    func() time.Time
}

// Register creates a ROLE_USER account. The email must be unused.
func (s *AuthService) Register(ctx context.Context, email, displayName, password string) (domain.User, error) {
	email = domain.NormalizeEmail(email)
	displayName = strings.TrimSpace(displayName)
	if email == "" || displayName == "" || password == "" {
		return domain.User{}, domain.ErrInvalidInput
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := nowUTC(s.Now)
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a bearer token for the user's email.
// Unknown emails and wrong passwords both yield domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		err = mapStoreErr(err)
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		l.Info("login rejected", slog.String("user_id", user.ID))
		return "", domain.ErrUnauthorized
	}
	if user.Locked {
		l.Warn("login for locked account", slog.String("user_id", user.ID))
		return "", domain.ErrAccountLocked
	}

	token, err := s.Tokens.Issue(user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// TokenLifetime is the lifetime of tokens returned by Login.
func (s *AuthService) TokenLifetime() time.Duration {
	return s.Tokens.Lifetime()
}
