package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
	"github.com/aussiebroadwan/cardbank/internal/bank/store"
	"github.com/aussiebroadwan/cardbank/internal/bank/store/drivers/sqlite"
	"github.com/aussiebroadwan/cardbank/pkg/idx"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newUser(email string) domain.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  "Test User",
		PasswordHash: "$argon2id$test",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := newUser("alice@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleUser, got.Role)
	require.False(t, got.Locked)
	require.True(t, u.CreatedAt.Equal(got.CreatedAt), "created_at round trip: %v != %v", u.CreatedAt, got.CreatedAt)

	_, err = s.Users().GetUserByEmail(ctx, "bob@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := newUser("alice@example.com")
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	require.NoError(t, s.Users().SetLocked(ctx, u.ID, true))
	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.Locked)

	require.ErrorIs(t, s.Users().SetLocked(ctx, "missing", true), store.ErrNotFound)

	empty, err = s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestCards(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := newUser("owner@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, owner))

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, ct := range []string{"ct-b", "ct-a"} {
		require.NoError(t, s.Cards().CreateCard(ctx, domain.Card{
			ID:               idx.New().String(),
			OwnerID:          owner.ID,
			HolderName:       "Owner",
			NumberCiphertext: ct,
			CreatedAt:        base.Add(time.Duration(i) * time.Second),
		}))
	}

	cards, err := s.Cards().ListCardsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.Equal(t, "ct-b", cards[0].NumberCiphertext, "oldest first")

	byCT, err := s.Cards().GetCardByCiphertext(ctx, "ct-a")
	require.NoError(t, err)
	require.Equal(t, cards[1].ID, byCT.ID)

	byID, err := s.Cards().GetCardByID(ctx, cards[0].ID)
	require.NoError(t, err)
	require.Equal(t, "ct-b", byID.NumberCiphertext)

	err = s.Cards().CreateCard(ctx, domain.Card{
		ID: idx.New().String(), OwnerID: owner.ID, HolderName: "Owner", NumberCiphertext: "ct-a", CreatedAt: base,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	none, err := s.Cards().ListCardsByOwner(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestCardsRequireOwner(t *testing.T) {
	err := newTestStore(t).Cards().CreateCard(context.Background(), domain.Card{
		ID: idx.New().String(), OwnerID: "ghost", HolderName: "x", NumberCiphertext: "ct", CreatedAt: time.Now(),
	})
	require.Error(t, err)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, newUser("tx@example.com")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, newUser("tx@example.com"))
	}))
	_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
}

func TestNestedWithTxJoinsOuter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Ping(ctx))

		require.NoError(t, tx.WithTx(ctx, func(inner store.Tx) error {
			return inner.Users().CreateUser(ctx, newUser("nested@example.com"))
		}))

		// Visible inside the outer transaction before commit.
		_, err := tx.Users().GetUserByEmail(ctx, "nested@example.com")
		require.NoError(t, err)

		_, err = tx.Tx(ctx)
		require.ErrorIs(t, err, sqlite.ErrNestedTx)
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The outer rollback discards the nested write.
	_, err = s.Users().GetUserByEmail(ctx, "nested@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
