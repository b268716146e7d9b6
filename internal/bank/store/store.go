package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a transaction scoped Store can be handed to the
// same code as the root one.
type Store interface {
	Users() Users
	Cards() Cards

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used by login and by the authentication gate.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// SetLocked flips the locked flag and bumps updated_at.
	SetLocked(ctx context.Context, userID string, locked bool) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Cards interface {
	// CreateCard inserts a card. A duplicate ciphertext yields ErrAlreadyExists.
	CreateCard(ctx context.Context, c domain.Card) error

	GetCardByID(ctx context.Context, id string) (domain.Card, error)

	// GetCardByCiphertext relies on the card cipher being deterministic.
	GetCardByCiphertext(ctx context.Context, ciphertext string) (domain.Card, error)

	// ListCardsByOwner returns the owner's cards oldest first.
	ListCardsByOwner(ctx context.Context, ownerID string) ([]domain.Card, error)
}
