package sqlite

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/cardbank/internal/bank/store"
)

// ErrNestedTx is returned when a second transaction is started from a
// transaction scoped store.
var ErrNestedTx = errors.New("sqlite: nested transactions are not supported")

// txStore is the store handed to WithTx callbacks. Its repositories run on
// the open transaction.
type txStore struct {
	tx       dbtx
	commit   func() error
	rollback func() error
}

func (t *txStore) Users() store.Users { return &usersRepo{db: t.tx} }
func (t *txStore) Cards() store.Cards { return &cardsRepo{db: t.tx} }

func (t *txStore) Commit() error   { return t.commit() }
func (t *txStore) Rollback() error { return t.rollback() }

// Tx refuses to nest: the store has a single connection, already held by
// this transaction.
func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, ErrNestedTx }

// WithTx runs fn inside the already open transaction. The outer WithTx owns
// the commit.
func (t *txStore) WithTx(_ context.Context, fn func(tx store.Tx) error) error {
	return fn(t)
}

// Ping runs a trivial query on the transaction's connection.
func (t *txStore) Ping(ctx context.Context) error {
	var one int
	return t.tx.QueryRowContext(ctx, `SELECT 1`).Scan(&one)
}

func (t *txStore) ApplyMigrations() error { return ErrNestedTx }

// Close is a no-op, the transaction is ended by Commit or Rollback.
func (t *txStore) Close() error { return nil }
