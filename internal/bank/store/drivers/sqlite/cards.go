package sqlite

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/cardbank/internal/bank/domain"
)

const cardColumns = `id, owner_id, holder_name, number_ciphertext, created_at`

type cardsRepo struct {
	db dbtx
}

func scanCard(row rowScanner) (domain.Card, error) {
	var c domain.Card
	if err := row.Scan(&c.ID, &c.OwnerID, &c.HolderName, &c.NumberCiphertext, &c.CreatedAt); err != nil {
		return domain.Card{}, mapNotFound(err)
	}
	return c, nil
}

func (r *cardsRepo) CreateCard(ctx context.Context, c domain.Card) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (`+cardColumns+`) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.HolderName, c.NumberCiphertext, c.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *cardsRepo) GetCardByID(ctx context.Context, id string) (domain.Card, error) {
	return scanCard(r.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id))
}

func (r *cardsRepo) GetCardByCiphertext(ctx context.Context, ciphertext string) (domain.Card, error) {
	return scanCard(r.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE number_ciphertext = ?`, ciphertext))
}

func (r *cardsRepo) ListCardsByOwner(ctx context.Context, ownerID string) ([]domain.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE owner_id = ? ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}
