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
	"github.com/aussiebroadwan/cardbank/pkg/cryptox"
	"github.com/aussiebroadwan/cardbank/pkg/idx"
	"github.com/aussiebroadwan/cardbank/pkg/slogx"
)

// maxGenerateAttempts bounds retries when a generated number already exists.
const maxGenerateAttempts = 5

type CardService struct {
	Store  store.Store
	Cipher CardProtector
	BIN    string // prefix for generated card numbers
	Now    func() time.Time
}

// Create stores a card for ownerID. An empty number generates a Luhn-valid
// one under the configured BIN. The plain number is never persisted.
func (s *CardService) Create(ctx context.Context, ownerID, holderName, number string) (domain.MaskedCard, error) {
	holderName = strings.TrimSpace(holderName)
	if ownerID == "" || holderName == "" {
		return domain.MaskedCard{}, domain.ErrInvalidInput
	}

	if number != "" {
		if !cryptox.IsCardNumber(number) {
			return domain.MaskedCard{}, fmt.Errorf("%w: card number must be 16 digits", domain.ErrInvalidInput)
		}
		return s.create(ctx, ownerID, holderName, number)
	}

	for range maxGenerateAttempts {
		generated, err := cryptox.GenerateCardNumber(s.BIN)
		if err != nil {
			return domain.MaskedCard{}, fmt.Errorf("generate card number: %w", err)
		}

		card, err := s.create(ctx, ownerID, holderName, generated)
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return card, err
	}
	return domain.MaskedCard{}, fmt.Errorf("generate card number: %w", domain.ErrAlreadyExists)
}

func (s *CardService) create(ctx context.Context, ownerID, holderName, number string) (domain.MaskedCard, error) {
	ciphertext, err := s.Cipher.Encrypt(number)
	if err != nil {
		return domain.MaskedCard{}, fmt.Errorf("encrypt card number: %w", err)
	}

	now := nowUTC(s.Now)
	card := domain.Card{
		ID:               idx.NewAt(now).String(),
		OwnerID:          ownerID,
		HolderName:       holderName,
		NumberCiphertext: ciphertext,
		CreatedAt:        now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Cards().GetCardByCiphertext(ctx, ciphertext)
		switch {
		case err == nil:
			return store.ErrAlreadyExists
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
		return tx.Cards().CreateCard(ctx, card)
	})
	if err != nil {
		return domain.MaskedCard{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("card stored",
		slog.String("card_id", card.ID),
		slog.String("owner_id", ownerID),
	)
	return s.mask(card)
}

// List returns ownerID's cards with masked numbers.
func (s *CardService) List(ctx context.Context, ownerID string) ([]domain.MaskedCard, error) {
	cards, err := s.Store.Cards().ListCardsByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	out := make([]domain.MaskedCard, 0, len(cards))
	for _, c := range cards {
		m, err := s.mask(c)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Get returns one of ownerID's cards. Cards of other owners are reported
// as not found.
func (s *CardService) Get(ctx context.Context, ownerID, cardID string) (domain.MaskedCard, error) {
	c, err := s.Store.Cards().GetCardByID(ctx, cardID)
	if err != nil {
		return domain.MaskedCard{}, mapStoreErr(err)
	}
	if c.OwnerID != ownerID {
		return domain.MaskedCard{}, domain.ErrNotFound
	}
	return s.mask(c)
}

func (s *CardService) mask(c domain.Card) (domain.MaskedCard, error) {
	masked, err := s.Cipher.Mask(c.NumberCiphertext)
	if err != nil {
		return domain.MaskedCard{}, fmt.Errorf("mask card %s: %w", c.ID, err)
	}
	return domain.MaskedCard{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		HolderName:   c.HolderName,
		MaskedNumber: masked,
		CreatedAt:    c.CreatedAt,
	}, nil
}
