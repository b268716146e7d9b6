package domain

import "time"

type Card struct {
	ID               string
	OwnerID          string
	HolderName       string
	NumberCiphertext string // CardCipher output, never the plain number
	CreatedAt        time.Time
}

// MaskedCard is a card as shown to clients.
type MaskedCard struct {
	ID           string
	OwnerID      string
	HolderName   string
	MaskedNumber string
	CreatedAt    time.Time
}
