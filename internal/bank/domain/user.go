package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string // login identity and token subject, stored lower case
	DisplayName  string
	PasswordHash string // argon2 encoded
	Role         Role
	Locked       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Authorities returns the authorities granted to the user.
func (u User) Authorities() []string {
	return []string{string(u.Role)}
}

// NormalizeEmail canonicalises an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
