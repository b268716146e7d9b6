package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// CardNumberLength is the only card number length we accept.
	CardNumberLength = 16

	// CardKeySize is the AES-256 key size derived from the configured secret.
	CardKeySize = 32

	cardMask = "******"
)

var (
	ErrInvalidInput  = errors.New("cryptox: invalid input")
	ErrDecryption    = errors.New("cryptox: decryption failed")
	ErrDataIntegrity = errors.New("cryptox: data integrity violation")
)

// CardCipher encrypts card numbers at rest and renders masked versions for
// display. Encryption is deterministic (AES-256, ECB, PKCS#7): the same card
// number always yields the same ciphertext under the same key, which is what
// lets the store look a card up by its encrypted number.
//
// A CardCipher is immutable after construction and safe for concurrent use.
type CardCipher struct {
	block cipher.Block
}

// NewCardCipher derives the cipher key from secret. The secret is truncated
// or zero-padded to exactly 32 bytes.
func NewCardCipher(secret string) (*CardCipher, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty card cipher secret", ErrInvalidInput)
	}

	block, err := aes.NewCipher(DeriveCardKey(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &CardCipher{block: block}, nil
}

// DeriveCardKey truncates or zero-pads secret to CardKeySize bytes.
func DeriveCardKey(secret string) []byte {
	key := make([]byte, CardKeySize)
	copy(key, secret)
	return key
}

// Encrypt validates and encrypts a 16 digit card number, returning the base64
// encoded ciphertext.
func (c *CardCipher) Encrypt(cardNumber string) (string, error) {
	if !IsCardNumber(cardNumber) {
		return "", fmt.Errorf("%w: card number must be exactly %d digits", ErrInvalidInput, CardNumberLength)
	}

	padded := pkcs7Pad([]byte(cardNumber), c.block.BlockSize())
	out := make([]byte, len(padded))

	bs := c.block.BlockSize()
	for i := 0; i < len(padded); i += bs {
		c.block.Encrypt(out[i:i+bs], padded[i:i+bs])
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Anything that is not a ciphertext produced under
// the same key fails with ErrDecryption, and a plaintext that is not a card
// number fails with ErrDataIntegrity.
func (c *CardCipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", fmt.Errorf("%w: empty ciphertext", ErrInvalidInput)
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %w", ErrDecryption, err)
	}

	bs := c.block.BlockSize()
	if len(raw) == 0 || len(raw)%bs != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecryption)
	}

	out := make([]byte, len(raw))
	for i := 0; i < len(raw); i += bs {
		c.block.Decrypt(out[i:i+bs], raw[i:i+bs])
	}

	plain, err := pkcs7Unpad(out, bs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	// Without a MAC a wrong key can still produce valid padding now and then.
	if !IsCardNumber(string(plain)) {
		return "", fmt.Errorf("%w: decrypted value is not a card number", ErrDataIntegrity)
	}

	return string(plain), nil
}

// Mask decrypts ciphertext and returns the first and last four digits with
// the middle replaced, e.g. "1234******5678".
func (c *CardCipher) Mask(ciphertext string) (string, error) {
	number, err := c.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}

	if len(number) < CardNumberLength {
		return "", fmt.Errorf("%w: card number too short to mask", ErrDataIntegrity)
	}

	return number[:4] + cardMask + number[len(number)-4:], nil
}

// IsCardNumber reports whether s is exactly 16 ASCII digits.
func IsCardNumber(s string) bool {
	if len(s) != CardNumberLength {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(append([]byte{}, b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}

	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, errors.New("invalid padding")
	}

	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, errors.New("invalid padding")
		}
	}

	return b[:len(b)-n], nil
}
