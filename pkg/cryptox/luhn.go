package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCardNumber returns a random Luhn-valid 16 digit card number that
// starts with prefix (the issuer BIN).
func GenerateCardNumber(prefix string) (string, error) {
	if len(prefix) >= CardNumberLength {
		return "", fmt.Errorf("%w: prefix must be shorter than %d digits", ErrInvalidInput, CardNumberLength)
	}

	digits := make([]int, CardNumberLength)
	for i, c := range prefix {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: prefix must be numeric", ErrInvalidInput)
		}
		digits[i] = int(c - '0')
	}

	for i := len(prefix); i < CardNumberLength-1; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = int(n.Int64())
	}

	digits[CardNumberLength-1] = luhnCheckDigit(digits[:CardNumberLength-1])

	out := make([]byte, CardNumberLength)
	for i, d := range digits {
		out[i] = byte('0' + d)
	}

	return string(out), nil
}

// ValidLuhn reports whether s is numeric and passes the Luhn checksum.
func ValidLuhn(s string) bool {
	if len(s) < 2 {
		return false
	}

	sum := 0
	for i := range len(s) {
		c := s[len(s)-1-i]
		if c < '0' || c > '9' {
			return false
		}

		d := int(c - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return sum%10 == 0
}

// luhnCheckDigit computes the check digit for digits, which must not include
// the check digit position.
func luhnCheckDigit(digits []int) int {
	sum := 0
	for i := range len(digits) {
		d := digits[len(digits)-1-i]
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return (10 - sum%10) % 10
}
