package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCardNumber(t *testing.T) {
	for range 50 {
		n, err := GenerateCardNumber("4000")
		require.NoError(t, err)
		require.True(t, IsCardNumber(n), "generated %q is not a card number", n)
		require.True(t, strings.HasPrefix(n, "4000"))
		require.True(t, ValidLuhn(n), "generated %q fails Luhn", n)
	}
}

func TestGenerateCardNumber_InvalidPrefix(t *testing.T) {
	_, err := GenerateCardNumber("40a0")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateCardNumber(strings.Repeat("4", 16))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidLuhn(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"4111111111111111", true},
		{"5500005555555559", true},
		{"4111111111111112", false},
		{"411111111111111a", false},
		{"0", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ValidLuhn(tt.in))
		})
	}
}
