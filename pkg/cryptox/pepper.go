package cryptox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreatePepper loads the password pepper from file, generating and
// persisting a new random one when the file does not exist yet.
func LoadOrCreatePepper(file string) (string, error) {
	if file == "" {
		return "", errors.New("cryptox: pepper file path is empty")
	}

	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return "", fmt.Errorf("failed to create pepper directory: %w", err)
	}

	data, err := os.ReadFile(file)
	if err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read pepper file: %w", err)
	}

	pepper, err := RandomSecret(SecretSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate pepper: %w", err)
	}

	if err := os.WriteFile(file, []byte(pepper), 0600); err != nil {
		return "", fmt.Errorf("failed to write pepper file: %w", err)
	}

	return pepper, nil
}
