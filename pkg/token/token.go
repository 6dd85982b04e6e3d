// Package token generates opaque random tokens.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator returns a random token built from n random bytes.
type Generator func(n int) (string, error)

// Hex returns n bytes from crypto/rand, hex encoded (2n characters).
func Hex(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid token length %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
