// Package password hashes and verifies user credentials with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the shortest password accepted at registration and reset.
const MinLength = 6

var (
	// ErrTooShort is returned by Validate for passwords shorter than MinLength.
	ErrTooShort = fmt.Errorf("password must be at least %d characters long", MinLength)
	// ErrMismatch is returned by Compare when the password does not match the hash.
	ErrMismatch = errors.New("password does not match")
)

// Validate checks the password policy.
func Validate(password string) error {
	if len(password) < MinLength {
		return ErrTooShort
	}

	return nil
}

// Hash returns the bcrypt hash of password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// Compare returns nil when password matches hash and ErrMismatch when it does not.
func Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return fmt.Errorf("could not compare password: %w", err)
	}

	return nil
}
