// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the bcrypt input limit. Longer passwords are truncated
// before hashing and before verification.
const MaxPasswordBytes = 72

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoSession          = errors.New("no session")
)

// HashCost is the bcrypt work factor used for new hashes
var HashCost = bcrypt.DefaultCost

var (
	dummyOnce sync.Once
	dummyHash []byte
)

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

// HashPassword returns a salted bcrypt hash of the (truncated) password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a password against a stored hash.
// Any mismatch or malformed hash yields ErrInvalidCredentials.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// RejectPassword spends the same bcrypt work as CheckPassword and always
// fails. Used when the account does not exist so timing stays uniform.
func RejectPassword(password string) error {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("coachly-unknown-account"), HashCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, truncatePassword(password))
	return ErrInvalidCredentials
}
