package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is deliberately above bcrypt's default; offline
// brute-force resistance matters more than login latency here.
const passwordHashCost = 12

var ErrPasswordRequired = errors.New("password is required")

// HashPassword derives a salted one-way hash. Empty or whitespace-only
// input is rejected before hashing.
func HashPassword(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", ErrPasswordRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func VerifyPassword(plaintext string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// NormalizeEmail lowercases and trims a login identifier or stored email so
// lookups and uniqueness checks are case-insensitive.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
