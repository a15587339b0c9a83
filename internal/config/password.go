package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Accepted bcrypt work factors for stored user passwords.
const (
	MinBcryptCost = 10
	MaxBcryptCost = 14
)

// PasswordConfig hashes and checks user-record passwords.
type PasswordConfig struct {
	BcryptCost int
	// Pepper is appended to every password before hashing. Empty disables it.
	Pepper string
}

// NewPasswordConfig builds a PasswordConfig from the auth section.
func NewPasswordConfig(auth AuthConfig) (*PasswordConfig, error) {
	if err := checkBcryptCost(auth.BcryptCost); err != nil {
		return nil, err
	}
	return &PasswordConfig{BcryptCost: auth.BcryptCost, Pepper: auth.Pepper}, nil
}

func checkBcryptCost(cost int) error {
	if cost < MinBcryptCost || cost > MaxBcryptCost {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cost, MinBcryptCost, MaxBcryptCost)
	}
	return nil
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword returns the bcrypt hash of pw. Inputs over 72 bytes after peppering fail.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches storedHash. Malformed hashes never match.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
