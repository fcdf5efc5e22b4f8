package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword hashes a plaintext password with the given cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
// An empty hash never matches.
func ComparePassword(hashed, plain string) error {
	if hashed == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
