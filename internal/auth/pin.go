// Package auth implements the PIN lock and session tokens guarding
// mutating operations, plus the biometric capability interface.
package auth

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidPin means the submitted PIN does not match the stored hash.
	ErrInvalidPin = errors.New("invalid PIN")
	// ErrWeakPin means the PIN is too short or not numeric.
	ErrWeakPin = errors.New("PIN must be at least 4 digits")
	// ErrPinNotSet means verification was attempted with no PIN configured.
	ErrPinNotSet = errors.New("no PIN configured")
)

// ValidatePin checks that the PIN meets minimum requirements.
func ValidatePin(pin string) error {
	if len(pin) < 4 {
		return ErrWeakPin
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return ErrWeakPin
		}
	}
	return nil
}

// HashPin validates and hashes a PIN for storage. The raw PIN is never
// persisted.
func HashPin(pin string) (string, error) {
	if err := ValidatePin(pin); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}

// VerifyPin compares a submitted PIN against the stored hash.
func VerifyPin(hash, pin string) error {
	if hash == "" {
		return ErrPinNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return ErrInvalidPin
	}
	return nil
}
