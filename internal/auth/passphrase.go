package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid passphrase")
	ErrWeakPassphrase     = errors.New("passphrase must be at least 8 characters")
)

// PassphraseAuthenticator accepts a single passphrase, kept only as a bcrypt hash.
type PassphraseAuthenticator struct {
	hash []byte
}

// NewPassphraseAuthenticator hashes passphrase with bcrypt.
func NewPassphraseAuthenticator(passphrase string) (*PassphraseAuthenticator, error) {
	if len(passphrase) < 8 {
		return nil, ErrWeakPassphrase
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return &PassphraseAuthenticator{hash: hash}, nil
}

// Authenticate compares credential against the stored hash.
func (a *PassphraseAuthenticator) Authenticate(ctx context.Context, credential string) error {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
