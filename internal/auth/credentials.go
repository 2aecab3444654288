package auth

import (
	"context"
	"errors"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// CredentialStore is the read-only slice of user persistence that credential
// validation needs.
type CredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CredentialValidator turns a (username, password) pair into a verified
// identity.
type CredentialValidator struct {
	store  CredentialStore
	hasher *PasswordHasher
}

// NewCredentialValidator creates a CredentialValidator.
func NewCredentialValidator(store CredentialStore, hasher *PasswordHasher) *CredentialValidator {
	return &CredentialValidator{store: store, hasher: hasher}
}

// Validate returns the identity for the given credentials, or nil when the
// username is unknown or the password is wrong. The two rejection causes are
// indistinguishable to the caller, so login responses cannot be used to
// enumerate usernames. Unexpected store failures are returned as errors.
func (v *CredentialValidator) Validate(ctx context.Context, username, password string) (*domain.Identity, error) {
	user, err := v.store.GetByUsername(ctx, username)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	if !v.hasher.Verify(password, user.PasswordHash) {
		return nil, nil
	}
	id := user.Public()
	return &id, nil
}
