// Package auth implements credential validation and bearer-token issuance
// for the feeding tracker API.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the accounts were originally created with.
const bcryptCost = 10

// PasswordHasher produces and verifies salted one-way hashes of user
// passwords.
type PasswordHasher struct{}

// NewPasswordHasher creates a PasswordHasher.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash returns a salted bcrypt hash of the secret. Hashing the same secret
// twice yields different outputs.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether secret is the input that produced hashedForm.
// A malformed hash compares as false; callers never special-case it.
func (h *PasswordHasher) Verify(secret, hashedForm string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedForm), []byte(secret)) == nil
}
