package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

var testIdentity = domain.Identity{
	ID:       "0198a9e2-0000-7000-8000-000000000001",
	Username: "alice",
	Email:    "alice@example.com",
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := m.Issue(testIdentity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, got)
}

func TestTokenManager_VerifyIsDeterministic(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := m.Issue(testIdentity)
	require.NoError(t, err)

	first, err := m.Verify(token)
	require.NoError(t, err)
	second, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTokenManager_Expired(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m := NewTokenManager([]byte("test-secret"), time.Hour)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue(testIdentity)
	require.NoError(t, err)

	// Still valid just before expiry.
	m.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = m.Verify(token)
	require.NoError(t, err)

	// Expired after the ttl has elapsed.
	m.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_TamperedToken(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := m.Issue(testIdentity)
	require.NoError(t, err)

	// Flip one character in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = m.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("secret-one"), time.Hour)
	verifier := NewTokenManager([]byte("secret-two"), time.Hour)

	token, err := issuer.Issue(testIdentity)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)

	_, err = m.Verify("")
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}

func TestTokenManager_MissingSubject(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := m.Issue(domain.Identity{Username: "ghost", Email: "ghost@example.com"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalidSignature)
}
