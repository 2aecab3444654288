package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CodigoDemente/lactance-tracker-back/internal/domain"
)

// Token verification failures. Both map to 401 at the HTTP layer; the split
// exists so callers and tests can tell tampering from ordinary expiry.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
)

// Claims is the JWT payload for an issued bearer token.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies self-contained HS256 bearer tokens.
// Validity is fully determined by the signature and the embedded expiry;
// there is no revocation store.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager with the process-wide signing
// secret and token lifetime.
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the identity's id, username, and email,
// expiring ttl from now.
func (m *TokenManager) Issue(id domain.Identity) (string, error) {
	now := m.now()
	claims := Claims{
		Username: id.Username,
		Email:    id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks the token's signature and expiry and reconstructs the
// Identity from its claims without querying storage. Verification is a pure
// function of the token string and the current time, so repeated calls
// within the validity window return an equal Identity.
func (m *TokenManager) Verify(tokenString string) (domain.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, ErrTokenInvalidSignature
	}
	if !token.Valid || claims.Subject == "" {
		return domain.Identity{}, ErrTokenInvalidSignature
	}
	return domain.Identity{
		ID:       claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
	}, nil
}
