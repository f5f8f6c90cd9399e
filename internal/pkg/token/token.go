// Package token mints and verifies the HS256 session tokens that carry an
// identity (user id + role) between requests. Tokens are not persisted and
// cannot be revoked before expiry; validity is purely cryptographic.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storerating/platform/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Claims is the session token payload.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token embedding the identity with the configured expiry.
func (m *Manager) Issue(id domain.Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: id.UserID,
		Role:   string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature, structure, and expiry. It distinguishes expiry
// from any other defect so internal logs can tell them apart; callers facing
// clients must collapse both into a generic unauthorized response.
func (m *Manager) Verify(tokenString string) (domain.Identity, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if claims.UserID <= 0 {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	return domain.Identity{UserID: claims.UserID, Role: role}, nil
}
