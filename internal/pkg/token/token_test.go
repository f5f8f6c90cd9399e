package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/storerating/platform/internal/core/domain"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	tokenString, err := m.Issue(domain.Identity{UserID: 42, Role: domain.RoleRater})
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	id, err := m.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id.UserID)
	assert.Equal(t, domain.RoleRater, id.Role)
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestManager_Verify_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	tokenString, err := m.Issue(domain.Identity{UserID: 1, Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = m.Verify(tokenString)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	tokenString, _ := issuer.Issue(domain.Identity{UserID: 1, Role: domain.RoleOwner})

	_, err := verifier.Verify(tokenString)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestManager_Verify_WrongAlgorithm(t *testing.T) {
	m := NewManager("secret", time.Hour)

	claims := &Claims{
		UserID: 1,
		Role:   string(domain.RoleRater),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))

	_, err := m.Verify(tokenString)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestManager_Verify_UnknownRole(t *testing.T) {
	m := NewManager("secret", time.Hour)

	claims := &Claims{
		UserID: 1,
		Role:   "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))

	_, err := m.Verify(tokenString)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
