package ports

import (
	"context"

	"github.com/storerating/platform/internal/core/domain"
)

// RegisterInput carries a new identity. The transport layer has already
// validated field syntax (email format, name/address lengths, password
// complexity); the service enforces uniqueness and role correctness.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     domain.Role
}

// AuthResult pairs the persisted user with a freshly minted session token.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	// Register persists the identity and immediately issues a token for it
	// (signup implies login).
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// ChangePassword re-hashes and replaces the secret. Previously issued
	// tokens stay valid until expiry.
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
}
