package ports

import (
	"context"

	"github.com/storerating/platform/internal/core/domain"
)

// UserFilter narrows and orders admin user listings. Empty fields are
// ignored. Sort fields outside the allowed set fall back to name.
type UserFilter struct {
	Name     string
	Email    string
	Address  string
	Role     domain.Role
	SortBy   string
	SortDesc bool
}

// UserListItem is a user row in the admin listing. StoreRating is the mean
// rating across the user's stores and is only set for owners.
type UserListItem struct {
	domain.User
	StoreRating *float64 `json:"store_rating,omitempty"`
}

// UserRepository defines persistence for user identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	List(ctx context.Context, filter UserFilter) ([]UserListItem, error)
	Count(ctx context.Context) (int64, error)
}
