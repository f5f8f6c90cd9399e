package ports

import (
	"context"

	"github.com/storerating/platform/internal/core/domain"
)

// PlatformStats is the admin dashboard headline: row counts over the three
// relations, computed on demand.
type PlatformStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

// AddStoreInput carries a new store. OwnerID, when set, must reference a
// user holding the owner role.
type AddStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID *int64
}

// UserDetail is a single user plus, for owners, per-store aggregates.
type UserDetail struct {
	domain.User
	Stores []StoreListing `json:"stores,omitempty"`
}

type AdminService interface {
	Stats(ctx context.Context) (*PlatformStats, error)
	// AddUser provisions an identity with any role, without issuing a token.
	AddUser(ctx context.Context, in RegisterInput) (*domain.User, error)
	AddStore(ctx context.Context, in AddStoreInput) (*StoreListing, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]UserListItem, error)
	ListStores(ctx context.Context, filter StoreFilter) ([]StoreListing, error)
	UserDetail(ctx context.Context, userID int64) (*UserDetail, error)
}
