package ports

import (
	"context"

	"github.com/storerating/platform/internal/core/domain"
)

// StoreFilter narrows and orders store listings. When RaterID is set, each
// listing carries that user's own rating alongside the overall aggregate.
type StoreFilter struct {
	RaterID  *int64
	Name     string
	Email    string
	Address  string
	SortBy   string
	SortDesc bool
}

// StoreListing is a store row joined with its on-demand aggregate.
type StoreListing struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Address   string                `json:"address,omitempty"`
	OwnerID   *int64                `json:"owner_id,omitempty"`
	Aggregate domain.StoreAggregate `json:"aggregate"`
	// UserScore / UserRatingID reflect the requesting rater's own rating,
	// nil when the rater has not rated the store (or no rater was given).
	UserScore    *int   `json:"user_score,omitempty"`
	UserRatingID *int64 `json:"user_rating_id,omitempty"`
}

// StoreRepository defines persistence for stores and their read-side
// projections.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	FindByID(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context, filter StoreFilter) ([]StoreListing, error)
	Get(ctx context.Context, storeID int64, raterID *int64) (*StoreListing, error)
	// ListByOwner returns one listing per store owned by the user — always
	// per-store aggregates, never a blended average across stores.
	ListByOwner(ctx context.Context, ownerID int64) ([]StoreListing, error)
	Count(ctx context.Context) (int64, error)
}
