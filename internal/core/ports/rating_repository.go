package ports

import (
	"context"

	"github.com/storerating/platform/internal/core/domain"
)

// StoreRatingEntry is a rating row joined with the rater's identity, as
// shown to the store's owner.
type StoreRatingEntry struct {
	domain.Rating
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// RatingRepository owns the rating rows. Upsert must be a single atomic
// conditional write against the (user_id, store_id) uniqueness constraint —
// never a check-then-act sequence, which races under concurrent submissions.
type RatingRepository interface {
	// Upsert inserts the rating or updates the existing row's score in
	// place. The returned flag is true when a new row was created. Row id
	// and created_at are stable across updates.
	Upsert(ctx context.Context, userID, storeID int64, score int) (*domain.Rating, bool, error)
	// ListForStore returns the store's ratings newest first.
	ListForStore(ctx context.Context, storeID int64) ([]StoreRatingEntry, error)
	// Aggregate recomputes the store's average (2 decimals) and count from
	// the rating rows. An unrated store yields {0, 0}.
	Aggregate(ctx context.Context, storeID int64) (domain.StoreAggregate, error)
	Count(ctx context.Context) (int64, error)
}
