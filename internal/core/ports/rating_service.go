package ports

import (
	"context"

	"github.com/storerating/platform/internal/core/domain"
)

// SubmitResult reports the surviving rating row and whether it was newly
// created (false means an existing row was updated in place).
type SubmitResult struct {
	Rating  *domain.Rating
	Created bool
}

// RatingService is the rating ledger plus its read-side aggregates. It has
// no authorization logic of its own: callers gate access before invoking it.
type RatingService interface {
	Submit(ctx context.Context, userID, storeID int64, score int) (*SubmitResult, error)
	ListForStore(ctx context.Context, storeID int64) ([]StoreRatingEntry, error)
	StoreAggregate(ctx context.Context, storeID int64) (domain.StoreAggregate, error)
}
