package ports

import (
	"context"

	"github.com/storerating/platform/internal/core/domain"
)

// StoreRatingsResult is what a store's owner sees: the live aggregate plus
// every rating with the rater's identity, newest first.
type StoreRatingsResult struct {
	Aggregate domain.StoreAggregate `json:"aggregate"`
	Ratings   []StoreRatingEntry    `json:"ratings"`
}

// OwnerService composes the access controller with the rating ledger for
// ownership-scoped reads. Admin identities pass the ownership gate.
type OwnerService interface {
	Dashboard(ctx context.Context, id domain.Identity) ([]StoreListing, error)
	StoreRatings(ctx context.Context, id domain.Identity, storeID int64) (*StoreRatingsResult, error)
}
