package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

// OwnerService serves ownership-scoped reads. It is the one place the
// ownership gate runs against stored owner references; the rating ledger
// underneath trusts it.
type OwnerService struct {
	stores  ports.StoreRepository
	ratings ports.RatingService
	log     zerolog.Logger
}

func NewOwnerService(stores ports.StoreRepository, ratings ports.RatingService, log zerolog.Logger) *OwnerService {
	return &OwnerService{stores: stores, ratings: ratings, log: log}
}

// Dashboard returns one aggregate per store the identity owns — never a
// blended average across stores.
func (s *OwnerService) Dashboard(ctx context.Context, id domain.Identity) ([]ports.StoreListing, error) {
	return s.stores.ListByOwner(ctx, id.UserID)
}

// StoreRatings lists a store's ratings for its owner. Admin identities pass
// the ownership gate; any other identity must match the store's recorded
// owner.
func (s *OwnerService) StoreRatings(ctx context.Context, id domain.Identity, storeID int64) (*ports.StoreRatingsResult, error) {
	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeOwnership(id, store.OwnerID); err != nil {
		s.log.Debug().
			Int64("user_id", id.UserID).
			Int64("store_id", storeID).
			Msg("ownership denied for store ratings")
		return nil, err
	}

	ratings, err := s.ratings.ListForStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("store ratings: %w", err)
	}
	agg, err := s.ratings.StoreAggregate(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("store ratings: aggregate: %w", err)
	}

	return &ports.StoreRatingsResult{Aggregate: agg, Ratings: ratings}, nil
}
