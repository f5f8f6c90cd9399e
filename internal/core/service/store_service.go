package service

import (
	"context"

	"github.com/storerating/platform/internal/core/ports"
)

// StoreService serves the rater-facing store catalogue: listings and
// details carry the overall aggregate plus the caller's own rating.
type StoreService struct {
	stores ports.StoreRepository
}

func NewStoreService(stores ports.StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

func (s *StoreService) Browse(ctx context.Context, raterID int64, filter ports.StoreFilter) ([]ports.StoreListing, error) {
	filter.RaterID = &raterID
	return s.stores.List(ctx, filter)
}

func (s *StoreService) Detail(ctx context.Context, raterID, storeID int64) (*ports.StoreListing, error) {
	return s.stores.Get(ctx, storeID, &raterID)
}
