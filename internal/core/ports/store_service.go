package ports

import "context"

// StoreService serves the rater-facing store catalogue.
type StoreService interface {
	// Browse lists stores with their aggregates and the rater's own rating.
	Browse(ctx context.Context, raterID int64, filter StoreFilter) ([]StoreListing, error)
	Detail(ctx context.Context, raterID, storeID int64) (*StoreListing, error)
}
