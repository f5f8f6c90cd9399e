package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

// RatingService is the rating ledger. It guarantees at most one rating per
// (user, store) pair by delegating the whole insert-or-update to a single
// atomic repository write; there is no check-then-act window here.
//
// The service performs no authorization: callers gate access before
// invoking it.
type RatingService struct {
	ratings ports.RatingRepository
	stores  ports.StoreRepository
	log     zerolog.Logger
}

func NewRatingService(ratings ports.RatingRepository, stores ports.StoreRepository, log zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, stores: stores, log: log}
}

func (s *RatingService) Submit(ctx context.Context, userID, storeID int64, score int) (*ports.SubmitResult, error) {
	if !domain.ValidScore(score) {
		return nil, domain.ErrInvalidScore
	}

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}

	rating, created, err := s.ratings.Upsert(ctx, userID, storeID, score)
	if err != nil {
		return nil, fmt.Errorf("submit rating: %w", err)
	}

	s.log.Info().
		Int64("user_id", userID).
		Int64("store_id", storeID).
		Int("score", score).
		Bool("created", created).
		Msg("rating submitted")

	return &ports.SubmitResult{Rating: rating, Created: created}, nil
}

func (s *RatingService) ListForStore(ctx context.Context, storeID int64) ([]ports.StoreRatingEntry, error) {
	return s.ratings.ListForStore(ctx, storeID)
}

// StoreAggregate recomputes the store's average and count from the rating
// rows on every call. Nothing is cached, so the figures can never be stale.
func (s *RatingService) StoreAggregate(ctx context.Context, storeID int64) (domain.StoreAggregate, error) {
	return s.ratings.Aggregate(ctx, storeID)
}
