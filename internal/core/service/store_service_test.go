package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

func newStoreSvc() (*StoreService, *RatingService, *stubStoreRepo) {
	ratings := newStubRatingRepo()
	stores := newStubStoreRepo(ratings)
	ratingSvc := NewRatingService(ratings, stores, zerolog.Nop())
	return NewStoreService(stores), ratingSvc, stores
}

func TestStoreService_Browse_IncludesOwnRating(t *testing.T) {
	svc, ratingSvc, stores := newStoreSvc()
	rated := seedStore(t, stores, nil)
	unrated := seedStore(t, stores, nil)

	raterID := int64(7)
	_, _ = ratingSvc.Submit(context.Background(), raterID, rated, 4)
	_, _ = ratingSvc.Submit(context.Background(), 8, rated, 2)

	listings, err := svc.Browse(context.Background(), raterID, ports.StoreFilter{})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(listings))
	}

	byID := make(map[int64]ports.StoreListing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}

	mine := byID[rated]
	if mine.UserScore == nil || *mine.UserScore != 4 {
		t.Fatalf("expected own score 4, got %v", mine.UserScore)
	}
	if mine.Aggregate.AverageScore != 3.0 || mine.Aggregate.TotalCount != 2 {
		t.Fatalf("expected aggregate {3.0, 2}, got %+v", mine.Aggregate)
	}
	if byID[unrated].UserScore != nil {
		t.Fatalf("unrated store should carry no user score")
	}
}

func TestStoreService_Detail(t *testing.T) {
	svc, ratingSvc, stores := newStoreSvc()
	storeID := seedStore(t, stores, nil)
	raterID := int64(7)
	_, _ = ratingSvc.Submit(context.Background(), raterID, storeID, 5)

	detail, err := svc.Detail(context.Background(), raterID, storeID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.UserScore == nil || *detail.UserScore != 5 {
		t.Fatalf("expected own score 5, got %v", detail.UserScore)
	}
}

func TestStoreService_Detail_NotFound(t *testing.T) {
	svc, _, _ := newStoreSvc()

	_, err := svc.Detail(context.Background(), 7, 404)
	if !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
