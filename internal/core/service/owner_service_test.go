package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/storerating/platform/internal/core/domain"
)

func newOwnerSvc() (*OwnerService, *RatingService, *stubStoreRepo) {
	ratings := newStubRatingRepo()
	stores := newStubStoreRepo(ratings)
	ratingSvc := NewRatingService(ratings, stores, zerolog.Nop())
	return NewOwnerService(stores, ratingSvc, zerolog.Nop()), ratingSvc, stores
}

func TestOwnerService_Dashboard_OnlyOwnStores(t *testing.T) {
	svc, ratingSvc, stores := newOwnerSvc()

	ownerA, ownerB := int64(10), int64(20)
	mine := seedStore(t, stores, &ownerA)
	theirs := seedStore(t, stores, &ownerB)
	seedStore(t, stores, nil)

	_, _ = ratingSvc.Submit(context.Background(), 1, mine, 4)
	_, _ = ratingSvc.Submit(context.Background(), 2, mine, 2)
	_, _ = ratingSvc.Submit(context.Background(), 1, theirs, 5)

	listings, err := svc.Dashboard(context.Background(), domain.Identity{UserID: ownerA, Role: domain.RoleOwner})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 store on dashboard, got %d", len(listings))
	}
	if listings[0].ID != mine {
		t.Fatalf("dashboard shows wrong store %d", listings[0].ID)
	}
	if listings[0].Aggregate.AverageScore != 3.0 || listings[0].Aggregate.TotalCount != 2 {
		t.Fatalf("expected per-store aggregate {3.0, 2}, got %+v", listings[0].Aggregate)
	}
}

func TestOwnerService_Dashboard_EmptyForStorelessOwner(t *testing.T) {
	svc, _, stores := newOwnerSvc()
	ownerB := int64(20)
	seedStore(t, stores, &ownerB)

	listings, err := svc.Dashboard(context.Background(), domain.Identity{UserID: 10, Role: domain.RoleOwner})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("expected empty dashboard, got %d stores", len(listings))
	}
}

func TestOwnerService_StoreRatings_OwnStore(t *testing.T) {
	svc, ratingSvc, stores := newOwnerSvc()
	ownerA := int64(10)
	storeID := seedStore(t, stores, &ownerA)

	_, _ = ratingSvc.Submit(context.Background(), 1, storeID, 5)
	_, _ = ratingSvc.Submit(context.Background(), 2, storeID, 4)

	res, err := svc.StoreRatings(context.Background(), domain.Identity{UserID: ownerA, Role: domain.RoleOwner}, storeID)
	if err != nil {
		t.Fatalf("store ratings: %v", err)
	}
	if len(res.Ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(res.Ratings))
	}
	if res.Aggregate.AverageScore != 4.5 || res.Aggregate.TotalCount != 2 {
		t.Fatalf("expected {4.5, 2}, got %+v", res.Aggregate)
	}
}

func TestOwnerService_StoreRatings_ForeignStoreDenied(t *testing.T) {
	svc, _, stores := newOwnerSvc()
	ownerB := int64(20)
	storeID := seedStore(t, stores, &ownerB)

	_, err := svc.StoreRatings(context.Background(), domain.Identity{UserID: 10, Role: domain.RoleOwner}, storeID)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestOwnerService_StoreRatings_UnownedStoreDenied(t *testing.T) {
	svc, _, stores := newOwnerSvc()
	storeID := seedStore(t, stores, nil)

	_, err := svc.StoreRatings(context.Background(), domain.Identity{UserID: 10, Role: domain.RoleOwner}, storeID)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for unowned store, got %v", err)
	}
}

func TestOwnerService_StoreRatings_AdminBypass(t *testing.T) {
	svc, ratingSvc, stores := newOwnerSvc()
	ownerB := int64(20)
	storeID := seedStore(t, stores, &ownerB)
	_, _ = ratingSvc.Submit(context.Background(), 1, storeID, 3)

	res, err := svc.StoreRatings(context.Background(), domain.Identity{UserID: 99, Role: domain.RoleAdmin}, storeID)
	if err != nil {
		t.Fatalf("admin should pass the ownership gate: %v", err)
	}
	if res.Aggregate.TotalCount != 1 {
		t.Fatalf("expected 1 rating, got %d", res.Aggregate.TotalCount)
	}
}

func TestOwnerService_StoreRatings_StoreNotFound(t *testing.T) {
	svc, _, _ := newOwnerSvc()

	_, err := svc.StoreRatings(context.Background(), domain.Identity{UserID: 10, Role: domain.RoleOwner}, 404)
	if !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
