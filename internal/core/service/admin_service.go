package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

// AdminService implements the administrator surface: platform stats,
// provisioning users and stores, and filtered listings.
type AdminService struct {
	users      ports.UserRepository
	stores     ports.StoreRepository
	ratings    ports.RatingRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewAdminService(users ports.UserRepository, stores ports.StoreRepository, ratings ports.RatingRepository, bcryptCost int, log zerolog.Logger) *AdminService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AdminService{users: users, stores: stores, ratings: ratings, bcryptCost: bcryptCost, log: log}
}

// Stats counts the three relations on demand.
func (s *AdminService) Stats(ctx context.Context) (*ports.PlatformStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: users: %w", err)
	}
	stores, err := s.stores.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: stores: %w", err)
	}
	ratings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: ratings: %w", err)
	}
	return &ports.PlatformStats{TotalUsers: users, TotalStores: stores, TotalRatings: ratings}, nil
}

// AddUser provisions an identity with any of the three roles. Unlike
// signup, no token is issued.
func (s *AdminService) AddUser(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("add user: hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Address:      in.Address,
		Role:         in.Role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user provisioned")
	return created, nil
}

// AddStore creates a store, optionally assigning an owner-of-record. The
// assignee must already hold the owner role.
func (s *AdminService) AddStore(ctx context.Context, in ports.AddStoreInput) (*ports.StoreListing, error) {
	if in.OwnerID != nil {
		owner, err := s.users.FindByID(ctx, *in.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrOwnerInvalid
			}
			return nil, fmt.Errorf("add store: %w", err)
		}
		if owner.Role != domain.RoleOwner {
			return nil, domain.ErrOwnerInvalid
		}
	}

	created, err := s.stores.Create(ctx, &domain.Store{
		Name:    in.Name,
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Address: in.Address,
		OwnerID: in.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("store_id", created.ID).Msg("store created")
	return s.stores.Get(ctx, created.ID, nil)
}

func (s *AdminService) ListUsers(ctx context.Context, filter ports.UserFilter) ([]ports.UserListItem, error) {
	return s.users.List(ctx, filter)
}

func (s *AdminService) ListStores(ctx context.Context, filter ports.StoreFilter) ([]ports.StoreListing, error) {
	return s.stores.List(ctx, filter)
}

// UserDetail returns the user and, for owners, per-store aggregates.
func (s *AdminService) UserDetail(ctx context.Context, userID int64) (*ports.UserDetail, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := &ports.UserDetail{User: *user}
	if user.Role == domain.RoleOwner {
		stores, err := s.stores.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("user detail: stores: %w", err)
		}
		detail.Stores = stores
	}
	return detail, nil
}
