package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

// StoreRepository persists stores and builds their listing projections. The
// aggregate columns are computed from the rating rows on every query, so a
// listing can never show a stale average.
type StoreRepository struct {
	db Querier
}

func NewStoreRepository(db Querier) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	const query = `
		INSERT INTO stores (name, email, address, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	created := *store
	err := r.db.QueryRow(ctx, query,
		store.Name, store.Email, store.Address, store.OwnerID,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return &created, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id int64) (*domain.Store, error) {
	const query = `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores
		WHERE id = $1`

	var store domain.Store
	err := r.db.QueryRow(ctx, query, id).Scan(
		&store.ID, &store.Name, &store.Email, &store.Address, &store.OwnerID,
		&store.CreatedAt, &store.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("find store: %w", err)
	}
	return &store, nil
}

// listingSelect joins each store with its live aggregate and, when $1 names
// a rater, that rater's own rating. The ur join matches at most one row per
// store thanks to the (user_id, store_id) uniqueness constraint, so it does
// not skew the aggregate.
const listingSelect = `
	SELECT s.id, s.name, s.email, s.address, s.owner_id,
	       COALESCE(ROUND(AVG(r.score), 2), 0)::float8 AS average_score,
	       COUNT(r.id) AS total_count,
	       ur.score, ur.id
	FROM stores s
	LEFT JOIN ratings r ON r.store_id = s.id
	LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = $1
	`

const listingGroupBy = `
	GROUP BY s.id, s.name, s.email, s.address, s.owner_id, s.created_at, ur.score, ur.id`

var storeSortColumns = map[string]string{
	"name":          "s.name",
	"email":         "s.email",
	"address":       "s.address",
	"average_score": "average_score",
	"created_at":    "s.created_at",
}

func (r *StoreRepository) List(ctx context.Context, filter ports.StoreFilter) ([]ports.StoreListing, error) {
	var sb strings.Builder
	sb.WriteString(listingSelect)

	args := []any{filter.RaterID}
	var conds []string
	addCond := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Name != "" {
		addCond("s.name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		addCond("s.email ILIKE $%d", "%"+filter.Email+"%")
	}
	if filter.Address != "" {
		addCond("s.address ILIKE $%d", "%"+filter.Address+"%")
	}
	if len(conds) > 0 {
		sb.WriteString("WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(listingGroupBy)

	column, ok := storeSortColumns[filter.SortBy]
	if !ok {
		column = "s.name"
	}
	sb.WriteString("\n\tORDER BY " + column)
	if filter.SortDesc {
		sb.WriteString(" DESC")
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func (r *StoreRepository) Get(ctx context.Context, storeID int64, raterID *int64) (*ports.StoreListing, error) {
	query := listingSelect + "WHERE s.id = $2" + listingGroupBy

	var listing ports.StoreListing
	err := r.db.QueryRow(ctx, query, raterID, storeID).Scan(
		&listing.ID, &listing.Name, &listing.Email, &listing.Address, &listing.OwnerID,
		&listing.Aggregate.AverageScore, &listing.Aggregate.TotalCount,
		&listing.UserScore, &listing.UserRatingID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &listing, nil
}

func (r *StoreRepository) ListByOwner(ctx context.Context, ownerID int64) ([]ports.StoreListing, error) {
	query := listingSelect + "WHERE s.owner_id = $2" + listingGroupBy + "\n\tORDER BY s.name"

	rows, err := r.db.Query(ctx, query, nil, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stores by owner: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM stores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

func scanListings(rows pgx.Rows) ([]ports.StoreListing, error) {
	var listings []ports.StoreListing
	for rows.Next() {
		var listing ports.StoreListing
		if err := rows.Scan(
			&listing.ID, &listing.Name, &listing.Email, &listing.Address, &listing.OwnerID,
			&listing.Aggregate.AverageScore, &listing.Aggregate.TotalCount,
			&listing.UserScore, &listing.UserRatingID,
		); err != nil {
			return nil, fmt.Errorf("scan store listing: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return listings, nil
}
