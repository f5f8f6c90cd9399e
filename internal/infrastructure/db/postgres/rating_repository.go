package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

const (
	foreignKeyViolation = "23503"
	storeFKConstraint   = "ratings_store_id_fkey"
)

// RatingRepository owns the ratings table. The (user_id, store_id) unique
// constraint is the source of truth for the one-rating-per-pair rule;
// Upsert leans on it instead of checking first.
type RatingRepository struct {
	db Querier
}

func NewRatingRepository(db Querier) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert writes the rating in a single conditional statement. On conflict
// the existing row keeps its id and created_at and only score/updated_at
// move. xmax = 0 holds only for freshly inserted rows, which is how the
// created flag is derived without a second round trip.
func (r *RatingRepository) Upsert(ctx context.Context, userID, storeID int64, score int) (*domain.Rating, bool, error) {
	const query = `
		INSERT INTO ratings (user_id, store_id, score)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = now()
		RETURNING id, created_at, updated_at, (xmax = 0)`

	rating := domain.Rating{UserID: userID, StoreID: storeID, Score: score}
	var created bool
	err := r.db.QueryRow(ctx, query, userID, storeID, score).Scan(
		&rating.ID, &rating.CreatedAt, &rating.UpdatedAt, &created,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation && pgErr.ConstraintName == storeFKConstraint {
			return nil, false, domain.ErrStoreNotFound
		}
		return nil, false, fmt.Errorf("upsert rating: %w", err)
	}
	return &rating, created, nil
}

func (r *RatingRepository) ListForStore(ctx context.Context, storeID int64) ([]ports.StoreRatingEntry, error) {
	const query = `
		SELECT r.id, r.user_id, r.store_id, r.score, r.created_at, r.updated_at,
		       u.name, u.email
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var entries []ports.StoreRatingEntry
	for rows.Next() {
		var entry ports.StoreRatingEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.StoreID, &entry.Score,
			&entry.CreatedAt, &entry.UpdatedAt, &entry.UserName, &entry.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("list ratings: scan: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return entries, nil
}

func (r *RatingRepository) Aggregate(ctx context.Context, storeID int64) (domain.StoreAggregate, error) {
	const query = `
		SELECT COALESCE(ROUND(AVG(score), 2), 0)::float8, COUNT(*)
		FROM ratings
		WHERE store_id = $1`

	var agg domain.StoreAggregate
	if err := r.db.QueryRow(ctx, query, storeID).Scan(&agg.AverageScore, &agg.TotalCount); err != nil {
		return domain.StoreAggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	return agg, nil
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}
