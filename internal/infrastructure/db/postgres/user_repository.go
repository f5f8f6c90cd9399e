package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
)

const uniqueViolation = "23505"

// UserRepository persists user identities in the users table.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, address, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	created := *user
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Address, string(user.Role),
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		SELECT id, name, email, password_hash, address, role, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
		SELECT id, name, email, password_hash, address, role, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, hash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// userSortColumns whitelists the sortable fields of the admin user listing.
var userSortColumns = map[string]string{
	"name":       "u.name",
	"email":      "u.email",
	"address":    "u.address",
	"role":       "u.role",
	"created_at": "u.created_at",
}

// List returns users matching the filter. For owners, store_rating carries
// the mean score across the ratings of all stores they own.
func (r *UserRepository) List(ctx context.Context, filter ports.UserFilter) ([]ports.UserListItem, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT u.id, u.name, u.email, u.address, u.role, u.created_at, u.updated_at,
		       CASE WHEN u.role = 'owner' THEN (
		           SELECT ROUND(AVG(r.score), 2)::float8
		           FROM ratings r
		           JOIN stores s ON s.id = r.store_id
		           WHERE s.owner_id = u.id
		       ) END AS store_rating
		FROM users u`)

	var (
		conds []string
		args  []any
	)
	addCond := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Name != "" {
		addCond("u.name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		addCond("u.email ILIKE $%d", "%"+filter.Email+"%")
	}
	if filter.Address != "" {
		addCond("u.address ILIKE $%d", "%"+filter.Address+"%")
	}
	if filter.Role != "" {
		addCond("u.role = $%d", string(filter.Role))
	}
	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE " + strings.Join(conds, " AND "))
	}

	column, ok := userSortColumns[filter.SortBy]
	if !ok {
		column = "u.name"
	}
	sb.WriteString("\n\t\tORDER BY " + column)
	if filter.SortDesc {
		sb.WriteString(" DESC")
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var items []ports.UserListItem
	for rows.Next() {
		var (
			item ports.UserListItem
			role string
		)
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Email, &item.Address, &role,
			&item.CreatedAt, &item.UpdatedAt, &item.StoreRating,
		); err != nil {
			return nil, fmt.Errorf("list users: scan: %w", err)
		}
		item.Role = domain.Role(role)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Address,
		&role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.Role = domain.Role(role)
	return &user, nil
}
