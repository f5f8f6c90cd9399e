package handler

import "github.com/storerating/platform/internal/core/ports"

// --- Request / Response types ---

type addUserRequest struct {
	Name     string `json:"name"     validate:"required,min=20,max=60"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Address  string `json:"address"  validate:"max=400"`
	Role     string `json:"role"     validate:"required,oneof=admin owner rater"`
}

type addStoreRequest struct {
	Name    string `json:"name"     validate:"required,min=1,max=255"`
	Email   string `json:"email"    validate:"required,email"`
	Address string `json:"address"  validate:"max=400"`
	OwnerID *int64 `json:"owner_id"`
}

// userListQuery mirrors storeListQuery for the users relation, with role as
// an extra exact-match filter.
type userListQuery struct {
	Name    string `query:"name"`
	Email   string `query:"email"`
	Address string `query:"address"`
	Role    string `query:"role"`
	SortBy  string `query:"sort_by"`
	Order   string `query:"order"`
}

type listUsersResponse struct {
	Data []ports.UserListItem `json:"data"`
}
