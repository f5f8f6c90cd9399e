package domain

import (
	"errors"
	"time"
)

var (
	ErrStoreNotFound = errors.New("store not found")
	// ErrOwnerInvalid is returned when a store is assigned to a user that
	// does not hold the owner role.
	ErrOwnerInvalid = errors.New("owner must be a user with the owner role")
)

// Store is a rateable storefront. OwnerID is nil while the store has no
// owner-of-record; deleting the owning user detaches the store rather than
// deleting it.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	OwnerID   *int64    `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
