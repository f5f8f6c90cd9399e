package domain

import "errors"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrRoleMismatch = errors.New("role does not permit this operation")
	ErrNotOwner     = errors.New("resource belongs to another user")
)

// Identity is the (user id, role) pair extracted from a validated session
// token.
type Identity struct {
	UserID int64
	Role   Role
}

// Authorize gates an operation on an exact role match. There is no role
// hierarchy: admin does not imply owner or rater.
func Authorize(id Identity, required Role) error {
	if id.Role != required {
		return ErrRoleMismatch
	}
	return nil
}

// AuthorizeAny gates an operation on membership in a set of roles.
func AuthorizeAny(id Identity, allowed ...Role) error {
	for _, r := range allowed {
		if id.Role == r {
			return nil
		}
	}
	return ErrRoleMismatch
}

// AuthorizeOwnership gates access to a resource on the requester being its
// recorded owning user. Admins bypass ownership (and only ownership).
// A nil ownerID means the resource is unowned and only admins may pass.
func AuthorizeOwnership(id Identity, ownerID *int64) error {
	if id.Role == RoleAdmin {
		return nil
	}
	if ownerID == nil || *ownerID != id.UserID {
		return ErrNotOwner
	}
	return nil
}
