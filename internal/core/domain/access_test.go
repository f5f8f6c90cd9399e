package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "owner", "rater"} {
		r, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", s, err)
		}
		if string(r) != s {
			t.Fatalf("ParseRole(%q) = %q", s, r)
		}
	}
	for _, s := range []string{"", "user", "Admin", "superadmin"} {
		if _, err := ParseRole(s); err != ErrInvalidRole {
			t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", s, err)
		}
	}
}

func TestAuthorize_ExactRoleOnly(t *testing.T) {
	roles := []Role{RoleAdmin, RoleOwner, RoleRater}
	for _, have := range roles {
		for _, want := range roles {
			err := Authorize(Identity{UserID: 1, Role: have}, want)
			if have == want && err != nil {
				t.Fatalf("Authorize(%s, %s) denied: %v", have, want, err)
			}
			if have != want && err != ErrRoleMismatch {
				t.Fatalf("Authorize(%s, %s): expected ErrRoleMismatch, got %v", have, want, err)
			}
		}
	}
}

func TestAuthorizeAny(t *testing.T) {
	id := Identity{UserID: 7, Role: RoleOwner}
	if err := AuthorizeAny(id, RoleOwner, RoleAdmin); err != nil {
		t.Fatalf("owner should pass {owner, admin}: %v", err)
	}
	if err := AuthorizeAny(id, RoleRater); err != ErrRoleMismatch {
		t.Fatalf("owner against {rater}: expected ErrRoleMismatch, got %v", err)
	}
}

func TestAuthorizeOwnership(t *testing.T) {
	ownerID := int64(42)

	if err := AuthorizeOwnership(Identity{UserID: 42, Role: RoleOwner}, &ownerID); err != nil {
		t.Fatalf("owner denied own resource: %v", err)
	}
	if err := AuthorizeOwnership(Identity{UserID: 7, Role: RoleOwner}, &ownerID); err != ErrNotOwner {
		t.Fatalf("other owner: expected ErrNotOwner, got %v", err)
	}
	// Admins bypass ownership, including on unowned resources.
	if err := AuthorizeOwnership(Identity{UserID: 1, Role: RoleAdmin}, &ownerID); err != nil {
		t.Fatalf("admin denied: %v", err)
	}
	if err := AuthorizeOwnership(Identity{UserID: 1, Role: RoleAdmin}, nil); err != nil {
		t.Fatalf("admin denied on unowned resource: %v", err)
	}
	if err := AuthorizeOwnership(Identity{UserID: 42, Role: RoleOwner}, nil); err != ErrNotOwner {
		t.Fatalf("unowned resource for non-admin: expected ErrNotOwner, got %v", err)
	}
}

func TestAuthorizeOwnership_Deterministic(t *testing.T) {
	ownerID := int64(3)
	id := Identity{UserID: 3, Role: RoleRater}
	first := AuthorizeOwnership(id, &ownerID)
	for i := 0; i < 10; i++ {
		if got := AuthorizeOwnership(id, &ownerID); got != first {
			t.Fatalf("result changed between calls: %v vs %v", first, got)
		}
	}
}
