package service

import (
	"fmt"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// Identity is the role-tagged principal the auth layer attaches to a request.
// A nil *Identity is an anonymous caller.
type Identity struct {
	UserID     uint
	Role       string
	IsVerified bool
}

// IsAdmin reports whether the identity carries the admin role. Safe on nil.
func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role == models.RoleAdmin
}

// Owns reports whether the identity is the owner of a resource. Safe on nil.
func (id *Identity) Owns(userID uint) bool {
	return id != nil && id.UserID == userID
}

// RequireAuthenticated fails with Unauthorized when there is no identity.
// It does not inspect role or verification.
func RequireAuthenticated(id *Identity) error {
	if id == nil || id.UserID == 0 {
		return fmt.Errorf("no identity: %w", ErrUnauthorized)
	}
	return nil
}

// RequireVerified implies RequireAuthenticated and fails with Forbidden for
// unverified accounts.
func RequireVerified(id *Identity) error {
	if err := RequireAuthenticated(id); err != nil {
		return err
	}
	if !id.IsVerified {
		return fmt.Errorf("account must be verified: %w", ErrForbidden)
	}
	return nil
}

// RequireRole implies RequireAuthenticated and fails with Forbidden on a
// role mismatch.
func RequireRole(id *Identity, role string) error {
	if err := RequireAuthenticated(id); err != nil {
		return err
	}
	if id.Role != role {
		return fmt.Errorf("requires %s role: %w", role, ErrForbidden)
	}
	return nil
}
