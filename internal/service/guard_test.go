package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

func TestRequireAuthenticated(t *testing.T) {
	assert.ErrorIs(t, RequireAuthenticated(nil), ErrUnauthorized)
	assert.ErrorIs(t, RequireAuthenticated(&Identity{}), ErrUnauthorized)
	assert.NoError(t, RequireAuthenticated(&Identity{UserID: 1}))
}

func TestRequireVerified(t *testing.T) {
	assert.ErrorIs(t, RequireVerified(nil), ErrUnauthorized)

	unverified := &Identity{UserID: 1, Role: models.RoleWholesaler}
	assert.ErrorIs(t, RequireVerified(unverified), ErrForbidden)

	verified := &Identity{UserID: 1, Role: models.RoleWholesaler, IsVerified: true}
	assert.NoError(t, RequireVerified(verified))
}

func TestRequireRole(t *testing.T) {
	assert.ErrorIs(t, RequireRole(nil, models.RoleAdmin), ErrUnauthorized)

	buyer := &Identity{UserID: 2, Role: models.RoleCashBuyer}
	assert.ErrorIs(t, RequireRole(buyer, models.RoleAdmin), ErrForbidden)
	assert.NoError(t, RequireRole(buyer, models.RoleCashBuyer))
}

func TestIdentityHelpersOnNil(t *testing.T) {
	var ident *Identity
	assert.False(t, ident.IsAdmin())
	assert.False(t, ident.Owns(1))
}
