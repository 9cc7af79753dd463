package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// Full wholesaler journey: blocked while unverified, unlocked by the admin
// decision, listing hidden until approved, deal closed with commission.
func TestWholesalerLifecycle(t *testing.T) {
	db := newTestDB(t)
	verification := NewVerificationService(db)
	listings := NewListingService(db)
	deals := NewDealService(db)

	wholesaler := createUser(t, db, models.RoleWholesaler, false)
	buyer := createUser(t, db, models.RoleCashBuyer, true)
	admin := createUser(t, db, models.RoleAdmin, true)

	// Unverified wholesalers cannot post.
	_, err := listings.CreateProperty(identityFor(wholesaler), validPropertyInput())
	assert.ErrorIs(t, err, ErrForbidden)

	// Upload the role's checklist, then get the admin decision.
	_, err = verification.SubmitDocument(identityFor(wholesaler), models.DocumentTypeID, "uploads/id.pdf")
	require.NoError(t, err)
	_, err = verification.SubmitDocument(identityFor(wholesaler), models.DocumentTypeContract, "uploads/sample.pdf")
	require.NoError(t, err)

	checklist, err := verification.Checklist(wholesaler.ID)
	require.NoError(t, err)
	assert.True(t, checklist.Complete)

	_, err = verification.ReviewUser(identityFor(admin), wholesaler.ID, models.VerificationVerified)
	require.NoError(t, err)

	ident := reloadIdentity(t, db, wholesaler.ID)
	prop, err := listings.CreateProperty(ident, validPropertyInput())
	require.NoError(t, err)
	assert.False(t, prop.IsApproved)

	// Hidden from the public until approved.
	public, err := listings.ListProperties(nil, PropertyFilter{})
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = listings.ApproveProperty(identityFor(admin), prop.ID, true)
	require.NoError(t, err)

	public, err = listings.ListProperties(nil, PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, public, 1)

	// Close at 10000 -> 700 commission, listing leaves the market.
	deal, err := deals.CloseDeal(ident, CloseDealInput{
		PropertyID:    prop.ID,
		BuyerID:       buyer.ID,
		AssignmentFee: 10000,
		ProofDocument: "uploads/hud.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, 700, deal.CommissionAmount)

	var closed models.Property
	require.NoError(t, db.First(&closed, prop.ID).Error)
	assert.Equal(t, models.PropertyClosed, closed.Status)

	_, err = deals.CloseDeal(ident, CloseDealInput{
		PropertyID:    prop.ID,
		BuyerID:       buyer.ID,
		AssignmentFee: 10000,
		ProofDocument: "uploads/hud.pdf",
	})
	assert.ErrorIs(t, err, ErrConflict)
}
