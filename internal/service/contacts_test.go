package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

func TestCreateContactRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	owner := createUser(t, db, models.RoleWholesaler, true)
	buyer := createUser(t, db, models.RoleCashBuyer, true)
	unverified := createUser(t, db, models.RoleCashBuyer, false)
	prop := createListing(t, db, owner.ID, true)

	_, err := svc.CreateContactRequest(identityFor(unverified), prop.ID, "hi")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.CreateContactRequest(identityFor(buyer), prop.ID, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateContactRequest(identityFor(buyer), 9999, "hi")
	assert.ErrorIs(t, err, ErrNotFound)

	request, err := svc.CreateContactRequest(identityFor(buyer), prop.ID, "Is this still available?")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, request.RecipientID)
	assert.Equal(t, buyer.ID, request.SenderID)
	assert.False(t, request.IsRead)
}

func TestSelfContactRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	owner := createUser(t, db, models.RoleWholesaler, true)
	prop := createListing(t, db, owner.ID, true)

	_, err := svc.CreateContactRequest(identityFor(owner), prop.ID, "hello me")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var count int64
	require.NoError(t, db.Model(&models.ContactRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMarkReadRecipientOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	owner := createUser(t, db, models.RoleWholesaler, true)
	buyer := createUser(t, db, models.RoleCashBuyer, true)
	prop := createListing(t, db, owner.ID, true)

	request, err := svc.CreateContactRequest(identityFor(buyer), prop.ID, "ping")
	require.NoError(t, err)

	// The sender cannot mark their own message read.
	_, err = svc.MarkRead(identityFor(buyer), request.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	read, err := svc.MarkRead(identityFor(owner), request.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
}

func TestListContactRequestsBothDirections(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)
	owner := createUser(t, db, models.RoleWholesaler, true)
	buyer := createUser(t, db, models.RoleCashBuyer, true)
	other := createUser(t, db, models.RoleCashBuyer, true)
	prop := createListing(t, db, owner.ID, true)

	_, err := svc.CreateContactRequest(identityFor(buyer), prop.ID, "ping")
	require.NoError(t, err)

	for _, participant := range []*models.User{owner, buyer} {
		requests, err := svc.ListContactRequests(identityFor(participant))
		require.NoError(t, err)
		assert.Len(t, requests, 1)
	}

	requests, err := svc.ListContactRequests(identityFor(other))
	require.NoError(t, err)
	assert.Empty(t, requests)
}
