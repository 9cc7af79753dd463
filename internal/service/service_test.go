package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

var userSeq uint64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VerificationDocument{},
		&models.BuyerCriteria{},
		&models.Property{},
		&models.SavedDeal{},
		&models.ContactRequest{},
		&models.ClosedDeal{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, role string, verified bool) *models.User {
	t.Helper()
	n := atomic.AddUint64(&userSeq, 1)
	status := models.VerificationPending
	if verified {
		status = models.VerificationVerified
	}
	user := &models.User{
		Username:           fmt.Sprintf("user%d", n),
		Email:              fmt.Sprintf("user%d@example.com", n),
		Password:           "hashed",
		Role:               role,
		IsVerified:         verified,
		VerificationStatus: status,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func identityFor(user *models.User) *Identity {
	return &Identity{
		UserID:     user.ID,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
}

// reloadIdentity mirrors what the auth middleware does per request: rebuild
// the identity from the current user row.
func reloadIdentity(t *testing.T, db *gorm.DB, userID uint) *Identity {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	return identityFor(&user)
}

func createListing(t *testing.T, db *gorm.DB, ownerID uint, approved bool) *models.Property {
	t.Helper()
	prop := &models.Property{
		UserID:           ownerID,
		Title:            "3BR fixer",
		Address:          "12 Oak St",
		City:             "Memphis",
		State:            "TN",
		ZipCode:          "38103",
		PropertyType:     "single_family",
		ContractPrice:    90000,
		ARV:              160000,
		RepairCost:       25000,
		AssignmentFee:    10000,
		ContractDocument: "uploads/contract.pdf",
		IsApproved:       approved,
		Status:           models.PropertyAvailable,
	}
	require.NoError(t, db.Create(prop).Error)
	return prop
}
