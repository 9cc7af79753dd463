package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/models"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

// Handlers for the shared-secret admin console. The RequireAdminSecret
// middleware establishes the trust domain; there is no user identity here,
// so these call the unguarded service reads directly.

// ConsoleListDeals returns every listing, approved or not.
func ConsoleListDeals(c *gin.Context) {
	svc := service.NewListingService(config.DB)
	props, err := svc.AllProperties()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": props})
}

// ConsoleListBuyers returns the unverified cash buyer review queue.
func ConsoleListBuyers(c *gin.Context) {
	consoleListUnverified(c, models.RoleCashBuyer)
}

// ConsoleListSellers returns the unverified wholesaler review queue.
func ConsoleListSellers(c *gin.Context) {
	consoleListUnverified(c, models.RoleWholesaler)
}

func consoleListUnverified(c *gin.Context, role string) {
	svc := service.NewVerificationService(config.DB)
	users, err := svc.UnverifiedUsersByRole(role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// ConsoleVerifyBuyer verifies a user after checking they are a cash buyer.
func ConsoleVerifyBuyer(c *gin.Context) {
	consoleVerify(c, models.RoleCashBuyer)
}

// ConsoleVerifySeller verifies a user after checking they are a wholesaler.
func ConsoleVerifySeller(c *gin.Context) {
	consoleVerify(c, models.RoleWholesaler)
}

func consoleVerify(c *gin.Context, role string) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc := service.NewVerificationService(config.DB)
	user, err := svc.VerifyUserWithRole(id, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ConsoleListDocuments returns every verification document.
func ConsoleListDocuments(c *gin.Context) {
	svc := service.NewVerificationService(config.DB)
	docs, err := svc.AllDocuments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}
