package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

// Handlers for the role-based admin dashboard (JWT with role=admin). The
// shared-secret console lives in console_controller.go; the two trust
// domains never share a route group.

func AdminListUsers(c *gin.Context) {
	svc := service.NewVerificationService(config.DB)
	users, err := svc.ListUsers(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// AdminVerifyUser sets the user's verification decision. This is the sole
// action that unlocks verification-gated features.
func AdminVerifyUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input struct {
		VerificationStatus string `json:"verification_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewVerificationService(config.DB)
	user, err := svc.ReviewUser(middleware.CurrentIdentity(c), id, input.VerificationStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// AdminVerifyDocument records the review decision on one document. It does
// not change the owning user's verification status.
func AdminVerifyDocument(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewVerificationService(config.DB)
	doc, err := svc.ReviewDocument(middleware.CurrentIdentity(c), id, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func AdminListDocuments(c *gin.Context) {
	svc := service.NewVerificationService(config.DB)
	docs, err := svc.ListAllDocuments(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

// AdminApproveProperty toggles a listing's public visibility.
func AdminApproveProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input struct {
		IsApproved *bool `json:"is_approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewListingService(config.DB)
	prop, err := svc.ApproveProperty(middleware.CurrentIdentity(c), id, *input.IsApproved)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": prop})
}
