package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

func CreateContactRequest(c *gin.Context) {
	var input struct {
		PropertyID uint   `json:"property_id" binding:"required"`
		Message    string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewContactService(config.DB)
	request, err := svc.CreateContactRequest(middleware.CurrentIdentity(c), input.PropertyID, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contact_request": request})
}

func ListContactRequests(c *gin.Context) {
	svc := service.NewContactService(config.DB)
	requests, err := svc.ListContactRequests(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": requests})
}

// MarkContactRequestRead flags a message as read; recipient only.
func MarkContactRequestRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc := service.NewContactService(config.DB)
	request, err := svc.MarkRead(middleware.CurrentIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_request": request})
}
