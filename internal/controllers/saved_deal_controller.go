package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

func CreateSavedDeal(c *gin.Context) {
	var input struct {
		PropertyID uint `json:"property_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewSavedDealService(config.DB)
	saved, err := svc.SaveDeal(middleware.CurrentIdentity(c), input.PropertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved_deal": saved})
}

func ListSavedDeals(c *gin.Context) {
	svc := service.NewSavedDealService(config.DB)
	saved, err := svc.ListSavedDeals(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": saved})
}

func DeleteSavedDeal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc := service.NewSavedDealService(config.DB)
	if err := svc.DeleteSavedDeal(middleware.CurrentIdentity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
