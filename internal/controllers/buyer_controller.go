package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

// UpsertBuyerCriteria stores the caller's preferences; a second submission
// replaces the first.
func UpsertBuyerCriteria(c *gin.Context) {
	var input struct {
		Locations        []string `json:"locations"`
		PropertyTypes    []string `json:"property_types"`
		MinPrice         int      `json:"min_price"`
		MaxPrice         int      `json:"max_price"`
		FinancingType    string   `json:"financing_type" binding:"required"`
		ExitStrategy     string   `json:"exit_strategy"`
		ClosingTimeframe string   `json:"closing_timeframe"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewBuyerService(config.DB)
	criteria, err := svc.UpsertCriteria(middleware.CurrentIdentity(c), service.BuyerCriteriaInput{
		Locations:        input.Locations,
		PropertyTypes:    input.PropertyTypes,
		MinPrice:         input.MinPrice,
		MaxPrice:         input.MaxPrice,
		FinancingType:    input.FinancingType,
		ExitStrategy:     input.ExitStrategy,
		ClosingTimeframe: input.ClosingTimeframe,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"criteria": criteria})
}

func GetBuyerCriteria(c *gin.Context) {
	svc := service.NewBuyerService(config.DB)
	criteria, err := svc.GetCriteria(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if criteria == nil {
		c.JSON(http.StatusOK, gin.H{"criteria": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"criteria": criteria})
}
