package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

// CloseDeal accepts a multipart form with the proof document and the deal
// terms, and finalizes the assignment.
func CloseDeal(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	input := service.CloseDealInput{}
	for name, dst := range map[string]*uint{
		"property_id": &input.PropertyID,
		"buyer_id":    &input.BuyerID,
	} {
		value, err := strconv.ParseUint(c.PostForm(name), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be numeric"})
			return
		}
		*dst = uint(value)
	}
	fee, err := strconv.Atoi(c.PostForm("assignment_fee"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignment_fee must be numeric"})
		return
	}
	input.AssignmentFee = fee

	file, err := c.FormFile("proof_document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Proof document is required"})
		return
	}
	path, err := saveUpload(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store proof document"})
		return
	}
	input.ProofDocument = path

	svc := service.NewDealService(config.DB)
	deal, err := svc.CloseDeal(ident, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deal": deal})
}

// ListClosedDeals returns deals the caller took part in, as seller or buyer.
func ListClosedDeals(c *gin.Context) {
	svc := service.NewDealService(config.DB)
	deals, err := svc.ListDeals(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": deals})
}

// PayCommission records the seller's attestation that the platform
// commission was settled.
func PayCommission(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc := service.NewDealService(config.DB)
	deal, err := svc.MarkCommissionPaid(middleware.CurrentIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deal": deal})
}
