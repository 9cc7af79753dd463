package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

// CreateProperty accepts a multipart form: listing fields, up to ten images
// and the required contract document.
func CreateProperty(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}

	input := service.PropertyInput{
		Title:        c.PostForm("title"),
		Address:      c.PostForm("address"),
		City:         c.PostForm("city"),
		State:        c.PostForm("state"),
		ZipCode:      c.PostForm("zip_code"),
		PropertyType: c.PostForm("property_type"),
		Notes:        c.PostForm("notes"),
	}

	for name, dst := range map[string]*int{
		"contract_price": &input.ContractPrice,
		"arv":            &input.ARV,
		"repair_cost":    &input.RepairCost,
		"assignment_fee": &input.AssignmentFee,
	} {
		value, err := strconv.Atoi(c.PostForm(name))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be numeric"})
			return
		}
		*dst = value
	}

	// Contract document first, then images; all files hit disk before the
	// listing row exists.
	if files := form.File["contract_document"]; len(files) > 0 {
		path, err := saveUpload(c, files[0])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store contract document"})
			return
		}
		input.ContractDocument = path
	}
	for _, image := range form.File["images"] {
		path, err := saveUpload(c, image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
			return
		}
		input.Images = append(input.Images, path)
	}

	svc := service.NewListingService(config.DB)
	prop, err := svc.CreateProperty(ident, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"property": prop})
}

// ListProperties is public; anonymous and non-admin callers only ever see
// approved listings no matter what they filter on.
func ListProperties(c *gin.Context) {
	filter := service.PropertyFilter{
		PropertyType: c.Query("property_type"),
		State:        c.Query("state"),
		City:         c.Query("city"),
	}
	if v := c.Query("min_price"); v != "" {
		if price, err := strconv.Atoi(v); err == nil {
			filter.MinPrice = price
		}
	}
	if v := c.Query("max_price"); v != "" {
		if price, err := strconv.Atoi(v); err == nil {
			filter.MaxPrice = price
		}
	}

	svc := service.NewListingService(config.DB)
	props, err := svc.ListProperties(middleware.CurrentIdentity(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": props})
}

// ListMyProperties returns the caller's own listings, approved or not.
func ListMyProperties(c *gin.Context) {
	svc := service.NewListingService(config.DB)
	props, err := svc.ListMine(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": props})
}

func GetProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc := service.NewListingService(config.DB)
	prop, err := svc.GetProperty(middleware.CurrentIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": prop})
}

// UpdateProperty patches a listing as its owner or an admin.
func UpdateProperty(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Title         *string `json:"title"`
		Address       *string `json:"address"`
		City          *string `json:"city"`
		State         *string `json:"state"`
		ZipCode       *string `json:"zip_code"`
		PropertyType  *string `json:"property_type"`
		ContractPrice *int    `json:"contract_price"`
		ARV           *int    `json:"arv"`
		RepairCost    *int    `json:"repair_cost"`
		AssignmentFee *int    `json:"assignment_fee"`
		Notes         *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewListingService(config.DB)
	prop, err := svc.UpdateProperty(middleware.CurrentIdentity(c), id, service.PropertyPatch{
		Title:         input.Title,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
		PropertyType:  input.PropertyType,
		ContractPrice: input.ContractPrice,
		ARV:           input.ARV,
		RepairCost:    input.RepairCost,
		AssignmentFee: input.AssignmentFee,
		Notes:         input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": prop})
}

// MarkPropertyUnderContract is the owner's explicit
// available -> under_contract transition.
func MarkPropertyUnderContract(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc := service.NewListingService(config.DB)
	prop, err := svc.MarkUnderContract(middleware.CurrentIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": prop})
}
