package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/service"
)

// SubmitVerificationDocument accepts a multipart upload of a single proof
// document plus its document_type field.
func SubmitVerificationDocument(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	documentType := c.PostForm("document_type")

	filePath, err := saveUpload(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store uploaded file"})
		return
	}

	svc := service.NewVerificationService(config.DB)
	doc, err := svc.SubmitDocument(ident, documentType, filePath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"document": doc})
}

// ListVerificationDocuments returns the caller's own submissions.
func ListVerificationDocuments(c *gin.Context) {
	svc := service.NewVerificationService(config.DB)
	docs, err := svc.ListDocuments(middleware.CurrentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

// GetVerificationChecklist reports which required document types the caller
// has submitted for their role.
func GetVerificationChecklist(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	svc := service.NewVerificationService(config.DB)
	checklist, err := svc.Checklist(ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklist": checklist})
}
