package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/controllers"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
)

func VerificationRoutes(r *gin.Engine) {
	verification := r.Group("/api/verification-documents")
	verification.Use(middleware.RequireAuth())
	{
		verification.POST("", controllers.SubmitVerificationDocument)
		verification.GET("", controllers.ListVerificationDocuments)
		verification.GET("/checklist", controllers.GetVerificationChecklist)
	}
}
