package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/controllers"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
)

// ConsoleRoutes serves the shared-secret admin console. This trust domain is
// distinct from the role-based admin group and never mixes with it.
func ConsoleRoutes(r *gin.Engine) {
	console := r.Group("/api/console")
	console.Use(middleware.RequireAdminSecret())
	{
		console.GET("/deals", controllers.ConsoleListDeals)
		console.GET("/buyers", controllers.ConsoleListBuyers)
		console.GET("/sellers", controllers.ConsoleListSellers)
		console.PATCH("/verify-buyer/:id", controllers.ConsoleVerifyBuyer)
		console.PATCH("/verify-seller/:id", controllers.ConsoleVerifySeller)
		console.GET("/verification-documents", controllers.ConsoleListDocuments)
	}
}
