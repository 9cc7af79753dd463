package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/controllers"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// AdminRoutes serves the role-based admin dashboard (JWT, role=admin).
func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.GET("/users", controllers.AdminListUsers)
		admin.PATCH("/verify-user/:id", controllers.AdminVerifyUser)
		admin.PATCH("/verify-document/:id", controllers.AdminVerifyDocument)
		admin.GET("/verification-documents", controllers.AdminListDocuments)
		admin.PATCH("/approve-property/:id", controllers.AdminApproveProperty)
	}
}
