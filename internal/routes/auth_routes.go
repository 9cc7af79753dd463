package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/controllers"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", controllers.SignupUser)
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middleware.RequireAuth(), controllers.CurrentUser)
	}
}
