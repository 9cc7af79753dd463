package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/controllers"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
)

func BuyerRoutes(r *gin.Engine) {
	criteria := r.Group("/api/buyer-criteria")
	criteria.Use(middleware.RequireAuth())
	{
		criteria.POST("", controllers.UpsertBuyerCriteria)
		criteria.GET("", controllers.GetBuyerCriteria)
	}
}
