package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/controllers"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
)

func PropertyRoutes(r *gin.Engine) {
	// Public browsing; admins get the unfiltered view through the same
	// endpoints.
	props := r.Group("/api/properties")
	props.Use(middleware.OptionalAuth())
	{
		props.GET("", controllers.ListProperties)
		props.GET("/:id", controllers.GetProperty)
	}

	owned := r.Group("/api/properties")
	owned.Use(middleware.RequireAuth())
	{
		owned.PATCH("/:id", controllers.UpdateProperty)
		owned.PATCH("/:id/under-contract", controllers.MarkPropertyUnderContract)
	}

	mine := r.Group("/api/my/properties")
	mine.Use(middleware.RequireAuth())
	{
		mine.GET("", controllers.ListMyProperties)
	}

	// Posting requires a verified wholesaler; the role check lives in the
	// listing service.
	post := r.Group("/api/properties")
	post.Use(middleware.RequireVerified())
	{
		post.POST("", controllers.CreateProperty)
	}
}
