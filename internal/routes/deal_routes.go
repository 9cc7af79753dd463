package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/memorylane634/RealEstateMarketplace/internal/controllers"
	"github.com/memorylane634/RealEstateMarketplace/internal/middleware"
)

func DealRoutes(r *gin.Engine) {
	closed := r.Group("/api/closed-deals")
	closed.Use(middleware.RequireAuth())
	{
		closed.GET("", controllers.ListClosedDeals)
		closed.PATCH("/:id/pay-commission", controllers.PayCommission)
	}

	closing := r.Group("/api/closed-deals")
	closing.Use(middleware.RequireVerified())
	{
		closing.POST("", controllers.CloseDeal)
	}

	saved := r.Group("/api/saved-deals")
	saved.Use(middleware.RequireAuth())
	{
		saved.POST("", controllers.CreateSavedDeal)
		saved.GET("", controllers.ListSavedDeals)
		saved.DELETE("/:id", controllers.DeleteSavedDeal)
	}

	contacts := r.Group("/api/contact-requests")
	contacts.Use(middleware.RequireAuth())
	{
		contacts.GET("", controllers.ListContactRequests)
		contacts.PATCH("/:id/read", controllers.MarkContactRequestRead)
	}

	contacting := r.Group("/api/contact-requests")
	contacting.Use(middleware.RequireVerified())
	{
		contacting.POST("", controllers.CreateContactRequest)
	}
}
