package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/diwashkafle/mygadgetnepal/controllers/order"
	"github.com/diwashkafle/mygadgetnepal/middleware"
)

// SetupOrderRoutes registers the customer-facing order endpoints. Creation
// is open to guests; the history endpoint needs a signed-in caller.
func SetupOrderRoutes(r *gin.Engine, orders *orderControllers.Handler) {
	group := r.Group("/orders")
	{
		group.POST("", orders.Create)
		group.GET("/me", middleware.RequireAuth, orders.MyOrders)
		group.GET("/:id", orders.Get)
		group.PUT("/:id/payment", orders.SelectPayment)
	}
}
