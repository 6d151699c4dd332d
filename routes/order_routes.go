package routes

import (
	"github.com/Akhil-047/PayOrbit/controllers"
	"github.com/Akhil-047/PayOrbit/middleware"
	"github.com/gin-gonic/gin"
)

// initOrderRoutes initializes all order-related routes
func initOrderRoutes(router *gin.RouterGroup) {
	// Public route for the checkout page (no authentication required)
	router.GET("/orders/:orderId/public", controllers.GetOrderPublic)

	orders := router.Group("/orders")
	orders.Use(middleware.MerchantAuth())
	{
		orders.POST("", controllers.CreateOrder)
		orders.GET("/:orderId", controllers.GetOrder)
	}
}
