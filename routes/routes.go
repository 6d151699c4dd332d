package routes

import (
	"github.com/Akhil-047/PayOrbit/controllers"
	"github.com/Akhil-047/PayOrbit/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Middleware goes on before any route so every handler is covered.
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(utils.RequestIDMiddleware())

	router.GET("/health", controllers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version group
	api := router.Group("/api/v1")
	{
		initOrderRoutes(api)
		initPaymentRoutes(api)

		// The demo frontends fetch the seeded credentials from here
		api.GET("/test/merchant", controllers.GetTestMerchant)
	}

	return router
}
